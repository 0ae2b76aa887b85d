package domain

import "github.com/shopspring/decimal"

func init() {
	// Money is rendered as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}
