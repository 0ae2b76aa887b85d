package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records a number of units sold of a book.
type Sale struct {
	BookID   int32     `json:"book_id"`
	Quantity int32     `json:"quantity"` // must be positive
	SaleDate time.Time `json:"sale_date"`
}

// AuthorSale is a sale as seen by the author of the sold book.
type AuthorSale struct {
	BookTitle     string          `json:"book_title"`
	Quantity      int32           `json:"quantity"`
	RoyaltyEarned decimal.Decimal `json:"royalty_earned"`
	SaleDate      time.Time       `json:"sale_date"`
}
