package domain

import "github.com/shopspring/decimal"

// Book holds book data. RoyaltyPerSale is owed to the author per unit sold.
type Book struct {
	ID             int32           `json:"id"`
	AuthorID       int32           `json:"author_id"`
	Title          string          `json:"title"`
	RoyaltyPerSale decimal.Decimal `json:"royalty_per_sale"`
}

// BookSummary holds book sales figures.
type BookSummary struct {
	ID             int32           `json:"id"`
	Title          string          `json:"title"`
	RoyaltyPerSale decimal.Decimal `json:"royalty_per_sale"`
	TotalSold      int64           `json:"total_sold"`
	TotalRoyalty   decimal.Decimal `json:"total_royalty"`
}
