// Package domain provides defenitions of all entities.
package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrAuthorNotFound indicates that the author is not found.
var ErrAuthorNotFound = errors.New("Author not found")

// Author holds author profile data.
type Author struct {
	ID    int32  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthorSummary is the author entry of the authors list.
type AuthorSummary struct {
	ID             int32           `json:"id"`
	Name           string          `json:"name"`
	TotalEarnings  decimal.Decimal `json:"total_earnings"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

// AuthorDetail is the author profile together with the royalty figures of every owned book.
type AuthorDetail struct {
	ID             int32           `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	TotalBooks     int             `json:"total_books"`
	TotalEarnings  decimal.Decimal `json:"total_earnings"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	Books          []BookSummary   `json:"books"`
}
