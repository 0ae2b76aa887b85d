// Package earnings derives royalty totals and balances from the ledger.
package earnings

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/go-petr/bookleaf/internal/domain"
)

// Repo provides data access layer interface needed by the calculator.
type Repo interface {
	ListBooksByAuthor(ctx context.Context, authorID int32) []domain.Book
	ListSalesByBook(ctx context.Context, bookID int32) []domain.Sale
	ListWithdrawalsByAuthor(ctx context.Context, authorID int32) []domain.Withdrawal
}

// Calculator recomputes every figure from the repo on each call.
// Unknown ids yield zero values.
type Calculator struct {
	repo Repo
}

// New returns earnings calculator.
func New(r Repo) *Calculator {
	return &Calculator{repo: r}
}

// TotalSold returns the number of units sold of the given book.
func (c *Calculator) TotalSold(ctx context.Context, bookID int32) int64 {
	var total int64

	for _, s := range c.repo.ListSalesByBook(ctx, bookID) {
		total += int64(s.Quantity)
	}

	return total
}

// TotalRoyalty returns the royalty accrued by the given book.
func (c *Calculator) TotalRoyalty(ctx context.Context, book domain.Book) decimal.Decimal {
	return decimal.NewFromInt(c.TotalSold(ctx, book.ID)).Mul(book.RoyaltyPerSale)
}

// AuthorTotalEarnings returns the royalty accrued by all books of the author.
func (c *Calculator) AuthorTotalEarnings(ctx context.Context, authorID int32) decimal.Decimal {
	total := decimal.Zero

	for _, b := range c.repo.ListBooksByAuthor(ctx, authorID) {
		total = total.Add(c.TotalRoyalty(ctx, b))
	}

	return total
}

// AuthorTotalWithdrawals returns the sum of all withdrawals of the author regardless of status.
func (c *Calculator) AuthorTotalWithdrawals(ctx context.Context, authorID int32) decimal.Decimal {
	total := decimal.Zero

	for _, w := range c.repo.ListWithdrawalsByAuthor(ctx, authorID) {
		total = total.Add(w.Amount)
	}

	return total
}

// AuthorCurrentBalance returns earnings minus withdrawals of the author.
func (c *Calculator) AuthorCurrentBalance(ctx context.Context, authorID int32) decimal.Decimal {
	return c.AuthorTotalEarnings(ctx, authorID).Sub(c.AuthorTotalWithdrawals(ctx, authorID))
}
