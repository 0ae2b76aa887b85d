// Package ledgerrepo manages repository layer of the royalty ledger.
package ledgerrepo

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-petr/bookleaf/internal/domain"
)

// RepoMem keeps authors, books, sales and withdrawals in memory.
//
// Authors and books are immutable after seeding. Sales and withdrawals
// are append-only. All collections keep insertion order.
type RepoMem struct {
	mu          sync.RWMutex
	authors     []domain.Author
	books       []domain.Book
	sales       []domain.Sale
	withdrawals []domain.Withdrawal
}

// NewRepoMem returns RepoMem seeded with the given data set.
func NewRepoMem(seed Seed) (*RepoMem, error) {
	if err := seed.Validate(); err != nil {
		return nil, err
	}

	r := &RepoMem{
		authors:     append([]domain.Author(nil), seed.Authors...),
		books:       append([]domain.Book(nil), seed.Books...),
		sales:       append([]domain.Sale(nil), seed.Sales...),
		withdrawals: append([]domain.Withdrawal(nil), seed.Withdrawals...),
	}

	return r, nil
}

// ListAuthors returns all authors.
func (r *RepoMem) ListAuthors(ctx context.Context) []domain.Author {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.Author(nil), r.authors...)
}

// GetAuthor returns the author with the given id.
func (r *RepoMem) GetAuthor(ctx context.Context, id int32) (domain.Author, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.authors {
		if a.ID == id {
			return a, nil
		}
	}

	return domain.Author{}, domain.ErrAuthorNotFound
}

// ListBooksByAuthor returns the books owned by the given author.
func (r *RepoMem) ListBooksByAuthor(ctx context.Context, authorID int32) []domain.Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var books []domain.Book

	for _, b := range r.books {
		if b.AuthorID == authorID {
			books = append(books, b)
		}
	}

	return books
}

// ListSales returns all sales.
func (r *RepoMem) ListSales(ctx context.Context) []domain.Sale {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain.Sale(nil), r.sales...)
}

// ListSalesByBook returns the sales of the given book.
func (r *RepoMem) ListSalesByBook(ctx context.Context, bookID int32) []domain.Sale {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sales []domain.Sale

	for _, s := range r.sales {
		if s.BookID == bookID {
			sales = append(sales, s)
		}
	}

	return sales
}

// AddSale appends a sale.
func (r *RepoMem) AddSale(ctx context.Context, s domain.Sale) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sales = append(r.sales, s)
}

// ListWithdrawalsByAuthor returns the withdrawals of the given author.
func (r *RepoMem) ListWithdrawalsByAuthor(ctx context.Context, authorID int32) []domain.Withdrawal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var withdrawals []domain.Withdrawal

	for _, w := range r.withdrawals {
		if w.AuthorID == authorID {
			withdrawals = append(withdrawals, w)
		}
	}

	return withdrawals
}

// CountWithdrawals returns the number of stored withdrawals.
func (r *RepoMem) CountWithdrawals(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.withdrawals)
}

// CreateWithdrawal appends a pending withdrawal and returns it.
// The id is the number of withdrawals stored before the append plus one.
func (r *RepoMem) CreateWithdrawal(ctx context.Context, authorID int32, amount decimal.Decimal, createdAt time.Time) domain.Withdrawal {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := domain.Withdrawal{
		ID:        int64(len(r.withdrawals)) + 1,
		AuthorID:  authorID,
		Amount:    amount,
		Status:    domain.WithdrawalStatusPending,
		CreatedAt: createdAt,
	}

	r.withdrawals = append(r.withdrawals, w)

	return w
}
