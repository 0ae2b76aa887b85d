// Package test provides shared test helpers.
package test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-petr/bookleaf/internal/domain"
	"github.com/go-petr/bookleaf/internal/ledgerrepo"
	"github.com/go-petr/bookleaf/pkg/randompkg"
)

// RandomAuthor returns random author with the given id.
func RandomAuthor(id int32) domain.Author {
	return domain.Author{
		ID:    id,
		Name:  randompkg.Name(),
		Email: randompkg.Email(),
	}
}

// RandomBook returns random book with the given id, author and royalty rate.
func RandomBook(id, authorID int32, royaltyPerSale int64) domain.Book {
	return domain.Book{
		ID:             id,
		AuthorID:       authorID,
		Title:          randompkg.Title(),
		RoyaltyPerSale: decimal.NewFromInt(royaltyPerSale),
	}
}

// Sale returns sale of quantity units of the book at the given time.
func Sale(bookID, quantity int32, at time.Time) domain.Sale {
	return domain.Sale{BookID: bookID, Quantity: quantity, SaleDate: at}
}

// PendingWithdrawal returns pending withdrawal of the given amount.
func PendingWithdrawal(id int64, authorID int32, amount int64, at time.Time) domain.Withdrawal {
	return domain.Withdrawal{
		ID:        id,
		AuthorID:  authorID,
		Amount:    decimal.NewFromInt(amount),
		Status:    domain.WithdrawalStatusPending,
		CreatedAt: at,
	}
}

// SeedLedger returns in-memory ledger filled with the given seed.
func SeedLedger(t *testing.T, seed ledgerrepo.Seed) *ledgerrepo.RepoMem {
	t.Helper()

	repo, err := ledgerrepo.NewRepoMem(seed)
	if err != nil {
		t.Fatalf("ledgerrepo.NewRepoMem(%+v) returned error: %v", seed, err)
	}

	return repo
}
