package ledgerrepo

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/go-petr/bookleaf/internal/domain"
)

// ErrInvalidSeed indicates that the seed data breaks a ledger invariant.
var ErrInvalidSeed = errors.New("invalid seed")

//go:embed seed.json
var defaultSeed []byte

// Seed holds the initial content of the ledger.
type Seed struct {
	Authors     []domain.Author     `json:"authors"`
	Books       []domain.Book       `json:"books"`
	Sales       []domain.Sale       `json:"sales"`
	Withdrawals []domain.Withdrawal `json:"withdrawals"`
}

// DefaultSeed returns the data set bundled with the binary.
func DefaultSeed() (Seed, error) {
	return parseSeed(defaultSeed)
}

// LoadSeed reads the seed from the given JSON file.
// An empty path yields the default seed.
func LoadSeed(path string) (Seed, error) {
	if path == "" {
		return DefaultSeed()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}

	return parseSeed(b)
}

func parseSeed(b []byte) (Seed, error) {
	var s Seed

	if err := json.Unmarshal(b, &s); err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}

	return s, nil
}

// Validate checks id uniqueness, references between collections and value ranges.
// Withdrawal ids must run sequentially from 1.
func (s Seed) Validate() error {
	authors := make(map[int32]struct{}, len(s.Authors))

	for _, a := range s.Authors {
		if _, ok := authors[a.ID]; ok {
			return fmt.Errorf("%w: duplicate author id %d", ErrInvalidSeed, a.ID)
		}

		authors[a.ID] = struct{}{}
	}

	books := make(map[int32]struct{}, len(s.Books))

	for _, b := range s.Books {
		if _, ok := books[b.ID]; ok {
			return fmt.Errorf("%w: duplicate book id %d", ErrInvalidSeed, b.ID)
		}

		if _, ok := authors[b.AuthorID]; !ok {
			return fmt.Errorf("%w: book %d references unknown author %d", ErrInvalidSeed, b.ID, b.AuthorID)
		}

		if b.RoyaltyPerSale.IsNegative() {
			return fmt.Errorf("%w: book %d has negative royalty", ErrInvalidSeed, b.ID)
		}

		books[b.ID] = struct{}{}
	}

	for i, sale := range s.Sales {
		if _, ok := books[sale.BookID]; !ok {
			return fmt.Errorf("%w: sale %d references unknown book %d", ErrInvalidSeed, i, sale.BookID)
		}

		if sale.Quantity <= 0 {
			return fmt.Errorf("%w: sale %d has non-positive quantity", ErrInvalidSeed, i)
		}
	}

	// New withdrawal ids are derived from the collection length.
	for i, w := range s.Withdrawals {
		if w.ID != int64(i)+1 {
			return fmt.Errorf("%w: withdrawal id %d out of sequence", ErrInvalidSeed, w.ID)
		}

		if _, ok := authors[w.AuthorID]; !ok {
			return fmt.Errorf("%w: withdrawal %d references unknown author %d", ErrInvalidSeed, w.ID, w.AuthorID)
		}

		if w.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: withdrawal %d has non-positive amount", ErrInvalidSeed, w.ID)
		}
	}

	return nil
}
