// Package authorservice manages business logic layer of author reports.
package authorservice

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/go-petr/bookleaf/internal/domain"
)

// Repo provides data access layer interface needed by author service layer.
type Repo interface {
	ListAuthors(ctx context.Context) []domain.Author
	GetAuthor(ctx context.Context, id int32) (domain.Author, error)
	ListBooksByAuthor(ctx context.Context, authorID int32) []domain.Book
	ListSales(ctx context.Context) []domain.Sale
	ListWithdrawalsByAuthor(ctx context.Context, authorID int32) []domain.Withdrawal
}

// Calculator provides earnings figures needed by author service layer.
type Calculator interface {
	TotalSold(ctx context.Context, bookID int32) int64
	TotalRoyalty(ctx context.Context, book domain.Book) decimal.Decimal
	AuthorTotalEarnings(ctx context.Context, authorID int32) decimal.Decimal
	AuthorCurrentBalance(ctx context.Context, authorID int32) decimal.Decimal
}

// Service facilitates author service layer logic.
type Service struct {
	repo       Repo
	calculator Calculator
}

// New returns author service struct to manage author reports.
func New(r Repo, c Calculator) *Service {
	return &Service{
		repo:       r,
		calculator: c,
	}
}

// List returns every author with earnings and balance in storage order.
func (s *Service) List(ctx context.Context) []domain.AuthorSummary {
	authors := s.repo.ListAuthors(ctx)
	res := make([]domain.AuthorSummary, 0, len(authors))

	for _, a := range authors {
		res = append(res, domain.AuthorSummary{
			ID:             a.ID,
			Name:           a.Name,
			TotalEarnings:  s.calculator.AuthorTotalEarnings(ctx, a.ID),
			CurrentBalance: s.calculator.AuthorCurrentBalance(ctx, a.ID),
		})
	}

	return res
}

// Get returns the author profile with per book royalty figures.
func (s *Service) Get(ctx context.Context, id int32) (domain.AuthorDetail, error) {
	author, err := s.repo.GetAuthor(ctx, id)
	if err != nil {
		return domain.AuthorDetail{}, err
	}

	books := s.repo.ListBooksByAuthor(ctx, id)
	summaries := make([]domain.BookSummary, 0, len(books))

	for _, b := range books {
		summaries = append(summaries, domain.BookSummary{
			ID:             b.ID,
			Title:          b.Title,
			RoyaltyPerSale: b.RoyaltyPerSale,
			TotalSold:      s.calculator.TotalSold(ctx, b.ID),
			TotalRoyalty:   s.calculator.TotalRoyalty(ctx, b),
		})
	}

	detail := domain.AuthorDetail{
		ID:             author.ID,
		Name:           author.Name,
		Email:          author.Email,
		TotalBooks:     len(books),
		TotalEarnings:  s.calculator.AuthorTotalEarnings(ctx, id),
		CurrentBalance: s.calculator.AuthorCurrentBalance(ctx, id),
		Books:          summaries,
	}

	return detail, nil
}

// ListSales returns sales of the author's books, most recent first.
func (s *Service) ListSales(ctx context.Context, authorID int32) ([]domain.AuthorSale, error) {
	if _, err := s.repo.GetAuthor(ctx, authorID); err != nil {
		return nil, err
	}

	books := make(map[int32]domain.Book)
	for _, b := range s.repo.ListBooksByAuthor(ctx, authorID) {
		books[b.ID] = b
	}

	res := []domain.AuthorSale{}

	for _, sale := range s.repo.ListSales(ctx) {
		b, ok := books[sale.BookID]
		if !ok {
			continue
		}

		res = append(res, domain.AuthorSale{
			BookTitle:     b.Title,
			Quantity:      sale.Quantity,
			RoyaltyEarned: decimal.NewFromInt32(sale.Quantity).Mul(b.RoyaltyPerSale),
			SaleDate:      sale.SaleDate,
		})
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].SaleDate.After(res[j].SaleDate)
	})

	return res, nil
}

// ListWithdrawals returns withdrawals of the author, most recent first.
func (s *Service) ListWithdrawals(ctx context.Context, authorID int32) ([]domain.Withdrawal, error) {
	if _, err := s.repo.GetAuthor(ctx, authorID); err != nil {
		return nil, err
	}

	res := append([]domain.Withdrawal{}, s.repo.ListWithdrawalsByAuthor(ctx, authorID)...)

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].CreatedAt.After(res[j].CreatedAt)
	})

	return res, nil
}
