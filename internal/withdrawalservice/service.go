// Package withdrawalservice manages business logic layer of withdrawals.
package withdrawalservice

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/bookleaf/internal/domain"
)

// Repo provides data access layer interface needed by withdrawal service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package withdrawalservice
type Repo interface {
	GetAuthor(ctx context.Context, id int32) (domain.Author, error)
	CreateWithdrawal(ctx context.Context, authorID int32, amount decimal.Decimal, createdAt time.Time) domain.Withdrawal
}

// Calculator provides the balance figure needed by withdrawal service layer.
type Calculator interface {
	AuthorCurrentBalance(ctx context.Context, authorID int32) decimal.Decimal
}

// Service facilitates withdrawal service layer logic.
type Service struct {
	repo       Repo
	calculator Calculator
	now        func() time.Time

	mu    sync.Mutex
	locks map[int32]*sync.Mutex
}

// New returns withdrawal service struct to manage withdrawal bussines logic.
func New(r Repo, c Calculator) *Service {
	return &Service{
		repo:       r,
		calculator: c,
		now:        func() time.Time { return time.Now().UTC() },
		locks:      make(map[int32]*sync.Mutex),
	}
}

// authorLock returns the mutex serializing balance check and append for the author.
func (s *Service) authorLock(authorID int32) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[authorID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[authorID] = l
	}

	return l
}

// Create checks if the withdrawal request is valid and then records a pending withdrawal.
// A rejected request leaves the ledger unchanged.
func (s *Service) Create(ctx context.Context, authorID int32, amount decimal.Decimal) (domain.CreateWithdrawalResult, error) {
	l := zerolog.Ctx(ctx)

	if _, err := s.repo.GetAuthor(ctx, authorID); err != nil {
		l.Info().Err(err).Int32("author_id", authorID).Send()
		return domain.CreateWithdrawalResult{}, err
	}

	if amount.LessThan(domain.MinWithdrawalAmount) {
		l.Info().Str("amount", amount.String()).Msg("withdrawal below minimum")
		return domain.CreateWithdrawalResult{}, domain.ErrInvalidAmount
	}

	lock := s.authorLock(authorID)
	lock.Lock()
	defer lock.Unlock()

	balance := s.calculator.AuthorCurrentBalance(ctx, authorID)
	if amount.GreaterThan(balance) {
		l.Info().
			Str("amount", amount.String()).
			Str("balance", balance.String()).
			Msg("withdrawal exceeds balance")

		return domain.CreateWithdrawalResult{}, domain.ErrInsufficientBalance
	}

	w := s.repo.CreateWithdrawal(ctx, authorID, amount, s.now())

	result := domain.CreateWithdrawalResult{
		Withdrawal: w,
		NewBalance: s.calculator.AuthorCurrentBalance(ctx, authorID),
	}

	return result, nil
}
