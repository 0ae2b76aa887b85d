package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates that the withdrawal amount is below the minimum.
	ErrInvalidAmount = errors.New("Minimum withdrawal amount is " + MinWithdrawalAmount.String())
	// ErrInsufficientBalance indicates that the author balance does not cover the withdrawal.
	ErrInsufficientBalance = errors.New("Withdrawal amount exceeds current balance")
	// ErrInvalidRequest indicates a malformed withdrawal request.
	ErrInvalidRequest = errors.New("Invalid request body")
)

// MinWithdrawalAmount is the smallest amount an author can withdraw, inclusive.
var MinWithdrawalAmount = decimal.NewFromInt(500)

// WithdrawalStatusPending is the status of every created withdrawal.
const WithdrawalStatusPending = "pending"

// Withdrawal holds an author payout request.
type Withdrawal struct {
	ID        int64           `json:"id"`
	AuthorID  int32           `json:"author_id"`
	Amount    decimal.Decimal `json:"amount"` // must be positive
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// CreateWithdrawalResult is the result of the withdrawal creation.
type CreateWithdrawalResult struct {
	Withdrawal Withdrawal      `json:"withdrawal"`
	NewBalance decimal.Decimal `json:"new_balance"`
}
