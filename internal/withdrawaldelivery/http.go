// Package withdrawaldelivery manages delivery layer of withdrawals.
package withdrawaldelivery

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/bookleaf/internal/domain"
	"github.com/go-petr/bookleaf/pkg/errorspkg"
	"github.com/go-petr/bookleaf/pkg/web"
)

// CreatedMessage is returned with every successfully created withdrawal.
const CreatedMessage = "Withdrawal request created successfully"

// Service provides service layer interface needed by withdrawal delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package withdrawaldelivery
type Service interface {
	Create(ctx context.Context, authorID int32, amount decimal.Decimal) (domain.CreateWithdrawalResult, error)
}

// Handler facilitates withdrawal delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns withdrawal handler.
func NewHandler(ws Service) *Handler {
	return &Handler{service: ws}
}

// errAmountNotNumber reports an amount sent as a JSON string.
var errAmountNotNumber = errors.New("amount must be a JSON number")

// amountParam is a decimal amount that only accepts JSON number tokens.
type amountParam struct {
	decimal.Decimal
}

func (a *amountParam) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte(`"`)) {
		return errAmountNotNumber
	}

	return a.Decimal.UnmarshalJSON(data)
}

type createRequest struct {
	AuthorID *int32       `json:"author_id" binding:"required"`
	Amount   *amountParam `json:"amount" binding:"required"`
}

type createResponse struct {
	Message    string            `json:"message"`
	Withdrawal domain.Withdrawal `json:"withdrawal"`
	NewBalance decimal.Decimal   `json:"new_balance"`
}

// Create handles http request to create a withdrawal.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			gctx.JSON(http.StatusBadRequest, web.ErrorMsg(web.GetErrorMsg(ve[0])))

			return
		}

		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidRequest))

		return
	}

	result, err := h.service.Create(ctx, *req.AuthorID, req.Amount.Decimal)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAuthorNotFound):
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		case errors.Is(err, domain.ErrInvalidAmount),
			errors.Is(err, domain.ErrInsufficientBalance):
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		l.Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	l.Info().
		Int64("withdrawal_id", result.Withdrawal.ID).
		Int32("author_id", result.Withdrawal.AuthorID).
		Str("amount", result.Withdrawal.Amount.String()).
		Msg("withdrawal created")

	res := createResponse{
		Message:    CreatedMessage,
		Withdrawal: result.Withdrawal,
		NewBalance: result.NewBalance,
	}

	gctx.JSON(http.StatusCreated, res)
}
