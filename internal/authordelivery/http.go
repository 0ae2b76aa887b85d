// Package authordelivery manages delivery layer of author reports.
package authordelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/bookleaf/internal/domain"
	"github.com/go-petr/bookleaf/pkg/errorspkg"
	"github.com/go-petr/bookleaf/pkg/web"
)

// Service provides service layer interface needed by author delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package authordelivery
type Service interface {
	List(ctx context.Context) []domain.AuthorSummary
	Get(ctx context.Context, id int32) (domain.AuthorDetail, error)
	ListSales(ctx context.Context, authorID int32) ([]domain.AuthorSale, error)
	ListWithdrawals(ctx context.Context, authorID int32) ([]domain.Withdrawal, error)
}

// Handler facilitates author delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns author handler.
func NewHandler(as Service) *Handler {
	return &Handler{service: as}
}

type uriRequest struct {
	ID int32 `uri:"id"`
}

// bindID reads the author id from the path. An id that is not an int32 cannot
// name an author, so it is answered as not found.
func bindID(gctx *gin.Context) (int32, bool) {
	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
		gctx.JSON(http.StatusNotFound, web.Error(domain.ErrAuthorNotFound))

		return 0, false
	}

	return req.ID, true
}

func respondError(gctx *gin.Context, err error) {
	l := zerolog.Ctx(gctx.Request.Context())

	if errors.Is(err, domain.ErrAuthorNotFound) {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusNotFound, web.Error(err))

		return
	}

	l.Error().Err(err).Send()
	gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
}

// List handles http request to list authors.
func (h *Handler) List(gctx *gin.Context) {
	gctx.JSON(http.StatusOK, h.service.List(gctx.Request.Context()))
}

// Get handles http request to get author details.
func (h *Handler) Get(gctx *gin.Context) {
	id, ok := bindID(gctx)
	if !ok {
		return
	}

	author, err := h.service.Get(gctx.Request.Context(), id)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, author)
}

// ListSales handles http request to list author sales.
func (h *Handler) ListSales(gctx *gin.Context) {
	id, ok := bindID(gctx)
	if !ok {
		return
	}

	sales, err := h.service.ListSales(gctx.Request.Context(), id)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, sales)
}

// ListWithdrawals handles http request to list author withdrawals.
func (h *Handler) ListWithdrawals(gctx *gin.Context) {
	id, ok := bindID(gctx)
	if !ok {
		return
	}

	withdrawals, err := h.service.ListWithdrawals(gctx.Request.Context(), id)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, withdrawals)
}
