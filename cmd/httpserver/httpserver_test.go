package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/bookleaf/internal/domain"
	"github.com/go-petr/bookleaf/internal/ledgerrepo"
	"github.com/go-petr/bookleaf/internal/test"
	"github.com/go-petr/bookleaf/pkg/configpkg"
	"github.com/go-petr/bookleaf/pkg/web"
)

var (
	t1 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	t2 = t1.Add(time.Hour)
	t3 = t2.Add(time.Hour)
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testSeed() ledgerrepo.Seed {
	return ledgerrepo.Seed{
		Authors: []domain.Author{test.RandomAuthor(1), test.RandomAuthor(2), test.RandomAuthor(3)},
		Books: []domain.Book{
			{ID: 1, AuthorID: 1, Title: "Ten Per Copy", RoyaltyPerSale: decimal.NewFromInt(10)},
			{ID: 2, AuthorID: 2, Title: "Thousand Per Copy", RoyaltyPerSale: decimal.NewFromInt(1000)},
		},
		Sales: []domain.Sale{
			{BookID: 1, Quantity: 3, SaleDate: t1},
			{BookID: 2, Quantity: 3, SaleDate: t1},
			{BookID: 1, Quantity: 5, SaleDate: t2},
			{BookID: 2, Quantity: 5, SaleDate: t3},
		},
		Withdrawals: []domain.Withdrawal{
			test.PendingWithdrawal(1, 2, 1000, t2),
			test.PendingWithdrawal(2, 2, 500, t1),
			test.PendingWithdrawal(3, 2, 700, t3),
		},
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	ledger := test.SeedLedger(t, testSeed())

	server, err := New(ledger, zerolog.Nop(), configpkg.Config{Port: configpkg.DefaultPort})
	require.NoError(t, err)

	return server
}

func do(t *testing.T, server *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = bytes.NewReader([]byte(body))
	}

	req, err := http.NewRequest(method, path, r)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(v))
}

func balanceOf(t *testing.T, server *Server, id string) decimal.Decimal {
	t.Helper()

	recorder := do(t, server, http.MethodGet, "/authors/"+id, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var detail domain.AuthorDetail
	decode(t, recorder, &detail)

	return detail.CurrentBalance
}

func TestLiveness(t *testing.T) {
	server := newTestServer(t)

	recorder := do(t, server, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, LivenessMessage, recorder.Body.String())
	require.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
	require.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestListAuthors(t *testing.T) {
	server := newTestServer(t)
	seed := testSeed()

	recorder := do(t, server, http.MethodGet, "/authors", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	first := recorder.Body.String()

	var got []domain.AuthorSummary
	require.NoError(t, json.Unmarshal([]byte(first), &got))
	require.Len(t, got, 3)

	for i, a := range got {
		require.Equal(t, seed.Authors[i].ID, a.ID)
		require.Equal(t, seed.Authors[i].Name, a.Name)
	}

	require.True(t, decimal.NewFromInt(80).Equal(got[0].TotalEarnings))
	require.True(t, decimal.NewFromInt(80).Equal(got[0].CurrentBalance))
	require.True(t, decimal.NewFromInt(8000).Equal(got[1].TotalEarnings))
	require.True(t, decimal.NewFromInt(5800).Equal(got[1].CurrentBalance))
	require.True(t, got[2].TotalEarnings.IsZero())
	require.True(t, got[2].CurrentBalance.IsZero())

	second := do(t, server, http.MethodGet, "/authors", "").Body.String()
	require.Equal(t, first, second)
}

func TestGetAuthor(t *testing.T) {
	server := newTestServer(t)
	seed := testSeed()

	recorder := do(t, server, http.MethodGet, "/authors/1", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var got domain.AuthorDetail
	decode(t, recorder, &got)

	want := domain.AuthorDetail{
		ID:             1,
		Name:           seed.Authors[0].Name,
		Email:          seed.Authors[0].Email,
		TotalBooks:     1,
		TotalEarnings:  decimal.NewFromInt(80),
		CurrentBalance: decimal.NewFromInt(80),
		Books: []domain.BookSummary{
			{ID: 1, Title: "Ten Per Copy", RoyaltyPerSale: decimal.NewFromInt(10), TotalSold: 8, TotalRoyalty: decimal.NewFromInt(80)},
		},
	}

	compareDecimals := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	if diff := cmp.Diff(want, got, compareDecimals); diff != "" {
		t.Errorf("res mismatch (-want +got):\n%s", diff)
	}

	recorder = do(t, server, http.MethodGet, "/authors/3", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), `"books":[]`)
	require.Contains(t, recorder.Body.String(), `"total_earnings":0`)
}

func TestUnknownAuthor(t *testing.T) {
	server := newTestServer(t)

	paths := []string{
		"/authors/999", "/authors/999/sales", "/authors/999/withdrawals",
		"/authors/abc", "/authors/abc/sales", "/authors/abc/withdrawals",
		"/authors/99999999999",
	}

	for _, path := range paths {
		recorder := do(t, server, http.MethodGet, path, "")
		require.Equal(t, http.StatusNotFound, recorder.Code, path)
		require.JSONEq(t, `{"error":"Author not found"}`, recorder.Body.String(), path)
	}

	recorder := do(t, server, http.MethodPost, "/withdrawals", `{"author_id": 999, "amount": 600}`)
	require.Equal(t, http.StatusNotFound, recorder.Code)
	require.JSONEq(t, `{"error":"Author not found"}`, recorder.Body.String())
}

func TestListSales(t *testing.T) {
	server := newTestServer(t)

	recorder := do(t, server, http.MethodGet, "/authors/1/sales", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var got []domain.AuthorSale
	decode(t, recorder, &got)

	require.Len(t, got, 2)
	require.Equal(t, int32(5), got[0].Quantity)
	require.True(t, decimal.NewFromInt(50).Equal(got[0].RoyaltyEarned))
	require.True(t, t2.Equal(got[0].SaleDate))
	require.Equal(t, "Ten Per Copy", got[0].BookTitle)
	require.Equal(t, int32(3), got[1].Quantity)
	require.True(t, t1.Equal(got[1].SaleDate))

	recorder = do(t, server, http.MethodGet, "/authors/3/sales", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "[]", recorder.Body.String())
}

func TestCreateWithdrawalBelowMinimum(t *testing.T) {
	server := newTestServer(t)

	for _, amount := range []string{"400", "80", "499.99"} {
		recorder := do(t, server, http.MethodPost, "/withdrawals", `{"author_id": 1, "amount": `+amount+`}`)
		require.Equal(t, http.StatusBadRequest, recorder.Code)
		require.JSONEq(t, `{"error":"Minimum withdrawal amount is 500"}`, recorder.Body.String())
	}

	require.True(t, decimal.NewFromInt(80).Equal(balanceOf(t, server, "1")))
	require.Equal(t, 3, server.Ledger.CountWithdrawals(context.Background()))
}

func TestCreateWithdrawalWholeBalance(t *testing.T) {
	server := newTestServer(t)

	recorder := do(t, server, http.MethodPost, "/withdrawals", `{"author_id": 2, "amount": 5800}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var res struct {
		Message    string            `json:"message"`
		Withdrawal domain.Withdrawal `json:"withdrawal"`
		NewBalance decimal.Decimal   `json:"new_balance"`
	}
	decode(t, recorder, &res)

	require.Equal(t, "Withdrawal request created successfully", res.Message)
	require.Equal(t, int64(4), res.Withdrawal.ID)
	require.Equal(t, int32(2), res.Withdrawal.AuthorID)
	require.Equal(t, domain.WithdrawalStatusPending, res.Withdrawal.Status)
	require.True(t, decimal.NewFromInt(5800).Equal(res.Withdrawal.Amount))
	require.WithinDuration(t, time.Now(), res.Withdrawal.CreatedAt, time.Minute)
	require.True(t, res.NewBalance.IsZero())

	recorder = do(t, server, http.MethodPost, "/withdrawals", `{"author_id": 2, "amount": 500}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.JSONEq(t, `{"error":"Withdrawal amount exceeds current balance"}`, recorder.Body.String())

	require.True(t, balanceOf(t, server, "2").IsZero())
	require.Equal(t, 4, server.Ledger.CountWithdrawals(context.Background()))
}

func TestCreateWithdrawalInvalidBody(t *testing.T) {
	server := newTestServer(t)

	bodies := []string{
		`{"author_id": 2}`,
		`{"amount": 600}`,
		`{"author_id": 2, "amount": "much"}`,
		`{"author_id": 2, "amount": "600"}`,
		`not json`,
	}

	for _, body := range bodies {
		recorder := do(t, server, http.MethodPost, "/withdrawals", body)
		require.Equal(t, http.StatusBadRequest, recorder.Code, body)

		var res web.JSONError
		decode(t, recorder, &res)
		require.NotEmpty(t, res.Error, body)
	}

	require.Equal(t, 3, server.Ledger.CountWithdrawals(context.Background()))
}

func TestListWithdrawals(t *testing.T) {
	server := newTestServer(t)

	recorder := do(t, server, http.MethodGet, "/authors/2/withdrawals", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var got []domain.Withdrawal
	decode(t, recorder, &got)

	require.Len(t, got, 3)
	require.True(t, t3.Equal(got[0].CreatedAt))
	require.True(t, t2.Equal(got[1].CreatedAt))
	require.True(t, t1.Equal(got[2].CreatedAt))

	recorder = do(t, server, http.MethodPost, "/withdrawals", `{"author_id": 2, "amount": 500}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = do(t, server, http.MethodGet, "/authors/2/withdrawals", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	got = nil
	decode(t, recorder, &got)

	require.Len(t, got, 4)
	require.Equal(t, int64(4), got[0].ID)
	require.Equal(t, int64(3), got[1].ID)

	recorder = do(t, server, http.MethodGet, "/authors/1/withdrawals", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "[]", recorder.Body.String())
}

func TestPreflight(t *testing.T) {
	server := newTestServer(t)

	recorder := do(t, server, http.MethodOptions, "/withdrawals", "")
	require.Equal(t, http.StatusNoContent, recorder.Code)
	require.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}
