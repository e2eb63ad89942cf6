package server

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskmanagement123/canamort"
)

func testServer() *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(canamort.NewCalculator(canamort.NewMemoryCache(), logger), logger)
}

func testInput() canamort.LoanInput {
	return canamort.LoanInput{
		LoanAmount:           decimal.NewFromInt(500_000),
		AnnualInterestRate:   decimal.NewFromFloat(5.25),
		RateTermMonths:       60,
		AmortizationMonths:   300,
		PaymentsPerYear:      canamort.FreqMonthly,
		CompoundingFrequency: canamort.CompoundSemiAnnual,
		StartDate:            time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		FirstPaymentDate:     time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC),
		RateTermMaturityDate: time.Date(2029, time.January, 15, 0, 0, 0, 0, time.UTC),
		PaymentType:          canamort.PaymentEnd,
	}
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleSchedule(t *testing.T) {
	h := testServer().Routes()
	rec := postJSON(t, h, "/v1/amortization/schedule", testInput())

	require.Equal(t, http.StatusOK, rec.Code)
	var result canamort.CalculationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, len(result.Schedule), result.Summary.NumberOfPayments)
	assert.Equal(t, 1, result.Schedule[0].PaymentNumber)
}

func TestHandleSchedule_InvalidInput(t *testing.T) {
	h := testServer().Routes()
	in := testInput()
	in.LoanAmount = decimal.NewFromInt(10)
	rec := postJSON(t, h, "/v1/amortization/schedule", in)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Contains(t, resp.Message, "loan amount")
}

func TestHandleSchedule_MethodNotAllowed(t *testing.T) {
	h := testServer().Routes()
	req := httptest.NewRequest(http.MethodGet, "/v1/amortization/schedule", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleScheduleCSV(t *testing.T) {
	h := testServer().Routes()
	rec := postJSON(t, h, "/v1/amortization/schedule.csv", testInput())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "payment_number")
}

func TestHandlePayment(t *testing.T) {
	h := testServer().Routes()
	rec := postJSON(t, h, "/v1/amortization/payment", map[string]any{
		"principal":            500000,
		"annual_interest_rate": 5.25,
		"total_payments":       300,
		"payments_per_year":    12,
		// compounding_frequency omitted: defaults to semi-annual
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp paymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 2979.7, resp.Payment.InexactFloat64(), 2.0)
	assert.Contains(t, resp.PaymentFormatted, "$")
}

func TestHandleHealth(t *testing.T) {
	h := testServer().Routes()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
