package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/riskmanagement123/canamort"
	"github.com/riskmanagement123/canamort/export"
	"github.com/riskmanagement123/canamort/internal/observability"
)

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	result, ok := s.calculate(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleScheduleCSV(w http.ResponseWriter, r *http.Request) {
	result, ok := s.calculate(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "amortization-"+result.ID+".csv"))
	if err := export.WriteCSV(w, result.Schedule); err != nil {
		s.logger.Error("csv export failed", "error", err)
	}
}

func (s *Server) handleScheduleXLSX(w http.ResponseWriter, r *http.Request) {
	result, ok := s.calculate(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "amortization-"+result.ID+".xlsx"))
	if err := export.WriteWorkbook(w, result); err != nil {
		s.logger.Error("workbook export failed", "error", err)
	}
}

// calculate 公共路径：解析入参、跑计算、把失败写回错误包体
func (s *Server) calculate(w http.ResponseWriter, r *http.Request) (*canamort.CalculationResult, bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return nil, false
	}
	var input canamort.LoanInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, false
	}

	result, err := s.calculator.Calculate(r.Context(), input)
	if err != nil {
		observability.Calculations.WithLabelValues("rejected").Inc()
		observability.ValidationFailures.WithLabelValues(reason(err)).Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	observability.Calculations.WithLabelValues("ok").Inc()
	return result, true
}

type paymentRequest struct {
	Principal            canamort.Decimal `json:"principal"`
	AnnualInterestRate   canamort.Decimal `json:"annual_interest_rate"`
	TotalPayments        int              `json:"total_payments"`
	PaymentsPerYear      int              `json:"payments_per_year"`
	CompoundingFrequency int              `json:"compounding_frequency"`
}

type paymentResponse struct {
	Payment          canamort.Decimal `json:"payment"`
	PaymentFormatted string           `json:"payment_formatted"`
}

// handlePayment 只算每期还款额，供表单联动等轻量场景复用
func (s *Server) handlePayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.CompoundingFrequency == 0 {
		req.CompoundingFrequency = canamort.CompoundSemiAnnual
	}

	payment, err := canamort.PaymentAmount(req.Principal, req.AnnualInterestRate,
		req.TotalPayments, req.PaymentsPerYear, req.CompoundingFrequency)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, paymentResponse{
		Payment:          canamort.Money(payment),
		PaymentFormatted: canamort.FormatCurrency(payment),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Status: status, Message: message})
}

// reason 把校验错误折叠成有限的指标标签集合
func reason(err error) string {
	switch {
	case errors.Is(err, canamort.ErrLoanAmountRange):
		return "loan_amount"
	case errors.Is(err, canamort.ErrInterestRateRange):
		return "interest_rate"
	case errors.Is(err, canamort.ErrRateTermRange):
		return "rate_term"
	case errors.Is(err, canamort.ErrAmortizationRange):
		return "amortization"
	case errors.Is(err, canamort.ErrPaymentFreqRange):
		return "payment_frequency"
	case errors.Is(err, canamort.ErrCompoundFreqRange):
		return "compounding_frequency"
	case errors.Is(err, canamort.ErrFirstPaymentBefore), errors.Is(err, canamort.ErrMaturityNotAfter):
		return "date_order"
	default:
		return "other"
	}
}
