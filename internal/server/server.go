// Package server exposes the amortization engine over HTTP. It is thin
// glue: validated input in, computed schedule out, no persistence.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/riskmanagement123/canamort"
)

type Server struct {
	calculator *canamort.Calculator
	logger     *slog.Logger
}

func New(calculator *canamort.Calculator, logger *slog.Logger) *Server {
	return &Server{calculator: calculator, logger: logger}
}

// Routes 注册全部路由并套上指标/访问日志中间件
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/v1/amortization/schedule",
		s.instrument("schedule", http.HandlerFunc(s.handleSchedule)))
	mux.Handle("/v1/amortization/schedule.csv",
		s.instrument("schedule_csv", http.HandlerFunc(s.handleScheduleCSV)))
	mux.Handle("/v1/amortization/schedule.xlsx",
		s.instrument("schedule_xlsx", http.HandlerFunc(s.handleScheduleXLSX)))
	mux.Handle("/v1/amortization/payment",
		s.instrument("payment", http.HandlerFunc(s.handlePayment)))

	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

// HTTPServer 包一层标准超时配置
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
