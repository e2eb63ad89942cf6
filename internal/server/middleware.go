package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/riskmanagement123/canamort/internal/observability"
	"github.com/riskmanagement123/canamort/internal/tracing"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument 记录时延指标、访问日志，并为每个请求开 span
func (s *Server) instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		ctx := r.Context()
		if tracing.Tracer != nil {
			spanCtx, span := tracing.Tracer.Start(ctx, route)
			defer span.End()
			ctx = spanCtx
		}

		next.ServeHTTP(rec, r.WithContext(ctx))

		elapsed := time.Since(start)
		observability.RequestDuration.
			WithLabelValues(route, strconv.Itoa(rec.status)).
			Observe(elapsed.Seconds())
		s.logger.Debug("request handled",
			"route", route,
			"status", rec.status,
			"duration_ms", elapsed.Milliseconds(),
		)
	})
}
