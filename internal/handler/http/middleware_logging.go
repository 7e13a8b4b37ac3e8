package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"calhub/internal/logger"
	"calhub/internal/metrics"
)

// withLogging emits one structured access-log line per request and feeds
// the HTTP request counters. Metrics are labelled with the chi route
// pattern rather than the raw URI to keep label cardinality bounded.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTP(method, route, lw.status, duration)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
