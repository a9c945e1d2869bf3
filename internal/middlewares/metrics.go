package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// RequestRecorder records served requests.
type RequestRecorder interface {
	RecordRequest(method, route string, status int, duration time.Duration)
}

// MetricsMiddleware records every request under its chi route pattern, so that
// path parameters do not explode label cardinality.
func MetricsMiddleware(rec RequestRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := newResponseWriter(w)

			next.ServeHTTP(rw, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			rec.RecordRequest(r.Method, route, rw.statusCode, time.Since(start))
		})
	}
}
