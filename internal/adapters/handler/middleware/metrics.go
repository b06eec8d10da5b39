package middleware

import (
	"net/http"
	"time"
)

const unmatchedRoute = "unmatched"

// HTTPMetrics receives one observation per served request.
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, code int, elapsed time.Duration)
}

// Metrics records request counts and latency labelled by the matched
// ServeMux pattern. It must wrap the mux directly: the pattern is read from
// the request after the mux has routed it.
func Metrics(m HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			route := r.Pattern
			if route == "" {
				route = unmatchedRoute
			}
			m.ObserveHTTPRequest(r.Method, route, rec.status, time.Since(start))
		})
	}
}

// Chain applies middlewares so that the first one listed is the outermost.
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
