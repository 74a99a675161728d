package middleware

import (
	"net/http"
	"time"
)

// RequestObserver receives one call per finished request.
type RequestObserver interface {
	ObserveRequest(route string, code int, elapsed time.Duration)
}

// Metrics reports each request to obs, labelled by the ServeMux pattern that
// matched it. Requests no route matched are labelled "unmatched". The
// pattern is only visible when Metrics wraps the ServeMux directly.
func Metrics(obs RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			obs.ObserveRequest(route, rec.status, time.Since(start))
		})
	}
}

// Chain applies mws so that the first one is outermost.
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
