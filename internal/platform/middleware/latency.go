package middleware

import (
	"net/http"
	"strconv"
	"time"

	"contactregistry/internal/platform/metrics"
)

// Latency records request duration into the prometheus histogram. A nil
// Metrics receiver makes this a no-op, so test routers can skip registration.
func Latency(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			m.ObserveRequest(r.Method, strconv.Itoa(sw.status), time.Since(start).Seconds())
		})
	}
}
