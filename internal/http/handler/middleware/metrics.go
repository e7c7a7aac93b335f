package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestObserver . RequestObserver
type RequestObserver interface {
	ObserveRequest(route, method string, status int, elapsed time.Duration)
}

type MetricsMiddleware struct {
	observer RequestObserver
}

func NewMetricsMiddleware(observer RequestObserver) *MetricsMiddleware {
	return &MetricsMiddleware{
		observer: observer,
	}
}

func (m *MetricsMiddleware) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		m.observer.ObserveRequest(routePattern(r), r.Method, rec.status, time.Since(start))
	})
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if patt := rc.RoutePattern(); patt != "" {
			return patt
		}
	}
	// unmatched routes share one label
	return "unmatched"
}
