package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "tractor_orders",
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Current number of in-flight HTTP requests.",
	})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tractor_orders",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latencies in seconds.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"method", "route", "status"})

	httpResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tractor_orders",
		Subsystem: "http",
		Name:      "response_size_bytes",
		Help:      "HTTP response body sizes in bytes.",
		Buckets:   prometheus.ExponentialBuckets(128, 4, 6),
	}, []string{"route", "code_class"})

	idempotentRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tractor_orders",
		Subsystem: "http",
		Name:      "idempotent_requests_total",
		Help:      "Requests carrying an Idempotency-Key by outcome.",
	}, []string{"outcome"})
)

// Metrics собирает задержки и размеры ответов по шаблону маршрута chi.
// Количество запросов берётся из _count гистограммы задержек.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := statusOf(ww)
		route := routePattern(r)

		httpRequestDuration.WithLabelValues(r.Method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
		httpResponseSize.WithLabelValues(route, strconv.Itoa(status/100)+"xx").Observe(float64(ww.BytesWritten()))
	})
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
		return rc.RoutePattern()
	}
	return "unknown"
}
