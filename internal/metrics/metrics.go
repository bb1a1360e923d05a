// Package metrics provides Prometheus metrics for the live explorer.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codeview_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "codeview_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	togglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codeview_toggles_total",
			Help: "Directory toggles by resulting state",
		},
		[]string{"state"},
	)

	selectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "codeview_selections_total",
			Help: "Total file selections",
		},
	)

	treeNodes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "codeview_tree_nodes",
			Help: "Nodes in the loaded documentation tree",
		},
		[]string{"type"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordToggle records a directory toggle.
func RecordToggle(open bool) {
	state := "closed"
	if open {
		state = "open"
	}
	togglesTotal.WithLabelValues(state).Inc()
}

// RecordSelection records a file selection.
func RecordSelection() {
	selectionsTotal.Inc()
}

// SetTreeSize publishes the size of the loaded tree.
func SetTreeSize(dirs, files int) {
	treeNodes.WithLabelValues("directory").Set(float64(dirs))
	treeNodes.WithLabelValues("file").Set(float64(files))
}

// Middleware records request count and latency labelled by chi route
// pattern, so path parameters do not explode cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		RecordHTTPRequest(r.Method, routePattern(r), status, time.Since(start))
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
