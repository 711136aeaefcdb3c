package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
// A nil *Metrics is valid and records nothing, which keeps tests free of
// global-registry collisions.
type Metrics struct {
	ProgramsCreated   prometheus.Counter
	StrategiesCreated prometheus.Counter
	RequestDuration   *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		ProgramsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "growthsphere_programs_created_total",
			Help: "Total number of organization programs created",
		}),
		StrategiesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "growthsphere_strategies_created_total",
			Help: "Total number of strategy profiles created",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "growthsphere_http_request_duration_seconds",
			Help:    "HTTP request latency by method, path, and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
	}
}

// IncrementProgramsCreated increments the programs created counter by 1.
func (m *Metrics) IncrementProgramsCreated() {
	if m == nil {
		return
	}
	m.ProgramsCreated.Inc()
}

// IncrementStrategiesCreated increments the strategies created counter by 1.
func (m *Metrics) IncrementStrategiesCreated() {
	if m == nil {
		return
	}
	m.StrategiesCreated.Inc()
}

// ObserveRequest records one request's latency.
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// statusRecorder captures the response status for latency labelling.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LatencyMiddleware records request latency for every route it wraps.
func LatencyMiddleware(m *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			m.ObserveRequest(r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}
