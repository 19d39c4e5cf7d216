package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/a-osman/recipe-api/internal/health"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "recipeapi",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "recipeapi",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})

	// Auth metrics

	TokensIssuedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "recipeapi",
		Name:      "tokens_issued_total",
		Help:      "Total bearer tokens issued.",
	})

	UsersCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "recipeapi",
		Name:      "users_created_total",
		Help:      "Total user registrations.",
	})
)

func Register() {
	prometheus.MustRegister(
		HTTPRequestDuration,
		HTTPRequestsTotal,
		TokensIssuedTotal,
		UsersCreatedTotal,
	)
}

// NewServer exposes Prometheus metrics plus liveness and readiness probes on
// a port separate from the API.
func NewServer(addr string, checker *health.Checker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeResult(w, checker.Liveness(r.Context()), http.StatusOK)
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		result := checker.Readiness(r.Context())
		status := http.StatusOK
		if result.Status != "up" {
			status = http.StatusServiceUnavailable
		}
		writeResult(w, result, status)
	})

	return &http.Server{Addr: addr, Handler: mux}
}

func writeResult(w http.ResponseWriter, result health.HealthResult, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(result)
}
