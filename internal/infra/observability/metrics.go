package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the API.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	storageErrors   *prometheus.CounterVec
	authAttempts    *prometheus.CounterVec
	activitiesTotal *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "campaignforge_request_duration_seconds",
				Help:    "Duration of requests by operation.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		storageErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaignforge_storage_errors_total",
				Help: "Total unexpected errors from the storage backend.",
			},
			[]string{"operation"},
		),
		authAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaignforge_auth_attempts_total",
				Help: "Total login/register attempts by outcome.",
			},
			[]string{"result"},
		),
		activitiesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaignforge_activities_recorded_total",
				Help: "Total activity feed entries recorded, by type.",
			},
			[]string{"type"},
		),
	}
}

// RecordRequestDuration records the duration of an operation.
func (m *Metrics) RecordRequestDuration(operation string, d time.Duration) {
	m.requestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncrStorageError increments the storage error counter.
func (m *Metrics) IncrStorageError(operation string) {
	m.storageErrors.WithLabelValues(operation).Inc()
}

// IncrAuthAttempt increments the auth attempt counter ("success"/"failure").
func (m *Metrics) IncrAuthAttempt(result string) {
	m.authAttempts.WithLabelValues(result).Inc()
}

// IncrActivity increments the recorded-activity counter for a feed type.
func (m *Metrics) IncrActivity(activityType string) {
	m.activitiesTotal.WithLabelValues(activityType).Inc()
}
