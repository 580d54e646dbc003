package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Emails processed, labeled by the classification outcome.
	EmailProcessedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_processed_count",
			Help: "Total number of emails processed",
		},
		[]string{"sentiment", "priority"},
	)

	// Status transitions applied by operators.
	StatusUpdateCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_status_update_count",
			Help: "Total number of email status updates",
		},
		[]string{"status"},
	)

	// HTTP request latency (seconds).
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Key-value store operation latency (seconds).
	StoreOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kv_store_op_duration_seconds",
			Help:    "Key-value store operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12), // 0.1ms to ~400ms
		},
		[]string{"operation"},
	)
)

// IncrementEmailProcessed records a processed email by its classification.
func IncrementEmailProcessed(sentiment, priority string) {
	EmailProcessedCount.WithLabelValues(sentiment, priority).Inc()
}

// IncrementStatusUpdate records an operator status transition.
func IncrementStatusUpdate(status string) {
	StatusUpdateCount.WithLabelValues(status).Inc()
}

// RecordHTTPRequestDuration records an HTTP request's latency.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordStoreOpDuration records a store operation's latency.
func RecordStoreOpDuration(operation string, duration time.Duration) {
	StoreOpDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
