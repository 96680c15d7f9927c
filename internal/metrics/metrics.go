// Package metrics provides Prometheus metrics for the supply-chain service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal tracks served HTTP requests by route and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scm",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status_code"},
	)

	// HTTPRequestDuration tracks served HTTP request latency
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "scm",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	// AnalyticsComputations tracks analytics computations by report and outcome
	AnalyticsComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scm",
			Subsystem: "analytics",
			Name:      "computations_total",
			Help:      "Total number of analytics computations",
		},
		[]string{"report", "status"},
	)

	// AnalyticsDuration tracks time spent reading snapshots and aggregating
	AnalyticsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "scm",
			Subsystem: "analytics",
			Name:      "duration_seconds",
			Help:      "Duration of analytics computations in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"report"},
	)

	// UnresolvedSKUs counts order-item SKUs that matched no product in the inventory store
	UnresolvedSKUs = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "scm",
			Subsystem: "analytics",
			Name:      "unresolved_skus_total",
			Help:      "Total number of order-item SKUs with no matching product",
		},
	)

	// KafkaPublishTotal tracks order events published
	KafkaPublishTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scm",
			Subsystem: "kafka",
			Name:      "publish_total",
			Help:      "Total number of events published",
		},
		[]string{"event_type", "status"},
	)

	// CacheLookups tracks product list cache hits and misses
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scm",
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Total number of product list cache lookups",
		},
		[]string{"result"},
	)

	// SeededRecords counts records created by the sample-data generator
	SeededRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "scm",
			Subsystem: "seed",
			Name:      "records_total",
			Help:      "Total number of sample records generated",
		},
		[]string{"entity"},
	)

	// StoreUp reports whether each store answered its last health ping
	StoreUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "scm",
			Subsystem: "store",
			Name:      "up",
			Help:      "1 when the store answered the last health ping",
		},
		[]string{"store"},
	)
)

func RecordHTTPRequest(method, route, statusCode string, durationSeconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(durationSeconds)
}

func RecordAnalytics(report, status string, durationSeconds float64) {
	AnalyticsComputations.WithLabelValues(report, status).Inc()
	AnalyticsDuration.WithLabelValues(report).Observe(durationSeconds)
}

func RecordUnresolvedSKUs(n int) {
	if n > 0 {
		UnresolvedSKUs.Add(float64(n))
	}
}

func RecordKafkaPublish(eventType, status string) {
	KafkaPublishTotal.WithLabelValues(eventType, status).Inc()
}

func RecordCacheLookup(hit bool) {
	if hit {
		CacheLookups.WithLabelValues("hit").Inc()
		return
	}
	CacheLookups.WithLabelValues("miss").Inc()
}

func RecordSeeded(entity string, n int) {
	if n > 0 {
		SeededRecords.WithLabelValues(entity).Add(float64(n))
	}
}

func SetStoreUp(store string, up bool) {
	v := 0.0
	if up {
		v = 1
	}
	StoreUp.WithLabelValues(store).Set(v)
}
