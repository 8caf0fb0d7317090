// Package metrics defines Prometheus metrics for device-quote.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dq"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HTTPRateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	})
)

// Health gauges, set by the metrics middleware on probe requests.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last liveness probe succeeded.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last readiness probe succeeded.",
	})
)

// Quote metrics.
var (
	QuoteRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quote_requests_total",
		Help:      "Total number of quote requests by type and outcome.",
	}, []string{"type", "outcome"})

	QuoteDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "quote_duration_seconds",
		Help:      "Duration of quote computations in seconds, store reads included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"type"})

	QuotedPrice = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "quoted_price_eur",
		Help:      "Distribution of bookable quoted prices in EUR.",
		Buckets:   prometheus.ExponentialBuckets(10, 2, 9), // 10 .. 2560
	}, []string{"type"})

	RepairMissingIssuesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "repair_missing_issue_total",
		Help:      "Selected repair issues that had no price row for the device.",
	}, []string{"issue"})
)

// Store metrics.
var (
	StoreReadTimeoutsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_read_timeouts_total",
		Help:      "Store reads that exceeded their deadline and degraded to empty.",
	}, []string{"family"})

	StoreReadErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_read_errors_total",
		Help:      "Store reads that failed and degraded to empty.",
	}, []string{"family"})

	StoreReadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_read_duration_seconds",
		Help:      "Duration of store reads in seconds.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"family"})
)

// Audit metrics.
var (
	AuditDevicesScanned = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_devices_scanned",
		Help:      "Catalog devices scanned by the last pricing audit.",
	})

	AuditDevicesWithoutPrice = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_devices_without_price",
		Help:      "Catalog devices with no repair or buyback rows in the last audit.",
	})

	AuditInactiveAnchors = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_inactive_anchors",
		Help:      "Devices with buyback rows but no activated pricing anchor.",
	})

	AuditContactItems = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_contact_for_price_items",
		Help:      "Repair rows priced at zero across the catalog.",
	})

	AuditRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_runs_total",
		Help:      "Total number of pricing audit runs by result.",
	}, []string{"result"})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notification_failures_total",
		Help:      "Total number of notification send failures.",
	})

	NotificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Duration of notification webhook calls in seconds.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5},
	})
)
