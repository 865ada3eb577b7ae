package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "store_service",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of created orders",
		},
	)

	orderTotalAmount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "store_service",
			Subsystem: "orders",
			Name:      "total_amount",
			Help:      "Histogram of order totals at creation or position replacement",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		},
	)

	orderStatusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "store_service",
			Subsystem: "orders",
			Name:      "status_changes_total",
			Help:      "Total number of order status changes by target status",
		},
		[]string{"status"},
	)

	orderRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "store_service",
			Subsystem: "orders",
			Name:      "rejected_total",
			Help:      "Total number of order writes rejected by business rules",
		},
		[]string{"operation"},
	)
)

var (
	reviewsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "store_service",
			Subsystem: "reviews",
			Name:      "created_total",
			Help:      "Total number of created product reviews",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersCreated,
		orderTotalAmount,
		orderStatusChanges,
		orderRejections,

		reviewsCreated,
	)
}
