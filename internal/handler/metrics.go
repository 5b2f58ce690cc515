package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	customersProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tractor_orders",
			Subsystem: "kafka_consumer",
			Name:      "customers_processed_total",
			Help:      "Total number of successfully processed customer messages",
		},
	)

	customersFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tractor_orders",
			Subsystem: "kafka_consumer",
			Name:      "customers_failed_total",
			Help:      "Total number of failed customer message processing attempts",
		},
	)

	customersDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tractor_orders",
			Subsystem: "kafka_consumer",
			Name:      "customers_dlq_total",
			Help:      "Total number of customer messages written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tractor_orders",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	messageProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "tractor_orders",
			Subsystem: "kafka_consumer",
			Name:      "message_processing_duration_seconds",
			Help:      "Histogram of customer message processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		customersProcessed,
		customersFailed,
		customersDLQ,
		commitErrors,
		messageProcessingDuration,
	)
}
