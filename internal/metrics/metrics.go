package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	WebhooksReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhooks_received_total",
			Help: "Webhooks received per gateway and ingress outcome",
		},
		[]string{"gateway", "outcome"},
	)

	CallbacksProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "callbacks_processed_total",
			Help: "Callbacks consumed per callback type and saga outcome",
		},
		[]string{"callback_type", "outcome"},
	)

	CallbackDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "callback_processing_seconds",
			Help:    "Time spent applying one callback to the saga",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"callback_type"},
	)

	CallbackAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "callback_amounts",
			Help:    "Amounts carried by callbacks",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
		[]string{"currency"},
	)

	CallbacksMalformed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "callback_malformed_total",
			Help: "Callback transport messages that could not be decoded",
		},
	)

	ReconciliationChecked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reconciliation_checked_total",
			Help: "Stale entities re-queried against their gateway",
		},
		[]string{"entity", "outcome"},
	)

	DLQMessages = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dlq_messages_total",
			Help: "Messages parked on the dead letter topic",
		},
		[]string{"topic", "reason"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		WebhooksReceived,
		CallbacksProcessed,
		CallbackDuration,
		CallbackAmounts,
		CallbacksMalformed,
		ReconciliationChecked,
		DLQMessages,
	)
}
