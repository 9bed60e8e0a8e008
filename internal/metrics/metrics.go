package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeFailure = "failure"
)

var (
	GenerationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hrms_generation_requests_total",
			Help: "Total number of calls to the text generation service",
		},
		[]string{"operation", "outcome"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hrms_generation_duration_seconds",
			Help:    "Duration of text generation calls in seconds",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
		},
		[]string{"operation"},
	)

	SearchDegradations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hrms_search_degraded_total",
			Help: "Search interpretations that fell back to an empty suggestion list",
		},
	)

	ChatSendsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hrms_chat_sends_rejected_total",
			Help: "Chat messages rejected before reaching the generation service",
		},
		[]string{"reason"},
	)
)
