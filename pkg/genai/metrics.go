package genai

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "docsmith_genai_request_duration_seconds",
			Help:    "Duration of generative-content calls including retries",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	requestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docsmith_genai_request_total",
			Help: "Total number of generative-content calls",
		},
		[]string{"status"}, // success, error or parse_error
	)

	retryTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "docsmith_genai_retry_total",
			Help: "Total number of rate-limit retries performed",
		},
	)
)
