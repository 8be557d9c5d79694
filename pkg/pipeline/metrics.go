package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	namespaceDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "docsmith_namespace_duration_seconds",
			Help:    "Time taken to generate one namespace article",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	namespaceTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docsmith_namespace_total",
			Help: "Total number of namespace generation attempts",
		},
		[]string{"status"}, // complete, degraded or failed
	)
)
