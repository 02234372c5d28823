// Package metrics exposes Prometheus instrumentation for the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roicheck_evaluations_total",
			Help: "Total number of ROI evaluations by source and status",
		},
		[]string{"source", "status"},
	)

	EvaluationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "roicheck_evaluation_duration_seconds",
			Help: "Duration of ROI evaluation requests in seconds",
		},
	)

	RecommendedPlans = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roicheck_recommended_plans_total",
			Help: "Total number of plan recommendations by tier",
		},
		[]string{"plan"},
	)
)
