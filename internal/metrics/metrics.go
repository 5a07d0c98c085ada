package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls counts tool invocations by outcome
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_calls_total",
			Help: "Total number of tool calls",
		},
		[]string{"tool_name", "status"},
	)

	// CalculationErrors counts rejected tool calls
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_errors_total",
			Help: "Number of failed plan calculations",
		},
		[]string{"tool_name", "error_type"},
	)

	// APICalls counts tool calls by lifecycle stage
	APICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_calls_total",
			Help: "Tool API calls",
		},
		[]string{"service", "endpoint", "status"},
	)

	// PresentationVariants counts rendered spotlight variants
	PresentationVariants = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "presentation_variant_total",
			Help: "Payment plan spotlights rendered per variant",
		},
		[]string{"variant"},
	)

	// ResolvedPlans counts resolved plans by shape
	ResolvedPlans = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resolved_plans_total",
			Help: "Payment plans resolved, by variable first installment and promotion",
		},
		[]string{"vfi", "promotion"},
	)
)
