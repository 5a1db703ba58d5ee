// Package metrics exposes Prometheus counters for the dialogue engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "proraahi",
		Name:      "fallbacks_total",
		Help:      "Provider calls replaced by a local fallback, by component and reason.",
	}, []string{"component", "reason"})

	intents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "proraahi",
		Name:      "intents_total",
		Help:      "Classified intents by source.",
	}, []string{"intent", "source"})

	stages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "proraahi",
		Name:      "workflow_results_total",
		Help:      "Workflow results by stage.",
	}, []string{"stage"})

	apologies = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "proraahi",
		Name:      "apologies_total",
		Help:      "Turns answered with the generic apology after an internal fault.",
	})
)

func RecordFallback(component, reason string) {
	fallbacks.WithLabelValues(component, reason).Inc()
}

func RecordIntent(intent, source string) {
	intents.WithLabelValues(intent, source).Inc()
}

func RecordStage(stage string) {
	stages.WithLabelValues(stage).Inc()
}

func RecordApology() {
	apologies.Inc()
}
