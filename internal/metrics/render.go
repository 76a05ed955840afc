package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	nodesSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docview",
			Name:      "render_nodes_skipped_total",
			Help:      "Nodes skipped during graph resolution, by reason",
		},
		[]string{"reason"},
	)

	staleSearchResponses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "docview",
			Name:      "search_stale_responses_total",
			Help:      "Search responses discarded as superseded",
		},
	)

	renderDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "docview",
			Name:      "render_page_duration_seconds",
			Help:      "Full page resolve+plan duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)
)

// RegisterRenderMetrics registers the render pipeline metrics explicitly (no init()).
func RegisterRenderMetrics() {
	prometheus.MustRegister(nodesSkipped)
	prometheus.MustRegister(staleSearchResponses)
	prometheus.MustRegister(renderDuration)
}

// ObserveNodeSkipped counts one skipped node.
func ObserveNodeSkipped(reason string) {
	nodesSkipped.WithLabelValues(reason).Inc()
}

// ObserveStaleResponse counts one discarded stale search response.
func ObserveStaleResponse() {
	staleSearchResponses.Inc()
}

// ObserveRenderDuration records one full page render.
func ObserveRenderDuration(d time.Duration) {
	renderDuration.Observe(d.Seconds())
}
