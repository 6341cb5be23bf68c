// Package metrics defines Prometheus metrics for the traverser.
package metrics

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

var (
	TraversalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "traverser_traversals_total",
			Help: "Total traced traversals by algorithm",
		},
		[]string{"algorithm"},
	)

	TraversalSteps = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "traverser_traversal_steps",
			Help:    "Recorded steps per traversal",
			Buckets: prometheus.ExponentialBuckets(8, 2, 8),
		},
		[]string{"algorithm"},
	)

	PlaybackSteps = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "traverser_playback_steps_total",
			Help: "Total steps applied by playback controllers",
		},
	)

	PlaybackTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "traverser_playback_transitions_total",
			Help: "Playback state transitions by target state",
		},
		[]string{"to"},
	)

	GraphsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "traverser_graphs_generated_total",
			Help: "Total generated graphs",
		},
	)
)

func init() {
	prometheus.MustRegister(
		TraversalsTotal, TraversalSteps,
		PlaybackSteps, PlaybackTransitions,
		GraphsGenerated,
	)
}

// ObserveTraversal records one finished traversal.
func ObserveTraversal(algorithm string, steps int) {
	TraversalsTotal.WithLabelValues(algorithm).Inc()
	TraversalSteps.WithLabelValues(algorithm).Observe(float64(steps))
}

// Handler exposes the default registry for hosts that serve HTTP.
func Handler() http.Handler {
	return promhttp.Handler()
}

// WriteText writes every traverser_* family of the default registry in
// the Prometheus text format.
func WriteText(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "traverser_") {
			continue
		}
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
