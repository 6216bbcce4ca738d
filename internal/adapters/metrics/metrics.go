// Package metrics records resolution and remediation outcomes as Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/oematch/internal/core/domain"
	"go.trai.ch/zerr"
)

const namespace = "oematch"

// Recorder implements ports.Metrics on a private Prometheus registry.
type Recorder struct {
	registry     *prometheus.Registry
	resolved     *prometheus.CounterVec
	layers       *prometheus.CounterVec
	remediations *prometheus.CounterVec
}

// NewRecorder creates a Recorder with every counter registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		resolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recipes_resolved_total",
			Help:      "Local recipes resolved against the layer index, by outcome.",
		}, []string{"outcome"}),
		layers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recipes_layer_total",
			Help:      "Matched recipes by whether the catalog layer equals the local layer.",
		}, []string{"layer"}),
		remediations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remediations_total",
			Help:      "Vulnerability records processed by remediation, by result.",
		}, []string{"result"}),
	}
	r.registry.MustRegister(r.resolved, r.layers, r.remediations)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveMatch counts one resolution outcome.
func (r *Recorder) ObserveMatch(result domain.MatchResult) {
	switch {
	case !result.Found():
		r.resolved.WithLabelValues("none").Inc()
		return
	case result.ExactVersion:
		r.resolved.WithLabelValues("exact").Inc()
	default:
		r.resolved.WithLabelValues("close").Inc()
	}

	if result.SameLayer {
		r.layers.WithLabelValues("same").Inc()
	} else {
		r.layers.WithLabelValues("different").Inc()
	}
}

// ObserveRemediation adds the counts of a remediation run.
func (r *Recorder) ObserveRemediation(report domain.RemediationReport) {
	r.remediations.WithLabelValues("remediated").Add(float64(report.Remediated))
	r.remediations.WithLabelValues("skipped").Add(float64(report.Skipped))
	r.remediations.WithLabelValues("failed").Add(float64(report.Failed()))
}

// WriteFile writes the registry in text exposition format, replacing path atomically.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetricsWriteFailed.Error()), "path", path)
	}
	return nil
}
