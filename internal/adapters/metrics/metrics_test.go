package metrics_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/oematch/internal/adapters/metrics"
	"go.trai.ch/oematch/internal/core/domain"
	"go.trai.ch/oematch/internal/core/ports"
)

var _ ports.Metrics = (*metrics.Recorder)(nil)

func observeFixture(r *metrics.Recorder) {
	recipe := &domain.CatalogRecipe{ID: 1, Name: "busybox"}
	r.ObserveMatch(domain.MatchResult{Recipe: recipe, ExactVersion: true, SameLayer: true})
	r.ObserveMatch(domain.MatchResult{Recipe: recipe, ExactVersion: true})
	r.ObserveMatch(domain.MatchResult{Recipe: recipe, SameLayer: true})
	r.ObserveMatch(domain.MatchResult{})

	r.ObserveRemediation(domain.RemediationReport{
		Eligible:   4,
		Remediated: 3,
		Skipped:    2,
		Failures:   []domain.RemediationFailure{{Err: errors.New("boom")}},
	})
}

func TestRecorder_Counters(t *testing.T) {
	t.Parallel()

	r := metrics.NewRecorder()
	observeFixture(r)

	expected := `
# HELP oematch_recipes_resolved_total Local recipes resolved against the layer index, by outcome.
# TYPE oematch_recipes_resolved_total counter
oematch_recipes_resolved_total{outcome="close"} 1
oematch_recipes_resolved_total{outcome="exact"} 2
oematch_recipes_resolved_total{outcome="none"} 1
# HELP oematch_recipes_layer_total Matched recipes by whether the catalog layer equals the local layer.
# TYPE oematch_recipes_layer_total counter
oematch_recipes_layer_total{layer="different"} 1
oematch_recipes_layer_total{layer="same"} 2
# HELP oematch_remediations_total Vulnerability records processed by remediation, by result.
# TYPE oematch_remediations_total counter
oematch_remediations_total{result="failed"} 1
oematch_remediations_total{result="remediated"} 3
oematch_remediations_total{result="skipped"} 2
`
	require.NoError(t, testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected),
		"oematch_recipes_resolved_total", "oematch_recipes_layer_total", "oematch_remediations_total"))
}

func TestRecorder_WriteFile(t *testing.T) {
	t.Parallel()

	r := metrics.NewRecorder()
	observeFixture(r)

	path := filepath.Join(t.TempDir(), "oematch.prom")
	require.NoError(t, r.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `oematch_recipes_resolved_total{outcome="exact"} 2`)
	assert.Contains(t, string(data), `oematch_remediations_total{result="remediated"} 3`)
}

func TestRecorder_WriteFileError(t *testing.T) {
	t.Parallel()

	r := metrics.NewRecorder()
	err := r.WriteFile(filepath.Join(t.TempDir(), "missing", "oematch.prom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrMetricsWriteFailed.Error())
}
