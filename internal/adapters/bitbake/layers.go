package bitbake

import (
	"bufio"
	"io"
	"strings"

	"go.trai.ch/oematch/internal/core/domain"
)

const maxLineSize = 1024 * 1024

// layerReport is one recipe entry of a `bitbake-layers show-recipes` listing.
type layerReport struct {
	layer   string
	version string
}

// parseLayerReport reads `bitbake-layers show-recipes` output. Everything up
// to the "=== Matching recipes: ===" banner is ignored. After it, a line
// ending in ':' names a recipe and the following line holds its layer and
// version. Only the first report per recipe is kept.
func parseLayerReport(r io.Reader) (map[string]layerReport, error) {
	reports := make(map[string]layerReport)

	var (
		started bool
		recipe  string
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !started {
			started = strings.HasSuffix(line, ": ===")
			continue
		}

		if strings.HasSuffix(line, ":") {
			recipe, _, _ = strings.Cut(line, ":")
			continue
		}
		if recipe == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) >= 2 {
			if _, dup := reports[recipe]; !dup {
				reports[recipe] = layerReport{layer: fields[0], version: fields[1]}
			}
		}
		recipe = ""
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

// applyLayerReport attaches layers to known recipes. When a recipe already has
// a version, the layer (and a missing epoch) is only attached if that version
// is part of the reported one. Recipes without a version adopt the reported
// version and epoch.
func applyLayerReport(recipes []*domain.LocalRecipe, reports map[string]layerReport) int {
	attached := 0
	for _, rec := range recipes {
		rep, ok := reports[rec.Name]
		if !ok {
			continue
		}

		epoch, version := domain.SplitEpoch(rep.version)
		if rec.Version != "" {
			if !strings.Contains(version, rec.Version) {
				continue
			}
			if rec.Epoch == "" {
				rec.Epoch = epoch
			}
		} else {
			rec.RawVersion = rep.version
			rec.Version = version
			rec.Epoch = epoch
		}
		rec.Layer = rep.layer
		attached++
	}
	return attached
}
