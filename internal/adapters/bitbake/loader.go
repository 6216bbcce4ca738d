// Package bitbake builds the local recipe inventory from bitbake build outputs.
package bitbake

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"go.trai.ch/oematch/internal/core/domain"
	"go.trai.ch/oematch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.InventoryLoader over license.manifest,
// task-depends.dot and `bitbake-layers show-recipes` output files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load builds the inventory. A license manifest or a task-depends file is
// required; the manifest defines the recipe set when both are given.
func (l *Loader) Load(ctx context.Context, src domain.InventorySources) ([]*domain.LocalRecipe, error) {
	if src.LicenseManifest == "" && src.TaskDepends == "" {
		return nil, domain.ErrInventoryMissingSource
	}
	if src.TaskDepends != "" && src.Target == "" {
		return nil, domain.ErrMissingTarget
	}

	kernel := src.KernelRecipe
	if kernel == "" {
		kernel = domain.DefaultKernelRecipe
	}

	var recipes []*domain.LocalRecipe
	if src.LicenseManifest != "" {
		err := readFile(src.LicenseManifest, func(r io.Reader) error {
			var err error
			recipes, err = parseManifest(r, kernel)
			return err
		})
		if err != nil {
			return nil, err
		}
		l.logger.Info(fmt.Sprintf("%d recipes found in %s", len(recipes), src.LicenseManifest))
	}

	if src.TaskDepends != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var err error
		recipes, err = l.applyTaskDepends(src, recipes)
		if err != nil {
			return nil, err
		}
	}

	if src.LayersReport != "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var reports map[string]layerReport
		err := readFile(src.LayersReport, func(r io.Reader) error {
			var err error
			reports, err = parseLayerReport(r)
			return err
		})
		if err != nil {
			return nil, err
		}
		attached := applyLayerReport(recipes, reports)
		l.logger.Info(fmt.Sprintf("layers attached to %d of %d recipes", attached, len(recipes)))
	}

	if len(recipes) == 0 {
		return nil, domain.ErrInventoryEmpty
	}

	layers := lo.Uniq(lo.FilterMap(recipes, func(r *domain.LocalRecipe, _ int) (string, bool) {
		return r.Layer, r.Layer != ""
	}))
	if len(layers) > 0 {
		l.logger.Debug("layers in build: " + strings.Join(layers, ", "))
	}

	return recipes, nil
}

// applyTaskDepends creates the recipe set from the target's direct
// dependencies, or only attaches releases when recipes already exist.
func (l *Loader) applyTaskDepends(src domain.InventorySources, recipes []*domain.LocalRecipe) ([]*domain.LocalRecipe, error) {
	var graph taskGraph
	err := readFile(src.TaskDepends, func(r io.Reader) error {
		var err error
		graph, err = parseTaskDepends(r)
		return err
	})
	if err != nil {
		return nil, err
	}

	children, ok := graph.children(src.Target)
	if !ok {
		return nil, zerr.With(zerr.With(domain.ErrTargetNotFound, "target", src.Target), "path", src.TaskDepends)
	}

	if len(recipes) == 0 {
		for _, name := range children {
			node, ok := graph[name]
			if !ok {
				continue
			}
			rec := domain.NewLocalRecipe(name, node.version)
			rec.Release = node.release
			recipes = append(recipes, rec)
		}
		l.logger.Info(fmt.Sprintf("%d recipes found in %s for %s", len(recipes), src.TaskDepends, src.Target))
		return recipes, nil
	}

	byName := lo.KeyBy(recipes, func(r *domain.LocalRecipe) string { return r.Name })
	for _, name := range children {
		node, ok := graph[name]
		if !ok {
			continue
		}
		if rec, ok := byName[name]; ok {
			rec.Release = node.release
		}
	}
	return recipes, nil
}

func readFile(path string, parse func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInventoryReadFailed.Error()), "path", path)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := parse(f); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInventoryReadFailed.Error()), "path", path)
	}
	return nil
}
