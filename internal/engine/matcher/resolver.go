package matcher

import (
	"context"
	"fmt"
	"runtime"

	"go.trai.ch/oematch/internal/core/domain"
	"go.trai.ch/oematch/internal/core/ports"
	"go.trai.ch/oematch/internal/engine/catalog"
	"golang.org/x/sync/errgroup"
)

// Resolver resolves local recipes against a catalog index.
type Resolver struct {
	index  *catalog.Index
	cmp    *Comparator
	logger ports.Logger
}

// NewResolver creates a Resolver. A nil index yields domain.ErrIndexNotBuilt
// from every resolution.
func NewResolver(index *catalog.Index, budget domain.DistanceBudget, logger ports.Logger) *Resolver {
	return &Resolver{
		index:  index,
		cmp:    NewComparator(index, budget),
		logger: logger,
	}
}

// Resolve selects the best catalog recipe for local. The selection does not
// depend on the order in which the catalog lists recipes. A zero MatchResult
// means no candidate was eligible.
func (r *Resolver) Resolve(local *domain.LocalRecipe) (domain.MatchResult, error) {
	if r == nil || r.index == nil {
		return domain.MatchResult{}, domain.ErrIndexNotBuilt
	}

	var (
		best  Candidate
		found bool
	)
	for _, rec := range r.index.Recipes(local.Name) {
		cand, ok := r.cmp.Score(local, rec)
		if !ok {
			r.logger.Debug(fmt.Sprintf("recipe %s: catalog record %d has no layer for layerbranch %d",
				local.Name, rec.ID, rec.LayerBranch))
			continue
		}
		if cand.Kind == KindNone {
			continue
		}
		if !found || r.cmp.Compare(cand, best) < 0 {
			best, found = cand, true
		}
	}

	if !found {
		r.logger.Debug(fmt.Sprintf("recipe %s: no match in catalog (name known: %t)",
			local.FullID(), r.index.HasRecipe(local.Name)))
		return domain.MatchResult{}, nil
	}

	res := domain.MatchResult{
		Recipe:       best.Recipe,
		Layer:        best.Layer,
		Branch:       best.Branch,
		ExactVersion: best.Kind == KindExact,
		SameLayer:    domain.SameLayer(local.Layer, best.Layer.Name),
	}
	r.logger.Debug(fmt.Sprintf("recipe %s: %s match %s/%s/%s",
		local.FullID(), best.Kind, best.Layer.Name, best.Recipe.Name, best.Recipe.FullVersion()))

	return res, nil
}

// ResolveAll resolves every recipe in place, storing the outcome in its Match
// field. At most workers recipes are resolved at once; zero or less means one
// per CPU. Each recipe is written by exactly one goroutine.
func (r *Resolver) ResolveAll(ctx context.Context, recipes []*domain.LocalRecipe, workers int) error {
	if r == nil || r.index == nil {
		return domain.ErrIndexNotBuilt
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, rec := range recipes {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.Resolve(rec)
			if err != nil {
				return err
			}
			rec.Match = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
