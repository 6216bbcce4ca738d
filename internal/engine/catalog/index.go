// Package catalog indexes a layer index snapshot for constant-time lookups.
package catalog

import (
	"go.trai.ch/oematch/internal/core/domain"
)

// Index is a read-only view over a catalog snapshot. It is never mutated after
// NewIndex returns and may be shared by any number of goroutines.
type Index struct {
	layers        map[int]*domain.Layer
	branches      map[int]*domain.Branch
	layerBranches map[int]*domain.LayerBranch
	recipes       map[string][]*domain.CatalogRecipe
}

// Stats reports the size of an Index.
type Stats struct {
	Layers        int `json:"layers"`
	Branches      int `json:"branches"`
	LayerBranches int `json:"layer_branches"`
	Recipes       int `json:"recipes"`
	RecipeNames   int `json:"recipe_names"`
}

// NewIndex builds the lookup tables for a catalog. Records sharing an id
// replace earlier ones. Recipes keep their snapshot order per name.
func NewIndex(c *domain.Catalog) *Index {
	ix := &Index{
		layers:        make(map[int]*domain.Layer, len(c.Layers)),
		branches:      make(map[int]*domain.Branch, len(c.Branches)),
		layerBranches: make(map[int]*domain.LayerBranch, len(c.LayerBranches)),
		recipes:       make(map[string][]*domain.CatalogRecipe),
	}

	for i := range c.Layers {
		ix.layers[c.Layers[i].ID] = &c.Layers[i]
	}
	for i := range c.Branches {
		ix.branches[c.Branches[i].ID] = &c.Branches[i]
	}
	for i := range c.LayerBranches {
		ix.layerBranches[c.LayerBranches[i].ID] = &c.LayerBranches[i]
	}
	for i := range c.Recipes {
		r := &c.Recipes[i]
		ix.recipes[r.Name] = append(ix.recipes[r.Name], r)
	}

	return ix
}

// Recipes returns every catalog recipe with the given name.
// The returned slice must not be modified.
func (ix *Index) Recipes(name string) []*domain.CatalogRecipe {
	return ix.recipes[name]
}

// HasRecipe reports whether any catalog recipe carries the name.
func (ix *Index) HasRecipe(name string) bool {
	_, ok := ix.recipes[name]
	return ok
}

// Layer resolves the layer owning a layer-branch.
func (ix *Index) Layer(layerBranchID int) (*domain.Layer, bool) {
	lb, ok := ix.layerBranches[layerBranchID]
	if !ok {
		return nil, false
	}
	l, ok := ix.layers[lb.Layer]
	return l, ok
}

// Branch resolves the branch of a layer-branch.
func (ix *Index) Branch(layerBranchID int) (*domain.Branch, bool) {
	lb, ok := ix.layerBranches[layerBranchID]
	if !ok {
		return nil, false
	}
	b, ok := ix.branches[lb.Branch]
	return b, ok
}

// SortPriority returns the effective sort priority of a layer-branch's branch,
// or domain.WorstSortPriority when the branch is unknown or has none.
func (ix *Index) SortPriority(layerBranchID int) int {
	b, ok := ix.Branch(layerBranchID)
	if !ok {
		return domain.WorstSortPriority
	}
	return b.SortPriority.Effective()
}

// Stats returns the number of records held by the index.
func (ix *Index) Stats() Stats {
	n := 0
	for _, rs := range ix.recipes {
		n += len(rs)
	}
	return Stats{
		Layers:        len(ix.layers),
		Branches:      len(ix.branches),
		LayerBranches: len(ix.layerBranches),
		Recipes:       n,
		RecipeNames:   len(ix.recipes),
	}
}
