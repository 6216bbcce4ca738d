package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// WorstSortPriority is the sort priority assumed for branches without a usable value.
const WorstSortPriority = 999

// Layer is a named collection of recipes in the layer index.
// A higher IndexPreference marks a more canonical layer.
type Layer struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	IndexPreference int    `json:"index_preference"`
	Summary         string `json:"summary,omitempty"`
}

// Branch is a release line of the layer index. A lower sort priority is preferred.
type Branch struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	SortPriority SortPriority `json:"sort_priority"`
}

// LayerBranch links a layer to a branch; catalog recipes reference it.
type LayerBranch struct {
	ID     int `json:"id"`
	Layer  int `json:"layer"`
	Branch int `json:"branch"`
}

// CatalogRecipe is a recipe record from the layer index.
type CatalogRecipe struct {
	ID          int    `json:"id"`
	Name        string `json:"pn"`
	Version     string `json:"pv"`
	Epoch       string `json:"pe"`
	Release     string `json:"pr"`
	LayerBranch int    `json:"layerbranch"`
	Summary     string `json:"summary,omitempty"`
	License     string `json:"license,omitempty"`
}

// FullVersion renders the recipe version with its epoch prefix, if any.
func (r *CatalogRecipe) FullVersion() string {
	if r.Epoch != "" {
		return r.Epoch + ":" + r.Version
	}
	return r.Version
}

// Catalog is a complete, immutable snapshot of the layer index.
type Catalog struct {
	Layers        []Layer
	Branches      []Branch
	LayerBranches []LayerBranch
	Recipes       []CatalogRecipe
}

// SortPriority is a branch sort priority that may be absent or malformed in
// the source data. Only non-negative integers, given as JSON numbers or
// numeric strings, are valid.
type SortPriority struct {
	Value int
	Valid bool
}

// NewSortPriority returns a valid sort priority.
func NewSortPriority(v int) SortPriority {
	return SortPriority{Value: v, Valid: true}
}

// Effective returns the priority, or WorstSortPriority when it is not valid.
func (p SortPriority) Effective() int {
	if !p.Valid {
		return WorstSortPriority
	}
	return p.Value
}

// UnmarshalJSON accepts numbers, numeric strings and null. Anything else
// leaves the priority invalid rather than failing the whole document.
func (p *SortPriority) UnmarshalJSON(data []byte) error {
	*p = SortPriority{}

	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		s = string(raw)
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil
	}
	*p = NewSortPriority(n)
	return nil
}

// MarshalJSON writes the priority as a number, or null when invalid.
func (p SortPriority) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(p.Value)), nil
}
