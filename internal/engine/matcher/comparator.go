// Package matcher selects the catalog recipe that best explains a local recipe.
package matcher

import (
	"cmp"
	"strconv"

	"go.trai.ch/oematch/internal/core/domain"
	"go.trai.ch/oematch/internal/engine/catalog"
)

// Kind classifies how a catalog version relates to the local version.
// Higher kinds always outrank lower ones.
type Kind int

const (
	// KindNone marks a candidate that is not eligible at all.
	KindNone Kind = iota
	// KindClose marks an older numeric version within the distance budget.
	KindClose
	// KindBase marks a version whose base token (before '+' or '-') equals the local one.
	KindBase
	// KindExact marks a normalized version identical to the local one.
	KindExact
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindExact:
		return "exact"
	case KindBase:
		return "base"
	case KindClose:
		return "close"
	default:
		return "none"
	}
}

// Candidate is a catalog recipe scored against one local recipe.
type Candidate struct {
	Recipe       *domain.CatalogRecipe
	Layer        *domain.Layer
	Branch       *domain.Branch
	SortPriority int
	Kind         Kind

	triple      domain.Triple
	epochOK     bool
	epochGap    int
	rawVerLen   int
	normVersion string
}

// Comparator scores catalog recipes and orders them by preference.
// It only reads the index and is safe for concurrent use.
type Comparator struct {
	index  *catalog.Index
	budget domain.DistanceBudget
}

// NewComparator creates a Comparator over index using budget for close matches.
func NewComparator(index *catalog.Index, budget domain.DistanceBudget) *Comparator {
	return &Comparator{index: index, budget: budget}
}

// Score classifies recipe against local. ok is false when the recipe's
// layer-branch does not resolve to a known layer; such recipes never match.
func (c *Comparator) Score(local *domain.LocalRecipe, recipe *domain.CatalogRecipe) (cand Candidate, ok bool) {
	layer, ok := c.index.Layer(recipe.LayerBranch)
	if !ok {
		return Candidate{}, false
	}
	branch, _ := c.index.Branch(recipe.LayerBranch)

	epoch, version := domain.SplitEpoch(recipe.Version)
	if recipe.Epoch != "" {
		epoch = recipe.Epoch
	}

	cand = Candidate{
		Recipe:       recipe,
		Layer:        layer,
		Branch:       branch,
		SortPriority: c.index.SortPriority(recipe.LayerBranch),
		rawVerLen:    len(recipe.Version),
		normVersion:  version,
	}
	cand.epochOK, cand.epochGap = epochDistance(local.Epoch, epoch)

	localTriple, _, localOK := domain.Coerce(local.Version)
	candTriple, _, candOK := domain.Coerce(version)
	if candOK {
		cand.triple = candTriple
	}

	localBase := domain.BaseToken(local.Version)
	switch {
	case local.Version != "" && version == local.Version:
		cand.Kind = KindExact
	case localBase != "" && localBase == domain.BaseToken(version):
		cand.Kind = KindBase
	case localOK && candOK && c.budget.Allows(localTriple, candTriple):
		cand.Kind = KindClose
	default:
		cand.Kind = KindNone
	}

	return cand, true
}

// Compare orders two candidates scored against the same local recipe.
// It returns a negative number when a is preferred over b, a positive number
// when b is preferred, and 0 only for indistinguishable records.
//
// Order: kind; then for close matches the nearest version, the shorter raw
// version and the nearest epoch not above the local one; then the higher
// layer index preference and the lower branch sort priority; exact and base
// matches also use the epoch after layer and branch. Layer-branch id,
// recipe id, version and release settle whatever remains.
func (c *Comparator) Compare(a, b Candidate) int {
	if r := cmp.Compare(b.Kind, a.Kind); r != 0 {
		return r
	}

	if a.Kind == KindClose {
		if r := b.triple.Compare(a.triple); r != 0 {
			return r
		}
		if r := cmp.Compare(a.rawVerLen, b.rawVerLen); r != 0 {
			return r
		}
		if r := compareEpoch(a, b); r != 0 {
			return r
		}
		if r := compareLayerBranch(a, b); r != 0 {
			return r
		}
	} else {
		if r := compareLayerBranch(a, b); r != 0 {
			return r
		}
		if r := compareEpoch(a, b); r != 0 {
			return r
		}
	}

	return compareIdentity(a.Recipe, b.Recipe)
}

// Prefer decides whether candidate should replace incumbent as the best match
// for local. A nil incumbent is replaced by any eligible candidate. exact
// reports whether the candidate's version equals the local version.
func (c *Comparator) Prefer(local *domain.LocalRecipe, candidate, incumbent *domain.CatalogRecipe) (replace, exact bool) {
	cand, ok := c.Score(local, candidate)
	if !ok || cand.Kind == KindNone {
		return false, false
	}
	exact = cand.Kind == KindExact

	if incumbent == nil {
		return true, exact
	}
	inc, ok := c.Score(local, incumbent)
	if !ok || inc.Kind == KindNone {
		return true, exact
	}

	return c.Compare(cand, inc) < 0, exact
}

func compareLayerBranch(a, b Candidate) int {
	if r := cmp.Compare(b.Layer.IndexPreference, a.Layer.IndexPreference); r != 0 {
		return r
	}
	return cmp.Compare(a.SortPriority, b.SortPriority)
}

func compareEpoch(a, b Candidate) int {
	if a.epochOK != b.epochOK {
		if a.epochOK {
			return -1
		}
		return 1
	}
	if !a.epochOK {
		return 0
	}
	return cmp.Compare(a.epochGap, b.epochGap)
}

func compareIdentity(a, b *domain.CatalogRecipe) int {
	if r := cmp.Compare(a.LayerBranch, b.LayerBranch); r != 0 {
		return r
	}
	if r := cmp.Compare(a.ID, b.ID); r != 0 {
		return r
	}
	if r := cmp.Compare(a.Version, b.Version); r != 0 {
		return r
	}
	if r := cmp.Compare(a.Epoch, b.Epoch); r != 0 {
		return r
	}
	return cmp.Compare(a.Release, b.Release)
}

// epochDistance reports whether a candidate epoch is present, numeric and not
// above the local epoch, and by how much it trails. Without a local epoch no
// candidate qualifies, which leaves the epoch neutral in Compare.
func epochDistance(localEpoch, candEpoch string) (ok bool, gap int) {
	if localEpoch == "" || candEpoch == "" {
		return false, 0
	}
	l, err := strconv.Atoi(localEpoch)
	if err != nil {
		return false, 0
	}
	e, err := strconv.Atoi(candEpoch)
	if err != nil || e > l {
		return false, 0
	}
	return true, l - e
}
