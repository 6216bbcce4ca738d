package domain

import (
	"strings"
)

const (
	// CoreLayerName is the layer index name of OpenEmbedded-Core.
	CoreLayerName = "openembedded-core"
	// CoreLayerAlias is the name bitbake reports for OpenEmbedded-Core.
	CoreLayerAlias = "meta"
)

// LocalRecipe is a recipe from a local build, queried against the catalog.
type LocalRecipe struct {
	Name string
	// RawVersion is the version as reported by the build, epoch included.
	RawVersion string
	// Version is the normalized version without epoch.
	Version string
	Epoch   string
	// Layer is the layer reported by bitbake-layers, possibly empty.
	Layer   string
	Release string
	License string
	// Files lists packaged files; only kept for the kernel recipe.
	Files []string

	// Match holds the resolution outcome once the recipe has been resolved.
	Match MatchResult
}

// NewLocalRecipe creates a LocalRecipe from a name and a raw version string.
func NewLocalRecipe(name, rawVersion string) *LocalRecipe {
	epoch, version := SplitEpoch(rawVersion)
	return &LocalRecipe{
		Name:       name,
		RawVersion: rawVersion,
		Version:    version,
		Epoch:      epoch,
	}
}

// FullID renders the recipe as layer/name/version.
func (r *LocalRecipe) FullID() string {
	return r.Layer + "/" + r.Name + "/" + r.Version
}

// FullVersion renders the version with its epoch prefix, if any.
func (r *LocalRecipe) FullVersion() string {
	if r.Epoch != "" {
		return r.Epoch + ":" + r.Version
	}
	return r.Version
}

// CleanVersion returns the version up to the first '+', '_' or '-'.
func (r *LocalRecipe) CleanVersion() string {
	if i := strings.IndexAny(r.Version, "+_-"); i >= 0 {
		return r.Version[:i]
	}
	return r.Version
}

// CPE renders a CPE 2.3 application string for the recipe. Recipes whose name
// contains kernelRecipe are reported as linux_kernel.
func (r *LocalRecipe) CPE(kernelRecipe string) string {
	name := r.Name
	if kernelRecipe != "" && strings.Contains(r.Name, kernelRecipe) {
		name = "linux_kernel"
	}
	ver, _, _ := strings.Cut(r.Version, "+")
	return "cpe:2.3:a:*:" + name + ":" + ver + ":*:*:*:*:*:*:*"
}

// MatchResult is the outcome of resolving one LocalRecipe.
// A zero MatchResult means no catalog recipe was selected.
type MatchResult struct {
	Recipe       *CatalogRecipe
	Layer        *Layer
	Branch       *Branch
	ExactVersion bool
	SameLayer    bool
}

// Found reports whether a catalog recipe was selected.
func (m MatchResult) Found() bool {
	return m.Recipe != nil
}

// CanonicalLayerName maps the bitbake alias "meta" to "openembedded-core".
func CanonicalLayerName(name string) string {
	if name == CoreLayerAlias {
		return CoreLayerName
	}
	return name
}

// SameLayer compares two layer names, treating "meta" and "openembedded-core" as one.
func SameLayer(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return CanonicalLayerName(a) == CanonicalLayerName(b)
}
