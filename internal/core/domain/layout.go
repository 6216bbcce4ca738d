package domain

import "path/filepath"

const (
	// OematchDirName is the name of the internal workspace directory.
	OematchDirName = ".oematch"

	// CatalogDirName is the name of the layer index snapshot directory.
	CatalogDirName = "catalog"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "oematch.yaml"

	// SnapshotIndexFile records the digest of every cached catalog file.
	SnapshotIndexFile = "index.json"

	// DefaultLayerIndexURL is the public OpenEmbedded layer index API.
	DefaultLayerIndexURL = "https://layers.openembedded.org/layerindex/api"

	// DefaultKernelRecipe is the recipe name used for kernel CPE and FILES handling.
	DefaultKernelRecipe = "linux-yocto"

	// DefaultTokenEnv is the environment variable holding the Black Duck API token.
	DefaultTokenEnv = "BLACKDUCK_API_TOKEN"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultOematchPath returns the default root directory for oematch metadata.
func DefaultOematchPath() string {
	return OematchDirName
}

// DefaultCatalogCachePath returns the default path for cached layer index data.
// It joins .oematch and catalog.
func DefaultCatalogCachePath() string {
	return filepath.Join(OematchDirName, CatalogDirName)
}
