package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidDistanceBudget is returned when a version distance is not MAJOR.MINOR.PATCH with numeric parts.
	ErrInvalidDistanceBudget = zerr.New("invalid version distance, expected MAJOR.MINOR.PATCH with numeric values")

	// ErrIndexNotBuilt is returned when resolution is attempted without a catalog index.
	ErrIndexNotBuilt = zerr.New("catalog index has not been built")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrCatalogFetchFailed is returned when a layer index API request fails.
	ErrCatalogFetchFailed = zerr.New("failed to fetch layer index data")

	// ErrCatalogParseFailed is returned when a layer index response cannot be decoded.
	ErrCatalogParseFailed = zerr.New("failed to parse layer index data")

	// ErrCatalogUnavailable is returned in offline mode when no cached snapshot exists.
	ErrCatalogUnavailable = zerr.New("layer index data not cached and offline mode is enabled")

	// ErrSnapshotReadFailed is returned when a cached catalog file cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read catalog snapshot")

	// ErrSnapshotWriteFailed is returned when a catalog file cannot be written to the cache.
	ErrSnapshotWriteFailed = zerr.New("failed to write catalog snapshot")

	// ErrSnapshotCorrupt is returned when a cached catalog file does not match its recorded digest.
	ErrSnapshotCorrupt = zerr.New("catalog snapshot is corrupt")

	// ErrSnapshotClearFailed is returned when the catalog cache cannot be removed.
	ErrSnapshotClearFailed = zerr.New("failed to remove catalog snapshot")

	// ErrInventoryReadFailed is returned when a bitbake output file cannot be read.
	ErrInventoryReadFailed = zerr.New("failed to read build inventory file")

	// ErrInventoryMissingSource is returned when neither a license manifest nor a task-depends file is given.
	ErrInventoryMissingSource = zerr.New("a license manifest or task-depends file is required")

	// ErrInventoryEmpty is returned when the inputs yield no recipes.
	ErrInventoryEmpty = zerr.New("no recipes found in build inventory")

	// ErrTargetNotFound is returned when the target recipe is absent from task-depends.dot.
	ErrTargetNotFound = zerr.New("target not found in task-depends file")

	// ErrMissingTarget is returned when a task-depends file is given without a target.
	ErrMissingTarget = zerr.New("a target is required to process a task-depends file")

	// ErrCVEFileReadFailed is returned when a CVE check output file cannot be read.
	ErrCVEFileReadFailed = zerr.New("failed to read CVE check file")

	// ErrUnsupportedCVEFormat is returned when a CVE check file has an unknown extension.
	ErrUnsupportedCVEFormat = zerr.New("unsupported CVE check file format, expected .json or .cve")

	// ErrSBOMWriteFailed is returned when the SPDX document cannot be written.
	ErrSBOMWriteFailed = zerr.New("failed to write SPDX document")

	// ErrMissingServerConfig is returned when Black Duck URL, token or project details are missing.
	ErrMissingServerConfig = zerr.New("black duck url, api token, project and version are required")

	// ErrBlackDuckAuthFailed is returned when the API token is rejected.
	ErrBlackDuckAuthFailed = zerr.New("failed to authenticate with black duck")

	// ErrBlackDuckRequestFailed is returned when a Black Duck API request fails.
	ErrBlackDuckRequestFailed = zerr.New("black duck api request failed")

	// ErrProjectVersionNotFound is returned when the project or version does not exist on the server.
	ErrProjectVersionNotFound = zerr.New("project version not found")

	// ErrRemediationFailed is returned when a vulnerability record could not be updated.
	ErrRemediationFailed = zerr.New("failed to remediate vulnerability")

	// ErrInvalidRemediationStatus is returned for a status other than PATCHED or IGNORED.
	ErrInvalidRemediationStatus = zerr.New("invalid remediation status, expected 'PATCHED' or 'IGNORED'")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics file")
)
