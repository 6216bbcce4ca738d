package domain

import "time"

// Config is the resolved oematch configuration.
type Config struct {
	Catalog     CatalogOptions
	Match       MatchOptions
	Inventory   InventorySources
	BlackDuck   BlackDuckServer
	Remediation RemediationOptions
}

// CatalogOptions controls where layer index data comes from.
type CatalogOptions struct {
	BaseURL  string
	CacheDir string
	Offline  bool
	Refresh  bool
	Timeout  time.Duration
}

// MatchOptions controls recipe resolution.
type MatchOptions struct {
	MaxVersionDistance string
	Workers            int
}

// InventorySources names the bitbake outputs describing a local build.
type InventorySources struct {
	LicenseManifest string
	LayersReport    string
	TaskDepends     string
	Target          string
	KernelRecipe    string
}

// BlackDuckServer identifies a Black Duck server and project version.
type BlackDuckServer struct {
	URL       string
	Token     string
	TokenEnv  string
	TrustCert bool
	Project   string
	Version   string
}

// RemediationOptions controls the remediation pipeline.
type RemediationOptions struct {
	Status     string
	BatchSize  int
	BatchDelay time.Duration
	Comment    string
}

const (
	// DefaultHTTPTimeout bounds every layer index and Black Duck request.
	DefaultHTTPTimeout = 30 * time.Second
	// DefaultBatchSize is the number of remediation requests in flight per batch.
	DefaultBatchSize = 50
	// DefaultBatchDelay is the pause between remediation batches.
	DefaultBatchDelay = 2 * time.Second
	// DefaultRemediationComment is attached to every remediated record.
	DefaultRemediationComment = "Patched by bitbake recipe"
)

// DefaultConfig returns the configuration used when no oematch.yaml exists.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogOptions{
			BaseURL:  DefaultLayerIndexURL,
			CacheDir: DefaultCatalogCachePath(),
			Timeout:  DefaultHTTPTimeout,
		},
		Match: MatchOptions{
			MaxVersionDistance: "0.0.0",
		},
		Inventory: InventorySources{
			KernelRecipe: DefaultKernelRecipe,
		},
		BlackDuck: BlackDuckServer{
			TokenEnv: DefaultTokenEnv,
		},
		Remediation: RemediationOptions{
			Status:     string(StatusPatched),
			BatchSize:  DefaultBatchSize,
			BatchDelay: DefaultBatchDelay,
			Comment:    DefaultRemediationComment,
		},
	}
}
