package config

// File is the on-disk shape of oematch.yaml. Empty values keep the defaults.
type File struct {
	Catalog     CatalogDTO     `yaml:"catalog"`
	Match       MatchDTO       `yaml:"match"`
	Inventory   InventoryDTO   `yaml:"inventory"`
	BlackDuck   BlackDuckDTO   `yaml:"blackduck"`
	Remediation RemediationDTO `yaml:"remediation"`
}

// CatalogDTO configures the layer index source.
type CatalogDTO struct {
	URL      string `yaml:"url"`
	CacheDir string `yaml:"cache_dir"`
	Offline  bool   `yaml:"offline"`
	Timeout  string `yaml:"timeout"`
}

// MatchDTO configures recipe resolution.
type MatchDTO struct {
	MaxVersionDistance string `yaml:"max_version_distance"`
	Workers            int    `yaml:"workers"`
}

// InventoryDTO names the bitbake outputs to read.
type InventoryDTO struct {
	LicenseManifest string `yaml:"license_manifest"`
	LayersReport    string `yaml:"layers_report"`
	TaskDepends     string `yaml:"task_depends"`
	Target          string `yaml:"target"`
	KernelRecipe    string `yaml:"kernel_recipe"`
}

// BlackDuckDTO identifies the Black Duck server and project version.
type BlackDuckDTO struct {
	URL       string `yaml:"url"`
	TokenEnv  string `yaml:"token_env"`
	TrustCert bool   `yaml:"trust_cert"`
	Project   string `yaml:"project"`
	Version   string `yaml:"version"`
}

// RemediationDTO configures the remediation pipeline.
type RemediationDTO struct {
	Status     string `yaml:"status"`
	BatchSize  int    `yaml:"batch_size"`
	BatchDelay string `yaml:"batch_delay"`
	Comment    string `yaml:"comment"`
}
