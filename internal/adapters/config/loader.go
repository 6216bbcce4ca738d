// Package config loads oematch.yaml and merges it over the defaults.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"time"

	"go.trai.ch/oematch/internal/core/domain"
	"go.trai.ch/oematch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a Loader on the real filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// Load finds oematch.yaml in cwd or the nearest parent and applies it over
// domain.DefaultConfig. Relative paths in the file are resolved against the
// file's directory.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	path, found, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}
	if !found {
		return cfg, nil
	}
	l.Logger.Debug("using configuration " + path)

	var file File
	if err := l.readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if err := apply(cfg, &file, filepath.Dir(path)); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", false, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		info, err := l.FS.Stat(candidate)
		switch {
		case err == nil && !info.IsDir():
			return candidate, true, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", false, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", candidate)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false, nil
		}
		currentDir = parentDir
	}
}

func (l *Loader) readAndUnmarshalYAML(path string, target *File) error {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

//nolint:cyclop // flat field-by-field merge
func apply(cfg *domain.Config, f *File, baseDir string) error {
	if f.Catalog.URL != "" {
		cfg.Catalog.BaseURL = f.Catalog.URL
	}
	if f.Catalog.CacheDir != "" {
		cfg.Catalog.CacheDir = resolvePath(baseDir, f.Catalog.CacheDir)
	} else {
		cfg.Catalog.CacheDir = resolvePath(baseDir, cfg.Catalog.CacheDir)
	}
	cfg.Catalog.Offline = f.Catalog.Offline
	if f.Catalog.Timeout != "" {
		d, err := parseDuration("catalog.timeout", f.Catalog.Timeout)
		if err != nil {
			return err
		}
		cfg.Catalog.Timeout = d
	}

	if f.Match.MaxVersionDistance != "" {
		if _, err := domain.ParseDistanceBudget(f.Match.MaxVersionDistance); err != nil {
			return err
		}
		cfg.Match.MaxVersionDistance = f.Match.MaxVersionDistance
	}
	if f.Match.Workers < 0 {
		return zerr.With(domain.ErrInvalidConfig, "match.workers", f.Match.Workers)
	}
	cfg.Match.Workers = f.Match.Workers

	cfg.Inventory.LicenseManifest = resolvePath(baseDir, f.Inventory.LicenseManifest)
	cfg.Inventory.LayersReport = resolvePath(baseDir, f.Inventory.LayersReport)
	cfg.Inventory.TaskDepends = resolvePath(baseDir, f.Inventory.TaskDepends)
	cfg.Inventory.Target = f.Inventory.Target
	if f.Inventory.KernelRecipe != "" {
		cfg.Inventory.KernelRecipe = f.Inventory.KernelRecipe
	}

	cfg.BlackDuck.URL = f.BlackDuck.URL
	if f.BlackDuck.TokenEnv != "" {
		cfg.BlackDuck.TokenEnv = f.BlackDuck.TokenEnv
	}
	cfg.BlackDuck.TrustCert = f.BlackDuck.TrustCert
	cfg.BlackDuck.Project = f.BlackDuck.Project
	cfg.BlackDuck.Version = f.BlackDuck.Version

	if f.Remediation.Status != "" {
		status, err := domain.ParseRemediationStatus(f.Remediation.Status)
		if err != nil {
			return err
		}
		cfg.Remediation.Status = string(status)
	}
	switch {
	case f.Remediation.BatchSize < 0:
		return zerr.With(domain.ErrInvalidConfig, "remediation.batch_size", f.Remediation.BatchSize)
	case f.Remediation.BatchSize > 0:
		cfg.Remediation.BatchSize = f.Remediation.BatchSize
	}
	if f.Remediation.BatchDelay != "" {
		d, err := parseDuration("remediation.batch_delay", f.Remediation.BatchDelay)
		if err != nil {
			return err
		}
		cfg.Remediation.BatchDelay = d
	}
	if f.Remediation.Comment != "" {
		cfg.Remediation.Comment = f.Remediation.Comment
	}

	return nil
}

func parseDuration(field, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return 0, zerr.With(domain.ErrInvalidConfig, field, value)
	}
	return d, nil
}

func resolvePath(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}
