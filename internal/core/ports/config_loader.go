package ports

import "go.trai.ch/oematch/internal/core/domain"

// ConfigLoader defines the interface for loading the oematch configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds oematch.yaml from cwd upwards and merges it over the defaults.
	// A missing file is not an error.
	Load(cwd string) (*domain.Config, error)
}
