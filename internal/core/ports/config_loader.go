package ports

import "go.trai.ch/extq/internal/core/domain"

// ConfigLoader defines the interface for loading the run configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path layered over the built-in defaults.
	// An empty path picks up extq.yaml from the working directory when present.
	Load(path string) (*domain.Config, error)
}
