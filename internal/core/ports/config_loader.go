package ports

import "go.trai.ch/relink/internal/core/domain"

// ConfigLoader defines the interface for loading the application configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads and validates the configuration.
	// An empty path means the file is discovered by walking up from the working directory.
	Load(path string) (*domain.Config, error)
}
