package ports

import "go.trai.ch/modkit/internal/core/domain"

// ConfigLoader defines the interface for loading the framework configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory, creating or
	// completing the configuration file when needed.
	Load(cwd string) (*domain.Config, error)
}
