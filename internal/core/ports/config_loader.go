package ports

import "go.trai.ch/pkgr/internal/core/domain"

// ConfigLoader defines the interface for loading the pkgr configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and returns the validated configuration.
	Load(path string) (*domain.Config, error)
}

// SourceFactory builds package sources from their configuration.
type SourceFactory interface {
	// Build returns one source per configuration entry, in the same order.
	Build(configs []domain.SourceConfig) ([]Source, error)
}
