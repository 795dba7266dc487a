package ports

import "go.trai.ch/nuprune/internal/core/domain"

// ConfigLoader defines the interface for loading analysis settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the configuration file for the given directory, walking up
	// its parents. It returns empty settings when no file exists.
	Load(dir string) (*domain.Settings, error)
	// LoadFile reads the configuration file at path.
	LoadFile(path string) (*domain.Settings, error)
}
