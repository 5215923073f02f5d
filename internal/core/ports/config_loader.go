package ports

import "go.trai.ch/rivebuild/internal/core/domain"

// ConfigLoader defines the interface for loading the project settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings for the project in dir. An explicit path must
	// exist; without one a missing file yields the default settings.
	Load(dir, explicitPath string) (domain.Settings, error)
}
