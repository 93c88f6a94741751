package ports

import "go.trai.ch/bbstatus/internal/core/domain"

// InputLoader defines the interface for loading step inputs.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type InputLoader interface {
	// LoadEnvFile merges a dotenv file into the process environment.
	// Variables that are already set are left untouched.
	LoadEnvFile(path string) error

	// LoadCI returns the values the CI runner provides.
	LoadCI() domain.CIContext

	// Load resolves the step inputs. configFile names an optional YAML file whose
	// values are overridden by the environment; empty means none.
	Load(configFile string) (domain.Inputs, error)
}
