// Package config resolves step inputs from the environment, an optional YAML file and an optional dotenv file.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.trai.ch/bbstatus/internal/core/domain"
	"go.trai.ch/bbstatus/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Step input names. Each is also the environment variable it is read from.
const (
	KeyDomain              = "domain"
	KeyUsername            = "username"
	KeyPassword            = "password"
	KeyClientCert          = "client_cert"
	KeyClientKey           = "client_key"
	KeyCommitHash          = "git_clone_commit_hash"
	KeyAppTitle            = "app_title"
	KeyBuildNumber         = "build_number"
	KeyBuildURL            = "build_url"
	KeyTriggeredWorkflowID = "triggered_workflow_id"
	KeyPresetStatus        = "preset_status"
)

// Environment variables provided by the CI runner.
const (
	EnvBuildStatus   = "BITRISE_BUILD_STATUS"
	EnvBuildSlug     = "BITRISE_BUILD_SLUG"
	EnvBuildNumber   = "BITRISE_BUILD_NUMBER"
	EnvTriggerMethod = "BITRISE_TRIGGER_METHOD"
)

var inputKeys = []string{
	KeyDomain, KeyUsername, KeyPassword, KeyClientCert, KeyClientKey, KeyCommitHash,
	KeyAppTitle, KeyBuildNumber, KeyBuildURL, KeyTriggeredWorkflowID, KeyPresetStatus,
}

// Loader implements ports.InputLoader.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// LoadEnvFile merges the dotenv file at path into the process environment.
func (l *Loader) LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEnvFileLoadFailed.Error()), "path", path)
	}
	return nil
}

// LoadCI reads the CI runner values from the environment.
func (l *Loader) LoadCI() domain.CIContext {
	v := viper.New()
	for _, env := range []string{EnvBuildStatus, EnvBuildSlug, EnvBuildNumber, EnvTriggerMethod} {
		// BindEnv only fails without arguments.
		_ = v.BindEnv(env, env)
	}

	return domain.CIContext{
		BuildStatus:   v.GetString(EnvBuildStatus),
		BuildSlug:     v.GetString(EnvBuildSlug),
		BuildNumber:   v.GetString(EnvBuildNumber),
		TriggerMethod: v.GetString(EnvTriggerMethod),
	}
}

// Load resolves the step inputs. Environment values win over configFile values;
// an empty environment variable counts as unset.
func (l *Loader) Load(configFile string) (domain.Inputs, error) {
	v := viper.New()

	if configFile != "" {
		file, err := readInputsFile(configFile)
		if err != nil {
			return domain.Inputs{}, err
		}
		for key, value := range file.values() {
			v.SetDefault(key, value)
		}
		if file.Password != "" || file.ClientKey != "" {
			l.Logger.Warn("inputs file " + configFile + " contains secrets; prefer environment variables")
		}
	}

	for _, key := range inputKeys {
		if err := v.BindEnv(key, key); err != nil {
			return domain.Inputs{}, zerr.With(err, "key", key)
		}
	}

	return domain.Inputs{
		Domain:              v.GetString(KeyDomain),
		Username:            v.GetString(KeyUsername),
		Password:            v.GetString(KeyPassword),
		ClientCert:          v.GetString(KeyClientCert),
		ClientKey:           v.GetString(KeyClientKey),
		CommitHash:          v.GetString(KeyCommitHash),
		AppTitle:            v.GetString(KeyAppTitle),
		BuildNumber:         v.GetString(KeyBuildNumber),
		BuildURL:            v.GetString(KeyBuildURL),
		TriggeredWorkflowID: v.GetString(KeyTriggeredWorkflowID),
		PresetStatus:        v.GetString(KeyPresetStatus),
	}, nil
}

func readInputsFile(path string) (*InputsFile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the operator
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrConfigReadFailed, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file InputsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return &file, nil
}
