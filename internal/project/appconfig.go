// Package project loads and saves the application configuration.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"

	"github.com/piwi3910/tilecanvas/internal/model"
)

// EnvPrefix is the prefix for environment overrides, e.g. TILECANVAS_PITCH.
const EnvPrefix = "TILECANVAS"

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.tilecanvas/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".tilecanvas")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
// Fields missing from the file keep their default values.
func LoadAppConfig(path string) (model.AppConfig, error) {
	config := model.DefaultAppConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return model.AppConfig{}, err
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return config, nil
}

// ApplyEnv overrides config fields from TILECANVAS_* environment variables.
// Fields whose variable is unset keep their current value.
func ApplyEnv(config *model.AppConfig) error {
	if err := envconfig.Process(EnvPrefix, config); err != nil {
		return fmt.Errorf("reading %s_* environment: %w", EnvPrefix, err)
	}
	return nil
}

// Load reads the config file at path, applies environment overrides and
// returns the resulting settings alongside the config.
func Load(path string) (model.AppConfig, model.Settings, error) {
	config, err := LoadAppConfig(path)
	if err != nil {
		return model.AppConfig{}, model.Settings{}, err
	}
	if err := ApplyEnv(&config); err != nil {
		return model.AppConfig{}, model.Settings{}, err
	}

	settings := model.DefaultSettings()
	if err := config.ApplyToSettings(&settings); err != nil {
		return model.AppConfig{}, model.Settings{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return model.AppConfig{}, model.Settings{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, settings, nil
}
