// Package config loads and persists fburn configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all fburn configuration.
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Forecast ForecastConfig `toml:"forecast"`
	Alerts   AlertsConfig   `toml:"alerts"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Currency string `toml:"currency"`
	DataDir  string `toml:"data_dir,omitempty"`
}

// ForecastConfig holds balance projection settings.
type ForecastConfig struct {
	HorizonDays    int `toml:"horizon_days"`
	TrailingMonths int `toml:"trailing_months"`
}

// AlertsConfig holds daemon alerting settings.
type AlertsConfig struct {
	BurnHorizonDays int `toml:"burn_horizon_days"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency: "$",
		},
		Forecast: ForecastConfig{
			HorizonDays:    90,
			TrailingMonths: 3,
		},
		Alerts: AlertsConfig{
			BurnHorizonDays: 14,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fburn")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fburn")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// DataDirOverride returns the data dir from env var or config, in that
// order, or empty when neither is set.
func DataDirOverride(cfg Config) string {
	if dir := os.Getenv("FBURN_DATA_DIR"); dir != "" {
		return dir
	}
	return cfg.General.DataDir
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
