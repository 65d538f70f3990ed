package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from file and environment variables.
// An empty path uses the default config location.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	configPath := path
	if configPath == "" {
		configPath = getConfigPath()
	}
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			// The default config file is optional; an explicit one is not.
			if !os.IsNotExist(err) || path != "" {
				return nil, err
			}
		}
	}

	if cfg.Loader.Preset != "" && !cfg.Loader.ApplyPreset(cfg.Loader.Preset) {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownPreset,
			cfg.Loader.Preset, strings.Join(ListPresets(), ", "))
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Dir returns the folio config directory.
func Dir() (string, error) {
	path := getConfigPath()
	if path == "" {
		return "", fmt.Errorf("could not determine config directory")
	}
	return filepath.Dir(path), nil
}

// getConfigPath returns the path to the config file.
func getConfigPath() string {
	// Check XDG_CONFIG_HOME first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "folio", "config.yaml")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	if runtime.GOOS == "darwin" {
		appSupport := filepath.Join(homeDir, "Library", "Application Support", "folio", "config.yaml")
		if _, err := os.Stat(appSupport); err == nil {
			return appSupport
		}
		dotConfig := filepath.Join(homeDir, ".config", "folio", "config.yaml")
		if _, err := os.Stat(dotConfig); err == nil {
			return dotConfig
		}
		return appSupport
	}

	return filepath.Join(homeDir, ".config", "folio", "config.yaml")
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Expand environment variables in the config file
	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// loadFromEnv loads configuration from environment variables.
func loadFromEnv(cfg *Config) error {
	if path := os.Getenv("FOLIO_CONTENT"); path != "" {
		cfg.Content.Path = path
	}

	if theme := os.Getenv("FOLIO_THEME"); theme != "" {
		cfg.UI.Theme = theme
	}

	if level := os.Getenv("FOLIO_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}

	if join := os.Getenv("FOLIO_JOIN"); join != "" {
		cfg.Loader.Join = join
	}

	if wait := os.Getenv("FOLIO_MAX_WAIT"); wait != "" {
		d, err := time.ParseDuration(wait)
		if err != nil {
			return fmt.Errorf("invalid FOLIO_MAX_WAIT %q: %w", wait, err)
		}
		cfg.Loader.MaxWait = d
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	l := c.Loader
	if l.TickInterval <= 0 {
		return fmt.Errorf("%w: tick_interval must be positive", ErrInvalidLoader)
	}
	if l.Step <= 0 || l.Step > 100 {
		return fmt.Errorf("%w: step must be between 1 and 100, got %d", ErrInvalidLoader, l.Step)
	}
	if l.GraceDelay < 0 || l.MaxWait < 0 {
		return fmt.Errorf("%w: grace_delay and max_wait must not be negative", ErrInvalidLoader)
	}
	switch l.Join {
	case "", "immediate", "tick":
	default:
		return fmt.Errorf("%w: join must be \"immediate\" or \"tick\", got %q", ErrInvalidLoader, l.Join)
	}

	switch c.UI.Theme {
	case "", "dark", "macos", "mono":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTheme, c.UI.Theme)
	}
	if c.UI.RevealThreshold < 0 || c.UI.RevealThreshold > 1 {
		return fmt.Errorf("%w: reveal_threshold must be between 0 and 1", ErrInvalidUI)
	}
	if c.UI.RevealStagger < 0 {
		return fmt.Errorf("%w: reveal_stagger must not be negative", ErrInvalidUI)
	}

	return nil
}

// Error types for configuration validation.
type ConfigError string

func (e ConfigError) Error() string {
	return string(e)
}

const (
	ErrInvalidLoader ConfigError = "invalid loader configuration"
	ErrInvalidUI     ConfigError = "invalid ui configuration"
	ErrUnknownTheme  ConfigError = "unknown theme"
	ErrUnknownPreset ConfigError = "unknown loader preset"
)

// GetConfigPath returns the path to the config file (exported for external use).
func GetConfigPath() string {
	return getConfigPath()
}

// Save saves the configuration to the given path, or the default config
// file when path is empty.
func (c *Config) Save(path string) error {
	configPath := path
	if configPath == "" {
		configPath = getConfigPath()
	}
	if configPath == "" {
		return fmt.Errorf("could not determine config path")
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write to file atomically (write to temp file then rename)
	tmpPath := configPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if err := os.Rename(tmpPath, configPath); err != nil {
		// If rename fails, try direct write (Windows filesystem)
		if err := os.WriteFile(configPath, data, 0600); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}
	}

	return nil
}
