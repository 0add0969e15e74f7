package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the config file, if one is present
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if path := configFilePath(); path != "" {
		if err := l.config.LoadFromFile(path); err != nil {
			return nil, err
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFromFile merges a TOML config file over the current values. A file
// that sets only some keys leaves the rest untouched.
func (c *Config) LoadFromFile(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return &ConfigError{Field: "file", Message: err.Error()}
	}
	return nil
}

// configFilePath resolves the config file location: an explicit TS_CONFIG
// wins, otherwise the default location is used when the file exists.
func configFilePath() string {
	if path := os.Getenv("TS_CONFIG"); path != "" {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	candidate := homeDir + "/.timesheet/config.toml"
	if _, err := os.Stat(candidate); err != nil {
		return ""
	}
	return candidate
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Database overrides
	DBDir      *string
	DBFilename *string

	// Report overrides
	TopLimit          *int
	OverworkThreshold *float64
	OverworkDays      *int

	// Application overrides
	Timeout *time.Duration
	Verbose *bool

	// Server overrides
	ServerAddr *string
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DBDir != nil {
		config.Database.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Database.Filename = *overrides.DBFilename
	}

	if overrides.TopLimit != nil {
		config.Report.TopLimit = *overrides.TopLimit
	}
	if overrides.OverworkThreshold != nil {
		config.Report.OverworkThreshold = *overrides.OverworkThreshold
	}
	if overrides.OverworkDays != nil {
		config.Report.OverworkDays = *overrides.OverworkDays
	}

	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}

	if overrides.ServerAddr != nil {
		config.Server.Addr = *overrides.ServerAddr
	}
}
