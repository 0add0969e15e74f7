package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the timesheet application
type Config struct {
	Database    DatabaseConfig    `toml:"database"`
	Report      ReportConfig      `toml:"report"`
	Application ApplicationConfig `toml:"application"`
	Server      ServerConfig      `toml:"server"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `toml:"dir" env:"TS_DB_DIR"`
	Filename       string        `toml:"filename" env:"TS_DB_FILENAME"`
	QueryTimeout   time.Duration `toml:"-" env:"TS_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `toml:"-" env:"TS_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `toml:"dir_permissions" env:"TS_DB_DIR_PERMISSIONS"`
}

// ReportConfig holds the defaults for the ranking and anomaly queries
type ReportConfig struct {
	TopLimit          int     `toml:"top_limit" env:"TS_REPORT_TOP_LIMIT"`
	OverworkThreshold float64 `toml:"overwork_threshold" env:"TS_REPORT_OVERWORK_THRESHOLD"`
	OverworkDays      int     `toml:"overwork_days" env:"TS_REPORT_OVERWORK_DAYS"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `toml:"-" env:"TS_APP_TIMEOUT"`
	Verbose bool          `toml:"verbose" env:"TS_APP_VERBOSE"`
}

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	Addr           string   `toml:"addr" env:"TS_SERVER_ADDR"`
	AllowedOrigins []string `toml:"allowed_origins" env:"TS_SERVER_ALLOWED_ORIGINS"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".timesheet")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "timesheet.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Report: ReportConfig{
			TopLimit:          10,
			OverworkThreshold: 9.0,
			OverworkDays:      3,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TS_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TS_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TS_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TS_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("TS_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Report configuration
	if limit := os.Getenv("TS_REPORT_TOP_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			c.Report.TopLimit = n
		}
	}
	if threshold := os.Getenv("TS_REPORT_OVERWORK_THRESHOLD"); threshold != "" {
		if f, err := strconv.ParseFloat(threshold, 64); err == nil {
			c.Report.OverworkThreshold = f
		}
	}
	if days := os.Getenv("TS_REPORT_OVERWORK_DAYS"); days != "" {
		if n, err := strconv.Atoi(days); err == nil {
			c.Report.OverworkDays = n
		}
	}

	// Application configuration
	if timeout := os.Getenv("TS_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TS_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	// Server configuration
	if addr := os.Getenv("TS_SERVER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Report.TopLimit < 1 {
		return &ConfigError{Field: "report.top_limit", Message: "top limit must be at least 1"}
	}
	if c.Report.OverworkThreshold <= 0 {
		return &ConfigError{Field: "report.overwork_threshold", Message: "overwork threshold must be positive"}
	}
	if c.Report.OverworkDays < 1 {
		return &ConfigError{Field: "report.overwork_days", Message: "overwork day floor must be at least 1"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "server address cannot be empty"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
