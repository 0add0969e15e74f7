package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/skywardcloud/projectmgt/internal/repository/sqlite"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Database.Filename != "timesheet.db" {
		t.Errorf("Database.Filename = %q, want %q", cfg.Database.Filename, "timesheet.db")
	}
	if cfg.Report.TopLimit != 10 {
		t.Errorf("Report.TopLimit = %d, want 10", cfg.Report.TopLimit)
	}
	if cfg.Report.OverworkThreshold != 9.0 {
		t.Errorf("Report.OverworkThreshold = %v, want 9.0", cfg.Report.OverworkThreshold)
	}
	if cfg.Report.OverworkDays != 3 {
		t.Errorf("Report.OverworkDays = %d, want 3", cfg.Report.OverworkDays)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":8080")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TS_DB_DIR", "/tmp/ts-test")
	t.Setenv("TS_DB_QUERY_TIMEOUT", "30s")
	t.Setenv("TS_REPORT_TOP_LIMIT", "5")
	t.Setenv("TS_REPORT_OVERWORK_THRESHOLD", "8.5")
	t.Setenv("TS_APP_VERBOSE", "true")
	t.Setenv("TS_SERVER_ADDR", ":9090")

	cfg := NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		t.Fatalf("LoadFromEnvironment() error = %v", err)
	}

	if cfg.Database.Dir != "/tmp/ts-test" {
		t.Errorf("Database.Dir = %q, want %q", cfg.Database.Dir, "/tmp/ts-test")
	}
	if cfg.Database.QueryTimeout != 30*time.Second {
		t.Errorf("Database.QueryTimeout = %v, want 30s", cfg.Database.QueryTimeout)
	}
	if cfg.Report.TopLimit != 5 {
		t.Errorf("Report.TopLimit = %d, want 5", cfg.Report.TopLimit)
	}
	if cfg.Report.OverworkThreshold != 8.5 {
		t.Errorf("Report.OverworkThreshold = %v, want 8.5", cfg.Report.OverworkThreshold)
	}
	if !cfg.Application.Verbose {
		t.Error("Application.Verbose = false, want true")
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":9090")
	}
}

func TestLoadFromEnvironment_InvalidValuesKeepDefaults(t *testing.T) {
	t.Setenv("TS_REPORT_TOP_LIMIT", "not-a-number")
	t.Setenv("TS_DB_QUERY_TIMEOUT", "soon")

	cfg := NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		t.Fatalf("LoadFromEnvironment() error = %v", err)
	}

	if cfg.Report.TopLimit != 10 {
		t.Errorf("Report.TopLimit = %d, want default 10", cfg.Report.TopLimit)
	}
	if cfg.Database.QueryTimeout != 10*time.Second {
		t.Errorf("Database.QueryTimeout = %v, want default 10s", cfg.Database.QueryTimeout)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[database]
dir = "/var/lib/timesheet"

[report]
top_limit = 25
overwork_threshold = 7.5

[server]
addr = ":3000"
allowed_origins = ["https://example.com"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg := NewConfig()
	if err := cfg.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if cfg.Database.Dir != "/var/lib/timesheet" {
		t.Errorf("Database.Dir = %q, want %q", cfg.Database.Dir, "/var/lib/timesheet")
	}
	if cfg.Report.TopLimit != 25 {
		t.Errorf("Report.TopLimit = %d, want 25", cfg.Report.TopLimit)
	}
	if cfg.Report.OverworkThreshold != 7.5 {
		t.Errorf("Report.OverworkThreshold = %v, want 7.5", cfg.Report.OverworkThreshold)
	}
	if cfg.Server.Addr != ":3000" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":3000")
	}
	// a partial file leaves untouched keys at their defaults
	if cfg.Database.Filename != "timesheet.db" {
		t.Errorf("Database.Filename = %q, want default", cfg.Database.Filename)
	}
	if cfg.Report.OverworkDays != 3 {
		t.Errorf("Report.OverworkDays = %d, want default 3", cfg.Report.OverworkDays)
	}
}

func TestLoader_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[report]
top_limit = 25
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	t.Setenv("TS_CONFIG", path)
	t.Setenv("TS_REPORT_TOP_LIMIT", "7")

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Report.TopLimit != 7 {
		t.Errorf("Report.TopLimit = %d, want env override 7", cfg.Report.TopLimit)
	}
}

func TestLoadWithOverrides(t *testing.T) {
	limit := 3
	verbose := true

	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		TopLimit: &limit,
		Verbose:  &verbose,
	})
	if err != nil {
		t.Fatalf("LoadWithOverrides() error = %v", err)
	}

	if cfg.Report.TopLimit != 3 {
		t.Errorf("Report.TopLimit = %d, want 3", cfg.Report.TopLimit)
	}
	if !cfg.Application.Verbose {
		t.Error("Application.Verbose = false, want true")
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"empty db dir", func(c *Config) { c.Database.Dir = "" }, "database.dir"},
		{"zero query timeout", func(c *Config) { c.Database.QueryTimeout = 0 }, "database.query_timeout"},
		{"zero top limit", func(c *Config) { c.Report.TopLimit = 0 }, "report.top_limit"},
		{"negative threshold", func(c *Config) { c.Report.OverworkThreshold = -1 }, "report.overwork_threshold"},
		{"zero day floor", func(c *Config) { c.Report.OverworkDays = 0 }, "report.overwork_days"},
		{"empty server addr", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			cfgErr, ok := err.(*ConfigError)
			if !ok {
				t.Fatalf("Validate() error type = %T, want *ConfigError", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("ConfigError.Field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestCreateRepository(t *testing.T) {
	t.Setenv("TS_DB_DIR", t.TempDir())

	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	repo, err := CreateRepository(cfg)
	if err != nil {
		t.Fatalf("CreateRepository() error = %v", err)
	}
	defer repo.Close()

	if err := repo.CreateEmployee(context.Background(), &sqlite.Employee{Name: "Alice"}); err != nil {
		t.Fatalf("CreateEmployee() error = %v", err)
	}
}
