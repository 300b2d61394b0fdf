package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.ClientTokenSecret) < 32 {
		return fmt.Errorf("auth.client_token_secret must be at least 32 characters (got %d)", len(c.Auth.ClientTokenSecret))
	}
	if c.Auth.ClientTokenTTL <= 0 {
		return fmt.Errorf("auth.client_token_ttl must be > 0 (got %v)", c.Auth.ClientTokenTTL)
	}

	if err := c.Store.validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if err := c.Dictionary.validate(); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (s *StoreConfig) validate() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))

	switch s.Driver {
	case DriverSQLite:
		if s.SQLitePath == "" {
			return fmt.Errorf("sqlite_path is required for driver %q", s.Driver)
		}
	case DriverPostgres:
		if s.Postgres.DSN == "" {
			return fmt.Errorf("postgres.dsn is required for driver %q", s.Driver)
		}
		if s.Postgres.MaxConns < s.Postgres.MinConns {
			return fmt.Errorf("postgres.max_conns (%d) must be >= min_conns (%d)", s.Postgres.MaxConns, s.Postgres.MinConns)
		}
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", DriverSQLite, DriverPostgres, s.Driver)
	}

	return nil
}

func (d *DictionaryConfig) validate() error {
	if d.UsesRemotePresets() {
		u, err := url.Parse(d.PresetBaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("preset_base_url must be an absolute http(s) URL (got %q)", d.PresetBaseURL)
		}
	}
	if d.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be > 0 (got %v)", d.FetchTimeout)
	}
	if d.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", d.MaxUploadBytes)
	}
	if d.MaxTextBytes <= 0 {
		return fmt.Errorf("max_text_bytes must be > 0 (got %d)", d.MaxTextBytes)
	}
	if d.SessionIdleTTL <= 0 {
		return fmt.Errorf("session_idle_ttl must be > 0 (got %v)", d.SessionIdleTTL)
	}
	if d.PrefsRetention <= 0 {
		return fmt.Errorf("prefs_retention must be > 0 (got %v)", d.PrefsRetention)
	}
	if d.SweepInterval <= 0 {
		return fmt.Errorf("sweep_interval must be > 0 (got %v)", d.SweepInterval)
	}
	if strings.TrimSpace(d.DefaultPreset) == "" {
		return fmt.Errorf("default_preset must not be empty")
	}
	return nil
}
