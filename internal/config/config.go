package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Store      StoreConfig      `yaml:"store"`
	Auth       AuthConfig       `yaml:"auth"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,If-None-Match"`
	ExposedHeaders   string `yaml:"exposed_headers"   env:"CORS_EXPOSED_HEADERS"   env-default:"X-Client-Token,X-Request-Id,ETag"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// StoreConfig selects and configures the preference store.
type StoreConfig struct {
	Driver     string `yaml:"driver"      env:"STORE_DRIVER"      env-default:"sqlite"`
	SQLitePath string `yaml:"sqlite_path" env:"STORE_SQLITE_PATH" env-default:"toki-ante.db"`

	Postgres DatabaseConfig `yaml:"postgres"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds client token settings.
type AuthConfig struct {
	ClientTokenSecret string        `yaml:"client_token_secret" env:"AUTH_CLIENT_TOKEN_SECRET" env-required:"true"`
	Issuer            string        `yaml:"issuer"              env:"AUTH_ISSUER"              env-default:"toki-ante"`
	ClientTokenTTL    time.Duration `yaml:"client_token_ttl"    env:"AUTH_CLIENT_TOKEN_TTL"    env-default:"8760h"`
	CookieName        string        `yaml:"cookie_name"         env:"AUTH_COOKIE_NAME"         env-default:"toki_client"`
	CookieSecure      bool          `yaml:"cookie_secure"       env:"AUTH_COOKIE_SECURE"       env-default:"false"`
}

// DictionaryConfig holds dictionary loading settings.
type DictionaryConfig struct {
	PresetBaseURL  string        `yaml:"preset_base_url"  env:"DICT_PRESET_BASE_URL"`
	FetchTimeout   time.Duration `yaml:"fetch_timeout"    env:"DICT_FETCH_TIMEOUT"    env-default:"10s"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes" env:"DICT_MAX_UPLOAD_BYTES" env-default:"2097152"`
	DefaultPreset  string        `yaml:"default_preset"   env:"DICT_DEFAULT_PRESET"   env-default:"default"`
	SessionIdleTTL time.Duration `yaml:"session_idle_ttl" env:"DICT_SESSION_IDLE_TTL" env-default:"30m"`
	MaxTextBytes   int64         `yaml:"max_text_bytes"   env:"DICT_MAX_TEXT_BYTES"   env-default:"262144"`
	PrefsRetention time.Duration `yaml:"prefs_retention"  env:"DICT_PREFS_RETENTION"  env-default:"8760h"`
	SweepInterval  time.Duration `yaml:"sweep_interval"   env:"DICT_SWEEP_INTERVAL"   env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits for the client API. Zero
// requests per minute disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"     env-default:"120"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP" env-default:"5m"`
}

// UsesRemotePresets reports whether presets are fetched over HTTP instead
// of served from the embedded bundle.
func (c DictionaryConfig) UsesRemotePresets() bool {
	return strings.TrimSpace(c.PresetBaseURL) != ""
}
