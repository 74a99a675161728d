// Package config defines service configuration and how it is loaded.
package config

import (
	"time"

	"github.com/mmynk/nomikai/internal/storage"
)

// Config contains process configuration.
type Config struct {
	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: "text" (colored) or "json".
	LogFormat string `koanf:"log_format"`

	// DatabaseURL overrides connection string resolution when set.
	DatabaseURL string `koanf:"database_url"`

	// KeyVaultURI enables the Key Vault fallback for the connection string.
	KeyVaultURI string `koanf:"keyvault_uri"`

	// SecretName is the Key Vault secret holding the connection string.
	SecretName string `koanf:"secret_name"`

	// Migrate creates missing tables on startup.
	Migrate bool `koanf:"migrate"`

	// BatchMode is "independent" or "atomic".
	BatchMode string `koanf:"batch_mode"`

	// SplitScale is the number of fractional digits a saved share may carry.
	SplitScale int32 `koanf:"split_scale"`

	// MaxOpenConns bounds the database pool; 0 means unlimited.
	MaxOpenConns int `koanf:"max_open_conns"`

	// ConnMaxIdleTime closes pooled connections idle for longer.
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`

	// ReadTimeout and WriteTimeout bound HTTP request handling.
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr:            ":8080",
		LogLevel:        "info",
		LogFormat:       "text",
		SecretName:      DefaultSecretName,
		Migrate:         true,
		BatchMode:       string(storage.BatchIndependent),
		SplitScale:      0,
		ConnMaxIdleTime: 5 * time.Minute,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    30 * time.Second,
	}
}

// Validate checks the values that cannot be fixed up silently.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return invalid("addr must not be empty")
	}
	if !storage.BatchMode(c.BatchMode).Valid() {
		return invalid("batch_mode must be %q or %q, got %q", storage.BatchIndependent, storage.BatchAtomic, c.BatchMode)
	}
	if c.SplitScale < 0 {
		return invalid("split_scale must not be negative")
	}
	if c.MaxOpenConns < 0 {
		return invalid("max_open_conns must not be negative")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return invalid("log_format must be text or json, got %q", c.LogFormat)
	}
	return nil
}
