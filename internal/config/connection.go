package config

import (
	"context"
	"fmt"
)

const (
	// ConnectionStringEnv is the environment variable checked first for the
	// database connection string.
	ConnectionStringEnv = "DatabaseConnectionString"

	// KeyVaultURIEnv names the vault to fall back to.
	KeyVaultURIEnv = "KeyVaultUri"

	// DefaultSecretName is the secret looked up in the vault.
	DefaultSecretName = "DatabaseConnectionString"
)

// SecretStore looks up secrets by name.
type SecretStore interface {
	GetSecret(ctx context.Context, name string) (string, error)
}

// ResolveConnectionString returns the database connection string, trying in
// order: cfg.DatabaseURL, the DatabaseConnectionString variable from getenv,
// and the secret cfg.SecretName from secrets. secrets may be nil when no
// vault is configured. If nothing yields a value the error wraps
// ErrNoConnectionString.
func ResolveConnectionString(ctx context.Context, cfg *Config, getenv func(string) string, secrets SecretStore) (string, error) {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL, nil
	}
	if v := getenv(ConnectionStringEnv); v != "" {
		return v, nil
	}
	if secrets == nil {
		return "", ErrNoConnectionString
	}

	name := cfg.SecretName
	if name == "" {
		name = DefaultSecretName
	}
	v, err := secrets.GetSecret(ctx, name)
	if err != nil {
		return "", fmt.Errorf("%w: secret %q: %w", ErrNoConnectionString, name, err)
	}
	if v == "" {
		return "", fmt.Errorf("%w: secret %q is empty", ErrNoConnectionString, name)
	}
	return v, nil
}

// VaultURI returns the configured Key Vault URI, falling back to the
// KeyVaultUri variable from getenv.
func (c *Config) VaultURI(getenv func(string) string) string {
	if c.KeyVaultURI != "" {
		return c.KeyVaultURI
	}
	return getenv(KeyVaultURIEnv)
}
