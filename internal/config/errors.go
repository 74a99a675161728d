package config

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")

	// ErrNoConnectionString is returned when neither the environment nor the
	// secret store yields a database connection string.
	ErrNoConnectionString = errors.New("database connection string not found: set DatabaseConnectionString or configure Key Vault")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
