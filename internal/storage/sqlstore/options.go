package sqlstore

import (
	"time"

	"github.com/mmynk/nomikai/internal/storage"
)

// Option configures an SQLStore.
type Option func(*SQLStore)

// WithBatchMode sets how multi-statement writes behave on failure.
func WithBatchMode(mode storage.BatchMode) Option {
	return func(s *SQLStore) {
		if mode.Valid() {
			s.batchMode = mode
		}
	}
}

// WithMigrations toggles schema setup on open.
func WithMigrations(enabled bool) Option {
	return func(s *SQLStore) {
		s.migrate = enabled
	}
}

// WithMaxOpenConns bounds the connection pool.
func WithMaxOpenConns(n int) Option {
	return func(s *SQLStore) {
		s.maxOpenConns = n
	}
}

// WithConnMaxIdleTime closes pooled connections idle for longer than d.
func WithConnMaxIdleTime(d time.Duration) Option {
	return func(s *SQLStore) {
		s.connMaxIdleTime = d
	}
}

// WithErrorObserver registers a callback invoked with the operation name
// whenever a backend statement fails.
func WithErrorObserver(fn func(op string)) Option {
	return func(s *SQLStore) {
		s.onError = fn
	}
}
