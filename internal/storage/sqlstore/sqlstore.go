// Package sqlstore provides a database/sql implementation of the
// storage.Store interface for SQLite, PostgreSQL, MySQL and SQL Server.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mmynk/nomikai/internal/storage"
)

// Ensure SQLStore implements storage.Store
var _ storage.Store = (*SQLStore)(nil)

// SQLStore implements storage.Store on top of database/sql.
//
// Every operation checks out its own connection from the pool and returns it
// before the call completes, whatever the outcome.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect

	batchMode       storage.BatchMode
	migrate         bool
	maxOpenConns    int
	connMaxIdleTime time.Duration
	onError         func(op string)
}

// New opens the database described by connString and, unless disabled, runs
// migrations. For SQLite paths the parent directory is created.
func New(ctx context.Context, connString string, opts ...Option) (*SQLStore, error) {
	dialect, dsn, err := ParseConnectionString(connString)
	if err != nil {
		return nil, err
	}

	if dialect.Name == SQLite.Name {
		if err := ensureSQLiteDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(dialect.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := NewFromDB(db, dialect, opts...)
	if s.maxOpenConns > 0 {
		db.SetMaxOpenConns(s.maxOpenConns)
	}
	if s.connMaxIdleTime > 0 {
		db.SetConnMaxIdleTime(s.connMaxIdleTime)
	}

	if s.migrate {
		if err := runMigrations(ctx, db, dialect); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	return s, nil
}

// NewFromDB wraps an already opened database. Migrations are not run.
func NewFromDB(db *sql.DB, dialect Dialect, opts ...Option) *SQLStore {
	s := &SQLStore{
		db:        db,
		dialect:   dialect,
		batchMode: storage.BatchIndependent,
		migrate:   true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dialect returns the dialect the store was opened with.
func (s *SQLStore) Dialect() Dialect {
	return s.dialect
}

// Ping verifies the database is reachable.
func (s *SQLStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// Close closes the database connection pool.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

// querier is satisfied by both *sql.Conn and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// withConn runs fn on a dedicated connection and releases it afterwards.
func (s *SQLStore) withConn(ctx context.Context, op string, fn func(conn *sql.Conn) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		s.observe(op)
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	if err := fn(conn); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.observe(op)
		}
		return err
	}
	return nil
}

// withBatch runs fn on a dedicated connection, inside a transaction when the
// store is in atomic batch mode.
func (s *SQLStore) withBatch(ctx context.Context, op string, fn func(q querier) error) error {
	return s.withConn(ctx, op, func(conn *sql.Conn) error {
		if s.batchMode != storage.BatchAtomic {
			return fn(conn)
		}

		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer tx.Rollback()

		if err := fn(tx); err != nil {
			return err
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		return nil
	})
}

func (s *SQLStore) observe(op string) {
	if s.onError != nil {
		s.onError(op)
	}
}

// ensureSQLiteDir creates the parent directory of a file-backed SQLite DSN.
func ensureSQLiteDir(dsn string) error {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}
