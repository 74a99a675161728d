// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/mmynk/nomikai/internal/models"
)

// ErrNotFound is returned when a row addressed by ID does not exist.
var ErrNotFound = errors.New("not found")

// BatchMode controls how multi-statement writes behave on failure.
type BatchMode string

const (
	// BatchIndependent runs every statement on its own. The first failing
	// statement aborts the rest; statements already executed stay committed.
	BatchIndependent BatchMode = "independent"

	// BatchAtomic runs all statements of a call in one transaction that is
	// rolled back on any failure.
	BatchAtomic BatchMode = "atomic"
)

// Valid reports whether m is a known batch mode.
func (m BatchMode) Valid() bool {
	return m == BatchIndependent || m == BatchAtomic
}

// FlagUpdateResult reports what happened to one payment flag update.
type FlagUpdateResult struct {
	ID      int64
	Matched bool
}

// Store defines the interface for expense storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// MySQL, SQL Server) without changing the service layer.
type Store interface {
	// UpdateNomikaiAmount checks that the Nomikai row exists and overwrites
	// its amount. Returns ErrNotFound, without writing, if it does not exist.
	UpdateNomikaiAmount(ctx context.Context, id int64, amount decimal.Decimal) error

	// CreateNomikaiRows inserts one row per element. IDs are assigned by the
	// backend and written back into rows.
	CreateNomikaiRows(ctx context.Context, rows []models.Nomikai) error

	// SearchNomikai returns the rows matching every non-empty filter field,
	// ordered by ID.
	SearchNomikai(ctx context.Context, filter models.NomikaiFilter) ([]models.Nomikai, error)

	// UpdatePaymentFlags sets payment_flag on each addressed row. An update
	// matching no row is reported in the result, not as an error.
	UpdatePaymentFlags(ctx context.Context, updates []models.PaymentFlagUpdate) ([]FlagUpdateResult, error)

	// ListPayments returns every payment ordered by PaymentID.
	ListPayments(ctx context.Context) ([]models.Payment, error)

	// CreateEvent inserts a legacy event record.
	CreateEvent(ctx context.Context, event models.Event) error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
