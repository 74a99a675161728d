package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
)

// Schemas contain the statements that set up the tables this service uses.
// They run on startup (when enabled) to ensure tables exist. Payments is
// written by other tools; it is created here so reads never fail on a fresh
// database.
//
// Amounts are TEXT in SQLite: NUMERIC affinity would turn non-integral
// shares into REAL.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS Nomikai (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    event_date TEXT NOT NULL,
    event_name TEXT NOT NULL,
    participants TEXT NOT NULL,
    amount TEXT NOT NULL,
    payment_flag INTEGER NOT NULL DEFAULT 0
)`,
	`CREATE TABLE IF NOT EXISTS Events (
    EventID INTEGER PRIMARY KEY AUTOINCREMENT,
    EventDate TEXT,
    TotalAmount TEXT
)`,
	`CREATE TABLE IF NOT EXISTS Payments (
    PaymentID INTEGER PRIMARY KEY AUTOINCREMENT,
    EventID INTEGER NOT NULL,
    ParticipantID INTEGER NOT NULL,
    AmountPaid TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_nomikai_event_date ON Nomikai(event_date)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS Nomikai (
    id BIGSERIAL PRIMARY KEY,
    event_date DATE NOT NULL,
    event_name TEXT NOT NULL,
    participants TEXT NOT NULL,
    amount NUMERIC NOT NULL,
    payment_flag BOOLEAN NOT NULL DEFAULT FALSE
)`,
	`CREATE TABLE IF NOT EXISTS Events (
    EventID BIGSERIAL PRIMARY KEY,
    EventDate TEXT,
    TotalAmount NUMERIC
)`,
	`CREATE TABLE IF NOT EXISTS Payments (
    PaymentID BIGSERIAL PRIMARY KEY,
    EventID BIGINT NOT NULL,
    ParticipantID BIGINT NOT NULL,
    AmountPaid NUMERIC NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_nomikai_event_date ON Nomikai(event_date)`,
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS Nomikai (
    id BIGINT AUTO_INCREMENT PRIMARY KEY,
    event_date DATE NOT NULL,
    event_name VARCHAR(255) NOT NULL,
    participants VARCHAR(255) NOT NULL,
    amount DECIMAL(38,16) NOT NULL,
    payment_flag BOOLEAN NOT NULL DEFAULT FALSE,
    INDEX idx_nomikai_event_date (event_date)
)`,
	`CREATE TABLE IF NOT EXISTS Events (
    EventID BIGINT AUTO_INCREMENT PRIMARY KEY,
    EventDate VARCHAR(64),
    TotalAmount DECIMAL(38,16)
)`,
	`CREATE TABLE IF NOT EXISTS Payments (
    PaymentID BIGINT AUTO_INCREMENT PRIMARY KEY,
    EventID BIGINT NOT NULL,
    ParticipantID BIGINT NOT NULL,
    AmountPaid DECIMAL(38,16) NOT NULL
)`,
}

// runMigrations executes the dialect's schema setup. Dialects without a
// schema (SQL Server) are expected to be provisioned out of band.
func runMigrations(ctx context.Context, db *sql.DB, dialect Dialect) error {
	for _, stmt := range dialect.schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema for %s: %w", dialect.Name, err)
		}
	}
	return nil
}
