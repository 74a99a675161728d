package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Event is the legacy event record: a date and a total with no participant
// breakdown. Both fields may be null; they are stored as received.
type Event struct {
	// EventDate is the raw date value as sent by the client.
	EventDate sql.NullString

	// TotalAmount is the event total.
	TotalAmount decimal.NullDecimal
}
