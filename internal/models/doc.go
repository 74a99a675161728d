// Package models defines the core domain models for the nomikai expense service.
//
// # Models
//
//   - Nomikai: one participant's row of a drinking-party event, carrying that
//     participant's share and whether it has been paid
//   - Payment: a recorded payment (read-only from this service)
//   - Event: a legacy event record holding only a date and a total
//
// Participants are identified by name strings. A single save call produces one
// Nomikai row per participant; rows of the same event share date, name and
// payment flag.
//
// # Money
//
// All amounts are decimal.Decimal. Floats never appear in the money path, and
// amounts are encoded as JSON numbers on the wire.
package models

import "github.com/shopspring/decimal"

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
