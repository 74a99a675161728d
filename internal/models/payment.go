package models

import "github.com/shopspring/decimal"

// Payment represents a payment made by a participant towards an event.
// Payments are written by other tools; this service only reads them.
type Payment struct {
	// PaymentID is the unique identifier of the payment.
	PaymentID int64 `json:"paymentID"`

	// EventID is the event the payment belongs to.
	EventID int64 `json:"eventID"`

	// ParticipantID is the participant who paid.
	ParticipantID int64 `json:"participantID"`

	// AmountPaid is the amount that was paid.
	AmountPaid decimal.Decimal `json:"amountPaid"`
}
