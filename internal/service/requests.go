package service

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/nomikai/internal/models"
)

// CalculateRequest asks for a total to be split and stored on one event row.
type CalculateRequest struct {
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	NumberOfParticipants int             `json:"numberOfParticipants" validate:"gt=0"`
	EventID              int64           `json:"eventID"`
	ParticipantID        int64           `json:"participantID"`
}

// CalculateResult is the outcome of a Calculate call.
type CalculateResult struct {
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	NumberOfParticipants int             `json:"numberOfParticipants"`
	AmountPerParticipant decimal.Decimal `json:"amountPerParticipant"`
}

// SaveEventRequest is the legacy event save payload. Both fields are optional.
type SaveEventRequest struct {
	EventDate   *string             `json:"eventDate"`
	TotalAmount decimal.NullDecimal `json:"totalAmount"`
}

// SaveNomikaiRequest records a drinking party. Participants is a single
// string of names separated by "、".
type SaveNomikaiRequest struct {
	EventDate    models.Date     `json:"eventDate"`
	EventName    string          `json:"eventName"`
	Participants string          `json:"participants"`
	Amount       decimal.Decimal `json:"amount" validate:"gt=0"`
	PaymentFlag  bool            `json:"paymentFlag"`
}

// SearchRequest filters Nomikai rows. At least one field must be set.
type SearchRequest struct {
	EventName string `validate:"required_without_all=EventDate Name"`
	EventDate string
	Name      string
}
