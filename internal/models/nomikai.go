package models

import "github.com/shopspring/decimal"

// Nomikai is one participant's row of a drinking-party event.
// It maps to a row of the Nomikai table.
type Nomikai struct {
	// ID is the backend-assigned row identifier.
	ID int64 `json:"id"`

	// EventDate is the calendar date of the event.
	EventDate Date `json:"eventDate"`

	// EventName is the display name of the event (e.g., "Spring welcome party").
	EventName string `json:"eventName"`

	// Participant is the name of the participant this row belongs to.
	// The column is called participants for historical reasons; it always
	// holds exactly one name.
	Participant string `json:"participants"`

	// Amount is this participant's share of the event total.
	Amount decimal.Decimal `json:"amount"`

	// PaymentFlag reports whether the participant has settled their share.
	PaymentFlag bool `json:"paymentFlag"`
}

// NomikaiFilter selects Nomikai rows. Empty fields are not applied.
type NomikaiFilter struct {
	// EventName matches rows whose event name contains it.
	EventName string

	// EventDate matches rows on exactly this date ("YYYY-MM-DD").
	EventDate string

	// Participant matches rows whose participant name contains it.
	Participant string
}

// IsEmpty reports whether no filter field is set.
func (f NomikaiFilter) IsEmpty() bool {
	return f.EventName == "" && f.EventDate == "" && f.Participant == ""
}

// PaymentFlagUpdate sets the payment flag of one Nomikai row.
type PaymentFlagUpdate struct {
	ID          int64 `json:"id"`
	PaymentFlag bool  `json:"paymentFlag"`
}
