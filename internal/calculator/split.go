// Package calculator computes per-participant shares of an event total.
package calculator

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ParticipantSeparator separates participant names in a participants string.
const ParticipantSeparator = "、"

var (
	// ErrNoParticipants is returned when a split has nobody to split between.
	ErrNoParticipants = errors.New("must have at least one participant")

	// ErrNonPositiveTotal is returned when the amount to split is zero or negative.
	ErrNonPositiveTotal = errors.New("amount must be greater than zero")
)

// ParseParticipants splits s on the full-width comma, trims surrounding
// whitespace from each name and drops empty names.
func ParseParticipants(s string) []string {
	parts := strings.Split(s, ParticipantSeparator)
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		name := strings.TrimSpace(p)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// Share divides total evenly by count using decimal division.
// The quotient keeps decimal.DivisionPrecision fractional digits.
func Share(total decimal.Decimal, count int) (decimal.Decimal, error) {
	if count <= 0 {
		return decimal.Zero, ErrNoParticipants
	}
	return total.Div(decimal.NewFromInt(int64(count))), nil
}

// SplitEvenly splits total into count shares with at most places fractional
// digits. Every share gets total/count truncated to places; whatever is left
// over goes to the first share, so the shares always sum to total.
//
//	SplitEvenly(100, 3, 0) => [34 33 33]
//	SplitEvenly(300, 3, 0) => [100 100 100]
func SplitEvenly(total decimal.Decimal, count int, places int32) ([]decimal.Decimal, error) {
	if count <= 0 {
		return nil, ErrNoParticipants
	}
	if !total.IsPositive() {
		return nil, ErrNonPositiveTotal
	}

	base, remainder := total.QuoRem(decimal.NewFromInt(int64(count)), places)

	shares := make([]decimal.Decimal, count)
	for i := range shares {
		shares[i] = base
	}
	shares[0] = base.Add(remainder)
	return shares, nil
}
