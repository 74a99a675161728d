package calculator

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParseParticipants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"trims names", "Alice、 Bob 、Carol", []string{"Alice", "Bob", "Carol"}},
		{"single name", "  Alice  ", []string{"Alice"}},
		{"drops empty entries", "Alice、、 、Bob、", []string{"Alice", "Bob"}},
		{"ascii comma is not a separator", "Alice, Bob", []string{"Alice, Bob"}},
		{"empty string", "", []string{}},
		{"only separators", "、 、", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseParticipants(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseParticipants(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestShare(t *testing.T) {
	tests := []struct {
		name    string
		total   string
		count   int
		want    string
		wantErr bool
	}{
		{"even split", "300", 3, "100", false},
		{"fractional split", "100", 4, "25", false},
		{"cents", "10.5", 2, "5.25", false},
		{"one participant", "1234.56", 1, "1234.56", false},
		{"repeating quotient", "100", 3, "33.3333333333333333", false},
		{"zero participants", "100", 0, "", true},
		{"negative participants", "100", -2, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Share(d(tt.total), tt.count)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Share() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrNoParticipants) {
					t.Errorf("Share() error = %v, want ErrNoParticipants", err)
				}
				return
			}
			if !got.Equal(d(tt.want)) {
				t.Errorf("Share(%s, %d) = %s, want %s", tt.total, tt.count, got, tt.want)
			}
		})
	}
}

func TestSplitEvenly(t *testing.T) {
	tests := []struct {
		name    string
		total   string
		count   int
		places  int32
		want    []string
		wantErr error
	}{
		{"divides evenly", "300", 3, 0, []string{"100", "100", "100"}, nil},
		{"remainder goes to first", "100", 3, 0, []string{"34", "33", "33"}, nil},
		{"two places", "100", 3, 2, []string{"33.34", "33.33", "33.33"}, nil},
		{"fractional total", "10.01", 2, 0, []string{"5.01", "5"}, nil},
		{"single participant", "4321", 1, 0, []string{"4321"}, nil},
		{"no participants", "100", 0, 0, nil, ErrNoParticipants},
		{"zero total", "0", 3, 0, nil, ErrNonPositiveTotal},
		{"negative total", "-30", 3, 0, nil, ErrNonPositiveTotal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitEvenly(d(tt.total), tt.count, tt.places)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SplitEvenly() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SplitEvenly() unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("SplitEvenly() returned %d shares, want %d", len(got), len(tt.want))
			}

			sum := decimal.Zero
			for i, share := range got {
				if !share.Equal(d(tt.want[i])) {
					t.Errorf("share[%d] = %s, want %s", i, share, tt.want[i])
				}
				sum = sum.Add(share)
			}
			if !sum.Equal(d(tt.total)) {
				t.Errorf("shares sum to %s, want %s", sum, tt.total)
			}
		})
	}
}
