package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2024-04-01", "2024-04-01", false},
		{"2024-04-01T19:30:00", "2024-04-01", false},
		{"2024-04-01T19:30:00+09:00", "2024-04-01", false},
		{"01/04/2024", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got.String() != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan(time.Time) failed: %v", err)
	}
	if d.String() != "2024-04-01" {
		t.Errorf("Scan(time.Time) = %s, want 2024-04-01", d)
	}

	if err := d.Scan([]byte("2023-12-24")); err != nil {
		t.Fatalf("Scan([]byte) failed: %v", err)
	}
	if d.String() != "2023-12-24" {
		t.Errorf("Scan([]byte) = %s, want 2023-12-24", d)
	}

	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning int into Date")
	}
}

func TestNomikaiJSON(t *testing.T) {
	row := Nomikai{
		ID:          7,
		EventDate:   NewDate(2024, time.April, 1),
		EventName:   "Spring party",
		Participant: "Alice",
		Amount:      decimal.RequireFromString("1500.5"),
		PaymentFlag: true,
	}

	data, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"id":7,"eventDate":"2024-04-01","eventName":"Spring party","participants":"Alice","amount":1500.5,"paymentFlag":true}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}
