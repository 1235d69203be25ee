package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-06-01T00:00:00Z", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := ParseMonth(tt.in)
		if err != nil {
			t.Errorf("ParseMonth(%q) failed: %v", tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseMonth(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseMonth_Invalid(t *testing.T) {
	for _, in := range []string{"", "January 2024", "2024/01", "01-2024"} {
		_, err := ParseMonth(in)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("ParseMonth(%q) = %v, want ErrValidation", in, err)
		}
	}
}

func TestParseStatus(t *testing.T) {
	if _, err := ParseStatus("ACTIVE"); err != nil {
		t.Errorf("ParseStatus(ACTIVE) failed: %v", err)
	}
	if _, err := ParseStatus("active"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for lowercase status, got %v", err)
	}
	if _, err := ParseBillingType("SPOT"); err != nil {
		t.Errorf("ParseBillingType(SPOT) failed: %v", err)
	}
	if _, err := ParsePurpose("QA"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for unknown purpose, got %v", err)
	}
}
