package utility

import (
	"errors"
	"testing"
	"time"
)

func TestAddStrings(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"integers", "2", "3", "5"},
		{"fractions to whole", "2.5", "0.5", "3"},
		{"binary rounding kept", "0.1", "0.2", "0.30000000000000004"},
		{"negatives", "-4", "1.5", "-2.5"},
		{"exponent input", "1e3", "1", "1001"},
		{"zero", "0", "-0", "0"},
		{"whitespace trimmed", " 2 ", "3", "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddStrings(tt.a, tt.b)
			if err != nil {
				t.Fatalf("AddStrings(%q, %q) error: %v", tt.a, tt.b, err)
			}
			if got != tt.want {
				t.Errorf("AddStrings(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAddStrings_Invalid(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"missing a", "", "3"},
		{"missing b", "2", ""},
		{"word", "two", "3"},
		{"infinity", "Inf", "1"},
		{"nan", "2", "NaN"},
		{"overflow", "1.7e308", "1.7e308"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AddStrings(tt.a, tt.b)
			if !errors.Is(err, ErrInvalidNumber) {
				t.Errorf("AddStrings(%q, %q) error = %v, want %v", tt.a, tt.b, err, ErrInvalidNumber)
			}
		})
	}
}

func TestClock_Now(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	fixed := time.Date(2024, 3, 9, 20, 4, 5, 678_900_000, loc)
	c := Clock(func() time.Time { return fixed })

	if got, want := c.Now(), "2024-03-09T12:04:05.678Z"; got != want {
		t.Errorf("Now() = %q, want %q", got, want)
	}
}

func TestClock_NilUsesSystemClock(t *testing.T) {
	var c Clock
	got, err := time.Parse(ISO8601Millis, c.Now())
	if err != nil {
		t.Fatalf("Now() not parseable: %v", err)
	}
	if time.Since(got) > time.Minute || time.Until(got) > time.Minute {
		t.Errorf("Now() = %v, too far from wall clock", got)
	}
}
