// Package utility holds the stateless tools: arithmetic and the clock.
package utility

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidNumber is returned when an operand is missing, not numeric, or
// not finite.
var ErrInvalidNumber = errors.New("invalid number")

// ParseOperand parses a decimal operand. Infinity and NaN spellings are
// rejected even though strconv accepts them.
func ParseOperand(name, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: `%s` is required", ErrInvalidNumber, name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: `%s` must be a finite number, got %q", ErrInvalidNumber, name, raw)
	}
	return v, nil
}

// Add returns a+b. A sum that overflows float64 is reported as invalid.
func Add(a, b float64) (float64, error) {
	sum := a + b
	if math.IsInf(sum, 0) {
		return 0, fmt.Errorf("%w: sum overflows", ErrInvalidNumber)
	}
	return sum, nil
}

// AddStrings parses both operands and returns the formatted sum.
func AddStrings(a, b string) (string, error) {
	x, err := ParseOperand("a", a)
	if err != nil {
		return "", err
	}
	y, err := ParseOperand("b", b)
	if err != nil {
		return "", err
	}
	sum, err := Add(x, y)
	if err != nil {
		return "", err
	}
	return FormatNumber(sum), nil
}

// FormatNumber renders v in the shortest decimal form that round-trips:
// 5 -> "5", 3.0 -> "3", 0.1+0.2 -> "0.30000000000000004".
func FormatNumber(v float64) string {
	if v == 0 {
		return "0" // drops the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// AddDescription describes the addition tool.
const AddDescription = "Adds two numbers and return the result."
