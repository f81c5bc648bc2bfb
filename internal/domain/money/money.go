package money

import (
	"fmt"
	"math"
	"strconv"
)

// Amounts cross the API boundary as integer minor units (cents) and are shown
// to the user in major units (dollars). Sign is carried by the record type,
// not the amount.

// ToMinorUnits converts a major-unit amount to cents.
func ToMinorUnits(major float64) int64 {
	return int64(math.Round(major * 100))
}

// ToMajorUnits converts cents to a major-unit amount.
func ToMajorUnits(minor int64) float64 {
	return float64(minor) / 100
}

// ParseMajor parses form-style amount input. The empty string, non-numeric
// input, NaN/Inf, negatives and zero are all rejected.
func ParseMajor(input string) (float64, error) {
	if input == "" {
		return 0, fmt.Errorf("amount is required")
	}
	v, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q is not a number", input)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("amount %q is not finite", input)
	}
	if v < 0 {
		return 0, fmt.Errorf("amount must not be negative")
	}
	if ToMinorUnits(v) == 0 {
		return 0, fmt.Errorf("amount must not be zero")
	}
	return v, nil
}

// ParseMinorString parses a wire amount carried as a stringified integer
// number of cents.
func ParseMinorString(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount %q: %w", s, err)
	}
	return v, nil
}

// FormatMajor renders a major-unit amount with two decimals for display.
func FormatMajor(major float64) string {
	return strconv.FormatFloat(major, 'f', 2, 64)
}
