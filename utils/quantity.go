package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseQuantity splits a free-text quantity such as "25 kg", "3.5kg" or
// "10 trays" into its numeric value and unit. The unit may be empty.
// Zero, negative and malformed amounts are rejected.
func ParseQuantity(s string) (float64, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, "", errors.New("quantity is empty")
	}

	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.' || s[i] == '-') {
		i++
	}
	value, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid quantity %q", s)
	}
	if value <= 0 {
		return 0, "", fmt.Errorf("quantity must be positive, got %q", s)
	}

	return value, strings.TrimSpace(s[i:]), nil
}

// FormatQuantity renders a value back into a listing's unit, without
// trailing zeros ("15 kg", not "15.000000 kg").
func FormatQuantity(value float64, unit string) string {
	num := strconv.FormatFloat(value, 'f', -1, 64)
	if unit == "" {
		return num
	}
	return num + " " + unit
}
