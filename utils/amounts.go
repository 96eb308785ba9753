package utils

import (
	"strconv"
	"strings"
)

// parseAmount strips currency decoration ($ and thousands separators) and
// reports whether a numeric value was actually present, so callers can tell
// "zero" apart from "absent".
func parseAmount(s string) (float64, bool) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
