package calc

import (
	"strconv"
	"strings"
)

// maxFractionDigits bounds the fractional precision of formatted results.
const maxFractionDigits = 10

// Format renders a result for the display and the history tape.
//
// Values are written in plain decimal notation (never scientific) with
// at most ten fractional digits; trailing insignificant zeros and a
// dangling decimal point are trimmed.
func Format(v float64) string {
	s := strconv.FormatFloat(v, 'f', maxFractionDigits, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// ParseNumber parses display text as a float64.
func ParseNumber(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}
