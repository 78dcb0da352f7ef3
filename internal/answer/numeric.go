package answer

import (
	"math"
	"strconv"
	"strings"

	"github.com/hsaleh/durus/internal/arabic"
)

// numericEpsilon absorbs float noise when comparing decimal and
// fraction forms of the same value.
const numericEpsilon = 1e-9

// parseNumber parses s as an integer, decimal, or simple a/b fraction
// after folding Arabic-indic digits. Returns the value and whether the
// parse succeeded.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(arabic.FoldDigits(s))
	if s == "" {
		return 0, false
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}

	num, den, ok := parseFraction(s)
	if !ok || den == 0 {
		return 0, false
	}
	return float64(num) / float64(den), true
}

// parseFraction splits "a/b" into numerator and denominator.
func parseFraction(s string) (int64, int64, bool) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	num, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	den, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return num, den, true
}

// isNumeric reports whether s parses as a number.
func isNumeric(s string) bool {
	_, ok := parseNumber(s)
	return ok
}

// numericEqual compares two answers numerically, so "٢٥" equals "25",
// "3.50" equals "3.5", and "2/4" equals "0.5".
func numericEqual(student, model string) bool {
	sv, ok := parseNumber(student)
	if !ok {
		return false
	}
	mv, ok := parseNumber(model)
	if !ok {
		return false
	}
	return math.Abs(sv-mv) <= numericEpsilon
}
