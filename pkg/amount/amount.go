package amount

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var thousandSuffixRE = regexp.MustCompile(`(?i)\s*(?:bin|thousand)\s*$`)

// Parse converts a raw numeric substring into a decimal value. The input
// may use dot, comma, space or non-breaking-space thousands separators, a
// dot or comma decimal fraction, and a trailing thousand word ("2 bin",
// "3bin"). The locale is never known, so the decimal separator is
// inferred: when both dot and comma appear, the rightmost one is the
// decimal point; a single separator is decimal only when followed by
// exactly 1-2 digits, otherwise it is thousands grouping.
func Parse(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(normalizeSpaces(raw))

	multiplier := decimal.NewFromInt(1)
	if loc := thousandSuffixRE.FindStringIndex(s); loc != nil {
		s = strings.TrimSpace(s[:loc[0]])
		multiplier = decimal.NewFromInt(1000)
	}

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	decimalAt := -1
	switch {
	case lastDot >= 0 && lastComma >= 0:
		decimalAt = max(lastDot, lastComma)
	case lastDot >= 0 && isDecimalTail(s[lastDot+1:]):
		decimalAt = lastDot
	case lastComma >= 0 && isDecimalTail(s[lastComma+1:]):
		decimalAt = lastComma
	}

	var cleaned strings.Builder
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			cleaned.WriteRune(r)
		case i == decimalAt:
			cleaned.WriteByte('.')
		}
	}

	value, err := decimal.NewFromString(cleaned.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	return value.Mul(multiplier), nil
}

// isDecimalTail reports whether the text after a separator qualifies it
// as a decimal point: exactly 1-2 digits to the end of the string. A
// 3-digit tail ("2.199") is treated as thousands grouping; a genuine
// 3-decimal value is indistinguishable from the string alone and loses.
func isDecimalTail(tail string) bool {
	if len(tail) < 1 || len(tail) > 2 {
		return false
	}
	for _, r := range tail {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func normalizeSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == ' ' {
			return ' '
		}
		return r
	}, s)
}
