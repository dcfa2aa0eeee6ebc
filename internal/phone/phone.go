// Package phone canonicalizes contact identifiers for the Messages app.
package phone

import "strings"

// Normalize converts a raw identifier to canonical form. Digit-only input
// gets a +1 country code, a leading country-code digit without the plus gets
// the plus restored, and anything else (emails, already-canonical numbers)
// passes through unchanged.
func Normalize(raw string) string {
	switch {
	case len(raw) > 1 && raw[0] == '1' && allDigits(raw[1:]):
		return "+1" + raw[1:]
	case allDigits(raw):
		return "+1" + raw
	case !strings.Contains(raw, "+") && strings.HasPrefix(raw, "1") && len(raw) > 1:
		// Country-code digit present but the rest has separators.
		return "+" + raw
	default:
		return raw
	}
}

// DisplayNumber strips the country code from a canonical identifier for
// display. Non-phone identifiers come back unchanged.
func DisplayNumber(number string) string {
	switch {
	case strings.HasPrefix(number, "+1") && len(number) > 2:
		return number[2:]
	case strings.HasPrefix(number, "1") && allDigits(number[1:]):
		return number[1:]
	default:
		return number
	}
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
