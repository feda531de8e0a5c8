package literal

import "time"

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = time.RFC3339Nano
)

// IsDatetime reports whether quoted is a quoted date or datetime:
//
//	'2021-01-01'
//	'2021-01-01T00:00:00Z'
//	'2021-01-01T00:00:00.123456789+02:00'
//
// The year may carry a leading sign. The value must be a real calendar time.
func IsDatetime(quoted string) bool {
	s, ok := body(quoted)
	if !ok {
		return false
	}
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) < len(dateLayout) || !isDigits(s[:4]) {
		return false
	}
	if len(s) == len(dateLayout) {
		_, err := time.Parse(dateLayout, s)
		return err == nil
	}
	if s[len(dateLayout)] != 'T' || !validFraction(s) {
		return false
	}
	_, err := time.Parse(datetimeLayout, s)
	return err == nil
}

// validFraction checks the optional fractional seconds hold 1 to 9 digits.
func validFraction(s string) bool {
	const secondsEnd = len("2006-01-02T15:04:05")
	if len(s) <= secondsEnd || s[secondsEnd] != '.' {
		return true
	}
	n := 0
	for i := secondsEnd + 1; i < len(s) && isDigit(s[i]); i++ {
		n++
	}
	return n >= 1 && n <= 9
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
