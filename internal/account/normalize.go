package account

import (
	"regexp"
	"strings"
)

var (
	phoneShape = regexp.MustCompile(`^\+?[1-9]\d{7,14}$`)
	allDigits  = regexp.MustCompile(`^\d+$`)
)

// NormalizeEmail canonicalizes an email address for storage and lookup:
// surrounding whitespace removed, lowercased. Idempotent.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizePhone canonicalizes a phone number: surrounding whitespace and
// interior spaces removed, and a leading "+" prepended when the remainder is
// all digits. It does not validate length or country code. Idempotent.
func NormalizePhone(s string) string {
	x := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if !strings.HasPrefix(x, "+") && allDigits.MatchString(x) {
		x = "+" + x
	}
	return x
}

// ValidPhone reports whether a normalized number has a plausible E.164 shape:
// optional leading "+", then 8 to 15 digits not starting with zero.
func ValidPhone(s string) bool {
	return phoneShape.MatchString(s)
}
