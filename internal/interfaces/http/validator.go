package http

import "regexp"

var (
	// phoneRe: optional leading +, then 7-15 ASCII digits, nothing else.
	phoneRe = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	// emailRe: non-empty local part without @, then @, then a domain without @
	// that contains a dot.
	emailRe = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
)

// ValidPhone reports whether phone looks like an international number.
// Spaces, letters and punctuation other than a leading + make it invalid.
func ValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// ValidEmail reports whether email has the loose local@domain.tld shape.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}
