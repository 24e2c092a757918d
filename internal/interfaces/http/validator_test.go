package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPhone(t *testing.T) {
	cases := map[string]bool{
		"+12345678":        true,
		"12345678":         true,
		"1234567":          true,  // 7 digits, lower bound
		"123456789012345":  true,  // 15 digits, upper bound
		"+123456789012345": true,
		"123456":           false, // too short
		"1234567890123456": false, // too long
		"":                 false,
		"+":                false,
		"++12345678":       false,
		"+1234 5678":       false, // space
		"+1234-5678":       false, // punctuation
		"abc":              false,
		"12345678a":        false,
		"+7(916)1234567":   false,
	}

	for phone, want := range cases {
		assert.Equalf(t, want, ValidPhone(phone), "phone %q", phone)
	}
}

func TestValidEmail(t *testing.T) {
	cases := map[string]bool{
		"ann@example.com":     true,
		"a@b.c":               true,
		"ann.smith@mail.ru":   true,
		"":                    false,
		"ann":                 false,
		"@example.com":        false, // empty local part
		"ann@":                false,
		"ann@example":         false, // no dot in domain
		"ann@@example.com":    false,
		"ann@exa@mple.com":    false,
		"ann smith@mail.tld":    true, // loose pattern allows spaces in local part
		"ann@example.com extra": true, // loose pattern allows spaces in domain part too
	}

	for email, want := range cases {
		assert.Equalf(t, want, ValidEmail(email), "email %q", email)
	}
}
