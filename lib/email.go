package lib

import (
	"regexp"
	"strings"
)

var (
	emailRe       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	angleSenderRe = regexp.MustCompile(`<[^<>@\s]+@[^<>@\s]+\.[^<>@\s]+>`)
)

// StripQuotes trims whitespace and removes one layer of surrounding
// quote characters. Storefront form values and env vars both show up
// quoted often enough that every address goes through this first.
func StripQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && isQuote(s[0]) && isQuote(s[len(s)-1]) {
		return s[1 : len(s)-1]
	}
	return s
}

func isQuote(c byte) bool {
	return c == '\'' || c == '"' || c == '`'
}

// IsValidEmail reports whether s looks like a plain local@domain address.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsValidSender accepts a bare address or the "Name <local@domain>" form.
func IsValidSender(s string) bool {
	return IsValidEmail(s) || angleSenderRe.MatchString(s)
}
