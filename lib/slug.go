package lib

import (
	"regexp"
	"strings"
)

var (
	slugStrip  = regexp.MustCompile(`[^a-z0-9\s]`)
	slugSpaces = regexp.MustCompile(`\s+`)
)

// Slugify turns a sheet header into a stable JSON key: lowercase,
// punctuation stripped, runs of spaces collapsed to one underscore.
// "Order Number" -> "order_number", "E-Mail!" -> "email".
func Slugify(header string) string {
	s := strings.ToLower(strings.TrimSpace(header))
	s = slugStrip.ReplaceAllString(s, "")
	return slugSpaces.ReplaceAllString(s, "_")
}
