package validation

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	contentPolicy = bluemonday.UGCPolicy()
	textPolicy    = bluemonday.StrictPolicy()
)

// SanitizeHTML keeps user-generated formatting markup and drops scripts,
// event handlers and unsafe URLs.
func SanitizeHTML(s string) string {
	return contentPolicy.Sanitize(s)
}

// StripHTML removes all markup, leaving plain text. Entities are decoded so
// "Tom & Jerry" is stored as typed. Markup-only input yields "".
func StripHTML(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}

// EscapeLiteral escapes every regular expression metacharacter in s so it
// matches itself when embedded in a pattern.
func EscapeLiteral(s string) string {
	return regexp.QuoteMeta(s)
}
