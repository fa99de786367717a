package extract

import (
	"regexp"
	"strings"
)

var tagRe = regexp.MustCompile(`<[^>]*>`)

// CleanText collapses whitespace (including NBSP) and trims.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// StripTags removes tag spans from a raw HTML fragment and cleans the rest.
// Used where a value was captured as markup rather than through the DOM.
func StripTags(s string) string {
	return CleanText(tagRe.ReplaceAllString(s, " "))
}
