package utils

import (
	"regexp"
	"strings"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes HTML tags from free-text fields before they are
// persisted, so stored markup never reaches a browser.
func StripTags(s string) string {
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(s, ""))
}
