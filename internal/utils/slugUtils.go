package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugEdgeHyphens  = regexp.MustCompile(`^-+|-+$`)
)

// Slugify lowercases the input and collapses every run of non-alphanumeric
// characters into a single hyphen. Returns fallback when nothing survives.
func Slugify(value, fallback string) string {
	slug := strings.ToLower(strings.TrimSpace(value))
	slug = slugInvalidChars.ReplaceAllString(slug, "-")
	slug = slugEdgeHyphens.ReplaceAllString(slug, "")
	if slug == "" {
		return fallback
	}
	return slug
}
