package utils

import (
	"html"
	"math"
	"regexp"
	"strings"
	"time"
)

const wordsPerMinute = 180

// EstimateReadTime estimates reading minutes from whitespace-separated word
// count at 180 words per minute, rounded to the nearest minute with a floor
// of one minute.
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := int(math.Round(float64(words) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

var publishedDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatPublishedDate renders a timestamp as "January 2, 2006" in UTC so
// server-rendered and client-rendered output match byte for byte. Returns
// ok=false for empty or unparseable input.
func FormatPublishedDate(date string) (string, bool) {
	if date == "" {
		return "", false
	}
	for _, layout := range publishedDateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.UTC().Format("January 2, 2006"), true
		}
	}
	return "", false
}

// HighlightQuery HTML-escapes text and wraps case-insensitive occurrences of
// query in <mark> tags. Escaping happens first so user content can never
// smuggle markup past the highlighter. A blank query, or a query the regexp
// engine rejects even after quoting, returns the escaped text unmodified.
func HighlightQuery(text, query string) string {
	escaped := html.EscapeString(text)
	if strings.TrimSpace(query) == "" {
		return escaped
	}

	pattern, err := regexp.Compile("(?i)(" + regexp.QuoteMeta(query) + ")")
	if err != nil {
		return escaped
	}
	return pattern.ReplaceAllString(escaped, "<mark>$1</mark>")
}
