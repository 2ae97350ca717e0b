package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateReadTime(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{name: "empty text floors at one minute", content: "", expected: 1},
		{name: "whitespace only", content: "   \n\t  ", expected: 1},
		{name: "single word", content: "hello", expected: 1},
		{name: "exactly 180 words", content: strings.Repeat("word ", 180), expected: 1},
		{name: "361 words rounds to two", content: strings.Repeat("word ", 361), expected: 2},
		{name: "540 words", content: strings.Repeat("word ", 540), expected: 3},
		{name: "irregular whitespace runs", content: "one\n\ntwo\t three    four", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EstimateReadTime(tt.content))
		})
	}
}

func TestFormatPublishedDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{name: "rfc3339", input: "2024-03-05T10:30:00Z", expected: "March 5, 2024", ok: true},
		{name: "rfc3339 with offset normalizes to UTC", input: "2024-03-05T23:30:00-05:00", expected: "March 6, 2024", ok: true},
		{name: "date only", input: "2021-12-31", expected: "December 31, 2021", ok: true},
		{name: "empty", input: "", ok: false},
		{name: "unparseable", input: "not-a-date", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatted, ok := FormatPublishedDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, formatted)
			}
		})
	}
}

func TestHighlightQueryEscapesBeforeHighlighting(t *testing.T) {
	result := HighlightQuery("Hello <b>world</b>", "world")

	assert.Equal(t, "Hello &lt;b&gt;<mark>world</mark>&lt;/b&gt;", result)
	assert.NotContains(t, result, "<b>")
}

func TestHighlightQueryBlankQuery(t *testing.T) {
	assert.Equal(t, "Hello &lt;b&gt;world&lt;/b&gt;", HighlightQuery("Hello <b>world</b>", ""))
	assert.Equal(t, "plain text", HighlightQuery("plain text", "   "))
}

func TestHighlightQueryCaseInsensitive(t *testing.T) {
	assert.Equal(t, "<mark>Moon</mark>lit <mark>moon</mark>", HighlightQuery("Moonlit moon", "moon"))
}

func TestHighlightQueryRegexMetacharactersAreLiteral(t *testing.T) {
	// The query is quoted, so metacharacters match literally instead of
	// blowing up or matching everything.
	assert.Equal(t, "a<mark>.*</mark>b", HighlightQuery("a.*b", ".*"))
	assert.Equal(t, "price <mark>(usd)</mark>", HighlightQuery("price (usd)", "(usd)"))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback string
		expected string
	}{
		{name: "simple title", input: "Moonlit Garden", fallback: "painting", expected: "moonlit-garden"},
		{name: "punctuation collapses", input: "Gold, Amber & Flame!", fallback: "painting", expected: "gold-amber-flame"},
		{name: "leading and trailing junk trimmed", input: "  --Night Sky--  ", fallback: "painting", expected: "night-sky"},
		{name: "empty falls back", input: "", fallback: "painting", expected: "painting"},
		{name: "symbols only falls back", input: "???", fallback: "page", expected: "page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input, tt.fallback))
		})
	}
}
