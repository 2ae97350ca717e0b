package gallery

import (
	"strings"

	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
)

// ColorFamily is one of six coarse aesthetic categories inferred from an
// item's free-text metadata.
type ColorFamily string

const (
	ColorWarm       ColorFamily = "Warm"
	ColorCool       ColorFamily = "Cool"
	ColorEarth      ColorFamily = "Earth"
	ColorMonochrome ColorFamily = "Monochrome"
	ColorPastel     ColorFamily = "Pastel"
	ColorNeon       ColorFamily = "Neon"
)

const defaultColorFamily = ColorWarm

// Families are tried in this order; the first keyword hit wins.
var colorFamilyOrder = []ColorFamily{
	ColorWarm,
	ColorCool,
	ColorEarth,
	ColorMonochrome,
	ColorPastel,
	ColorNeon,
}

var colorKeywords = map[ColorFamily][]string{
	ColorWarm:       {"gold", "amber", "orange", "scarlet", "vermilion", "crimson", "marigold", "sunset", "flame", "ochre"},
	ColorCool:       {"blue", "indigo", "azure", "teal", "cyan", "cerulean", "viridian", "ice", "ocean"},
	ColorEarth:      {"brown", "umber", "terra", "clay", "olive", "forest", "moss", "earth", "soil"},
	ColorMonochrome: {"mono", "monochrome", "black", "white", "charcoal", "ink", "graphite", "noir"},
	ColorPastel:     {"pastel", "lavender", "lilac", "rose", "peach", "mint", "powder", "blush"},
	ColorNeon:       {"neon", "electric", "vivid", "fluorescent"},
}

// Classify maps an item to a color family by keyword matching over its
// lowercased title, description, medium, and tags. Matching is plain
// substring: "gold" matches inside "goldfish". That ambiguity is inherited
// behavior and kept for parity with the site's historical classification.
// Unmatched featured items fall back to Monochrome, everything else to Warm.
func Classify(item models.ContentItem) ColorFamily {
	haystack := buildHaystack(item)

	for _, family := range colorFamilyOrder {
		for _, keyword := range colorKeywords[family] {
			if strings.Contains(haystack, keyword) {
				return family
			}
		}
	}

	if item.IsFeatured {
		return ColorMonochrome
	}

	return defaultColorFamily
}

func buildHaystack(item models.ContentItem) string {
	parts := make([]string, 0, 3+len(item.Tags))
	for _, value := range []string{item.Title, item.Description, item.Medium} {
		if value != "" {
			parts = append(parts, strings.ToLower(value))
		}
	}
	for _, tag := range item.Tags {
		if tag != "" {
			parts = append(parts, strings.ToLower(tag))
		}
	}
	return strings.Join(parts, " ")
}
