package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		item     models.ContentItem
		expected ColorFamily
	}{
		{
			name:     "warm keyword in title",
			item:     models.ContentItem{ID: "1", Title: "Golden Hour"},
			expected: ColorWarm,
		},
		{
			name:     "cool keyword in description",
			item:     models.ContentItem{ID: "2", Title: "Untitled", Description: "a study of the ocean at dusk"},
			expected: ColorCool,
		},
		{
			name:     "earth keyword in medium",
			item:     models.ContentItem{ID: "3", Title: "Field", Medium: "clay on board"},
			expected: ColorEarth,
		},
		{
			name:     "monochrome keyword in tags",
			item:     models.ContentItem{ID: "4", Title: "Portrait", Tags: []string{"ink", "figure"}},
			expected: ColorMonochrome,
		},
		{
			name:     "priority order prefers warm over cool",
			item:     models.ContentItem{ID: "5", Title: "Amber and Azure"},
			expected: ColorWarm,
		},
		{
			name:     "substring match crosses word boundaries",
			item:     models.ContentItem{ID: "6", Title: "Goldfish Pond"},
			expected: ColorWarm,
		},
		{
			name:     "featured fallback",
			item:     models.ContentItem{ID: "7", Title: "Untitled", IsFeatured: true},
			expected: ColorMonochrome,
		},
		{
			name:     "default fallback",
			item:     models.ContentItem{ID: "8", Title: "Untitled"},
			expected: ColorWarm,
		},
		{
			name:     "missing optional fields do not break classification",
			item:     models.ContentItem{ID: "9", Title: ""},
			expected: ColorWarm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.item))
		})
	}
}

func TestClassifyAlwaysReturnsKnownFamily(t *testing.T) {
	known := map[ColorFamily]bool{
		ColorWarm: true, ColorCool: true, ColorEarth: true,
		ColorMonochrome: true, ColorPastel: true, ColorNeon: true,
	}

	items := []models.ContentItem{
		{},
		{ID: "a", Title: "neon electric skyline"},
		{ID: "b", Title: "pastel morning", Tags: []string{"mint"}},
		{ID: "c", Tags: []string{"", "", ""}},
		{ID: "d", Title: "fluorescent", IsFeatured: true},
	}

	for _, item := range items {
		assert.True(t, known[Classify(item)])
	}
}
