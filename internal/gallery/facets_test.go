package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
)

func intPtr(v int) *int { return &v }

func TestCollectFacetsEmptyCollection(t *testing.T) {
	facets := CollectFacets(nil)

	assert.Empty(t, facets.Years)
	assert.Empty(t, facets.Media)
	assert.Equal(t, []ColorFamily{ColorWarm}, facets.Colors)
}

func TestCollectFacets(t *testing.T) {
	items := []models.ContentItem{
		{ID: "1", Title: "Azure Sea", Year: intPtr(2020), Medium: "oil"},
		{ID: "2", Title: "Golden Field", Year: intPtr(2022), Medium: "acrylic"},
		{ID: "3", Title: "Azure Again", Year: intPtr(2020), Medium: "oil"},
		{ID: "4", Title: "Untitled"},
	}

	facets := CollectFacets(items)

	assert.Equal(t, []int{2022, 2020}, facets.Years)
	assert.Equal(t, []string{"acrylic", "oil"}, facets.Media)
	// Insertion-stable: Cool seen first, then Warm (both from keywords and
	// the unmatched default on item 4).
	assert.Equal(t, []ColorFamily{ColorCool, ColorWarm}, facets.Colors)
}

func TestCollectFacetsYearsStrictlyDescending(t *testing.T) {
	items := []models.ContentItem{
		{ID: "1", Year: intPtr(1999)},
		{ID: "2", Year: intPtr(2024)},
		{ID: "3", Year: intPtr(2010)},
		{ID: "4", Year: intPtr(2024)},
		{ID: "5"},
	}

	facets := CollectFacets(items)

	for i := 1; i < len(facets.Years); i++ {
		assert.Greater(t, facets.Years[i-1], facets.Years[i])
	}
}

func TestMergeFacets(t *testing.T) {
	a := FacetSet{
		Years:  []int{2022, 2020},
		Media:  []string{"acrylic", "oil"},
		Colors: []ColorFamily{ColorCool},
	}
	b := FacetSet{
		Years:  []int{2023, 2020},
		Media:  []string{"gouache", "oil"},
		Colors: []ColorFamily{ColorWarm, ColorCool},
	}

	merged := MergeFacets(a, b)

	assert.Equal(t, []int{2023, 2022, 2020}, merged.Years)
	assert.Equal(t, []string{"acrylic", "gouache", "oil"}, merged.Media)
	assert.Equal(t, []ColorFamily{ColorCool, ColorWarm}, merged.Colors)
}

func TestMergeFacetsEmptyInputs(t *testing.T) {
	merged := MergeFacets(FacetSet{}, FacetSet{})

	assert.Empty(t, merged.Years)
	assert.Empty(t, merged.Media)
	assert.Equal(t, []ColorFamily{ColorWarm}, merged.Colors)
}
