package gallery

import (
	"sort"

	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
)

// FacetSet holds the distinct filterable attribute values derivable from a
// collection: years descending, media ascending, colors in first-seen order.
type FacetSet struct {
	Years  []int         `json:"years"`
	Media  []string      `json:"media"`
	Colors []ColorFamily `json:"colors"`
}

// CollectFacets scans a collection in a single pass and extracts the facet
// values available for filtering. An empty collection still yields the
// default color family so filter UIs never render with zero options.
func CollectFacets(items []models.ContentItem) FacetSet {
	yearsSeen := make(map[int]bool)
	mediaSeen := make(map[string]bool)
	colorsSeen := make(map[ColorFamily]bool)

	var years []int
	var media []string
	var colors []ColorFamily

	for _, item := range items {
		if item.Year != nil && !yearsSeen[*item.Year] {
			yearsSeen[*item.Year] = true
			years = append(years, *item.Year)
		}
		if item.Medium != "" && !mediaSeen[item.Medium] {
			mediaSeen[item.Medium] = true
			media = append(media, item.Medium)
		}
		if family := Classify(item); !colorsSeen[family] {
			colorsSeen[family] = true
			colors = append(colors, family)
		}
	}

	if len(colors) == 0 {
		colors = append(colors, defaultColorFamily)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	sort.Strings(media)

	return FacetSet{Years: years, Media: media, Colors: colors}
}

// MergeFacets unions two facet sets, deduplicates, and re-applies the
// CollectFacets sort rules. Used when accumulating paginated results;
// facet sets never merge implicitly.
func MergeFacets(a, b FacetSet) FacetSet {
	yearsSeen := make(map[int]bool)
	var years []int
	for _, y := range append(append([]int{}, a.Years...), b.Years...) {
		if !yearsSeen[y] {
			yearsSeen[y] = true
			years = append(years, y)
		}
	}

	mediaSeen := make(map[string]bool)
	var media []string
	for _, m := range append(append([]string{}, a.Media...), b.Media...) {
		if !mediaSeen[m] {
			mediaSeen[m] = true
			media = append(media, m)
		}
	}

	colorsSeen := make(map[ColorFamily]bool)
	var colors []ColorFamily
	for _, c := range append(append([]ColorFamily{}, a.Colors...), b.Colors...) {
		if !colorsSeen[c] {
			colorsSeen[c] = true
			colors = append(colors, c)
		}
	}

	if len(colors) == 0 {
		colors = append(colors, defaultColorFamily)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	sort.Strings(media)

	return FacetSet{Years: years, Media: media, Colors: colors}
}
