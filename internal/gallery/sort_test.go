package gallery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestSortItemsNewest(t *testing.T) {
	old := timePtr(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	mid := timePtr(time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC))
	recent := timePtr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	items := []models.ContentItem{
		{ID: "a", PublishedAt: old},
		{ID: "b", CreatedAt: recent}, // falls back to created_at
		{ID: "c", PublishedAt: mid},
		{ID: "d"}, // no timestamps sorts last
	}

	sorted := SortItems(items, SortNewest)

	assert.Equal(t, []string{"b", "c", "a", "d"}, ids(sorted))
}

func TestSortItemsFeaturedFirstAndStable(t *testing.T) {
	items := []models.ContentItem{
		{ID: "a"},
		{ID: "b", IsFeatured: true},
		{ID: "c"},
		{ID: "d", IsFeatured: true},
	}

	sorted := SortItems(items, SortFeatured)

	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(sorted))
}

func TestSortItemsViewedUsesUpdateRecency(t *testing.T) {
	older := timePtr(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := timePtr(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))

	items := []models.ContentItem{
		{ID: "a", PublishedAt: newer, UpdatedAt: older},
		{ID: "b", PublishedAt: older, UpdatedAt: newer},
	}

	sorted := SortItems(items, SortViewed)

	assert.Equal(t, []string{"b", "a"}, ids(sorted))
}

func TestSortItemsDoesNotMutateInput(t *testing.T) {
	older := timePtr(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := timePtr(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))

	items := []models.ContentItem{
		{ID: "a", PublishedAt: older},
		{ID: "b", PublishedAt: newer},
	}

	_ = SortItems(items, SortNewest)

	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "b", items[1].ID)
}

func TestSortItemsIdempotent(t *testing.T) {
	older := timePtr(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := timePtr(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))

	items := []models.ContentItem{
		{ID: "a", PublishedAt: older},
		{ID: "b", PublishedAt: newer},
		{ID: "c", PublishedAt: older},
		{ID: "d"},
	}

	for _, strategy := range []SortStrategy{SortNewest, SortFeatured, SortViewed} {
		once := SortItems(items, strategy)
		twice := SortItems(once, strategy)
		assert.Equal(t, once, twice, "strategy %s", strategy)
	}
}

func TestParseSortStrategy(t *testing.T) {
	assert.Equal(t, SortFeatured, ParseSortStrategy("featured"))
	assert.Equal(t, SortViewed, ParseSortStrategy("viewed"))
	assert.Equal(t, SortNewest, ParseSortStrategy("newest"))
	assert.Equal(t, SortNewest, ParseSortStrategy(""))
	assert.Equal(t, SortNewest, ParseSortStrategy("garbage"))
}

func ids(items []models.ContentItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}
