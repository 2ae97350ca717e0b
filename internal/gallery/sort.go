package gallery

import (
	"sort"
	"time"

	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
)

type SortStrategy string

const (
	SortNewest   SortStrategy = "newest"
	SortFeatured SortStrategy = "featured"
	// SortViewed orders by recency of update, not an actual view counter;
	// the name is historical and kept for compatibility with stored links.
	SortViewed SortStrategy = "viewed"
)

// SortItems returns a new slice ordered by the named strategy. The input is
// never mutated and every strategy sorts stably, so items that compare equal
// keep their relative input order. Unknown strategies fall back to newest.
func SortItems(items []models.ContentItem, strategy SortStrategy) []models.ContentItem {
	sorted := make([]models.ContentItem, len(items))
	copy(sorted, items)

	switch strategy {
	case SortFeatured:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].IsFeatured && !sorted[j].IsFeatured
		})
	case SortViewed:
		sort.SliceStable(sorted, func(i, j int) bool {
			return coalesceTime(sorted[i].UpdatedAt, sorted[i].PublishedAt, sorted[i].CreatedAt).
				After(coalesceTime(sorted[j].UpdatedAt, sorted[j].PublishedAt, sorted[j].CreatedAt))
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return coalesceTime(sorted[i].PublishedAt, sorted[i].CreatedAt).
				After(coalesceTime(sorted[j].PublishedAt, sorted[j].CreatedAt))
		})
	}

	return sorted
}

// ParseSortStrategy maps a request parameter onto a strategy, defaulting to
// newest for anything unrecognized.
func ParseSortStrategy(value string) SortStrategy {
	switch SortStrategy(value) {
	case SortFeatured:
		return SortFeatured
	case SortViewed:
		return SortViewed
	default:
		return SortNewest
	}
}

func coalesceTime(candidates ...*time.Time) time.Time {
	for _, t := range candidates {
		if t != nil {
			return *t
		}
	}
	return time.Time{}
}
