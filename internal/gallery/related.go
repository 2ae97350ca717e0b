package gallery

import (
	"math"
	"sort"
	"strings"

	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
)

// SelectRelated ranks candidates by similarity to the reference item and
// returns the top limit entries. The score is additive:
// two points per shared tag (case-insensitive), one point for an equal
// medium, and a recency-proximity term 1/(1+|Δyear|) when both years are
// present. The sort is stable so ties keep candidate input order, which
// keeps the selection deterministic across repeated calls.
func SelectRelated(reference models.ContentItem, candidates []models.ContentItem, limit int) []models.ContentItem {
	if limit <= 0 {
		return nil
	}

	refTags := make(map[string]bool, len(reference.Tags))
	for _, tag := range reference.Tags {
		refTags[strings.ToLower(tag)] = true
	}

	type scored struct {
		item  models.ContentItem
		score float64
	}

	ranked := make([]scored, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.ID == reference.ID {
			continue
		}

		overlap := 0
		for _, tag := range candidate.Tags {
			if refTags[strings.ToLower(tag)] {
				overlap++
			}
		}

		score := float64(overlap) * 2
		if candidate.Medium == reference.Medium {
			score++
		}
		if candidate.Year != nil && reference.Year != nil {
			score += 1 / (1 + math.Abs(float64(*candidate.Year-*reference.Year)))
		}

		ranked = append(ranked, scored{item: candidate, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit > len(ranked) {
		limit = len(ranked)
	}

	selected := make([]models.ContentItem, 0, limit)
	for _, entry := range ranked[:limit] {
		selected = append(selected, entry.item)
	}
	return selected
}
