package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
)

func TestSelectRelatedRanking(t *testing.T) {
	reference := models.ContentItem{ID: "9", Tags: []string{"moon", "ink"}, Medium: "oil", Year: intPtr(2020)}
	candidates := []models.ContentItem{
		{ID: "1", Tags: []string{"moon", "ink"}, Medium: "oil", Year: intPtr(2020)},   // 2*2 + 1 + 1 = 6
		{ID: "2", Tags: []string{"moon"}, Medium: "acrylic", Year: intPtr(2021)},      // 2*1 + 0 + 0.5 = 2.5
		{ID: "3", Tags: []string{}, Medium: "oil", Year: intPtr(2019)},                // 0 + 1 + 0.5 = 1.5
	}

	related := SelectRelated(reference, candidates, 6)

	assert.Len(t, related, 3)
	assert.Equal(t, "1", related[0].ID)
	assert.Equal(t, "2", related[1].ID)
	assert.Equal(t, "3", related[2].ID)
}

func TestSelectRelatedExcludesReference(t *testing.T) {
	reference := models.ContentItem{ID: "1", Tags: []string{"moon"}}
	candidates := []models.ContentItem{
		{ID: "1", Tags: []string{"moon"}},
		{ID: "2", Tags: []string{"moon"}},
	}

	related := SelectRelated(reference, candidates, 6)

	assert.Len(t, related, 1)
	for _, item := range related {
		assert.NotEqual(t, reference.ID, item.ID)
	}
}

func TestSelectRelatedRespectsLimit(t *testing.T) {
	reference := models.ContentItem{ID: "ref"}
	candidates := make([]models.ContentItem, 10)
	for i := range candidates {
		candidates[i] = models.ContentItem{ID: string(rune('a' + i))}
	}

	assert.Len(t, SelectRelated(reference, candidates, 3), 3)
	assert.Len(t, SelectRelated(reference, candidates, 20), 10)
	assert.Empty(t, SelectRelated(reference, candidates, 0))
	assert.Empty(t, SelectRelated(reference, candidates, -1))
}

func TestSelectRelatedStableTieBreak(t *testing.T) {
	reference := models.ContentItem{ID: "ref", Medium: "oil"}
	// All candidates score identically (medium match only).
	candidates := []models.ContentItem{
		{ID: "a", Medium: "oil"},
		{ID: "b", Medium: "oil"},
		{ID: "c", Medium: "oil"},
		{ID: "d", Medium: "oil"},
	}

	first := SelectRelated(reference, candidates, 4)
	second := SelectRelated(reference, candidates, 4)

	assert.Equal(t, first, second)
	assert.Equal(t, "a", first[0].ID)
	assert.Equal(t, "d", first[3].ID)
}

func TestSelectRelatedTagMatchingIsCaseInsensitive(t *testing.T) {
	reference := models.ContentItem{ID: "ref", Tags: []string{"Moon", "INK"}}
	candidates := []models.ContentItem{
		{ID: "a", Tags: []string{"moon", "ink"}},
		{ID: "b", Tags: []string{"sun"}},
	}

	related := SelectRelated(reference, candidates, 2)

	assert.Equal(t, "a", related[0].ID)
}

func TestSelectRelatedMissingYearsScoreZeroProximity(t *testing.T) {
	reference := models.ContentItem{ID: "ref", Year: intPtr(2020)}
	candidates := []models.ContentItem{
		{ID: "no-year"},
		{ID: "with-year", Year: intPtr(2020)},
	}

	related := SelectRelated(reference, candidates, 2)

	assert.Equal(t, "with-year", related[0].ID)
	assert.Equal(t, "no-year", related[1].ID)
}
