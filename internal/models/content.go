package models

import "time"

// ContentItem is the canonical projection consumed by the gallery utilities
// (classifier, facet collector, related-item selector, sort engine).
// Paintings and blog posts both flatten into this shape so the utilities
// operate on one concrete type instead of duck-typed source records.
// All fields except ID and Title may be absent; the utilities treat absent
// values as the lowest-priority case and never fail on them.
type ContentItem struct {
	ID          string
	Title       string
	Description string
	Medium      string
	Tags        []string
	Year        *int
	IsFeatured  bool
	CreatedAt   *time.Time
	PublishedAt *time.Time
	UpdatedAt   *time.Time
}

func (p Painting) ContentItem() ContentItem {
	createdAt := p.CreatedAt
	updatedAt := p.UpdatedAt
	return ContentItem{
		ID:          p.ID.Hex(),
		Title:       p.Title,
		Description: p.Description,
		Medium:      p.Medium,
		Tags:        p.Tags,
		Year:        p.Year,
		IsFeatured:  p.IsFeatured,
		CreatedAt:   timeOrNil(createdAt),
		PublishedAt: p.PublishedAt,
		UpdatedAt:   timeOrNil(updatedAt),
	}
}

func (b BlogPost) ContentItem() ContentItem {
	createdAt := b.CreatedAt
	updatedAt := b.UpdatedAt
	var year *int
	if b.PublishedAt != nil {
		y := b.PublishedAt.Year()
		year = &y
	}
	return ContentItem{
		ID:          b.ID.Hex(),
		Title:       b.Title,
		Description: b.Excerpt,
		Tags:        b.Tags,
		Year:        year,
		IsFeatured:  b.IsFeatured,
		CreatedAt:   timeOrNil(createdAt),
		PublishedAt: b.PublishedAt,
		UpdatedAt:   timeOrNil(updatedAt),
	}
}

func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
