package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BlogPost struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Slug            string             `json:"slug" bson:"slug"`
	Excerpt         string             `json:"excerpt,omitempty" bson:"excerpt,omitempty"`
	ContentMD       string             `json:"content_md" bson:"content_md"`
	CoverURL        string             `json:"cover_url,omitempty" bson:"cover_url,omitempty"`
	Tags            []string           `json:"tags" bson:"tags"`
	CategoryID      primitive.ObjectID `json:"category_id,omitempty" bson:"category_id,omitempty"`
	AuthorID        primitive.ObjectID `json:"author_id,omitempty" bson:"author_id,omitempty"`
	MetaTitle       string             `json:"meta_title,omitempty" bson:"meta_title,omitempty"`
	MetaDescription string             `json:"meta_description,omitempty" bson:"meta_description,omitempty"`
	ReadTimeMinutes int                `json:"read_time_minutes,omitempty" bson:"read_time_minutes,omitempty"`
	IsFeatured      bool               `json:"is_featured" bson:"is_featured"`
	PublishedAt     *time.Time         `json:"published_at,omitempty" bson:"published_at,omitempty"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

type BlogPostUpdate struct {
	Title           *string             `json:"title,omitempty" bson:"title,omitempty"`
	Excerpt         *string             `json:"excerpt,omitempty" bson:"excerpt,omitempty"`
	ContentMD       *string             `json:"content_md,omitempty" bson:"content_md,omitempty"`
	CoverURL        *string             `json:"cover_url,omitempty" bson:"cover_url,omitempty"`
	Tags            *[]string           `json:"tags,omitempty" bson:"tags,omitempty"`
	CategoryID      *primitive.ObjectID `json:"category_id,omitempty" bson:"category_id,omitempty"`
	MetaTitle       *string             `json:"meta_title,omitempty" bson:"meta_title,omitempty"`
	MetaDescription *string             `json:"meta_description,omitempty" bson:"meta_description,omitempty"`
	IsFeatured      *bool               `json:"is_featured,omitempty" bson:"is_featured,omitempty"`
	PublishedAt     *time.Time          `json:"published_at,omitempty" bson:"published_at,omitempty"`
}

type BlogCategory struct {
	ID   primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
	Slug string             `json:"slug" bson:"slug"`
}

type BlogCategoryUpdate struct {
	Name *string `json:"name,omitempty" bson:"name,omitempty"`
}

// BlogListItem is a list projection; the highlighted fragments are only
// populated when the caller searched with a query term.
type BlogListItem struct {
	BlogPost
	PublishedLabel   string `json:"published_label,omitempty"`
	TitleHighlighted string `json:"title_highlighted,omitempty"`
	ExcerptHighlight string `json:"excerpt_highlighted,omitempty"`
}

type BlogListQuery struct {
	Query      string
	Tag        string
	CategoryID *primitive.ObjectID
	Sort       string
	Cursor     string
	Limit      int64
}
