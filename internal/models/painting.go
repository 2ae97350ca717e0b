package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Painting struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Slug        string             `json:"slug" bson:"slug"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Year        *int               `json:"year,omitempty" bson:"year,omitempty"`
	Medium      string             `json:"medium,omitempty" bson:"medium,omitempty"`
	Dimensions  string             `json:"dimensions,omitempty" bson:"dimensions,omitempty"`
	ImageURL    string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	LqipData    string             `json:"lqip_data,omitempty" bson:"lqip_data,omitempty"`
	Tags        []string           `json:"tags" bson:"tags"`
	IsFeatured  bool               `json:"is_featured" bson:"is_featured"`
	PublishedAt *time.Time         `json:"published_at,omitempty" bson:"published_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
	CreatedByID primitive.ObjectID `json:"created_by_id,omitempty" bson:"created_by_id,omitempty"`
	UpdatedByID primitive.ObjectID `json:"updated_by_id,omitempty" bson:"updated_by_id,omitempty"`
}

type PaintingUpdate struct {
	Title       *string    `json:"title,omitempty" bson:"title,omitempty"`
	Description *string    `json:"description,omitempty" bson:"description,omitempty"`
	Year        *int       `json:"year,omitempty" bson:"year,omitempty"`
	Medium      *string    `json:"medium,omitempty" bson:"medium,omitempty"`
	Dimensions  *string    `json:"dimensions,omitempty" bson:"dimensions,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	LqipData    *string    `json:"lqip_data,omitempty" bson:"lqip_data,omitempty"`
	Tags        *[]string  `json:"tags,omitempty" bson:"tags,omitempty"`
	IsFeatured  *bool      `json:"is_featured,omitempty" bson:"is_featured,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty" bson:"published_at,omitempty"`
}

// PaintingListQuery carries the filters accepted by the public listing endpoint.
type PaintingListQuery struct {
	Query  string
	Year   *int
	Medium string
	Tags   []string
	Color  string
	Sort   string
	Cursor string
	Limit  int64
}

// PaintingPage is one page of listing results. NextCursor is empty on the
// last page.
type PaintingPage struct {
	Items      []Painting `json:"items"`
	NextCursor string     `json:"next_cursor,omitempty"`
}
