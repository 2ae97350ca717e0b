package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MuseumRoom struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Slug      string             `json:"slug" bson:"slug"`
	Intro     string             `json:"intro,omitempty" bson:"intro,omitempty"`
	Sort      int                `json:"sort" bson:"sort"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

type MuseumRoomUpdate struct {
	Title *string `json:"title,omitempty" bson:"title,omitempty"`
	Intro *string `json:"intro,omitempty" bson:"intro,omitempty"`
	Sort  *int    `json:"sort,omitempty" bson:"sort,omitempty"`
}

// MuseumArtifact places a painting inside a room. Hotspot holds free-form
// positioning data consumed by the gallery front end.
type MuseumArtifact struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	RoomID     primitive.ObjectID `json:"room_id" bson:"room_id"`
	PaintingID primitive.ObjectID `json:"painting_id" bson:"painting_id"`
	Sort       int                `json:"sort" bson:"sort"`
	Hotspot    map[string]any     `json:"hotspot,omitempty" bson:"hotspot,omitempty"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

type MuseumArtifactUpdate struct {
	Sort    *int            `json:"sort,omitempty" bson:"sort,omitempty"`
	Hotspot *map[string]any `json:"hotspot,omitempty" bson:"hotspot,omitempty"`
}
