package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Page struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Slug      string             `json:"slug" bson:"slug"`
	Sections  []PageSection      `json:"sections" bson:"sections"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

type PageSection struct {
	Kind string         `json:"kind" bson:"kind"`
	Body string         `json:"body,omitempty" bson:"body,omitempty"`
	Data map[string]any `json:"data,omitempty" bson:"data,omitempty"`
}

type PageUpdate struct {
	Title    *string        `json:"title,omitempty" bson:"title,omitempty"`
	Sections *[]PageSection `json:"sections,omitempty" bson:"sections,omitempty"`
}

// Biography and Philosophy are singleton CMS documents.
type Biography struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name             string             `json:"name,omitempty" bson:"name,omitempty"`
	Tagline          string             `json:"tagline,omitempty" bson:"tagline,omitempty"`
	Quote            string             `json:"quote,omitempty" bson:"quote,omitempty"`
	QuoteAttribution string             `json:"quote_attribution,omitempty" bson:"quote_attribution,omitempty"`
	RichText         string             `json:"rich_text,omitempty" bson:"rich_text,omitempty"`
	PortraitURL      string             `json:"portrait_url,omitempty" bson:"portrait_url,omitempty"`
	InstagramHandle  string             `json:"instagram_handle,omitempty" bson:"instagram_handle,omitempty"`
	Timeline         []map[string]any   `json:"timeline,omitempty" bson:"timeline,omitempty"`
	UpdatedAt        time.Time          `json:"updated_at" bson:"updated_at"`
}

type Philosophy struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title,omitempty" bson:"title,omitempty"`
	RichText  string             `json:"rich_text,omitempty" bson:"rich_text,omitempty"`
	Quote     string             `json:"quote,omitempty" bson:"quote,omitempty"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
