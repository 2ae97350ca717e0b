package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SiteSettings is a singleton document; the repository upserts it in place.
type SiteSettings struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SiteTitle      string             `json:"site_title,omitempty" bson:"site_title,omitempty"`
	SiteTagline    string             `json:"site_tagline,omitempty" bson:"site_tagline,omitempty"`
	SEODescription string             `json:"seo_description,omitempty" bson:"seo_description,omitempty"`
	LogoURL        string             `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	FaviconURL     string             `json:"favicon_url,omitempty" bson:"favicon_url,omitempty"`
	SEOImageURL    string             `json:"seo_image_url,omitempty" bson:"seo_image_url,omitempty"`
	HeroTitle      string             `json:"hero_title,omitempty" bson:"hero_title,omitempty"`
	HeroTagline    string             `json:"hero_tagline,omitempty" bson:"hero_tagline,omitempty"`
	HeroBody       string             `json:"hero_body,omitempty" bson:"hero_body,omitempty"`
	ContactPhone   string             `json:"contact_phone,omitempty" bson:"contact_phone,omitempty"`
	ContactEmail   string             `json:"contact_email,omitempty" bson:"contact_email,omitempty"`
	SocialLinks    map[string]string  `json:"social_links,omitempty" bson:"social_links,omitempty"`
	NavLinks       []NavLink          `json:"nav_links,omitempty" bson:"nav_links,omitempty"`
	Theme          map[string]string  `json:"theme,omitempty" bson:"theme,omitempty"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}

type NavLink struct {
	Label string `json:"label" bson:"label"`
	Href  string `json:"href" bson:"href"`
}

type SiteSettingsUpdate struct {
	SiteTitle      *string            `json:"site_title,omitempty" bson:"site_title,omitempty"`
	SiteTagline    *string            `json:"site_tagline,omitempty" bson:"site_tagline,omitempty"`
	SEODescription *string            `json:"seo_description,omitempty" bson:"seo_description,omitempty"`
	LogoURL        *string            `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	FaviconURL     *string            `json:"favicon_url,omitempty" bson:"favicon_url,omitempty"`
	SEOImageURL    *string            `json:"seo_image_url,omitempty" bson:"seo_image_url,omitempty"`
	HeroTitle      *string            `json:"hero_title,omitempty" bson:"hero_title,omitempty"`
	HeroTagline    *string            `json:"hero_tagline,omitempty" bson:"hero_tagline,omitempty"`
	HeroBody       *string            `json:"hero_body,omitempty" bson:"hero_body,omitempty"`
	ContactPhone   *string            `json:"contact_phone,omitempty" bson:"contact_phone,omitempty"`
	ContactEmail   *string            `json:"contact_email,omitempty" bson:"contact_email,omitempty"`
	SocialLinks    *map[string]string `json:"social_links,omitempty" bson:"social_links,omitempty"`
	NavLinks       *[]NavLink         `json:"nav_links,omitempty" bson:"nav_links,omitempty"`
	Theme          *map[string]string `json:"theme,omitempty" bson:"theme,omitempty"`
}
