package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
	"github.com/dyingroomdev/memshaheb-sub001/internal/repositories"
)

// SettingsService defines the interface for site settings business logic.
type SettingsService interface {
	GetSettings(ctx context.Context) (*models.SiteSettings, error)
	UpdateSettings(ctx context.Context, updatePayload models.SiteSettingsUpdate) (*models.SiteSettings, error)
}

type settingsServiceImpl struct {
	settingsRepo repositories.SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo repositories.SettingsRepository) SettingsService {
	return &settingsServiceImpl{settingsRepo: settingsRepo}
}

func (s *settingsServiceImpl) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error retrieving site settings")
		return nil, err
	}
	return settings, nil
}

func (s *settingsServiceImpl) buildSettingsUpdateFields(updatePayload models.SiteSettingsUpdate) bson.M {
	updateFields := bson.M{}
	if updatePayload.SiteTitle != nil {
		updateFields["site_title"] = *updatePayload.SiteTitle
	}
	if updatePayload.SiteTagline != nil {
		updateFields["site_tagline"] = *updatePayload.SiteTagline
	}
	if updatePayload.SEODescription != nil {
		updateFields["seo_description"] = *updatePayload.SEODescription
	}
	if updatePayload.LogoURL != nil {
		updateFields["logo_url"] = *updatePayload.LogoURL
	}
	if updatePayload.FaviconURL != nil {
		updateFields["favicon_url"] = *updatePayload.FaviconURL
	}
	if updatePayload.SEOImageURL != nil {
		updateFields["seo_image_url"] = *updatePayload.SEOImageURL
	}
	if updatePayload.HeroTitle != nil {
		updateFields["hero_title"] = *updatePayload.HeroTitle
	}
	if updatePayload.HeroTagline != nil {
		updateFields["hero_tagline"] = *updatePayload.HeroTagline
	}
	if updatePayload.HeroBody != nil {
		updateFields["hero_body"] = *updatePayload.HeroBody
	}
	if updatePayload.ContactPhone != nil {
		updateFields["contact_phone"] = *updatePayload.ContactPhone
	}
	if updatePayload.ContactEmail != nil {
		updateFields["contact_email"] = *updatePayload.ContactEmail
	}
	if updatePayload.SocialLinks != nil {
		updateFields["social_links"] = *updatePayload.SocialLinks
	}
	if updatePayload.NavLinks != nil {
		updateFields["nav_links"] = *updatePayload.NavLinks
	}
	if updatePayload.Theme != nil {
		updateFields["theme"] = *updatePayload.Theme
	}
	return updateFields
}

func (s *settingsServiceImpl) UpdateSettings(ctx context.Context, updatePayload models.SiteSettingsUpdate) (*models.SiteSettings, error) {
	log.Debug().Msg("Attempting to update site settings")
	updateFields := s.buildSettingsUpdateFields(updatePayload)
	if len(updateFields) == 0 {
		log.Warn().Msg("No fields to update for site settings")
		return nil, fmt.Errorf("no fields to update")
	}
	updateFields["updated_at"] = time.Now().UTC()

	settings, err := s.settingsRepo.Update(ctx, updateFields)
	if err != nil {
		log.Error().Err(err).Msg("Failed to update site settings")
		return nil, err
	}
	log.Info().Msg("Site settings updated successfully")
	return settings, nil
}
