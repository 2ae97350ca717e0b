package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
	"github.com/dyingroomdev/memshaheb-sub001/internal/repositories"
	"github.com/dyingroomdev/memshaheb-sub001/internal/utils"
)

// PageService defines the interface for CMS page business logic, including
// the biography and philosophy singletons.
type PageService interface {
	CreatePage(ctx context.Context, page models.Page) (*models.Page, error)
	GetPages(ctx context.Context) ([]models.Page, error)
	GetPageBySlug(ctx context.Context, slug string) (*models.Page, error)
	UpdatePage(ctx context.Context, pageID primitive.ObjectID, updatePayload models.PageUpdate) (*models.Page, error)
	DeletePage(ctx context.Context, pageID primitive.ObjectID) error

	GetBiography(ctx context.Context) (*models.Biography, error)
	SaveBiography(ctx context.Context, bio models.Biography) (*models.Biography, error)
	GetPhilosophy(ctx context.Context) (*models.Philosophy, error)
	SavePhilosophy(ctx context.Context, phil models.Philosophy) (*models.Philosophy, error)
}

type pageServiceImpl struct {
	pageRepo repositories.PageRepository
}

// NewPageService creates a new PageService.
func NewPageService(pageRepo repositories.PageRepository) PageService {
	return &pageServiceImpl{pageRepo: pageRepo}
}

func (s *pageServiceImpl) CreatePage(ctx context.Context, page models.Page) (*models.Page, error) {
	log.Debug().Str("title", page.Title).Msg("Attempting to create page")
	if page.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	page.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	page.CreatedAt = now
	page.UpdatedAt = now
	page.Slug = utils.Slugify(page.Title, page.ID.Hex())
	if page.Sections == nil {
		page.Sections = []models.PageSection{}
	}

	created, err := s.pageRepo.Create(ctx, &page)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Warn().Str("slug", page.Slug).Msg("Page slug already exists")
			return nil, fmt.Errorf("page slug already exists")
		}
		log.Error().Err(err).Str("title", page.Title).Msg("Failed to insert page")
		return nil, err
	}
	log.Info().Str("pageID", created.ID.Hex()).Str("slug", created.Slug).Msg("Page created successfully")
	return created, nil
}

func (s *pageServiceImpl) GetPages(ctx context.Context) ([]models.Page, error) {
	pages, err := s.pageRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error finding pages")
		return nil, err
	}
	return pages, nil
}

func (s *pageServiceImpl) GetPageBySlug(ctx context.Context, slug string) (*models.Page, error) {
	log.Debug().Str("slug", slug).Msg("Attempting to retrieve page by slug")
	page, err := s.pageRepo.FindOne(ctx, bson.M{"slug": slug})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Warn().Str("slug", slug).Msg("Page not found")
			return nil, fmt.Errorf("page not found")
		}
		log.Error().Err(err).Str("slug", slug).Msg("Error finding page by slug")
		return nil, fmt.Errorf("failed to retrieve page")
	}
	return page, nil
}

func (s *pageServiceImpl) UpdatePage(ctx context.Context, pageID primitive.ObjectID, updatePayload models.PageUpdate) (*models.Page, error) {
	log.Debug().Str("pageID", pageID.Hex()).Msg("Attempting to update page")
	updateFields := bson.M{}
	if updatePayload.Title != nil {
		updateFields["title"] = *updatePayload.Title
	}
	if updatePayload.Sections != nil {
		updateFields["sections"] = *updatePayload.Sections
	}
	if len(updateFields) == 0 {
		log.Warn().Str("pageID", pageID.Hex()).Msg("No fields to update for page")
		return nil, fmt.Errorf("no fields to update")
	}
	updateFields["updated_at"] = time.Now().UTC()

	result, err := s.pageRepo.UpdateOne(ctx, bson.M{"_id": pageID}, bson.M{"$set": updateFields})
	if err != nil {
		log.Error().Err(err).Str("pageID", pageID.Hex()).Msg("Failed to update page")
		return nil, fmt.Errorf("failed to update page")
	}
	if result.MatchedCount == 0 {
		log.Warn().Str("pageID", pageID.Hex()).Msg("Page not found for update")
		return nil, fmt.Errorf("page not found")
	}

	updated, err := s.pageRepo.FindOne(ctx, bson.M{"_id": pageID})
	if err != nil {
		log.Error().Err(err).Str("pageID", pageID.Hex()).Msg("Failed to find updated page")
		return nil, fmt.Errorf("failed to retrieve the updated page")
	}
	log.Info().Str("pageID", pageID.Hex()).Msg("Page updated successfully")
	return updated, nil
}

func (s *pageServiceImpl) DeletePage(ctx context.Context, pageID primitive.ObjectID) error {
	log.Debug().Str("pageID", pageID.Hex()).Msg("Attempting to delete page")
	result, err := s.pageRepo.DeleteOne(ctx, bson.M{"_id": pageID})
	if err != nil {
		log.Error().Err(err).Str("pageID", pageID.Hex()).Msg("Failed to delete page")
		return err
	}
	if result.DeletedCount == 0 {
		log.Warn().Str("pageID", pageID.Hex()).Msg("Page not found for deletion")
		return fmt.Errorf("page not found")
	}
	log.Info().Str("pageID", pageID.Hex()).Msg("Page deleted successfully")
	return nil
}

func (s *pageServiceImpl) GetBiography(ctx context.Context) (*models.Biography, error) {
	bio, err := s.pageRepo.GetBiography(ctx)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &models.Biography{}, nil
		}
		log.Error().Err(err).Msg("Error retrieving biography")
		return nil, fmt.Errorf("failed to retrieve biography")
	}
	return bio, nil
}

func (s *pageServiceImpl) SaveBiography(ctx context.Context, bio models.Biography) (*models.Biography, error) {
	log.Debug().Msg("Attempting to save biography")
	saved, err := s.pageRepo.UpsertBiography(ctx, &bio)
	if err != nil {
		log.Error().Err(err).Msg("Failed to save biography")
		return nil, fmt.Errorf("failed to save biography")
	}
	log.Info().Msg("Biography saved successfully")
	return saved, nil
}

func (s *pageServiceImpl) GetPhilosophy(ctx context.Context) (*models.Philosophy, error) {
	phil, err := s.pageRepo.GetPhilosophy(ctx)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &models.Philosophy{}, nil
		}
		log.Error().Err(err).Msg("Error retrieving philosophy")
		return nil, fmt.Errorf("failed to retrieve philosophy")
	}
	return phil, nil
}

func (s *pageServiceImpl) SavePhilosophy(ctx context.Context, phil models.Philosophy) (*models.Philosophy, error) {
	log.Debug().Msg("Attempting to save philosophy")
	saved, err := s.pageRepo.UpsertPhilosophy(ctx, &phil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to save philosophy")
		return nil, fmt.Errorf("failed to save philosophy")
	}
	log.Info().Msg("Philosophy saved successfully")
	return saved, nil
}
