package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dyingroomdev/memshaheb-sub001/internal/gallery"
	"github.com/dyingroomdev/memshaheb-sub001/internal/metrics"
	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
	"github.com/dyingroomdev/memshaheb-sub001/internal/repositories"
	"github.com/dyingroomdev/memshaheb-sub001/internal/utils"
)

const defaultPageLimit = 24

// PaintingService defines the interface for painting-related business logic.
type PaintingService interface {
	CreatePainting(ctx context.Context, userID primitive.ObjectID, painting models.Painting) (*models.Painting, error)
	ListPaintings(ctx context.Context, query models.PaintingListQuery) (*models.PaintingPage, error)
	ListAllPaintings(ctx context.Context) ([]models.Painting, error)
	GetPaintingBySlug(ctx context.Context, slug string) (*models.Painting, error)
	UpdatePainting(ctx context.Context, userID, paintingID primitive.ObjectID, updatePayload models.PaintingUpdate) (*models.Painting, error)
	DeletePainting(ctx context.Context, paintingID primitive.ObjectID) error
	GetFacets(ctx context.Context) (gallery.FacetSet, error)
	GetRelated(ctx context.Context, slug string, limit int) ([]models.Painting, error)
}

type paintingServiceImpl struct {
	paintingRepo repositories.PaintingRepository
}

// NewPaintingService creates a new PaintingService.
func NewPaintingService(paintingRepo repositories.PaintingRepository) PaintingService {
	return &paintingServiceImpl{paintingRepo: paintingRepo}
}

func (s *paintingServiceImpl) CreatePainting(ctx context.Context, userID primitive.ObjectID, painting models.Painting) (*models.Painting, error) {
	log.Debug().Str("userID", userID.Hex()).Str("title", painting.Title).Msg("Attempting to create painting")
	if painting.Title == "" {
		log.Warn().Msg("Title is required to create a painting")
		return nil, fmt.Errorf("title is required")
	}

	painting.ID = primitive.NewObjectID()
	painting.CreatedByID = userID
	painting.UpdatedByID = userID
	now := time.Now().UTC()
	painting.CreatedAt = now
	painting.UpdatedAt = now

	slug, err := s.uniqueSlug(ctx, painting.Title, painting.ID.Hex())
	if err != nil {
		log.Error().Err(err).Str("title", painting.Title).Msg("Failed to derive unique slug for painting")
		return nil, fmt.Errorf("failed to derive slug")
	}
	painting.Slug = slug

	created, err := s.paintingRepo.Create(ctx, &painting)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Warn().Str("slug", painting.Slug).Msg("Painting slug already exists")
			return nil, fmt.Errorf("painting slug already exists")
		}
		log.Error().Err(err).Str("title", painting.Title).Msg("Failed to insert painting")
		return nil, err
	}

	metrics.PaintingsCreatedTotal.Inc()
	log.Info().Str("paintingID", created.ID.Hex()).Str("slug", created.Slug).Msg("Painting created successfully")
	return created, nil
}

// uniqueSlug appends -2, -3, ... until the slug is free. The fallback keeps
// titles made entirely of punctuation addressable.
func (s *paintingServiceImpl) uniqueSlug(ctx context.Context, title, fallback string) (string, error) {
	base := utils.Slugify(title, fallback)
	slug := base
	for i := 2; ; i++ {
		count, err := s.paintingRepo.CountDocuments(ctx, bson.M{"slug": slug})
		if err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *paintingServiceImpl) ListPaintings(ctx context.Context, query models.PaintingListQuery) (*models.PaintingPage, error) {
	log.Debug().Interface("query", query).Msg("Attempting to list paintings")

	filter := bson.M{"published_at": bson.M{"$ne": nil}}
	if query.Year != nil {
		filter["year"] = *query.Year
	}
	if query.Medium != "" {
		filter["medium"] = query.Medium
	}
	if len(query.Tags) > 0 {
		filter["tags"] = bson.M{"$all": query.Tags}
	}
	if query.Query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query.Query), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}
	if query.Cursor != "" {
		cursorID, err := primitive.ObjectIDFromHex(query.Cursor)
		if err != nil {
			log.Warn().Str("cursor", query.Cursor).Msg("Invalid pagination cursor")
			return nil, fmt.Errorf("invalid cursor")
		}
		filter["_id"] = bson.M{"$gt": cursorID}
	}

	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultPageLimit
	}

	paintings, err := s.paintingRepo.Find(ctx, filter, limit)
	if err != nil {
		log.Error().Err(err).Msg("Error listing paintings")
		return nil, err
	}

	nextCursor := ""
	if int64(len(paintings)) == limit {
		nextCursor = paintings[len(paintings)-1].ID.Hex()
	}

	// Color filtering and ordering run over the fetched page, not the whole
	// collection, matching how the site has always presented its gallery.
	page := s.arrangePage(paintings, query.Color, query.Sort)

	log.Debug().Int("count", len(page)).Str("nextCursor", nextCursor).Msg("Successfully listed paintings")
	return &models.PaintingPage{Items: page, NextCursor: nextCursor}, nil
}

func (s *paintingServiceImpl) arrangePage(paintings []models.Painting, color, sortParam string) []models.Painting {
	byID := make(map[string]models.Painting, len(paintings))
	items := make([]models.ContentItem, 0, len(paintings))
	for _, p := range paintings {
		item := p.ContentItem()
		if color != "" && gallery.Classify(item) != gallery.ColorFamily(color) {
			continue
		}
		byID[item.ID] = p
		items = append(items, item)
	}

	sorted := gallery.SortItems(items, gallery.ParseSortStrategy(sortParam))

	page := make([]models.Painting, 0, len(sorted))
	for _, item := range sorted {
		page = append(page, byID[item.ID])
	}
	return page
}

func (s *paintingServiceImpl) ListAllPaintings(ctx context.Context) ([]models.Painting, error) {
	log.Debug().Msg("Attempting to list all paintings")
	paintings, err := s.paintingRepo.FindAll(ctx, bson.M{})
	if err != nil {
		log.Error().Err(err).Msg("Error listing all paintings")
		return nil, err
	}
	return paintings, nil
}

func (s *paintingServiceImpl) GetPaintingBySlug(ctx context.Context, slug string) (*models.Painting, error) {
	log.Debug().Str("slug", slug).Msg("Attempting to retrieve painting by slug")
	painting, err := s.paintingRepo.FindOne(ctx, bson.M{"slug": slug})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Warn().Str("slug", slug).Msg("Painting not found")
			return nil, fmt.Errorf("painting not found")
		}
		log.Error().Err(err).Str("slug", slug).Msg("Error finding painting by slug")
		return nil, fmt.Errorf("failed to retrieve painting")
	}
	return painting, nil
}

func (s *paintingServiceImpl) buildPaintingUpdateFields(updatePayload models.PaintingUpdate) bson.M {
	updateFields := bson.M{}
	if updatePayload.Title != nil {
		updateFields["title"] = *updatePayload.Title
	}
	if updatePayload.Description != nil {
		updateFields["description"] = *updatePayload.Description
	}
	if updatePayload.Year != nil {
		updateFields["year"] = *updatePayload.Year
	}
	if updatePayload.Medium != nil {
		updateFields["medium"] = *updatePayload.Medium
	}
	if updatePayload.Dimensions != nil {
		updateFields["dimensions"] = *updatePayload.Dimensions
	}
	if updatePayload.ImageURL != nil {
		updateFields["image_url"] = *updatePayload.ImageURL
	}
	if updatePayload.LqipData != nil {
		updateFields["lqip_data"] = *updatePayload.LqipData
	}
	if updatePayload.Tags != nil {
		updateFields["tags"] = *updatePayload.Tags
	}
	if updatePayload.IsFeatured != nil {
		updateFields["is_featured"] = *updatePayload.IsFeatured
	}
	if updatePayload.PublishedAt != nil {
		updateFields["published_at"] = *updatePayload.PublishedAt
	}
	return updateFields
}

func (s *paintingServiceImpl) UpdatePainting(ctx context.Context, userID, paintingID primitive.ObjectID, updatePayload models.PaintingUpdate) (*models.Painting, error) {
	log.Debug().Str("userID", userID.Hex()).Str("paintingID", paintingID.Hex()).Msg("Attempting to update painting")
	updateFields := s.buildPaintingUpdateFields(updatePayload)
	if len(updateFields) == 0 {
		log.Warn().Str("paintingID", paintingID.Hex()).Msg("No fields to update for painting")
		return nil, fmt.Errorf("no fields to update")
	}

	// The slug is permanent once assigned; title edits never break links.
	updateFields["updated_at"] = time.Now().UTC()
	updateFields["updated_by_id"] = userID

	result, err := s.paintingRepo.UpdateOne(ctx, bson.M{"_id": paintingID}, bson.M{"$set": updateFields})
	if err != nil {
		log.Error().Err(err).Str("paintingID", paintingID.Hex()).Msg("Failed to update painting")
		return nil, fmt.Errorf("failed to update painting")
	}
	if result.MatchedCount == 0 {
		log.Warn().Str("paintingID", paintingID.Hex()).Msg("Painting not found for update")
		return nil, fmt.Errorf("painting not found")
	}

	updated, err := s.paintingRepo.FindOne(ctx, bson.M{"_id": paintingID})
	if err != nil {
		log.Error().Err(err).Str("paintingID", paintingID.Hex()).Msg("Failed to find updated painting")
		return nil, fmt.Errorf("failed to retrieve the updated painting")
	}
	log.Info().Str("paintingID", paintingID.Hex()).Msg("Painting updated successfully")
	return updated, nil
}

func (s *paintingServiceImpl) DeletePainting(ctx context.Context, paintingID primitive.ObjectID) error {
	log.Debug().Str("paintingID", paintingID.Hex()).Msg("Attempting to delete painting")
	result, err := s.paintingRepo.DeleteOne(ctx, bson.M{"_id": paintingID})
	if err != nil {
		log.Error().Err(err).Str("paintingID", paintingID.Hex()).Msg("Failed to delete painting")
		return err
	}
	if result.DeletedCount == 0 {
		log.Warn().Str("paintingID", paintingID.Hex()).Msg("Painting not found for deletion")
		return fmt.Errorf("painting not found")
	}
	log.Info().Str("paintingID", paintingID.Hex()).Msg("Painting deleted successfully")
	return nil
}

func (s *paintingServiceImpl) GetFacets(ctx context.Context) (gallery.FacetSet, error) {
	log.Debug().Msg("Attempting to build painting facets")
	paintings, err := s.paintingRepo.FindAll(ctx, bson.M{"published_at": bson.M{"$ne": nil}})
	if err != nil {
		log.Error().Err(err).Msg("Error fetching paintings for facets")
		return gallery.FacetSet{}, err
	}

	items := make([]models.ContentItem, 0, len(paintings))
	for _, p := range paintings {
		items = append(items, p.ContentItem())
	}

	facets := gallery.CollectFacets(items)
	metrics.FacetBuildsTotal.Inc()
	log.Debug().Int("years", len(facets.Years)).Int("media", len(facets.Media)).Int("colors", len(facets.Colors)).Msg("Facets built successfully")
	return facets, nil
}

func (s *paintingServiceImpl) GetRelated(ctx context.Context, slug string, limit int) ([]models.Painting, error) {
	log.Debug().Str("slug", slug).Int("limit", limit).Msg("Attempting to select related paintings")
	reference, err := s.GetPaintingBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	candidates, err := s.paintingRepo.FindAll(ctx, bson.M{"published_at": bson.M{"$ne": nil}})
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Error fetching candidate paintings")
		return nil, err
	}

	byID := make(map[string]models.Painting, len(candidates))
	items := make([]models.ContentItem, 0, len(candidates))
	for _, p := range candidates {
		item := p.ContentItem()
		byID[item.ID] = p
		items = append(items, item)
	}

	selected := gallery.SelectRelated(reference.ContentItem(), items, limit)
	related := make([]models.Painting, 0, len(selected))
	for _, item := range selected {
		related = append(related, byID[item.ID])
	}

	metrics.RelatedLookupsTotal.Inc()
	log.Debug().Str("slug", slug).Int("count", len(related)).Msg("Related paintings selected")
	return related, nil
}
