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

// RoomWithArtifacts is the public projection of a room and its placements.
type RoomWithArtifacts struct {
	models.MuseumRoom
	Artifacts []models.MuseumArtifact `json:"artifacts"`
}

// MuseumService defines the interface for museum-related business logic.
type MuseumService interface {
	CreateRoom(ctx context.Context, room models.MuseumRoom) (*models.MuseumRoom, error)
	GetRooms(ctx context.Context) ([]models.MuseumRoom, error)
	GetRoomBySlug(ctx context.Context, slug string) (*RoomWithArtifacts, error)
	UpdateRoom(ctx context.Context, roomID primitive.ObjectID, updatePayload models.MuseumRoomUpdate) (*models.MuseumRoom, error)
	DeleteRoom(ctx context.Context, roomID primitive.ObjectID) error

	AddArtifact(ctx context.Context, artifact models.MuseumArtifact) (*models.MuseumArtifact, error)
	UpdateArtifact(ctx context.Context, artifactID primitive.ObjectID, updatePayload models.MuseumArtifactUpdate) (*models.MuseumArtifact, error)
	RemoveArtifact(ctx context.Context, artifactID primitive.ObjectID) error
}

type museumServiceImpl struct {
	museumRepo   repositories.MuseumRepository
	paintingRepo repositories.PaintingRepository
}

// NewMuseumService creates a new MuseumService.
func NewMuseumService(museumRepo repositories.MuseumRepository, paintingRepo repositories.PaintingRepository) MuseumService {
	return &museumServiceImpl{museumRepo: museumRepo, paintingRepo: paintingRepo}
}

func (s *museumServiceImpl) CreateRoom(ctx context.Context, room models.MuseumRoom) (*models.MuseumRoom, error) {
	log.Debug().Str("title", room.Title).Msg("Attempting to create museum room")
	if room.Title == "" {
		return nil, fmt.Errorf("title is required")
	}

	room.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	room.CreatedAt = now
	room.UpdatedAt = now
	room.Slug = utils.Slugify(room.Title, room.ID.Hex())

	created, err := s.museumRepo.CreateRoom(ctx, &room)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Warn().Str("slug", room.Slug).Msg("Museum room slug already exists")
			return nil, fmt.Errorf("museum room slug already exists")
		}
		log.Error().Err(err).Str("title", room.Title).Msg("Failed to insert museum room")
		return nil, err
	}
	log.Info().Str("roomID", created.ID.Hex()).Str("slug", created.Slug).Msg("Museum room created successfully")
	return created, nil
}

func (s *museumServiceImpl) GetRooms(ctx context.Context) ([]models.MuseumRoom, error) {
	rooms, err := s.museumRepo.FindRooms(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error finding museum rooms")
		return nil, err
	}
	return rooms, nil
}

func (s *museumServiceImpl) GetRoomBySlug(ctx context.Context, slug string) (*RoomWithArtifacts, error) {
	log.Debug().Str("slug", slug).Msg("Attempting to retrieve museum room by slug")
	room, err := s.museumRepo.FindRoom(ctx, bson.M{"slug": slug})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Warn().Str("slug", slug).Msg("Museum room not found")
			return nil, fmt.Errorf("museum room not found")
		}
		log.Error().Err(err).Str("slug", slug).Msg("Error finding museum room by slug")
		return nil, fmt.Errorf("failed to retrieve museum room")
	}

	artifacts, err := s.museumRepo.FindArtifactsByRoom(ctx, room.ID)
	if err != nil {
		log.Error().Err(err).Str("roomID", room.ID.Hex()).Msg("Error finding artifacts for room")
		return nil, fmt.Errorf("failed to retrieve museum artifacts")
	}
	if artifacts == nil {
		artifacts = []models.MuseumArtifact{}
	}

	return &RoomWithArtifacts{MuseumRoom: *room, Artifacts: artifacts}, nil
}

func (s *museumServiceImpl) UpdateRoom(ctx context.Context, roomID primitive.ObjectID, updatePayload models.MuseumRoomUpdate) (*models.MuseumRoom, error) {
	log.Debug().Str("roomID", roomID.Hex()).Msg("Attempting to update museum room")
	updateFields := bson.M{}
	if updatePayload.Title != nil {
		updateFields["title"] = *updatePayload.Title
	}
	if updatePayload.Intro != nil {
		updateFields["intro"] = *updatePayload.Intro
	}
	if updatePayload.Sort != nil {
		updateFields["sort"] = *updatePayload.Sort
	}
	if len(updateFields) == 0 {
		log.Warn().Str("roomID", roomID.Hex()).Msg("No fields to update for museum room")
		return nil, fmt.Errorf("no fields to update")
	}
	updateFields["updated_at"] = time.Now().UTC()

	result, err := s.museumRepo.UpdateRoom(ctx, bson.M{"_id": roomID}, bson.M{"$set": updateFields})
	if err != nil {
		log.Error().Err(err).Str("roomID", roomID.Hex()).Msg("Failed to update museum room")
		return nil, fmt.Errorf("failed to update museum room")
	}
	if result.MatchedCount == 0 {
		log.Warn().Str("roomID", roomID.Hex()).Msg("Museum room not found for update")
		return nil, fmt.Errorf("museum room not found")
	}

	updated, err := s.museumRepo.FindRoom(ctx, bson.M{"_id": roomID})
	if err != nil {
		log.Error().Err(err).Str("roomID", roomID.Hex()).Msg("Failed to find updated museum room")
		return nil, fmt.Errorf("failed to retrieve the updated museum room")
	}
	log.Info().Str("roomID", roomID.Hex()).Msg("Museum room updated successfully")
	return updated, nil
}

// DeleteRoom removes the room and every artifact placed in it.
func (s *museumServiceImpl) DeleteRoom(ctx context.Context, roomID primitive.ObjectID) error {
	log.Debug().Str("roomID", roomID.Hex()).Msg("Attempting to delete museum room")
	result, err := s.museumRepo.DeleteRoom(ctx, bson.M{"_id": roomID})
	if err != nil {
		log.Error().Err(err).Str("roomID", roomID.Hex()).Msg("Failed to delete museum room")
		return err
	}
	if result.DeletedCount == 0 {
		log.Warn().Str("roomID", roomID.Hex()).Msg("Museum room not found for deletion")
		return fmt.Errorf("museum room not found")
	}

	if _, err := s.museumRepo.DeleteArtifactsByRoom(ctx, roomID); err != nil {
		log.Error().Err(err).Str("roomID", roomID.Hex()).Msg("Failed to delete artifacts for removed room")
		return fmt.Errorf("failed to delete artifacts for room")
	}

	log.Info().Str("roomID", roomID.Hex()).Msg("Museum room and its artifacts deleted successfully")
	return nil
}

func (s *museumServiceImpl) AddArtifact(ctx context.Context, artifact models.MuseumArtifact) (*models.MuseumArtifact, error) {
	log.Debug().Str("roomID", artifact.RoomID.Hex()).Str("paintingID", artifact.PaintingID.Hex()).Msg("Attempting to add museum artifact")

	if _, err := s.museumRepo.FindRoom(ctx, bson.M{"_id": artifact.RoomID}); err != nil {
		if err == mongo.ErrNoDocuments {
			log.Warn().Str("roomID", artifact.RoomID.Hex()).Msg("Room not found for new artifact")
			return nil, fmt.Errorf("museum room not found")
		}
		return nil, fmt.Errorf("failed to verify museum room")
	}
	if _, err := s.paintingRepo.FindOne(ctx, bson.M{"_id": artifact.PaintingID}); err != nil {
		if err == mongo.ErrNoDocuments {
			log.Warn().Str("paintingID", artifact.PaintingID.Hex()).Msg("Painting not found for new artifact")
			return nil, fmt.Errorf("painting not found")
		}
		return nil, fmt.Errorf("failed to verify painting")
	}

	artifact.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	artifact.CreatedAt = now
	artifact.UpdatedAt = now

	created, err := s.museumRepo.CreateArtifact(ctx, &artifact)
	if err != nil {
		log.Error().Err(err).Str("roomID", artifact.RoomID.Hex()).Msg("Failed to insert museum artifact")
		return nil, err
	}
	log.Info().Str("artifactID", created.ID.Hex()).Str("roomID", created.RoomID.Hex()).Msg("Museum artifact added successfully")
	return created, nil
}

func (s *museumServiceImpl) UpdateArtifact(ctx context.Context, artifactID primitive.ObjectID, updatePayload models.MuseumArtifactUpdate) (*models.MuseumArtifact, error) {
	log.Debug().Str("artifactID", artifactID.Hex()).Msg("Attempting to update museum artifact")
	updateFields := bson.M{}
	if updatePayload.Sort != nil {
		updateFields["sort"] = *updatePayload.Sort
	}
	if updatePayload.Hotspot != nil {
		updateFields["hotspot"] = *updatePayload.Hotspot
	}
	if len(updateFields) == 0 {
		log.Warn().Str("artifactID", artifactID.Hex()).Msg("No fields to update for museum artifact")
		return nil, fmt.Errorf("no fields to update")
	}
	updateFields["updated_at"] = time.Now().UTC()

	result, err := s.museumRepo.UpdateArtifact(ctx, bson.M{"_id": artifactID}, bson.M{"$set": updateFields})
	if err != nil {
		log.Error().Err(err).Str("artifactID", artifactID.Hex()).Msg("Failed to update museum artifact")
		return nil, fmt.Errorf("failed to update museum artifact")
	}
	if result.MatchedCount == 0 {
		log.Warn().Str("artifactID", artifactID.Hex()).Msg("Museum artifact not found for update")
		return nil, fmt.Errorf("museum artifact not found")
	}

	updated, err := s.museumRepo.FindArtifact(ctx, bson.M{"_id": artifactID})
	if err != nil {
		log.Error().Err(err).Str("artifactID", artifactID.Hex()).Msg("Failed to find updated museum artifact")
		return nil, fmt.Errorf("failed to retrieve the updated museum artifact")
	}
	log.Info().Str("artifactID", artifactID.Hex()).Msg("Museum artifact updated successfully")
	return updated, nil
}

func (s *museumServiceImpl) RemoveArtifact(ctx context.Context, artifactID primitive.ObjectID) error {
	log.Debug().Str("artifactID", artifactID.Hex()).Msg("Attempting to remove museum artifact")
	result, err := s.museumRepo.DeleteArtifact(ctx, bson.M{"_id": artifactID})
	if err != nil {
		log.Error().Err(err).Str("artifactID", artifactID.Hex()).Msg("Failed to delete museum artifact")
		return err
	}
	if result.DeletedCount == 0 {
		log.Warn().Str("artifactID", artifactID.Hex()).Msg("Museum artifact not found for deletion")
		return fmt.Errorf("museum artifact not found")
	}
	log.Info().Str("artifactID", artifactID.Hex()).Msg("Museum artifact removed successfully")
	return nil
}
