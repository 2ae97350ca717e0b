package repositories

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dyingroomdev/memshaheb-sub001/internal/database"
	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
	"github.com/dyingroomdev/memshaheb-sub001/internal/utils"
)

type MuseumRepository interface {
	CreateRoom(ctx context.Context, room *models.MuseumRoom) (*models.MuseumRoom, error)
	FindRooms(ctx context.Context) ([]models.MuseumRoom, error)
	FindRoom(ctx context.Context, filter bson.M) (*models.MuseumRoom, error)
	UpdateRoom(ctx context.Context, filter bson.M, update bson.M) (*mongo.UpdateResult, error)
	DeleteRoom(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error)

	CreateArtifact(ctx context.Context, artifact *models.MuseumArtifact) (*models.MuseumArtifact, error)
	FindArtifactsByRoom(ctx context.Context, roomID primitive.ObjectID) ([]models.MuseumArtifact, error)
	FindArtifact(ctx context.Context, filter bson.M) (*models.MuseumArtifact, error)
	UpdateArtifact(ctx context.Context, filter bson.M, update bson.M) (*mongo.UpdateResult, error)
	DeleteArtifact(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error)
	DeleteArtifactsByRoom(ctx context.Context, roomID primitive.ObjectID) (*mongo.DeleteResult, error)
}

type museumRepository struct {
	db database.Service
}

func NewMuseumRepository(db database.Service) MuseumRepository {
	return &museumRepository{db: db}
}

func (r *museumRepository) rooms() *mongo.Collection {
	return r.db.Client().Database(database.Name).Collection("museum_rooms")
}

func (r *museumRepository) artifacts() *mongo.Collection {
	return r.db.Client().Database(database.Name).Collection("museum_artifacts")
}

func (r *museumRepository) observe(queryType string) (*prometheus.Timer, *string) {
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, "museum", status).Observe(v)
	}))
	return timer, &status
}

func (r *museumRepository) fail(queryType string, status *string) {
	*status = "error"
	utils.DBQueryErrorsTotal.WithLabelValues(queryType, "museum").Inc()
}

func (r *museumRepository) CreateRoom(ctx context.Context, room *models.MuseumRoom) (*models.MuseumRoom, error) {
	timer, status := r.observe("createRoom")
	defer timer.ObserveDuration()

	result, err := r.rooms().InsertOne(ctx, room)
	if err != nil {
		r.fail("createRoom", status)
		return nil, fmt.Errorf("failed to insert museum room: %w", err)
	}
	room.ID = result.InsertedID.(primitive.ObjectID)
	return room, nil
}

func (r *museumRepository) FindRooms(ctx context.Context) ([]models.MuseumRoom, error) {
	timer, status := r.observe("findRooms")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "sort", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.rooms().Find(ctx, bson.M{}, opts)
	if err != nil {
		r.fail("findRooms", status)
		return nil, fmt.Errorf("failed to retrieve museum rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.MuseumRoom
	if err := cursor.All(ctx, &rooms); err != nil {
		r.fail("findRooms", status)
		return nil, fmt.Errorf("error decoding museum rooms: %w", err)
	}
	return rooms, nil
}

func (r *museumRepository) FindRoom(ctx context.Context, filter bson.M) (*models.MuseumRoom, error) {
	timer, status := r.observe("findRoom")
	defer timer.ObserveDuration()

	var room models.MuseumRoom
	if err := r.rooms().FindOne(ctx, filter).Decode(&room); err != nil {
		r.fail("findRoom", status)
		return nil, err
	}
	return &room, nil
}

func (r *museumRepository) UpdateRoom(ctx context.Context, filter bson.M, update bson.M) (*mongo.UpdateResult, error) {
	timer, status := r.observe("updateRoom")
	defer timer.ObserveDuration()

	result, err := r.rooms().UpdateOne(ctx, filter, update)
	if err != nil {
		r.fail("updateRoom", status)
		return nil, fmt.Errorf("failed to update museum room: %w", err)
	}
	return result, nil
}

func (r *museumRepository) DeleteRoom(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error) {
	timer, status := r.observe("deleteRoom")
	defer timer.ObserveDuration()

	result, err := r.rooms().DeleteOne(ctx, filter)
	if err != nil {
		r.fail("deleteRoom", status)
		return nil, fmt.Errorf("failed to delete museum room: %w", err)
	}
	return result, nil
}

func (r *museumRepository) CreateArtifact(ctx context.Context, artifact *models.MuseumArtifact) (*models.MuseumArtifact, error) {
	timer, status := r.observe("createArtifact")
	defer timer.ObserveDuration()

	result, err := r.artifacts().InsertOne(ctx, artifact)
	if err != nil {
		r.fail("createArtifact", status)
		return nil, fmt.Errorf("failed to insert museum artifact: %w", err)
	}
	artifact.ID = result.InsertedID.(primitive.ObjectID)
	return artifact, nil
}

func (r *museumRepository) FindArtifactsByRoom(ctx context.Context, roomID primitive.ObjectID) ([]models.MuseumArtifact, error) {
	timer, status := r.observe("findArtifactsByRoom")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "sort", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.artifacts().Find(ctx, bson.M{"room_id": roomID}, opts)
	if err != nil {
		r.fail("findArtifactsByRoom", status)
		return nil, fmt.Errorf("failed to retrieve museum artifacts: %w", err)
	}
	defer cursor.Close(ctx)

	var artifacts []models.MuseumArtifact
	if err := cursor.All(ctx, &artifacts); err != nil {
		r.fail("findArtifactsByRoom", status)
		return nil, fmt.Errorf("error decoding museum artifacts: %w", err)
	}
	return artifacts, nil
}

func (r *museumRepository) FindArtifact(ctx context.Context, filter bson.M) (*models.MuseumArtifact, error) {
	timer, status := r.observe("findArtifact")
	defer timer.ObserveDuration()

	var artifact models.MuseumArtifact
	if err := r.artifacts().FindOne(ctx, filter).Decode(&artifact); err != nil {
		r.fail("findArtifact", status)
		return nil, err
	}
	return &artifact, nil
}

func (r *museumRepository) UpdateArtifact(ctx context.Context, filter bson.M, update bson.M) (*mongo.UpdateResult, error) {
	timer, status := r.observe("updateArtifact")
	defer timer.ObserveDuration()

	result, err := r.artifacts().UpdateOne(ctx, filter, update)
	if err != nil {
		r.fail("updateArtifact", status)
		return nil, fmt.Errorf("failed to update museum artifact: %w", err)
	}
	return result, nil
}

func (r *museumRepository) DeleteArtifact(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error) {
	timer, status := r.observe("deleteArtifact")
	defer timer.ObserveDuration()

	result, err := r.artifacts().DeleteOne(ctx, filter)
	if err != nil {
		r.fail("deleteArtifact", status)
		return nil, fmt.Errorf("failed to delete museum artifact: %w", err)
	}
	return result, nil
}

func (r *museumRepository) DeleteArtifactsByRoom(ctx context.Context, roomID primitive.ObjectID) (*mongo.DeleteResult, error) {
	timer, status := r.observe("deleteArtifactsByRoom")
	defer timer.ObserveDuration()

	result, err := r.artifacts().DeleteMany(ctx, bson.M{"room_id": roomID})
	if err != nil {
		r.fail("deleteArtifactsByRoom", status)
		return nil, fmt.Errorf("failed to delete museum artifacts: %w", err)
	}
	return result, nil
}
