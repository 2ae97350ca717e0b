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

type PaintingRepository interface {
	Create(ctx context.Context, painting *models.Painting) (*models.Painting, error)
	Find(ctx context.Context, filter bson.M, limit int64) ([]models.Painting, error)
	FindAll(ctx context.Context, filter bson.M) ([]models.Painting, error)
	FindOne(ctx context.Context, filter bson.M) (*models.Painting, error)
	UpdateOne(ctx context.Context, filter bson.M, update bson.M) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error)
	CountDocuments(ctx context.Context, filter bson.M) (int64, error)
}

type paintingRepository struct {
	db database.Service
}

func NewPaintingRepository(db database.Service) PaintingRepository {
	return &paintingRepository{db: db}
}

func (r *paintingRepository) collection() *mongo.Collection {
	return r.db.Client().Database(database.Name).Collection("paintings")
}

func (r *paintingRepository) Create(ctx context.Context, painting *models.Painting) (*models.Painting, error) {
	queryType := "create"
	repository := "painting"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	result, err := r.collection().InsertOne(ctx, painting)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to insert painting: %w", err)
	}
	painting.ID = result.InsertedID.(primitive.ObjectID)
	return painting, nil
}

// Find returns up to limit paintings in ascending _id order. Callers embed
// the cursor position in the filter ({"_id": {"$gt": cursor}}), which keeps
// pagination deterministic across concurrent inserts.
func (r *paintingRepository) Find(ctx context.Context, filter bson.M, limit int64) ([]models.Painting, error) {
	queryType := "find"
	repository := "painting"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}).SetLimit(limit)
	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to retrieve paintings: %w", err)
	}
	defer cursor.Close(ctx)

	var paintings []models.Painting
	if err := cursor.All(ctx, &paintings); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("error decoding paintings: %w", err)
	}
	return paintings, nil
}

func (r *paintingRepository) FindAll(ctx context.Context, filter bson.M) ([]models.Painting, error) {
	queryType := "findAll"
	repository := "painting"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	cursor, err := r.collection().Find(ctx, filter)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to retrieve paintings: %w", err)
	}
	defer cursor.Close(ctx)

	var paintings []models.Painting
	if err := cursor.All(ctx, &paintings); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("error decoding paintings: %w", err)
	}
	return paintings, nil
}

func (r *paintingRepository) FindOne(ctx context.Context, filter bson.M) (*models.Painting, error) {
	queryType := "findOne"
	repository := "painting"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	var painting models.Painting
	err := r.collection().FindOne(ctx, filter).Decode(&painting)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, err
	}
	return &painting, nil
}

func (r *paintingRepository) UpdateOne(ctx context.Context, filter bson.M, update bson.M) (*mongo.UpdateResult, error) {
	queryType := "update"
	repository := "painting"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	result, err := r.collection().UpdateOne(ctx, filter, update)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to update painting: %w", err)
	}
	return result, nil
}

func (r *paintingRepository) DeleteOne(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error) {
	queryType := "delete"
	repository := "painting"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	result, err := r.collection().DeleteOne(ctx, filter)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to delete painting: %w", err)
	}
	return result, nil
}

func (r *paintingRepository) CountDocuments(ctx context.Context, filter bson.M) (int64, error) {
	queryType := "count"
	repository := "painting"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	count, err := r.collection().CountDocuments(ctx, filter)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return 0, fmt.Errorf("failed to count paintings: %w", err)
	}
	return count, nil
}
