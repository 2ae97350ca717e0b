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

type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) (*models.Submission, error)
	Find(ctx context.Context, filter bson.M) ([]models.Submission, error)
	FindOne(ctx context.Context, filter bson.M) (*models.Submission, error)
	UpdateOne(ctx context.Context, filter bson.M, update bson.M) (*mongo.UpdateResult, error)
}

type submissionRepository struct {
	db database.Service
}

func NewSubmissionRepository(db database.Service) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) collection() *mongo.Collection {
	return r.db.Client().Database(database.Name).Collection("submissions")
}

func (r *submissionRepository) Create(ctx context.Context, submission *models.Submission) (*models.Submission, error) {
	queryType := "create"
	repository := "submission"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	result, err := r.collection().InsertOne(ctx, submission)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to insert submission: %w", err)
	}
	submission.ID = result.InsertedID.(primitive.ObjectID)
	return submission, nil
}

func (r *submissionRepository) Find(ctx context.Context, filter bson.M) ([]models.Submission, error) {
	queryType := "find"
	repository := "submission"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to retrieve submissions: %w", err)
	}
	defer cursor.Close(ctx)

	var submissions []models.Submission
	if err := cursor.All(ctx, &submissions); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("error decoding submissions: %w", err)
	}
	return submissions, nil
}

func (r *submissionRepository) FindOne(ctx context.Context, filter bson.M) (*models.Submission, error) {
	queryType := "findOne"
	repository := "submission"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	var submission models.Submission
	if err := r.collection().FindOne(ctx, filter).Decode(&submission); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) UpdateOne(ctx context.Context, filter bson.M, update bson.M) (*mongo.UpdateResult, error) {
	queryType := "update"
	repository := "submission"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	result, err := r.collection().UpdateOne(ctx, filter, update)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to update submission: %w", err)
	}
	return result, nil
}
