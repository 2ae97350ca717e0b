package repositories

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dyingroomdev/memshaheb-sub001/internal/database"
	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
	"github.com/dyingroomdev/memshaheb-sub001/internal/utils"
)

// SettingsRepository manages the single site_settings document.
type SettingsRepository interface {
	Get(ctx context.Context) (*models.SiteSettings, error)
	Update(ctx context.Context, updateFields bson.M) (*models.SiteSettings, error)
}

type settingsRepository struct {
	db database.Service
}

func NewSettingsRepository(db database.Service) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) collection() *mongo.Collection {
	return r.db.Client().Database(database.Name).Collection("site_settings")
}

func (r *settingsRepository) Get(ctx context.Context) (*models.SiteSettings, error) {
	queryType := "get"
	repository := "settings"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	var settings models.SiteSettings
	err := r.collection().FindOne(ctx, bson.M{}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		// First read on a fresh deployment: hand back an empty document
		// rather than an error so the public endpoint always renders.
		return &models.SiteSettings{}, nil
	}
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to retrieve site settings: %w", err)
	}
	return &settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, updateFields bson.M) (*models.SiteSettings, error) {
	queryType := "update"
	repository := "settings"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var settings models.SiteSettings
	err := r.collection().FindOneAndUpdate(ctx, bson.M{}, bson.M{"$set": updateFields}, opts).Decode(&settings)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to update site settings: %w", err)
	}
	return &settings, nil
}
