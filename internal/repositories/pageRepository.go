package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dyingroomdev/memshaheb-sub001/internal/database"
	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
	"github.com/dyingroomdev/memshaheb-sub001/internal/utils"
)

// PageRepository stores free-form CMS pages plus the biography and philosophy
// singleton documents.
type PageRepository interface {
	Create(ctx context.Context, page *models.Page) (*models.Page, error)
	FindAll(ctx context.Context) ([]models.Page, error)
	FindOne(ctx context.Context, filter bson.M) (*models.Page, error)
	UpdateOne(ctx context.Context, filter bson.M, update bson.M) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error)

	GetBiography(ctx context.Context) (*models.Biography, error)
	UpsertBiography(ctx context.Context, bio *models.Biography) (*models.Biography, error)
	GetPhilosophy(ctx context.Context) (*models.Philosophy, error)
	UpsertPhilosophy(ctx context.Context, phil *models.Philosophy) (*models.Philosophy, error)
}

type pageRepository struct {
	db database.Service
}

func NewPageRepository(db database.Service) PageRepository {
	return &pageRepository{db: db}
}

func (r *pageRepository) pages() *mongo.Collection {
	return r.db.Client().Database(database.Name).Collection("pages")
}

func (r *pageRepository) singletons(name string) *mongo.Collection {
	return r.db.Client().Database(database.Name).Collection(name)
}

func (r *pageRepository) observe(queryType string) (*prometheus.Timer, *string) {
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, "page", status).Observe(v)
	}))
	return timer, &status
}

func (r *pageRepository) fail(queryType string, status *string) {
	*status = "error"
	utils.DBQueryErrorsTotal.WithLabelValues(queryType, "page").Inc()
}

func (r *pageRepository) Create(ctx context.Context, page *models.Page) (*models.Page, error) {
	timer, status := r.observe("create")
	defer timer.ObserveDuration()

	result, err := r.pages().InsertOne(ctx, page)
	if err != nil {
		r.fail("create", status)
		return nil, fmt.Errorf("failed to insert page: %w", err)
	}
	page.ID = result.InsertedID.(primitive.ObjectID)
	return page, nil
}

func (r *pageRepository) FindAll(ctx context.Context) ([]models.Page, error) {
	timer, status := r.observe("findAll")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "slug", Value: 1}})
	cursor, err := r.pages().Find(ctx, bson.M{}, opts)
	if err != nil {
		r.fail("findAll", status)
		return nil, fmt.Errorf("failed to retrieve pages: %w", err)
	}
	defer cursor.Close(ctx)

	var pages []models.Page
	if err := cursor.All(ctx, &pages); err != nil {
		r.fail("findAll", status)
		return nil, fmt.Errorf("error decoding pages: %w", err)
	}
	return pages, nil
}

func (r *pageRepository) FindOne(ctx context.Context, filter bson.M) (*models.Page, error) {
	timer, status := r.observe("findOne")
	defer timer.ObserveDuration()

	var page models.Page
	if err := r.pages().FindOne(ctx, filter).Decode(&page); err != nil {
		r.fail("findOne", status)
		return nil, err
	}
	return &page, nil
}

func (r *pageRepository) UpdateOne(ctx context.Context, filter bson.M, update bson.M) (*mongo.UpdateResult, error) {
	timer, status := r.observe("update")
	defer timer.ObserveDuration()

	result, err := r.pages().UpdateOne(ctx, filter, update)
	if err != nil {
		r.fail("update", status)
		return nil, fmt.Errorf("failed to update page: %w", err)
	}
	return result, nil
}

func (r *pageRepository) DeleteOne(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error) {
	timer, status := r.observe("delete")
	defer timer.ObserveDuration()

	result, err := r.pages().DeleteOne(ctx, filter)
	if err != nil {
		r.fail("delete", status)
		return nil, fmt.Errorf("failed to delete page: %w", err)
	}
	return result, nil
}

func (r *pageRepository) GetBiography(ctx context.Context) (*models.Biography, error) {
	timer, status := r.observe("getBiography")
	defer timer.ObserveDuration()

	var bio models.Biography
	if err := r.singletons("biography").FindOne(ctx, bson.M{}).Decode(&bio); err != nil {
		r.fail("getBiography", status)
		return nil, err
	}
	return &bio, nil
}

func (r *pageRepository) UpsertBiography(ctx context.Context, bio *models.Biography) (*models.Biography, error) {
	timer, status := r.observe("upsertBiography")
	defer timer.ObserveDuration()

	bio.UpdatedAt = time.Now().UTC()
	opts := options.FindOneAndReplace().SetUpsert(true).SetReturnDocument(options.After)
	var saved models.Biography
	err := r.singletons("biography").FindOneAndReplace(ctx, bson.M{}, bio, opts).Decode(&saved)
	if err != nil {
		r.fail("upsertBiography", status)
		return nil, fmt.Errorf("failed to upsert biography: %w", err)
	}
	return &saved, nil
}

func (r *pageRepository) GetPhilosophy(ctx context.Context) (*models.Philosophy, error) {
	timer, status := r.observe("getPhilosophy")
	defer timer.ObserveDuration()

	var phil models.Philosophy
	if err := r.singletons("philosophy").FindOne(ctx, bson.M{}).Decode(&phil); err != nil {
		r.fail("getPhilosophy", status)
		return nil, err
	}
	return &phil, nil
}

func (r *pageRepository) UpsertPhilosophy(ctx context.Context, phil *models.Philosophy) (*models.Philosophy, error) {
	timer, status := r.observe("upsertPhilosophy")
	defer timer.ObserveDuration()

	phil.UpdatedAt = time.Now().UTC()
	opts := options.FindOneAndReplace().SetUpsert(true).SetReturnDocument(options.After)
	var saved models.Philosophy
	err := r.singletons("philosophy").FindOneAndReplace(ctx, bson.M{}, phil, opts).Decode(&saved)
	if err != nil {
		r.fail("upsertPhilosophy", status)
		return nil, fmt.Errorf("failed to upsert philosophy: %w", err)
	}
	return &saved, nil
}
