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

type BlogRepository interface {
	Create(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error)
	Find(ctx context.Context, filter bson.M, limit int64) ([]models.BlogPost, error)
	FindAll(ctx context.Context, filter bson.M) ([]models.BlogPost, error)
	FindOne(ctx context.Context, filter bson.M) (*models.BlogPost, error)
	UpdateOne(ctx context.Context, filter bson.M, update bson.M) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error)

	CreateCategory(ctx context.Context, category *models.BlogCategory) (*models.BlogCategory, error)
	FindCategories(ctx context.Context) ([]models.BlogCategory, error)
	UpdateCategory(ctx context.Context, filter bson.M, update bson.M) (*mongo.UpdateResult, error)
	DeleteCategory(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error)
}

type blogRepository struct {
	db database.Service
}

func NewBlogRepository(db database.Service) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) posts() *mongo.Collection {
	return r.db.Client().Database(database.Name).Collection("blogs")
}

func (r *blogRepository) categories() *mongo.Collection {
	return r.db.Client().Database(database.Name).Collection("blog_categories")
}

func (r *blogRepository) Create(ctx context.Context, post *models.BlogPost) (*models.BlogPost, error) {
	queryType := "create"
	repository := "blog"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	result, err := r.posts().InsertOne(ctx, post)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to insert blog post: %w", err)
	}
	post.ID = result.InsertedID.(primitive.ObjectID)
	return post, nil
}

func (r *blogRepository) Find(ctx context.Context, filter bson.M, limit int64) ([]models.BlogPost, error) {
	queryType := "find"
	repository := "blog"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}).SetLimit(limit)
	cursor, err := r.posts().Find(ctx, filter, opts)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to retrieve blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.BlogPost
	if err := cursor.All(ctx, &posts); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("error decoding blog posts: %w", err)
	}
	return posts, nil
}

func (r *blogRepository) FindAll(ctx context.Context, filter bson.M) ([]models.BlogPost, error) {
	queryType := "findAll"
	repository := "blog"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	cursor, err := r.posts().Find(ctx, filter)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to retrieve blog posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.BlogPost
	if err := cursor.All(ctx, &posts); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("error decoding blog posts: %w", err)
	}
	return posts, nil
}

func (r *blogRepository) FindOne(ctx context.Context, filter bson.M) (*models.BlogPost, error) {
	queryType := "findOne"
	repository := "blog"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	var post models.BlogPost
	err := r.posts().FindOne(ctx, filter).Decode(&post)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) UpdateOne(ctx context.Context, filter bson.M, update bson.M) (*mongo.UpdateResult, error) {
	queryType := "update"
	repository := "blog"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	result, err := r.posts().UpdateOne(ctx, filter, update)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}
	return result, nil
}

func (r *blogRepository) DeleteOne(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error) {
	queryType := "delete"
	repository := "blog"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	result, err := r.posts().DeleteOne(ctx, filter)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to delete blog post: %w", err)
	}
	return result, nil
}

func (r *blogRepository) CreateCategory(ctx context.Context, category *models.BlogCategory) (*models.BlogCategory, error) {
	queryType := "createCategory"
	repository := "blog"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	result, err := r.categories().InsertOne(ctx, category)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to insert blog category: %w", err)
	}
	category.ID = result.InsertedID.(primitive.ObjectID)
	return category, nil
}

func (r *blogRepository) FindCategories(ctx context.Context) ([]models.BlogCategory, error) {
	queryType := "findCategories"
	repository := "blog"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.categories().Find(ctx, bson.M{}, opts)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to retrieve blog categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.BlogCategory
	if err := cursor.All(ctx, &categories); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("error decoding blog categories: %w", err)
	}
	return categories, nil
}

func (r *blogRepository) UpdateCategory(ctx context.Context, filter bson.M, update bson.M) (*mongo.UpdateResult, error) {
	queryType := "updateCategory"
	repository := "blog"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	result, err := r.categories().UpdateOne(ctx, filter, update)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to update blog category: %w", err)
	}
	return result, nil
}

func (r *blogRepository) DeleteCategory(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error) {
	queryType := "deleteCategory"
	repository := "blog"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	result, err := r.categories().DeleteOne(ctx, filter)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, fmt.Errorf("failed to delete blog category: %w", err)
	}
	return result, nil
}
