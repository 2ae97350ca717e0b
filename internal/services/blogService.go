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

// BlogService defines the interface for blog-related business logic.
type BlogService interface {
	CreatePost(ctx context.Context, authorID primitive.ObjectID, post models.BlogPost) (*models.BlogPost, error)
	ListPosts(ctx context.Context, query models.BlogListQuery) ([]models.BlogListItem, string, error)
	GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	UpdatePost(ctx context.Context, postID primitive.ObjectID, updatePayload models.BlogPostUpdate) (*models.BlogPost, error)
	DeletePost(ctx context.Context, postID primitive.ObjectID) error
	GetRelatedPosts(ctx context.Context, slug string, limit int) ([]models.BlogPost, error)

	AddCategory(ctx context.Context, category models.BlogCategory) (*models.BlogCategory, error)
	GetCategories(ctx context.Context) ([]models.BlogCategory, error)
	UpdateCategory(ctx context.Context, categoryID primitive.ObjectID, updatePayload models.BlogCategoryUpdate) error
	DeleteCategory(ctx context.Context, categoryID primitive.ObjectID) error
}

type blogServiceImpl struct {
	blogRepo repositories.BlogRepository
}

// NewBlogService creates a new BlogService.
func NewBlogService(blogRepo repositories.BlogRepository) BlogService {
	return &blogServiceImpl{blogRepo: blogRepo}
}

func (s *blogServiceImpl) CreatePost(ctx context.Context, authorID primitive.ObjectID, post models.BlogPost) (*models.BlogPost, error) {
	log.Debug().Str("authorID", authorID.Hex()).Str("title", post.Title).Msg("Attempting to create blog post")
	if post.Title == "" || post.ContentMD == "" {
		log.Warn().Msg("Title and content are required to create a blog post")
		return nil, fmt.Errorf("title and content are required")
	}

	post.ID = primitive.NewObjectID()
	post.AuthorID = authorID
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	post.Slug = utils.Slugify(post.Title, post.ID.Hex())
	post.ReadTimeMinutes = utils.EstimateReadTime(post.ContentMD)

	created, err := s.blogRepo.Create(ctx, &post)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Warn().Str("slug", post.Slug).Msg("Blog post slug already exists")
			return nil, fmt.Errorf("blog post slug already exists")
		}
		log.Error().Err(err).Str("title", post.Title).Msg("Failed to insert blog post")
		return nil, err
	}

	metrics.BlogPostsCreatedTotal.Inc()
	log.Info().Str("postID", created.ID.Hex()).Str("slug", created.Slug).Int("readTime", created.ReadTimeMinutes).Msg("Blog post created successfully")
	return created, nil
}

func (s *blogServiceImpl) ListPosts(ctx context.Context, query models.BlogListQuery) ([]models.BlogListItem, string, error) {
	log.Debug().Interface("query", query).Msg("Attempting to list blog posts")

	filter := bson.M{"published_at": bson.M{"$ne": nil}}
	if query.Tag != "" {
		filter["tags"] = query.Tag
	}
	if query.CategoryID != nil {
		filter["category_id"] = *query.CategoryID
	}
	if query.Query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query.Query), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"excerpt": pattern},
			bson.M{"content_md": pattern},
		}
	}
	if query.Cursor != "" {
		cursorID, err := primitive.ObjectIDFromHex(query.Cursor)
		if err != nil {
			log.Warn().Str("cursor", query.Cursor).Msg("Invalid pagination cursor")
			return nil, "", fmt.Errorf("invalid cursor")
		}
		filter["_id"] = bson.M{"$gt": cursorID}
	}

	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultPageLimit
	}

	posts, err := s.blogRepo.Find(ctx, filter, limit)
	if err != nil {
		log.Error().Err(err).Msg("Error listing blog posts")
		return nil, "", err
	}

	nextCursor := ""
	if int64(len(posts)) == limit {
		nextCursor = posts[len(posts)-1].ID.Hex()
	}

	byID := make(map[string]models.BlogPost, len(posts))
	items := make([]models.ContentItem, 0, len(posts))
	for _, p := range posts {
		item := p.ContentItem()
		byID[item.ID] = p
		items = append(items, item)
	}
	sorted := gallery.SortItems(items, gallery.ParseSortStrategy(query.Sort))

	page := make([]models.BlogListItem, 0, len(sorted))
	for _, item := range sorted {
		page = append(page, s.decoratePost(byID[item.ID], query.Query))
	}

	log.Debug().Int("count", len(page)).Str("nextCursor", nextCursor).Msg("Successfully listed blog posts")
	return page, nextCursor, nil
}

// decoratePost attaches the human-readable publish label and, when the reader
// searched, highlighted title and excerpt fragments.
func (s *blogServiceImpl) decoratePost(post models.BlogPost, searchQuery string) models.BlogListItem {
	item := models.BlogListItem{BlogPost: post}
	if post.PublishedAt != nil {
		if label, ok := utils.FormatPublishedDate(post.PublishedAt.Format(time.RFC3339)); ok {
			item.PublishedLabel = label
		}
	}
	if searchQuery != "" {
		item.TitleHighlighted = utils.HighlightQuery(post.Title, searchQuery)
		item.ExcerptHighlight = utils.HighlightQuery(post.Excerpt, searchQuery)
	}
	return item
}

func (s *blogServiceImpl) GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	log.Debug().Str("slug", slug).Msg("Attempting to retrieve blog post by slug")
	post, err := s.blogRepo.FindOne(ctx, bson.M{"slug": slug})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Warn().Str("slug", slug).Msg("Blog post not found")
			return nil, fmt.Errorf("blog post not found")
		}
		log.Error().Err(err).Str("slug", slug).Msg("Error finding blog post by slug")
		return nil, fmt.Errorf("failed to retrieve blog post")
	}
	return post, nil
}

func (s *blogServiceImpl) buildPostUpdateFields(updatePayload models.BlogPostUpdate) bson.M {
	updateFields := bson.M{}
	if updatePayload.Title != nil {
		updateFields["title"] = *updatePayload.Title
	}
	if updatePayload.Excerpt != nil {
		updateFields["excerpt"] = *updatePayload.Excerpt
	}
	if updatePayload.ContentMD != nil {
		updateFields["content_md"] = *updatePayload.ContentMD
		updateFields["read_time_minutes"] = utils.EstimateReadTime(*updatePayload.ContentMD)
	}
	if updatePayload.CoverURL != nil {
		updateFields["cover_url"] = *updatePayload.CoverURL
	}
	if updatePayload.Tags != nil {
		updateFields["tags"] = *updatePayload.Tags
	}
	if updatePayload.CategoryID != nil {
		updateFields["category_id"] = *updatePayload.CategoryID
	}
	if updatePayload.MetaTitle != nil {
		updateFields["meta_title"] = *updatePayload.MetaTitle
	}
	if updatePayload.MetaDescription != nil {
		updateFields["meta_description"] = *updatePayload.MetaDescription
	}
	if updatePayload.IsFeatured != nil {
		updateFields["is_featured"] = *updatePayload.IsFeatured
	}
	if updatePayload.PublishedAt != nil {
		updateFields["published_at"] = *updatePayload.PublishedAt
	}
	return updateFields
}

func (s *blogServiceImpl) UpdatePost(ctx context.Context, postID primitive.ObjectID, updatePayload models.BlogPostUpdate) (*models.BlogPost, error) {
	log.Debug().Str("postID", postID.Hex()).Msg("Attempting to update blog post")
	updateFields := s.buildPostUpdateFields(updatePayload)
	if len(updateFields) == 0 {
		log.Warn().Str("postID", postID.Hex()).Msg("No fields to update for blog post")
		return nil, fmt.Errorf("no fields to update")
	}
	updateFields["updated_at"] = time.Now().UTC()

	result, err := s.blogRepo.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$set": updateFields})
	if err != nil {
		log.Error().Err(err).Str("postID", postID.Hex()).Msg("Failed to update blog post")
		return nil, fmt.Errorf("failed to update blog post")
	}
	if result.MatchedCount == 0 {
		log.Warn().Str("postID", postID.Hex()).Msg("Blog post not found for update")
		return nil, fmt.Errorf("blog post not found")
	}

	updated, err := s.blogRepo.FindOne(ctx, bson.M{"_id": postID})
	if err != nil {
		log.Error().Err(err).Str("postID", postID.Hex()).Msg("Failed to find updated blog post")
		return nil, fmt.Errorf("failed to retrieve the updated blog post")
	}
	log.Info().Str("postID", postID.Hex()).Msg("Blog post updated successfully")
	return updated, nil
}

func (s *blogServiceImpl) DeletePost(ctx context.Context, postID primitive.ObjectID) error {
	log.Debug().Str("postID", postID.Hex()).Msg("Attempting to delete blog post")
	result, err := s.blogRepo.DeleteOne(ctx, bson.M{"_id": postID})
	if err != nil {
		log.Error().Err(err).Str("postID", postID.Hex()).Msg("Failed to delete blog post")
		return err
	}
	if result.DeletedCount == 0 {
		log.Warn().Str("postID", postID.Hex()).Msg("Blog post not found for deletion")
		return fmt.Errorf("blog post not found")
	}
	log.Info().Str("postID", postID.Hex()).Msg("Blog post deleted successfully")
	return nil
}

func (s *blogServiceImpl) GetRelatedPosts(ctx context.Context, slug string, limit int) ([]models.BlogPost, error) {
	log.Debug().Str("slug", slug).Int("limit", limit).Msg("Attempting to select related blog posts")
	reference, err := s.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	candidates, err := s.blogRepo.FindAll(ctx, bson.M{"published_at": bson.M{"$ne": nil}})
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Error fetching candidate blog posts")
		return nil, err
	}

	byID := make(map[string]models.BlogPost, len(candidates))
	items := make([]models.ContentItem, 0, len(candidates))
	for _, p := range candidates {
		item := p.ContentItem()
		byID[item.ID] = p
		items = append(items, item)
	}

	selected := gallery.SelectRelated(reference.ContentItem(), items, limit)
	related := make([]models.BlogPost, 0, len(selected))
	for _, item := range selected {
		related = append(related, byID[item.ID])
	}

	metrics.RelatedLookupsTotal.Inc()
	log.Debug().Str("slug", slug).Int("count", len(related)).Msg("Related blog posts selected")
	return related, nil
}

func (s *blogServiceImpl) AddCategory(ctx context.Context, category models.BlogCategory) (*models.BlogCategory, error) {
	log.Debug().Str("name", category.Name).Msg("Attempting to add blog category")
	if category.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	category.ID = primitive.NewObjectID()
	category.Slug = utils.Slugify(category.Name, category.ID.Hex())

	created, err := s.blogRepo.CreateCategory(ctx, &category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Warn().Str("name", category.Name).Msg("Blog category already exists")
			return nil, fmt.Errorf("blog category already exists")
		}
		log.Error().Err(err).Str("name", category.Name).Msg("Failed to insert blog category")
		return nil, err
	}
	log.Info().Str("categoryID", created.ID.Hex()).Str("name", created.Name).Msg("Blog category added successfully")
	return created, nil
}

func (s *blogServiceImpl) GetCategories(ctx context.Context) ([]models.BlogCategory, error) {
	categories, err := s.blogRepo.FindCategories(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error finding blog categories")
		return nil, err
	}
	return categories, nil
}

func (s *blogServiceImpl) UpdateCategory(ctx context.Context, categoryID primitive.ObjectID, updatePayload models.BlogCategoryUpdate) error {
	log.Debug().Str("categoryID", categoryID.Hex()).Msg("Attempting to update blog category")
	if updatePayload.Name == nil || *updatePayload.Name == "" {
		return fmt.Errorf("no fields to update")
	}

	updateFields := bson.M{
		"name": *updatePayload.Name,
		"slug": utils.Slugify(*updatePayload.Name, categoryID.Hex()),
	}
	result, err := s.blogRepo.UpdateCategory(ctx, bson.M{"_id": categoryID}, bson.M{"$set": updateFields})
	if err != nil {
		log.Error().Err(err).Str("categoryID", categoryID.Hex()).Msg("Failed to update blog category")
		return fmt.Errorf("failed to update blog category")
	}
	if result.MatchedCount == 0 {
		log.Warn().Str("categoryID", categoryID.Hex()).Msg("Blog category not found for update")
		return fmt.Errorf("blog category not found")
	}
	log.Info().Str("categoryID", categoryID.Hex()).Msg("Blog category updated successfully")
	return nil
}

func (s *blogServiceImpl) DeleteCategory(ctx context.Context, categoryID primitive.ObjectID) error {
	log.Debug().Str("categoryID", categoryID.Hex()).Msg("Attempting to delete blog category")
	result, err := s.blogRepo.DeleteCategory(ctx, bson.M{"_id": categoryID})
	if err != nil {
		log.Error().Err(err).Str("categoryID", categoryID.Hex()).Msg("Failed to delete blog category")
		return err
	}
	if result.DeletedCount == 0 {
		log.Warn().Str("categoryID", categoryID.Hex()).Msg("Blog category not found for deletion")
		return fmt.Errorf("blog category not found")
	}
	log.Info().Str("categoryID", categoryID.Hex()).Msg("Blog category deleted successfully")
	return nil
}
