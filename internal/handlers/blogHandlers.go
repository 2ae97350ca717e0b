package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
	"github.com/dyingroomdev/memshaheb-sub001/internal/services"
	"github.com/dyingroomdev/memshaheb-sub001/internal/utils"
)

type BlogHandler struct {
	service services.BlogService
}

func NewBlogHandler(service services.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := models.BlogListQuery{
		Query:  q.Get("q"),
		Tag:    q.Get("tag"),
		Sort:   q.Get("sort"),
		Cursor: q.Get("cursor"),
	}
	if categoryStr := q.Get("category"); categoryStr != "" {
		categoryID, err := primitive.ObjectIDFromHex(categoryStr)
		if err != nil {
			utils.SendJSONError(w, "Invalid category parameter", http.StatusBadRequest)
			return
		}
		query.CategoryID = &categoryID
	}
	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil {
			utils.SendJSONError(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		query.Limit = limit
	}

	posts, nextCursor, err := h.service.ListPosts(r.Context(), query)
	if err != nil {
		log.Error().Err(err).Msg("Error listing blog posts via service")
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid cursor") {
			statusCode = http.StatusBadRequest
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"items":       posts,
		"next_cursor": nextCursor,
	})
}

func (h *BlogHandler) GetPostBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post, err := h.service.GetPostBySlug(r.Context(), slug)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, post)
}

func (h *BlogHandler) GetRelatedPosts(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	limit := 3
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			utils.SendJSONError(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	related, err := h.service.GetRelatedPosts(r.Context(), slug, limit)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, related)
}

func (h *BlogHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(w, r)
	if err != nil {
		return
	}

	var post models.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		log.Error().Err(err).Msg("Invalid JSON for CreatePost")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.CreatePost(r.Context(), userID, post)
	if err != nil {
		log.Error().Err(err).Msg("Error creating blog post via service")
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "required") {
			statusCode = http.StatusBadRequest
		} else if strings.Contains(err.Error(), "already exists") {
			statusCode = http.StatusConflict
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	log.Info().Str("post_id", created.ID.Hex()).Str("slug", created.Slug).Msg("Blog post created successfully")
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *BlogHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	var updatePayload models.BlogPostUpdate
	if err := json.NewDecoder(r.Body).Decode(&updatePayload); err != nil {
		log.Error().Err(err).Msg("Invalid JSON payload for UpdatePost")
		utils.SendJSONError(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdatePost(r.Context(), postID, updatePayload)
	if err != nil {
		log.Error().Err(err).Str("post_id", postID.Hex()).Msg("Error updating blog post via service")
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "no fields to update") {
			statusCode = http.StatusBadRequest
		} else if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func (h *BlogHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	if err := h.service.DeletePost(r.Context(), postID); err != nil {
		log.Error().Err(err).Str("post_id", postID.Hex()).Msg("Error deleting blog post via service")
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BlogHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var category models.BlogCategory
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		log.Error().Err(err).Msg("Invalid JSON for AddCategory")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.AddCategory(r.Context(), category)
	if err != nil {
		log.Error().Err(err).Msg("Error adding blog category via service")
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "required") {
			statusCode = http.StatusBadRequest
		} else if strings.Contains(err.Error(), "already exists") {
			statusCode = http.StatusConflict
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *BlogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error getting blog categories from service")
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, categories)
}

func (h *BlogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	var updatePayload models.BlogCategoryUpdate
	if err := json.NewDecoder(r.Body).Decode(&updatePayload); err != nil {
		log.Error().Err(err).Msg("Invalid JSON payload for UpdateCategory")
		utils.SendJSONError(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateCategory(r.Context(), categoryID, updatePayload); err != nil {
		log.Error().Err(err).Str("category_id", categoryID.Hex()).Msg("Error updating blog category via service")
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "no fields to update") {
			statusCode = http.StatusBadRequest
		} else if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BlogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	if err := h.service.DeleteCategory(r.Context(), categoryID); err != nil {
		log.Error().Err(err).Str("category_id", categoryID.Hex()).Msg("Error deleting blog category via service")
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
