package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
	"github.com/dyingroomdev/memshaheb-sub001/internal/services"
	"github.com/dyingroomdev/memshaheb-sub001/internal/utils"
)

type PaintingHandler struct {
	service services.PaintingService
}

func NewPaintingHandler(service services.PaintingService) *PaintingHandler {
	return &PaintingHandler{service: service}
}

func (h *PaintingHandler) ListPaintings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := models.PaintingListQuery{
		Query:  q.Get("q"),
		Medium: q.Get("medium"),
		Color:  q.Get("color"),
		Sort:   q.Get("sort"),
		Cursor: q.Get("cursor"),
	}
	if yearStr := q.Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			utils.SendJSONError(w, "Invalid year parameter", http.StatusBadRequest)
			return
		}
		query.Year = &year
	}
	if tags := q.Get("tags"); tags != "" {
		query.Tags = strings.Split(tags, ",")
	}
	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil {
			utils.SendJSONError(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		query.Limit = limit
	}

	page, err := h.service.ListPaintings(r.Context(), query)
	if err != nil {
		log.Error().Err(err).Msg("Error listing paintings via service")
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "invalid cursor") {
			statusCode = http.StatusBadRequest
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, page)
}

func (h *PaintingHandler) ListAllPaintings(w http.ResponseWriter, r *http.Request) {
	paintings, err := h.service.ListAllPaintings(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error listing all paintings via service")
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, paintings)
}

func (h *PaintingHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	facets, err := h.service.GetFacets(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error building facets via service")
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, facets)
}

func (h *PaintingHandler) GetPaintingBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	painting, err := h.service.GetPaintingBySlug(r.Context(), slug)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, painting)
}

func (h *PaintingHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	limit := 4
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			utils.SendJSONError(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	related, err := h.service.GetRelated(r.Context(), slug, limit)
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

func (h *PaintingHandler) CreatePainting(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(w, r)
	if err != nil {
		return
	}

	var painting models.Painting
	if err := json.NewDecoder(r.Body).Decode(&painting); err != nil {
		log.Error().Err(err).Msg("Invalid JSON for CreatePainting")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.CreatePainting(r.Context(), userID, painting)
	if err != nil {
		log.Error().Err(err).Msg("Error creating painting via service")
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "required") {
			statusCode = http.StatusBadRequest
		} else if strings.Contains(err.Error(), "already exists") {
			statusCode = http.StatusConflict
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	log.Info().Str("painting_id", created.ID.Hex()).Str("slug", created.Slug).Msg("Painting created successfully")
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *PaintingHandler) UpdatePainting(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.GetUserIDFromContext(w, r)
	if err != nil {
		return
	}

	paintingID, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	var updatePayload models.PaintingUpdate
	if err := json.NewDecoder(r.Body).Decode(&updatePayload); err != nil {
		log.Error().Err(err).Msg("Invalid JSON payload for UpdatePainting")
		utils.SendJSONError(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdatePainting(r.Context(), userID, paintingID, updatePayload)
	if err != nil {
		log.Error().Err(err).Str("painting_id", paintingID.Hex()).Msg("Error updating painting via service")
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

func (h *PaintingHandler) DeletePainting(w http.ResponseWriter, r *http.Request) {
	paintingID, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	if err := h.service.DeletePainting(r.Context(), paintingID); err != nil {
		log.Error().Err(err).Str("painting_id", paintingID.Hex()).Msg("Error deleting painting via service")
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
