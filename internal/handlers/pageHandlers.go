package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
	"github.com/dyingroomdev/memshaheb-sub001/internal/services"
	"github.com/dyingroomdev/memshaheb-sub001/internal/utils"
)

type PageHandler struct {
	service services.PageService
}

func NewPageHandler(service services.PageService) *PageHandler {
	return &PageHandler{service: service}
}

func (h *PageHandler) GetPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.service.GetPages(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error getting pages from service")
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, pages)
}

func (h *PageHandler) GetPageBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	page, err := h.service.GetPageBySlug(r.Context(), slug)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, page)
}

func (h *PageHandler) CreatePage(w http.ResponseWriter, r *http.Request) {
	var page models.Page
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
		log.Error().Err(err).Msg("Invalid JSON for CreatePage")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.CreatePage(r.Context(), page)
	if err != nil {
		log.Error().Err(err).Msg("Error creating page via service")
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

func (h *PageHandler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	pageID, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	var updatePayload models.PageUpdate
	if err := json.NewDecoder(r.Body).Decode(&updatePayload); err != nil {
		log.Error().Err(err).Msg("Invalid JSON payload for UpdatePage")
		utils.SendJSONError(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdatePage(r.Context(), pageID, updatePayload)
	if err != nil {
		log.Error().Err(err).Str("page_id", pageID.Hex()).Msg("Error updating page via service")
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

func (h *PageHandler) DeletePage(w http.ResponseWriter, r *http.Request) {
	pageID, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	if err := h.service.DeletePage(r.Context(), pageID); err != nil {
		log.Error().Err(err).Str("page_id", pageID.Hex()).Msg("Error deleting page via service")
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PageHandler) GetBiography(w http.ResponseWriter, r *http.Request) {
	bio, err := h.service.GetBiography(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error getting biography from service")
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, bio)
}

func (h *PageHandler) SaveBiography(w http.ResponseWriter, r *http.Request) {
	var bio models.Biography
	if err := json.NewDecoder(r.Body).Decode(&bio); err != nil {
		log.Error().Err(err).Msg("Invalid JSON for SaveBiography")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	saved, err := h.service.SaveBiography(r.Context(), bio)
	if err != nil {
		log.Error().Err(err).Msg("Error saving biography via service")
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, saved)
}

func (h *PageHandler) GetPhilosophy(w http.ResponseWriter, r *http.Request) {
	phil, err := h.service.GetPhilosophy(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error getting philosophy from service")
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, phil)
}

func (h *PageHandler) SavePhilosophy(w http.ResponseWriter, r *http.Request) {
	var phil models.Philosophy
	if err := json.NewDecoder(r.Body).Decode(&phil); err != nil {
		log.Error().Err(err).Msg("Invalid JSON for SavePhilosophy")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	saved, err := h.service.SavePhilosophy(r.Context(), phil)
	if err != nil {
		log.Error().Err(err).Msg("Error saving philosophy via service")
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, saved)
}
