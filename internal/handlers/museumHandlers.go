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

type MuseumHandler struct {
	service services.MuseumService
}

func NewMuseumHandler(service services.MuseumService) *MuseumHandler {
	return &MuseumHandler{service: service}
}

func (h *MuseumHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetRooms(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error getting museum rooms from service")
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, rooms)
}

func (h *MuseumHandler) GetRoomBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	room, err := h.service.GetRoomBySlug(r.Context(), slug)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, room)
}

func (h *MuseumHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var room models.MuseumRoom
	if err := json.NewDecoder(r.Body).Decode(&room); err != nil {
		log.Error().Err(err).Msg("Invalid JSON for CreateRoom")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateRoom(r.Context(), room)
	if err != nil {
		log.Error().Err(err).Msg("Error creating museum room via service")
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "required") {
			statusCode = http.StatusBadRequest
		} else if strings.Contains(err.Error(), "already exists") {
			statusCode = http.StatusConflict
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	log.Info().Str("room_id", created.ID.Hex()).Str("slug", created.Slug).Msg("Museum room created successfully")
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *MuseumHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	var updatePayload models.MuseumRoomUpdate
	if err := json.NewDecoder(r.Body).Decode(&updatePayload); err != nil {
		log.Error().Err(err).Msg("Invalid JSON payload for UpdateRoom")
		utils.SendJSONError(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateRoom(r.Context(), roomID, updatePayload)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID.Hex()).Msg("Error updating museum room via service")
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

func (h *MuseumHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	if err := h.service.DeleteRoom(r.Context(), roomID); err != nil {
		log.Error().Err(err).Str("room_id", roomID.Hex()).Msg("Error deleting museum room via service")
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *MuseumHandler) AddArtifact(w http.ResponseWriter, r *http.Request) {
	var artifact models.MuseumArtifact
	if err := json.NewDecoder(r.Body).Decode(&artifact); err != nil {
		log.Error().Err(err).Msg("Invalid JSON for AddArtifact")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.AddArtifact(r.Context(), artifact)
	if err != nil {
		log.Error().Err(err).Msg("Error adding museum artifact via service")
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *MuseumHandler) UpdateArtifact(w http.ResponseWriter, r *http.Request) {
	artifactID, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	var updatePayload models.MuseumArtifactUpdate
	if err := json.NewDecoder(r.Body).Decode(&updatePayload); err != nil {
		log.Error().Err(err).Msg("Invalid JSON payload for UpdateArtifact")
		utils.SendJSONError(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateArtifact(r.Context(), artifactID, updatePayload)
	if err != nil {
		log.Error().Err(err).Str("artifact_id", artifactID.Hex()).Msg("Error updating museum artifact via service")
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

func (h *MuseumHandler) RemoveArtifact(w http.ResponseWriter, r *http.Request) {
	artifactID, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	if err := h.service.RemoveArtifact(r.Context(), artifactID); err != nil {
		log.Error().Err(err).Str("artifact_id", artifactID.Hex()).Msg("Error removing museum artifact via service")
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
