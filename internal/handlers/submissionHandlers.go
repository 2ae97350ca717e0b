package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/dyingroomdev/memshaheb-sub001/internal/models"
	"github.com/dyingroomdev/memshaheb-sub001/internal/services"
	"github.com/dyingroomdev/memshaheb-sub001/internal/utils"
)

type SubmissionHandler struct {
	service services.SubmissionService
}

func NewSubmissionHandler(service services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

func (h *SubmissionHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	var submission models.Submission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		log.Error().Err(err).Msg("Invalid JSON for CreateSubmission")
		utils.SendJSONError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateSubmission(r.Context(), submission)
	if err != nil {
		log.Error().Err(err).Msg("Error creating submission via service")
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "required") {
			statusCode = http.StatusBadRequest
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, created)
}

func (h *SubmissionHandler) GetSubmissions(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	submissions, err := h.service.GetSubmissions(r.Context(), status)
	if err != nil {
		log.Error().Err(err).Msg("Error getting submissions from service")
		utils.SendJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, submissions)
}

func (h *SubmissionHandler) GetSubmissionByID(w http.ResponseWriter, r *http.Request) {
	submissionID, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	submission, err := h.service.GetSubmissionByID(r.Context(), submissionID)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, submission)
}

func (h *SubmissionHandler) UpdateSubmissionStatus(w http.ResponseWriter, r *http.Request) {
	submissionID, err := utils.GetObjectIDFromVars(w, r, "id")
	if err != nil {
		return
	}

	var payload models.SubmissionStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Error().Err(err).Msg("Invalid JSON payload for UpdateSubmissionStatus")
		utils.SendJSONError(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateSubmissionStatus(r.Context(), submissionID, payload.Status)
	if err != nil {
		log.Error().Err(err).Str("submission_id", submissionID.Hex()).Msg("Error updating submission status via service")
		statusCode := http.StatusInternalServerError
		if strings.Contains(err.Error(), "unknown status") {
			statusCode = http.StatusBadRequest
		} else if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		utils.SendJSONError(w, err.Error(), statusCode)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, updated)
}
