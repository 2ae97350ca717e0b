package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type contextKey string

const (
	UserIDContextKey contextKey = "userID"
	RoleContextKey   contextKey = "userRole"
)

// GetUserIDFromContext extracts and parses the userID from the request context.
func GetUserIDFromContext(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, error) {
	userIDStr, ok := r.Context().Value(UserIDContextKey).(string)
	if !ok {
		SendJSONError(w, "Invalid user ID", http.StatusUnauthorized)
		return primitive.NilObjectID, errors.New("invalid user ID in context")
	}

	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		SendJSONError(w, "Invalid user ID format", http.StatusUnauthorized)
		return primitive.NilObjectID, errors.New("invalid user ID format in context")
	}
	return userID, nil
}

// GetObjectIDFromVars extracts and parses an ObjectID from mux.Vars.
func GetObjectIDFromVars(w http.ResponseWriter, r *http.Request, paramName string) (primitive.ObjectID, error) {
	vars := mux.Vars(r)
	idStr := vars[paramName]
	if idStr == "" {
		SendJSONError(w, "Missing ID parameter", http.StatusBadRequest)
		return primitive.NilObjectID, errors.New("missing ID parameter")
	}

	objID, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		SendJSONError(w, "Invalid ID format", http.StatusBadRequest)
		return primitive.NilObjectID, errors.New("invalid ID format")
	}
	return objID, nil
}

func RespondWithJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func SendJSONError(w http.ResponseWriter, message string, statusCode int) {
	RespondWithJSON(w, statusCode, map[string]string{"error": message})
}
