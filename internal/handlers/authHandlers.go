package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/markbates/goth/gothic"
	"github.com/rs/zerolog/log"

	"github.com/dyingroomdev/memshaheb-sub001/internal/services"
	"github.com/dyingroomdev/memshaheb-sub001/internal/utils"
)

type AuthHandler struct {
	authService services.AuthService
	otpService  services.OTPService
}

func NewAuthHandler(authService services.AuthService, otpService services.OTPService) *AuthHandler {
	return &AuthHandler{authService: authService, otpService: otpService}
}

func (a *AuthHandler) ProviderAuth(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	provider := vars["provider"]

	if provider == "" {
		log.Error().Msg("Provider not specified in URL")
		http.Error(w, "Provider not specified", http.StatusBadRequest)
		return
	}

	log.Info().Str("provider", provider).Msg("Initiating authentication with provider")

	gothic.BeginAuthHandler(w, r)
}

func (a *AuthHandler) ProviderCallback(w http.ResponseWriter, r *http.Request) {
	log.Info().Msg("Provider callback initiated")

	providerUser, err := gothic.CompleteUserAuth(w, r)
	if err != nil {
		log.Error().Err(err).Msg("Error completing user authentication")
		http.Redirect(w, r, "/api/auth/error", http.StatusTemporaryRedirect)
		return
	}

	log.Info().Str("email", providerUser.Email).Msg("User authenticated with provider, attempting to handle login")
	token, err := a.authService.HandleLogin(r.Context(), providerUser)
	if err != nil {
		log.Error().Err(err).Msg("Error handling login after provider authentication")
		http.Redirect(w, r, "/api/auth/error", http.StatusTemporaryRedirect)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    token,
		HttpOnly: true,
		Path:     "/",
	})
	log.Info().Str("email", providerUser.Email).Msg("JWT cookie set successfully")

	http.Redirect(w, r, "/api/auth/success", http.StatusTemporaryRedirect)
}

func (a *AuthHandler) AuthSuccess(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Authentication successful! Redirecting..."))
}

func (a *AuthHandler) AuthError(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Authentication failed. Please try again.", http.StatusBadRequest)
}

func (a *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.SendJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if payload.Email == "" {
		utils.SendJSONError(w, "Email is required", http.StatusBadRequest)
		return
	}

	if err := a.otpService.RequestPasswordReset(r.Context(), payload.Email); err != nil {
		// Same response for unknown addresses so the endpoint cannot be
		// used to probe which emails have accounts.
		if !strings.Contains(err.Error(), "not found") {
			log.Error().Err(err).Msg("Failed to process password reset request")
			utils.SendJSONError(w, "Failed to process request", http.StatusInternalServerError)
			return
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "If the account exists, a reset code has been sent"})
}

func (a *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.SendJSONError(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if payload.Email == "" || payload.Code == "" || payload.NewPassword == "" {
		utils.SendJSONError(w, "Email, code, and new password are required", http.StatusBadRequest)
		return
	}

	if err := a.otpService.ResetPassword(r.Context(), payload.Email, payload.Code, payload.NewPassword); err != nil {
		switch {
		case strings.Contains(err.Error(), "not found"), strings.Contains(err.Error(), "invalid or expired"):
			utils.SendJSONError(w, "Invalid or expired code", http.StatusBadRequest)
		case strings.Contains(err.Error(), "required"):
			utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
		default:
			log.Error().Err(err).Msg("Failed to reset password")
			utils.SendJSONError(w, "Failed to reset password", http.StatusInternalServerError)
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Password reset successfully"})
}
