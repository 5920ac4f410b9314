package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dentalflow/backend/internal/domain/entities"
)

// AuthService is the part of the user service the auth handler needs
type AuthService interface {
	Login(ctx context.Context, username, password string) (*entities.User, error)
}

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	auth AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	// Never echo the password back
	user.Password = ""
	respondWithJSON(w, http.StatusOK, user)
}
