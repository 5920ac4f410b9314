package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dentalflow/backend/internal/domain/entities"
)

// UserService is the part of the user service the handler needs
type UserService interface {
	AddUser(ctx context.Context, user *entities.User) error
	UpdateUser(ctx context.Context, user *entities.User) error
	DeleteUser(ctx context.Context, id string) error
	ListUsers(ctx context.Context) ([]entities.User, error)
	AddReminder(ctx context.Context, text string, author *entities.User) (*entities.Reminder, error)
	ToggleReminder(ctx context.Context, id string) error
	DeleteReminder(ctx context.Context, id string) error
	ListReminders(ctx context.Context) ([]entities.Reminder, error)
}

// UserHandler handles user account and reminder HTTP requests
type UserHandler struct {
	users UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{users: users}
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	// Strip passwords from the listing
	for i := range users {
		users[i].Password = ""
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
		"count": len(users),
	})
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user entities.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.users.AddUser(r.Context(), &user); err != nil {
		respondWithAppError(w, err)
		return
	}
	user.Password = ""
	respondWithJSON(w, http.StatusCreated, user)
}

// UpdateUser handles PUT /api/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "user ID is required")
		return
	}

	var user entities.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user.ID = userID

	if err := h.users.UpdateUser(r.Context(), &user); err != nil {
		respondWithAppError(w, err)
		return
	}
	user.Password = ""
	respondWithJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /api/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "user ID is required")
		return
	}

	if err := h.users.DeleteUser(r.Context(), userID); err != nil {
		respondWithAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type reminderRequest struct {
	Text   string `json:"text"`
	Author struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"author"`
}

// ListReminders handles GET /api/reminders
func (h *UserHandler) ListReminders(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.users.ListReminders(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"reminders": reminders,
		"count":     len(reminders),
	})
}

// CreateReminder handles POST /api/reminders
func (h *UserHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	var req reminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	author := &entities.User{ID: req.Author.ID, Name: req.Author.Name}
	reminder, err := h.users.AddReminder(r.Context(), req.Text, author)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, reminder)
}

// ToggleReminder handles POST /api/reminders/{id}/toggle
func (h *UserHandler) ToggleReminder(w http.ResponseWriter, r *http.Request) {
	reminderID := r.PathValue("id")
	if reminderID == "" {
		respondWithError(w, http.StatusBadRequest, "reminder ID is required")
		return
	}

	if err := h.users.ToggleReminder(r.Context(), reminderID); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "toggled"})
}

// DeleteReminder handles DELETE /api/reminders/{id}
func (h *UserHandler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	reminderID := r.PathValue("id")
	if reminderID == "" {
		respondWithError(w, http.StatusBadRequest, "reminder ID is required")
		return
	}

	if err := h.users.DeleteReminder(r.Context(), reminderID); err != nil {
		respondWithAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
