package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dentalflow/backend/internal/domain/entities"
)

// TreatmentService is the part of the ledger service the handler needs
type TreatmentService interface {
	AddTreatment(ctx context.Context, treatment *entities.Treatment) error
	ListTreatments(ctx context.Context) ([]entities.Treatment, error)
}

// TreatmentHandler handles treatment-related HTTP requests
type TreatmentHandler struct {
	treatments TreatmentService
}

// NewTreatmentHandler creates a new treatment handler
func NewTreatmentHandler(treatments TreatmentService) *TreatmentHandler {
	return &TreatmentHandler{treatments: treatments}
}

// CreateTreatment handles POST /api/treatments
func (h *TreatmentHandler) CreateTreatment(w http.ResponseWriter, r *http.Request) {
	var treatment entities.Treatment
	if err := json.NewDecoder(r.Body).Decode(&treatment); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.treatments.AddTreatment(r.Context(), &treatment); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, treatment)
}

// ListTreatments handles GET /api/treatments
func (h *TreatmentHandler) ListTreatments(w http.ResponseWriter, r *http.Request) {
	treatments, err := h.treatments.ListTreatments(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"treatments": treatments,
		"count":      len(treatments),
	})
}
