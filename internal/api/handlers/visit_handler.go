package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dentalflow/backend/internal/application/services"
	"github.com/dentalflow/backend/internal/infrastructure/observability"
)

// VisitRecorder is the part of the visit service the handler needs
type VisitRecorder interface {
	RecordVisit(ctx context.Context, input services.VisitInput) error
}

// VisitHandler handles integral visit HTTP requests
type VisitHandler struct {
	visits  VisitRecorder
	metrics *observability.Metrics
}

// NewVisitHandler creates a new visit handler. Metrics may be nil.
func NewVisitHandler(visits VisitRecorder, metrics *observability.Metrics) *VisitHandler {
	return &VisitHandler{visits: visits, metrics: metrics}
}

// RecordVisit handles POST /api/visits
func (h *VisitHandler) RecordVisit(w http.ResponseWriter, r *http.Request) {
	var input services.VisitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.visits.RecordVisit(r.Context(), input); err != nil {
		respondWithAppError(w, err)
		return
	}
	if h.metrics != nil {
		h.metrics.VisitCount.Add(r.Context(), 1)
	}
	respondWithJSON(w, http.StatusCreated, map[string]string{"status": "recorded"})
}
