package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dentalflow/backend/internal/domain/entities"
	"github.com/shopspring/decimal"
)

// SettingsService is the part of the catalog service the handler needs
type SettingsService interface {
	ListProcedures(ctx context.Context) ([]entities.ProcedureItem, error)
	AddProcedure(ctx context.Context, item *entities.ProcedureItem) error
	RemoveProcedure(ctx context.Context, id string) error
	ListReasons(ctx context.Context) ([]string, error)
	AddReason(ctx context.Context, reason string) error
	RemoveReason(ctx context.Context, reason string) error
	FinancialGoal(ctx context.Context) (decimal.Decimal, error)
	SetFinancialGoal(ctx context.Context, goal decimal.Decimal) error
	Logo(ctx context.Context) (string, error)
	SetLogo(ctx context.Context, logo string) error
}

// SettingsHandler handles clinic settings HTTP requests
type SettingsHandler struct {
	settings SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settings SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// ListProcedures handles GET /api/settings/procedures
func (h *SettingsHandler) ListProcedures(w http.ResponseWriter, r *http.Request) {
	procedures, err := h.settings.ListProcedures(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"procedures": procedures,
		"count":      len(procedures),
	})
}

// AddProcedure handles POST /api/settings/procedures
func (h *SettingsHandler) AddProcedure(w http.ResponseWriter, r *http.Request) {
	var item entities.ProcedureItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.settings.AddProcedure(r.Context(), &item); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, item)
}

// RemoveProcedure handles DELETE /api/settings/procedures/{id}
func (h *SettingsHandler) RemoveProcedure(w http.ResponseWriter, r *http.Request) {
	procedureID := r.PathValue("id")
	if procedureID == "" {
		respondWithError(w, http.StatusBadRequest, "procedure ID is required")
		return
	}

	if err := h.settings.RemoveProcedure(r.Context(), procedureID); err != nil {
		respondWithAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

// ListReasons handles GET /api/settings/reasons
func (h *SettingsHandler) ListReasons(w http.ResponseWriter, r *http.Request) {
	reasons, err := h.settings.ListReasons(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"reasons": reasons,
		"count":   len(reasons),
	})
}

// AddReason handles POST /api/settings/reasons
func (h *SettingsHandler) AddReason(w http.ResponseWriter, r *http.Request) {
	var req reasonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.settings.AddReason(r.Context(), req.Reason); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]string{"reason": req.Reason})
}

// RemoveReason handles DELETE /api/settings/reasons/{reason}
func (h *SettingsHandler) RemoveReason(w http.ResponseWriter, r *http.Request) {
	reason := r.PathValue("reason")
	if reason == "" {
		respondWithError(w, http.StatusBadRequest, "reason is required")
		return
	}

	if err := h.settings.RemoveReason(r.Context(), reason); err != nil {
		respondWithAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type financialGoalRequest struct {
	Goal decimal.Decimal `json:"goal"`
}

// GetFinancialGoal handles GET /api/settings/financial-goal
func (h *SettingsHandler) GetFinancialGoal(w http.ResponseWriter, r *http.Request) {
	goal, err := h.settings.FinancialGoal(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"goal": goal})
}

// SetFinancialGoal handles PUT /api/settings/financial-goal
func (h *SettingsHandler) SetFinancialGoal(w http.ResponseWriter, r *http.Request) {
	var req financialGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.settings.SetFinancialGoal(r.Context(), req.Goal); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{"goal": req.Goal})
}

type logoRequest struct {
	Logo string `json:"logo"`
}

// GetLogo handles GET /api/settings/logo
func (h *SettingsHandler) GetLogo(w http.ResponseWriter, r *http.Request) {
	logo, err := h.settings.Logo(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"logo": logo})
}

// SetLogo handles PUT /api/settings/logo
func (h *SettingsHandler) SetLogo(w http.ResponseWriter, r *http.Request) {
	var req logoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.settings.SetLogo(r.Context(), req.Logo); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}
