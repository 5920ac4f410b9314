package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dentalflow/backend/internal/domain/entities"
	"github.com/shopspring/decimal"
)

// DashboardService is the aggregate slice of the ledger service
type DashboardService interface {
	Stats(ctx context.Context) (entities.ClinicStats, error)
	ListDebtors(ctx context.Context) ([]entities.Debtor, error)
	RecentTreatedPatients(ctx context.Context, limit int) ([]entities.RecentPatient, error)
	IncomeInWindow(ctx context.Context, window entities.IncomeWindow) (decimal.Decimal, error)
}

// DashboardHandler handles dashboard aggregate HTTP requests
type DashboardHandler struct {
	ledger DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(ledger DashboardService) *DashboardHandler {
	return &DashboardHandler{ledger: ledger}
}

// GetStats handles GET /api/dashboard/stats
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ledger.Stats(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

// GetDebtors handles GET /api/dashboard/debtors
func (h *DashboardHandler) GetDebtors(w http.ResponseWriter, r *http.Request) {
	debtors, err := h.ledger.ListDebtors(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"debtors": debtors,
		"count":   len(debtors),
	})
}

// GetRecentPatients handles GET /api/dashboard/recent-patients
func (h *DashboardHandler) GetRecentPatients(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondWithError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	patients, err := h.ledger.RecentTreatedPatients(r.Context(), limit)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"patients": patients,
		"count":    len(patients),
	})
}

// GetIncome handles GET /api/dashboard/income?window=day|month|year
func (h *DashboardHandler) GetIncome(w http.ResponseWriter, r *http.Request) {
	window := entities.IncomeWindow(r.URL.Query().Get("window"))
	if window == "" {
		window = entities.IncomeWindowMonth
	}

	income, err := h.ledger.IncomeInWindow(r.Context(), window)
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"window": window,
		"income": income,
	})
}
