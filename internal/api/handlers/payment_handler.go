package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dentalflow/backend/internal/domain/entities"
	"github.com/dentalflow/backend/internal/infrastructure/observability"
)

// PaymentService is the part of the ledger service the handler needs
type PaymentService interface {
	AddPayment(ctx context.Context, payment *entities.Payment) error
	CancelPayment(ctx context.Context, paymentID string) error
	ListPayments(ctx context.Context) ([]entities.Payment, error)
}

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	payments PaymentService
	metrics  *observability.Metrics
}

// NewPaymentHandler creates a new payment handler. Metrics may be nil.
func NewPaymentHandler(payments PaymentService, metrics *observability.Metrics) *PaymentHandler {
	return &PaymentHandler{payments: payments, metrics: metrics}
}

// CreatePayment handles POST /api/payments
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var payment entities.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.payments.AddPayment(r.Context(), &payment); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, payment)
}

// ListPayments handles GET /api/payments
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.ListPayments(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"payments": payments,
		"count":    len(payments),
	})
}

// CancelPayment handles POST /api/payments/{id}/cancel
func (h *PaymentHandler) CancelPayment(w http.ResponseWriter, r *http.Request) {
	paymentID := r.PathValue("id")
	if paymentID == "" {
		respondWithError(w, http.StatusBadRequest, "payment ID is required")
		return
	}

	if err := h.payments.CancelPayment(r.Context(), paymentID); err != nil {
		respondWithAppError(w, err)
		return
	}
	if h.metrics != nil {
		h.metrics.PaymentCancelled.Add(r.Context(), 1)
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}
