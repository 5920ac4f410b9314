package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dentalflow/backend/internal/api/handlers"
	"github.com/dentalflow/backend/internal/domain/entities"
	apperrors "github.com/dentalflow/backend/pkg/errors"
)

// MockPaymentService defines the mock service
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) AddPayment(ctx context.Context, payment *entities.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentService) CancelPayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

func (m *MockPaymentService) ListPayments(ctx context.Context) ([]entities.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Payment), args.Error(1)
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	t.Run("creates a payment", func(t *testing.T) {
		mockService := new(MockPaymentService)
		handler := handlers.NewPaymentHandler(mockService, nil)

		payload := map[string]interface{}{
			"patient_id": "p1",
			"amount":     "150",
			"method":     "Efectivo",
		}
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", "/api/payments", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		mockService.On("AddPayment", mock.Anything, mock.MatchedBy(func(p *entities.Payment) bool {
			return p.PatientID == "p1" && p.Amount.Equal(decimal.NewFromInt(150)) && p.Method == entities.PaymentMethodCash
		})).Return(nil)

		handler.CreatePayment(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("returns bad request for invalid payload", func(t *testing.T) {
		mockService := new(MockPaymentService)
		handler := handlers.NewPaymentHandler(mockService, nil)

		req := httptest.NewRequest("POST", "/api/payments", bytes.NewBufferString("not-json"))
		w := httptest.NewRecorder()

		handler.CreatePayment(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps validation errors to bad request", func(t *testing.T) {
		mockService := new(MockPaymentService)
		handler := handlers.NewPaymentHandler(mockService, nil)

		payload := map[string]interface{}{"patient_id": "p1", "amount": "0"}
		body, _ := json.Marshal(payload)
		req := httptest.NewRequest("POST", "/api/payments", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		mockService.On("AddPayment", mock.Anything, mock.Anything).
			Return(apperrors.NewValidationError("amount must be positive"))

		handler.CreatePayment(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "amount must be positive", resp["error"])
	})
}

func TestPaymentHandler_CancelPayment(t *testing.T) {
	t.Run("cancels a payment", func(t *testing.T) {
		mockService := new(MockPaymentService)
		handler := handlers.NewPaymentHandler(mockService, nil)

		req := httptest.NewRequest("POST", "/api/payments/pay-1/cancel", nil)
		req.SetPathValue("id", "pay-1")
		w := httptest.NewRecorder()

		mockService.On("CancelPayment", mock.Anything, "pay-1").Return(nil)

		handler.CancelPayment(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("maps missing payments to not found", func(t *testing.T) {
		mockService := new(MockPaymentService)
		handler := handlers.NewPaymentHandler(mockService, nil)

		req := httptest.NewRequest("POST", "/api/payments/missing/cancel", nil)
		req.SetPathValue("id", "missing")
		w := httptest.NewRecorder()

		mockService.On("CancelPayment", mock.Anything, "missing").
			Return(apperrors.NewNotFoundError("payment not found"))

		handler.CancelPayment(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
