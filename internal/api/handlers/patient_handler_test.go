package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dentalflow/backend/internal/api/handlers"
	"github.com/dentalflow/backend/internal/domain/entities"
	apperrors "github.com/dentalflow/backend/pkg/errors"
)

// MockPatientService defines the mock service
type MockPatientService struct {
	mock.Mock
}

func (m *MockPatientService) Register(ctx context.Context, patient *entities.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientService) Get(ctx context.Context, id string) (*entities.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Patient), args.Error(1)
}

func (m *MockPatientService) List(ctx context.Context) ([]entities.Patient, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Patient), args.Error(1)
}

func (m *MockPatientService) Search(ctx context.Context, query string) ([]entities.Patient, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]entities.Patient), args.Error(1)
}

func (m *MockPatientService) Update(ctx context.Context, patient *entities.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func TestPatientHandler_UpdatePatient(t *testing.T) {
	t.Run("partial body keeps fields it does not mention", func(t *testing.T) {
		mockService := new(MockPatientService)
		handler := handlers.NewPatientHandler(mockService, nil)

		mockService.On("Get", mock.Anything, "p1").Return(&entities.Patient{
			ID:             "p1",
			FirstName:      "Ana",
			LastName:       "Rojas",
			DNI:            "7712345",
			Phone:          "71234567",
			Allergies:      "Penicilina",
			MedicalHistory: []string{"Hipertensión"},
		}, nil)
		mockService.On("Update", mock.Anything, mock.MatchedBy(func(p *entities.Patient) bool {
			return p.ID == "p1" &&
				p.Phone == "79999999" &&
				p.DNI == "7712345" &&
				p.Allergies == "Penicilina" &&
				len(p.MedicalHistory) == 1
		})).Return(nil)

		body, _ := json.Marshal(map[string]string{"phone": "79999999"})
		req := httptest.NewRequest("PATCH", "/api/patients/p1", bytes.NewBuffer(body))
		req.SetPathValue("id", "p1")
		w := httptest.NewRecorder()

		handler.UpdatePatient(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("unknown patient is not found", func(t *testing.T) {
		mockService := new(MockPatientService)
		handler := handlers.NewPatientHandler(mockService, nil)

		mockService.On("Get", mock.Anything, "missing").
			Return(nil, apperrors.NewNotFoundError("patient not found"))

		body, _ := json.Marshal(map[string]string{"phone": "79999999"})
		req := httptest.NewRequest("PATCH", "/api/patients/missing", bytes.NewBuffer(body))
		req.SetPathValue("id", "missing")
		w := httptest.NewRecorder()

		handler.UpdatePatient(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockService.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("body cannot move the record to another id", func(t *testing.T) {
		mockService := new(MockPatientService)
		handler := handlers.NewPatientHandler(mockService, nil)

		mockService.On("Get", mock.Anything, "p1").Return(&entities.Patient{
			ID: "p1", FirstName: "Ana", LastName: "Rojas",
		}, nil)
		mockService.On("Update", mock.Anything, mock.MatchedBy(func(p *entities.Patient) bool {
			return p.ID == "p1"
		})).Return(nil)

		body, _ := json.Marshal(map[string]string{"id": "p2", "phone": "79999999"})
		req := httptest.NewRequest("PATCH", "/api/patients/p1", bytes.NewBuffer(body))
		req.SetPathValue("id", "p1")
		w := httptest.NewRecorder()

		handler.UpdatePatient(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})
}
