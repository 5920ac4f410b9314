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

// MockAuthService defines the mock service
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*entities.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns the account without the password", func(t *testing.T) {
		mockService := new(MockAuthService)
		handler := handlers.NewAuthHandler(mockService)

		body, _ := json.Marshal(map[string]string{"username": "taboada", "password": "secreto"})
		req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		mockService.On("Login", mock.Anything, "taboada", "secreto").Return(&entities.User{
			ID:       "u1",
			Username: "taboada",
			Name:     "Dr. Taboada",
			Role:     entities.UserRolePrincipal,
			Password: "secreto",
		}, nil)

		handler.Login(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp entities.User
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "u1", resp.ID)
		assert.Empty(t, resp.Password)
	})

	t.Run("maps bad credentials to unauthorized", func(t *testing.T) {
		mockService := new(MockAuthService)
		handler := handlers.NewAuthHandler(mockService)

		body, _ := json.Marshal(map[string]string{"username": "taboada", "password": "mal"})
		req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		mockService.On("Login", mock.Anything, "taboada", "mal").
			Return(nil, apperrors.NewUnauthorizedError("invalid credentials"))

		handler.Login(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("returns bad request for invalid payload", func(t *testing.T) {
		mockService := new(MockAuthService)
		handler := handlers.NewAuthHandler(mockService)

		req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()

		handler.Login(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
