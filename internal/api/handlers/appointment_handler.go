package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dentalflow/backend/internal/domain/entities"
)

// AppointmentService is the part of the appointment service the handler needs
type AppointmentService interface {
	Book(ctx context.Context, appointment *entities.Appointment) error
	List(ctx context.Context) ([]entities.Appointment, error)
}

// AppointmentHandler handles appointment-related HTTP requests
type AppointmentHandler struct {
	appointments AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointments AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

// BookAppointment handles POST /api/appointments
func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var appointment entities.Appointment
	if err := json.NewDecoder(r.Body).Decode(&appointment); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.appointments.Book(r.Context(), &appointment); err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, appointment)
}

// ListAppointments handles GET /api/appointments
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointments.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"appointments": appointments,
		"count":        len(appointments),
	})
}
