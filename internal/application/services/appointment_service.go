package services

import (
	"context"

	"github.com/dentalflow/backend/internal/domain/entities"
	"github.com/dentalflow/backend/internal/domain/repositories"
	apperrors "github.com/dentalflow/backend/pkg/errors"
)

// AppointmentService handles standalone appointment booking
type AppointmentService struct {
	appointments repositories.AppointmentRepository
	patients     repositories.PatientRepository
}

// NewAppointmentService creates a new appointment service
func NewAppointmentService(appointments repositories.AppointmentRepository, patients repositories.PatientRepository) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		patients:     patients,
	}
}

// Book creates a new appointment for a patient, defaulting the status to
// pending and denormalizing the patient's display name.
func (s *AppointmentService) Book(ctx context.Context, appointment *entities.Appointment) error {
	if !appointment.Type.Valid() {
		return apperrors.NewValidationError("unknown appointment type")
	}
	if appointment.Status != "" && !appointment.Status.Valid() {
		return apperrors.NewValidationError("unknown appointment status")
	}
	if appointment.Date.IsZero() {
		return apperrors.NewValidationError("appointment date is required")
	}

	patient, err := s.patients.GetByID(ctx, appointment.PatientID)
	if err != nil {
		return err
	}
	appointment.PatientName = patient.FullName()
	if appointment.Status == "" {
		appointment.Status = entities.AppointmentStatusPending
	}
	return s.appointments.Create(ctx, appointment)
}

// List retrieves all appointments ordered by date ascending
func (s *AppointmentService) List(ctx context.Context) ([]entities.Appointment, error) {
	return s.appointments.List(ctx)
}
