package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dentalflow/backend/internal/domain/entities"
	"github.com/dentalflow/backend/internal/domain/repositories"
	apperrors "github.com/dentalflow/backend/pkg/errors"
)

// TreatmentDraft is the clinical half of an integral visit
type TreatmentDraft struct {
	Procedure   string                   `json:"procedure"`
	Description string                   `json:"description"`
	Cost        decimal.Decimal          `json:"cost"`
	Status      entities.TreatmentStatus `json:"status"`
	Date        time.Time                `json:"date"`
}

// PaymentDraft is the optional payment half of an integral visit. A zero
// amount suppresses the payment record entirely.
type PaymentDraft struct {
	Amount decimal.Decimal        `json:"amount"`
	Method entities.PaymentMethod `json:"method"`
}

// AppointmentDraft is the optional follow-up booked during an integral visit
type AppointmentDraft struct {
	Date  time.Time                `json:"date"`
	Type  entities.AppointmentType `json:"type"`
	Notes string                   `json:"notes"`
}

// VisitInput bundles everything recorded during one integral visit
type VisitInput struct {
	PatientID       string            `json:"patient_id"`
	Treatment       TreatmentDraft    `json:"treatment"`
	Payment         *PaymentDraft     `json:"payment,omitempty"`
	NextAppointment *AppointmentDraft `json:"next_appointment,omitempty"`
}

// VisitService records integral visits: a treatment, an optional payment
// and an optional follow-up appointment written as one unit. All inputs are
// validated before any mutation, so a rejected visit leaves the store
// untouched; the accepted visit is handed to the store as a single
// compound write.
type VisitService struct {
	patients repositories.PatientRepository
	visits   repositories.VisitRepository
	now      func() time.Time
}

// NewVisitService creates a new visit service
func NewVisitService(patients repositories.PatientRepository, visits repositories.VisitRepository) *VisitService {
	return &VisitService{
		patients: patients,
		visits:   visits,
		now:      time.Now,
	}
}

// WithClock overrides the wall clock used for defaulted timestamps
func (s *VisitService) WithClock(now func() time.Time) *VisitService {
	s.now = now
	return s
}

// RecordVisit validates and records an integral visit
func (s *VisitService) RecordVisit(ctx context.Context, input VisitInput) error {
	if strings.TrimSpace(input.Treatment.Procedure) == "" {
		return apperrors.NewValidationError("procedure is required")
	}
	if input.Treatment.Cost.IsNegative() {
		return apperrors.NewValidationError("cost must not be negative")
	}
	if !input.Treatment.Status.Valid() {
		return apperrors.NewValidationError("unknown treatment status")
	}
	if input.Payment != nil {
		if input.Payment.Amount.IsNegative() {
			return apperrors.NewValidationError("payment amount must not be negative")
		}
		if input.Payment.Amount.IsPositive() && !input.Payment.Method.Valid() {
			return apperrors.NewValidationError("unknown payment method")
		}
	}
	if input.NextAppointment != nil {
		if !input.NextAppointment.Type.Valid() {
			return apperrors.NewValidationError("unknown appointment type")
		}
		if input.NextAppointment.Date.IsZero() {
			return apperrors.NewValidationError("appointment date is required")
		}
	}

	patient, err := s.patients.GetByID(ctx, input.PatientID)
	if err != nil {
		return err
	}

	visitedAt := input.Treatment.Date
	if visitedAt.IsZero() {
		visitedAt = s.now()
	}

	treatment := &entities.Treatment{
		PatientID:   patient.ID,
		PatientName: patient.FullName(),
		Procedure:   input.Treatment.Procedure,
		Description: input.Treatment.Description,
		Cost:        input.Treatment.Cost,
		Status:      input.Treatment.Status,
		Date:        visitedAt,
	}

	// A zero-amount payment draft records nothing.
	var payment *entities.Payment
	if input.Payment != nil && input.Payment.Amount.IsPositive() {
		payment = &entities.Payment{
			PatientID:   patient.ID,
			PatientName: patient.FullName(),
			Amount:      input.Payment.Amount,
			Date:        visitedAt, // same instant as the treatment
			Method:      input.Payment.Method,
			Notes:       fmt.Sprintf("Pago por: %s", input.Treatment.Procedure),
			Status:      entities.PaymentStatusCompleted,
		}
	}

	var appointment *entities.Appointment
	if input.NextAppointment != nil {
		appointment = &entities.Appointment{
			PatientID:   patient.ID,
			PatientName: patient.FullName(),
			Date:        input.NextAppointment.Date,
			Type:        input.NextAppointment.Type,
			Status:      entities.AppointmentStatusPending,
			Notes:       input.NextAppointment.Notes,
		}
	}

	return s.visits.AppendVisit(ctx, treatment, payment, appointment)
}
