package repositories

import (
	"context"

	"github.com/dentalflow/backend/internal/domain/entities"
)

// AppointmentRepository defines the interface for appointment operations
type AppointmentRepository interface {
	// Create creates a new appointment, generating an ID when absent
	Create(ctx context.Context, appointment *entities.Appointment) error

	// List retrieves all appointments ordered by date ascending
	List(ctx context.Context) ([]entities.Appointment, error)
}

// VisitRepository records the integral visit compound write: a treatment,
// an optional payment and an optional follow-up appointment appended as one
// unit with a single snapshot save, so a concurrent writer can never observe
// or interleave partial state.
type VisitRepository interface {
	// AppendVisit appends the given records atomically. Payment and
	// appointment may be nil.
	AppendVisit(ctx context.Context, treatment *entities.Treatment, payment *entities.Payment, appointment *entities.Appointment) error
}
