package repositories

import (
	"context"

	"github.com/dentalflow/backend/internal/domain/entities"
)

// PaymentRepository defines the interface for payment record operations.
// Payments are never deleted; Cancel is the only lifecycle transition.
type PaymentRepository interface {
	// Create appends a new payment, generating an ID when absent
	Create(ctx context.Context, payment *entities.Payment) error

	// GetByID retrieves a payment by ID
	GetByID(ctx context.Context, id string) (*entities.Payment, error)

	// Cancel transitions a payment to cancelled. Cancelling an already
	// cancelled payment is a no-op.
	Cancel(ctx context.Context, id string) error

	// List retrieves all payments, most recent first
	List(ctx context.Context) ([]entities.Payment, error)

	// ListByPatient retrieves a patient's payments, most recent first
	ListByPatient(ctx context.Context, patientID string) ([]entities.Payment, error)
}
