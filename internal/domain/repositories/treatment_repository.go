package repositories

import (
	"context"

	"github.com/dentalflow/backend/internal/domain/entities"
)

// TreatmentRepository defines the interface for treatment record operations.
// Treatments are append-only; there is no update or delete.
type TreatmentRepository interface {
	// Create appends a new treatment, generating an ID when absent
	Create(ctx context.Context, treatment *entities.Treatment) error

	// List retrieves all treatments, most recent first
	List(ctx context.Context) ([]entities.Treatment, error)

	// ListByPatient retrieves a patient's treatments, most recent first
	ListByPatient(ctx context.Context, patientID string) ([]entities.Treatment, error)
}
