package repositories

import (
	"context"

	"github.com/dentalflow/backend/internal/domain/entities"
)

// PatientRepository defines the interface for patient record operations
type PatientRepository interface {
	// Create creates a new patient, generating an ID when absent
	Create(ctx context.Context, patient *entities.Patient) error

	// GetByID retrieves a patient by ID
	GetByID(ctx context.Context, id string) (*entities.Patient, error)

	// Update replaces a patient's editable fields in place
	Update(ctx context.Context, patient *entities.Patient) error

	// List retrieves all patients, newest first
	List(ctx context.Context) ([]entities.Patient, error)

	// Search retrieves patients whose name or national ID matches the query
	Search(ctx context.Context, query string, limit int) ([]entities.Patient, error)
}
