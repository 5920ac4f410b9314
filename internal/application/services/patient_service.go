package services

import (
	"context"
	"strings"

	"github.com/dentalflow/backend/internal/domain/entities"
	"github.com/dentalflow/backend/internal/domain/repositories"
	apperrors "github.com/dentalflow/backend/pkg/errors"
)

// PatientService handles patient registration and record upkeep
type PatientService struct {
	patients repositories.PatientRepository
}

// NewPatientService creates a new patient service
func NewPatientService(patients repositories.PatientRepository) *PatientService {
	return &PatientService{patients: patients}
}

// Register creates a new patient record
func (s *PatientService) Register(ctx context.Context, patient *entities.Patient) error {
	if strings.TrimSpace(patient.FirstName) == "" || strings.TrimSpace(patient.LastName) == "" {
		return apperrors.NewValidationError("first and last name are required")
	}
	return s.patients.Create(ctx, patient)
}

// Get retrieves a patient by ID
func (s *PatientService) Get(ctx context.Context, id string) (*entities.Patient, error) {
	return s.patients.GetByID(ctx, id)
}

// List retrieves all patients, newest first
func (s *PatientService) List(ctx context.Context) ([]entities.Patient, error) {
	return s.patients.List(ctx)
}

// Search retrieves patients matching the query, capped at ten results
func (s *PatientService) Search(ctx context.Context, query string) ([]entities.Patient, error) {
	return s.patients.Search(ctx, query, 10)
}

// Update edits a patient record in place. The generated ID and creation
// timestamp are preserved; denormalized names on historical treatment,
// payment and appointment records are deliberately left untouched.
func (s *PatientService) Update(ctx context.Context, patient *entities.Patient) error {
	if strings.TrimSpace(patient.FirstName) == "" || strings.TrimSpace(patient.LastName) == "" {
		return apperrors.NewValidationError("first and last name are required")
	}

	existing, err := s.patients.GetByID(ctx, patient.ID)
	if err != nil {
		return err
	}
	patient.CreatedAt = existing.CreatedAt
	return s.patients.Update(ctx, patient)
}
