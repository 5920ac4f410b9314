package store

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dentalflow/backend/internal/domain/entities"
	apperrors "github.com/dentalflow/backend/pkg/errors"
)

const defaultSearchLimit = 10

// PatientStore implements repositories.PatientRepository over the store
type PatientStore struct {
	s *Store
}

// Patients returns the patient repository view of the store
func (s *Store) Patients() *PatientStore {
	return &PatientStore{s: s}
}

// Create creates a new patient, generating an ID when absent
func (r *PatientStore) Create(ctx context.Context, patient *entities.Patient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}
	if patient.CreatedAt.IsZero() {
		patient.CreatedAt = time.Now()
	}

	// Newest first, matching registration order in the patient list.
	r.s.patients = append([]entities.Patient{clonePatient(*patient)}, r.s.patients...)
	return r.s.persistLocked(ctx)
}

// GetByID retrieves a patient by ID
func (r *PatientStore) GetByID(ctx context.Context, id string) (*entities.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.patients {
		if r.s.patients[i].ID == id {
			p := clonePatient(r.s.patients[i])
			return &p, nil
		}
	}
	return nil, apperrors.NewNotFoundError("patient not found")
}

// Update replaces a patient's editable fields in place
func (r *PatientStore) Update(ctx context.Context, patient *entities.Patient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.patients {
		if r.s.patients[i].ID == patient.ID {
			r.s.patients[i] = clonePatient(*patient)
			return r.s.persistLocked(ctx)
		}
	}
	return apperrors.NewNotFoundError("patient not found")
}

// List retrieves all patients, newest first
func (r *PatientStore) List(ctx context.Context) ([]entities.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entities.Patient, 0, len(r.s.patients))
	for i := range r.s.patients {
		out = append(out, clonePatient(r.s.patients[i]))
	}
	return out, nil
}

// Search retrieves patients whose first name, last name or national ID
// matches the query, case-insensitively, capped at limit results.
func (r *PatientStore) Search(ctx context.Context, query string, limit int) ([]entities.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if limit <= 0 {
		limit = defaultSearchLimit
	}
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]entities.Patient, 0, limit)
	for i := range r.s.patients {
		p := &r.s.patients[i]
		if strings.Contains(strings.ToLower(p.FirstName), q) ||
			strings.Contains(strings.ToLower(p.LastName), q) ||
			strings.Contains(strings.ToLower(p.DNI), q) {
			out = append(out, clonePatient(*p))
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}
