package store

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/dentalflow/backend/internal/domain/entities"
)

// AppointmentStore implements repositories.AppointmentRepository over the store
type AppointmentStore struct {
	s *Store
}

// Appointments returns the appointment repository view of the store
func (s *Store) Appointments() *AppointmentStore {
	return &AppointmentStore{s: s}
}

// Create creates a new appointment, generating an ID when absent
func (r *AppointmentStore) Create(ctx context.Context, appointment *entities.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.appendAppointmentLocked(appointment)
	return r.s.persistLocked(ctx)
}

// List retrieves all appointments ordered by date ascending
func (r *AppointmentStore) List(ctx context.Context) ([]entities.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := append([]entities.Appointment(nil), r.s.appointments...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

func (s *Store) appendAppointmentLocked(appointment *entities.Appointment) {
	if appointment.ID == "" {
		appointment.ID = uuid.New().String()
	}
	if appointment.Status == "" {
		appointment.Status = entities.AppointmentStatusPending
	}
	s.appointments = append(s.appointments, *appointment)
}
