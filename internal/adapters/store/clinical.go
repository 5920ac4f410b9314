package store

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/dentalflow/backend/internal/domain/entities"
	apperrors "github.com/dentalflow/backend/pkg/errors"
)

// TreatmentStore implements repositories.TreatmentRepository over the store
type TreatmentStore struct {
	s *Store
}

// Treatments returns the treatment repository view of the store
func (s *Store) Treatments() *TreatmentStore {
	return &TreatmentStore{s: s}
}

// Create appends a new treatment, generating an ID when absent
func (r *TreatmentStore) Create(ctx context.Context, treatment *entities.Treatment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.appendTreatmentLocked(treatment)
	return r.s.persistLocked(ctx)
}

// List retrieves all treatments, most recent first
func (r *TreatmentStore) List(ctx context.Context) ([]entities.Treatment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := append([]entities.Treatment(nil), r.s.treatments...)
	sortTreatmentsDesc(out)
	return out, nil
}

// ListByPatient retrieves a patient's treatments, most recent first
func (r *TreatmentStore) ListByPatient(ctx context.Context, patientID string) ([]entities.Treatment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []entities.Treatment
	for _, t := range r.s.treatments {
		if t.PatientID == patientID {
			out = append(out, t)
		}
	}
	sortTreatmentsDesc(out)
	return out, nil
}

// PaymentStore implements repositories.PaymentRepository over the store
type PaymentStore struct {
	s *Store
}

// Payments returns the payment repository view of the store
func (s *Store) Payments() *PaymentStore {
	return &PaymentStore{s: s}
}

// Create appends a new payment, generating an ID when absent
func (r *PaymentStore) Create(ctx context.Context, payment *entities.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.appendPaymentLocked(payment)
	return r.s.persistLocked(ctx)
}

// GetByID retrieves a payment by ID
func (r *PaymentStore) GetByID(ctx context.Context, id string) (*entities.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for i := range r.s.payments {
		if r.s.payments[i].ID == id {
			p := r.s.payments[i]
			return &p, nil
		}
	}
	return nil, apperrors.NewNotFoundError("payment not found")
}

// Cancel transitions a payment to cancelled. Cancelling an already
// cancelled payment is a no-op and does not rewrite the snapshot.
func (r *PaymentStore) Cancel(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.payments {
		if r.s.payments[i].ID == id {
			if r.s.payments[i].Status == entities.PaymentStatusCancelled {
				return nil
			}
			r.s.payments[i].Status = entities.PaymentStatusCancelled
			return r.s.persistLocked(ctx)
		}
	}
	return apperrors.NewNotFoundError("payment not found")
}

// List retrieves all payments, most recent first
func (r *PaymentStore) List(ctx context.Context) ([]entities.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := append([]entities.Payment(nil), r.s.payments...)
	sortPaymentsDesc(out)
	return out, nil
}

// ListByPatient retrieves a patient's payments, most recent first
func (r *PaymentStore) ListByPatient(ctx context.Context, patientID string) ([]entities.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []entities.Payment
	for _, p := range r.s.payments {
		if p.PatientID == patientID {
			out = append(out, p)
		}
	}
	sortPaymentsDesc(out)
	return out, nil
}

// VisitStore implements repositories.VisitRepository over the store
type VisitStore struct {
	s *Store
}

// Visits returns the integral visit repository view of the store
func (s *Store) Visits() *VisitStore {
	return &VisitStore{s: s}
}

// AppendVisit appends a treatment, an optional payment and an optional
// appointment under one lock with a single snapshot save, so the three
// records become durable together.
func (r *VisitStore) AppendVisit(ctx context.Context, treatment *entities.Treatment, payment *entities.Payment, appointment *entities.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.appendTreatmentLocked(treatment)
	if payment != nil {
		r.s.appendPaymentLocked(payment)
	}
	if appointment != nil {
		r.s.appendAppointmentLocked(appointment)
	}
	return r.s.persistLocked(ctx)
}

func (s *Store) appendTreatmentLocked(treatment *entities.Treatment) {
	if treatment.ID == "" {
		treatment.ID = uuid.New().String()
	}
	s.treatments = append([]entities.Treatment{*treatment}, s.treatments...)
}

func (s *Store) appendPaymentLocked(payment *entities.Payment) {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.Status == "" {
		payment.Status = entities.PaymentStatusCompleted
	}
	s.payments = append([]entities.Payment{*payment}, s.payments...)
}

func sortTreatmentsDesc(ts []entities.Treatment) {
	sort.SliceStable(ts, func(i, j int) bool {
		return ts[i].Date.After(ts[j].Date)
	})
}

func sortPaymentsDesc(ps []entities.Payment) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].Date.After(ps[j].Date)
	})
}
