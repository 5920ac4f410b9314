package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dentalflow/backend/internal/domain/entities"
	"github.com/dentalflow/backend/internal/domain/repositories"
	apperrors "github.com/dentalflow/backend/pkg/errors"
)

const defaultRecentPatients = 5

// LedgerService owns the patient financial ledger: treatment charges,
// payments, debt computation and the aggregate views derived from them.
// Debt is never stored; it is recomputed from the source records on every
// read, so it cannot drift out of sync with its inputs.
type LedgerService struct {
	patients     repositories.PatientRepository
	treatments   repositories.TreatmentRepository
	payments     repositories.PaymentRepository
	appointments repositories.AppointmentRepository
	now          func() time.Time
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	patients repositories.PatientRepository,
	treatments repositories.TreatmentRepository,
	payments repositories.PaymentRepository,
	appointments repositories.AppointmentRepository,
) *LedgerService {
	return &LedgerService{
		patients:     patients,
		treatments:   treatments,
		payments:     payments,
		appointments: appointments,
		now:          time.Now,
	}
}

// WithClock overrides the wall clock used for calendar windows
func (s *LedgerService) WithClock(now func() time.Time) *LedgerService {
	s.now = now
	return s
}

// ComputeBalance recomputes a patient's ledger position. Planned treatments
// do not charge and cancelled payments do not credit. An unknown patient id
// yields zero totals rather than an error. Debt may be negative (a credit).
func (s *LedgerService) ComputeBalance(ctx context.Context, patientID string) (entities.PatientBalance, error) {
	balance := entities.PatientBalance{
		TotalCost: decimal.Zero,
		TotalPaid: decimal.Zero,
		Debt:      decimal.Zero,
	}

	treatments, err := s.treatments.ListByPatient(ctx, patientID)
	if err != nil {
		return balance, err
	}
	for _, t := range treatments {
		if t.Status != entities.TreatmentStatusPlanned {
			balance.TotalCost = balance.TotalCost.Add(t.Cost)
		}
	}

	payments, err := s.payments.ListByPatient(ctx, patientID)
	if err != nil {
		return balance, err
	}
	for _, p := range payments {
		if p.Status != entities.PaymentStatusCancelled {
			balance.TotalPaid = balance.TotalPaid.Add(p.Amount)
		}
	}

	balance.Debt = balance.TotalCost.Sub(balance.TotalPaid)
	return balance, nil
}

// ListDebtors returns every patient with positive debt, sorted by debt
// descending. Ties keep the patient list order.
func (s *LedgerService) ListDebtors(ctx context.Context) ([]entities.Debtor, error) {
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, err
	}

	debtors := make([]entities.Debtor, 0)
	for _, p := range patients {
		balance, err := s.ComputeBalance(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		if balance.Debt.IsPositive() {
			debtors = append(debtors, entities.Debtor{Patient: p, Debt: balance.Debt})
		}
	}

	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].Debt.GreaterThan(debtors[j].Debt)
	})
	return debtors, nil
}

// AddTreatment records a treatment for a patient, denormalizing the
// patient's display name onto the record.
func (s *LedgerService) AddTreatment(ctx context.Context, treatment *entities.Treatment) error {
	if strings.TrimSpace(treatment.Procedure) == "" {
		return apperrors.NewValidationError("procedure is required")
	}
	if treatment.Cost.IsNegative() {
		return apperrors.NewValidationError("cost must not be negative")
	}
	if !treatment.Status.Valid() {
		return apperrors.NewValidationError("unknown treatment status")
	}

	patient, err := s.patients.GetByID(ctx, treatment.PatientID)
	if err != nil {
		return err
	}
	treatment.PatientName = patient.FullName()
	if treatment.Date.IsZero() {
		treatment.Date = s.now()
	}
	return s.treatments.Create(ctx, treatment)
}

// ListTreatments returns all treatments, most recent first
func (s *LedgerService) ListTreatments(ctx context.Context) ([]entities.Treatment, error) {
	return s.treatments.List(ctx)
}

// ListTreatmentsByPatient returns a patient's treatments, most recent first
func (s *LedgerService) ListTreatmentsByPatient(ctx context.Context, patientID string) ([]entities.Treatment, error) {
	return s.treatments.ListByPatient(ctx, patientID)
}

// AddPayment records a completed payment for a patient
func (s *LedgerService) AddPayment(ctx context.Context, payment *entities.Payment) error {
	if !payment.Amount.IsPositive() {
		return apperrors.NewValidationError("amount must be positive")
	}
	if !payment.Method.Valid() {
		return apperrors.NewValidationError("unknown payment method")
	}

	patient, err := s.patients.GetByID(ctx, payment.PatientID)
	if err != nil {
		return err
	}
	payment.PatientName = patient.FullName()
	payment.Status = entities.PaymentStatusCompleted
	if payment.Date.IsZero() {
		payment.Date = s.now()
	}
	return s.payments.Create(ctx, payment)
}

// CancelPayment transitions a payment to cancelled, reinstating its amount
// as debt on the next ledger read. Cancelling twice is a no-op.
func (s *LedgerService) CancelPayment(ctx context.Context, paymentID string) error {
	return s.payments.Cancel(ctx, paymentID)
}

// ListPayments returns all payments, most recent first
func (s *LedgerService) ListPayments(ctx context.Context) ([]entities.Payment, error) {
	return s.payments.List(ctx)
}

// ListPaymentsByPatient returns a patient's payments, most recent first
func (s *LedgerService) ListPaymentsByPatient(ctx context.Context, patientID string) ([]entities.Payment, error) {
	return s.payments.ListByPatient(ctx, patientID)
}

// RecentTreatedPatients returns up to limit distinct patients paired with
// their most recent treatment, most recently treated first. Treatments
// whose patient no longer resolves are skipped.
func (s *LedgerService) RecentTreatedPatients(ctx context.Context, limit int) ([]entities.RecentPatient, error) {
	if limit <= 0 {
		limit = defaultRecentPatients
	}

	treatments, err := s.treatments.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	recent := make([]entities.RecentPatient, 0, limit)
	for _, t := range treatments {
		if seen[t.PatientID] {
			continue
		}
		seen[t.PatientID] = true

		patient, err := s.patients.GetByID(ctx, t.PatientID)
		if err != nil {
			if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
				continue
			}
			return nil, err
		}
		recent = append(recent, entities.RecentPatient{Patient: *patient, LastTreatment: t})
		if len(recent) == limit {
			break
		}
	}
	return recent, nil
}

// IncomeInWindow sums non-cancelled payments falling in the current
// calendar day, month or year of the service clock's local time.
func (s *LedgerService) IncomeInWindow(ctx context.Context, window entities.IncomeWindow) (decimal.Decimal, error) {
	if !window.Valid() {
		return decimal.Zero, apperrors.NewValidationError("unknown income window")
	}

	payments, err := s.payments.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	now := s.now()
	total := decimal.Zero
	for _, p := range payments {
		if p.Status == entities.PaymentStatusCancelled {
			continue
		}
		if inWindow(p.Date.In(now.Location()), now, window) {
			total = total.Add(p.Amount)
		}
	}
	return total, nil
}

// Stats returns the dashboard summary: all-time non-cancelled income,
// patient count and today's appointment count.
func (s *LedgerService) Stats(ctx context.Context) (entities.ClinicStats, error) {
	stats := entities.ClinicStats{Income: decimal.Zero}

	payments, err := s.payments.List(ctx)
	if err != nil {
		return stats, err
	}
	for _, p := range payments {
		if p.Status != entities.PaymentStatusCancelled {
			stats.Income = stats.Income.Add(p.Amount)
		}
	}

	patients, err := s.patients.List(ctx)
	if err != nil {
		return stats, err
	}
	stats.Patients = len(patients)

	appointments, err := s.appointments.List(ctx)
	if err != nil {
		return stats, err
	}
	now := s.now()
	for _, a := range appointments {
		if sameDay(a.Date.In(now.Location()), now) {
			stats.AppointmentsToday++
		}
	}
	return stats, nil
}

// inWindow reports whether d falls in the calendar window containing now.
// Windows are calendar-aligned, not rolling.
func inWindow(d, now time.Time, window entities.IncomeWindow) bool {
	switch window {
	case entities.IncomeWindowDay:
		return sameDay(d, now)
	case entities.IncomeWindowMonth:
		return d.Year() == now.Year() && d.Month() == now.Month()
	case entities.IncomeWindowYear:
		return d.Year() == now.Year()
	}
	return false
}

func sameDay(d, now time.Time) bool {
	return d.Year() == now.Year() && d.Month() == now.Month() && d.Day() == now.Day()
}
