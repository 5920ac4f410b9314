package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dentalflow/backend/internal/domain/entities"
	"github.com/dentalflow/backend/internal/domain/providers"
	apperrors "github.com/dentalflow/backend/pkg/errors"
)

// Store is the clinic's record store: every collection lives in memory and
// the full state is serialized to the snapshot provider after each logical
// mutation. A single mutex guards all collections, so compound writes such
// as the integral visit happen in one critical section with one snapshot
// save.
//
// Reads return copies, never live references, so callers cannot mutate
// internal state through a returned slice or struct.
type Store struct {
	mu       sync.RWMutex
	provider providers.SnapshotProvider
	logger   zerolog.Logger

	users         []entities.User
	patients      []entities.Patient
	appointments  []entities.Appointment
	treatments    []entities.Treatment
	payments      []entities.Payment
	reminders     []entities.Reminder
	procedures    []entities.ProcedureItem
	reasons       []string
	financialGoal decimal.Decimal
}

// snapshotData is the serialized form of the whole store
type snapshotData struct {
	Users         []entities.User          `json:"users"`
	Patients      []entities.Patient       `json:"patients"`
	Appointments  []entities.Appointment   `json:"appointments"`
	Treatments    []entities.Treatment     `json:"treatments"`
	Payments      []entities.Payment       `json:"payments"`
	Reminders     []entities.Reminder      `json:"reminders"`
	Procedures    []entities.ProcedureItem `json:"procedures"`
	Reasons       []string                 `json:"consultation_reasons"`
	FinancialGoal decimal.Decimal          `json:"financial_goal"`
}

// New creates a store backed by the given snapshot provider, loading the
// persisted snapshot when one exists. An absent snapshot yields an empty
// store.
func New(ctx context.Context, provider providers.SnapshotProvider, logger zerolog.Logger) (*Store, error) {
	s := &Store{
		provider:      provider,
		logger:        logger,
		financialGoal: decimal.Zero,
	}

	data, err := provider.Load(ctx)
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to load snapshot", err)
	}
	if data == nil {
		logger.Info().Msg("no snapshot found, starting with an empty store")
		return s, nil
	}

	var snap snapshotData
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, apperrors.NewPersistenceError("failed to decode snapshot", err)
	}

	s.users = snap.Users
	s.patients = snap.Patients
	s.appointments = snap.Appointments
	s.treatments = snap.Treatments
	s.payments = snap.Payments
	s.reminders = snap.Reminders
	s.procedures = snap.Procedures
	s.reasons = snap.Reasons
	s.financialGoal = snap.FinancialGoal

	logger.Info().
		Int("patients", len(s.patients)).
		Int("treatments", len(s.treatments)).
		Int("payments", len(s.payments)).
		Msg("snapshot loaded")

	return s, nil
}

// persistLocked serializes the whole state and overwrites the snapshot.
// Must be called with the write lock held. On failure the in-memory state
// keeps the mutation (it is the last known good copy); the error surfaces
// to the caller and the next successful save persists everything.
func (s *Store) persistLocked(ctx context.Context) error {
	snap := snapshotData{
		Users:         s.users,
		Patients:      s.patients,
		Appointments:  s.appointments,
		Treatments:    s.treatments,
		Payments:      s.payments,
		Reminders:     s.reminders,
		Procedures:    s.procedures,
		Reasons:       s.reasons,
		FinancialGoal: s.financialGoal,
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return apperrors.NewPersistenceError("failed to encode snapshot", err)
	}
	if err := s.provider.Save(ctx, data); err != nil {
		s.logger.Error().Err(err).Msg("snapshot save failed, in-memory state retained")
		return apperrors.NewPersistenceError("failed to save snapshot", err)
	}
	return nil
}

// clonePatient deep-copies a patient so callers cannot reach the store's
// backing slices through MedicalHistory or CurrentMedications.
func clonePatient(p entities.Patient) entities.Patient {
	out := p
	if p.MedicalHistory != nil {
		out.MedicalHistory = append([]string(nil), p.MedicalHistory...)
	}
	if p.CurrentMedications != nil {
		out.CurrentMedications = append([]entities.Medication(nil), p.CurrentMedications...)
	}
	return out
}
