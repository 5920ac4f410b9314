package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dentalflow/backend/internal/adapters/snapshot"
	"github.com/dentalflow/backend/internal/adapters/store"
	"github.com/dentalflow/backend/internal/application/services"
	"github.com/dentalflow/backend/internal/domain/entities"
	apperrors "github.com/dentalflow/backend/pkg/errors"
)

// MockVisitRepository asserts that rejected visits never reach the store
type MockVisitRepository struct {
	mock.Mock
}

func (m *MockVisitRepository) AppendVisit(ctx context.Context, treatment *entities.Treatment, payment *entities.Payment, appointment *entities.Appointment) error {
	args := m.Called(ctx, treatment, payment, appointment)
	return args.Error(0)
}

type visitFixture struct {
	store  *store.Store
	visits *services.VisitService
	ledger *services.LedgerService
}

func newVisitFixture(t *testing.T) *visitFixture {
	t.Helper()
	s, err := store.New(context.Background(), snapshot.NewMemory(), zerolog.Nop())
	require.NoError(t, err)
	return &visitFixture{
		store:  s,
		visits: services.NewVisitService(s.Patients(), s.Visits()),
		ledger: services.NewLedgerService(s.Patients(), s.Treatments(), s.Payments(), s.Appointments()),
	}
}

func (f *visitFixture) addPatient(t *testing.T, first, last string) *entities.Patient {
	t.Helper()
	p := &entities.Patient{FirstName: first, LastName: last}
	require.NoError(t, f.store.Patients().Create(context.Background(), p))
	return p
}

func TestVisitService_RecordVisit(t *testing.T) {
	ctx := context.Background()

	t.Run("records treatment, payment and follow-up as one unit", func(t *testing.T) {
		f := newVisitFixture(t)
		p := f.addPatient(t, "Ana", "Rojas")

		visitedAt := time.Date(2026, 5, 2, 10, 30, 0, 0, time.UTC)
		followUp := visitedAt.AddDate(0, 0, 14)
		err := f.visits.RecordVisit(ctx, services.VisitInput{
			PatientID: p.ID,
			Treatment: services.TreatmentDraft{
				Procedure: "Endodoncia",
				Cost:      decimal.NewFromInt(200),
				Status:    entities.TreatmentStatusCompleted,
				Date:      visitedAt,
			},
			Payment: &services.PaymentDraft{
				Amount: decimal.NewFromInt(150),
				Method: entities.PaymentMethodQR,
			},
			NextAppointment: &services.AppointmentDraft{
				Date: followUp,
				Type: entities.AppointmentTypeReview,
			},
		})
		require.NoError(t, err)

		balance, err := f.ledger.ComputeBalance(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, balance.Debt.Equal(decimal.NewFromInt(50)), "got %s", balance.Debt)

		treatments, err := f.store.Treatments().ListByPatient(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, treatments, 1)

		payments, err := f.store.Payments().ListByPatient(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, payments, 1)
		assert.True(t, payments[0].Date.Equal(treatments[0].Date), "payment must share the treatment timestamp")
		assert.Equal(t, "Pago por: Endodoncia", payments[0].Notes)
		assert.Equal(t, entities.PaymentStatusCompleted, payments[0].Status)

		appointments, err := f.store.Appointments().List(ctx)
		require.NoError(t, err)
		require.Len(t, appointments, 1)
		assert.Equal(t, entities.AppointmentStatusPending, appointments[0].Status)
		assert.True(t, appointments[0].Date.Equal(followUp))
	})

	t.Run("visit without a follow-up books no appointment", func(t *testing.T) {
		f := newVisitFixture(t)
		p := f.addPatient(t, "Juan", "Vargas")

		err := f.visits.RecordVisit(ctx, services.VisitInput{
			PatientID: p.ID,
			Treatment: services.TreatmentDraft{
				Procedure: "Empaste",
				Cost:      decimal.NewFromInt(200),
				Status:    entities.TreatmentStatusCompleted,
			},
			Payment: &services.PaymentDraft{
				Amount: decimal.NewFromInt(150),
				Method: entities.PaymentMethodCash,
			},
		})
		require.NoError(t, err)

		treatments, err := f.store.Treatments().List(ctx)
		require.NoError(t, err)
		assert.Len(t, treatments, 1)

		payments, err := f.store.Payments().List(ctx)
		require.NoError(t, err)
		assert.Len(t, payments, 1)

		appointments, err := f.store.Appointments().List(ctx)
		require.NoError(t, err)
		assert.Empty(t, appointments)

		balance, err := f.ledger.ComputeBalance(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, balance.Debt.Equal(decimal.NewFromInt(50)), "got %s", balance.Debt)
	})

	t.Run("zero payment amount records no payment", func(t *testing.T) {
		f := newVisitFixture(t)
		p := f.addPatient(t, "Luis", "Mamani")

		err := f.visits.RecordVisit(ctx, services.VisitInput{
			PatientID: p.ID,
			Treatment: services.TreatmentDraft{
				Procedure: "Control",
				Cost:      decimal.NewFromInt(50),
				Status:    entities.TreatmentStatusCompleted,
			},
			Payment: &services.PaymentDraft{Amount: decimal.Zero},
		})
		require.NoError(t, err)

		payments, err := f.store.Payments().List(ctx)
		require.NoError(t, err)
		assert.Empty(t, payments)

		treatments, err := f.store.Treatments().List(ctx)
		require.NoError(t, err)
		assert.Len(t, treatments, 1)
	})

	t.Run("defaults the visit timestamp from the clock", func(t *testing.T) {
		f := newVisitFixture(t)
		p := f.addPatient(t, "Rosa", "Quispe")

		now := time.Date(2026, 7, 1, 15, 0, 0, 0, time.UTC)
		f.visits.WithClock(func() time.Time { return now })

		err := f.visits.RecordVisit(ctx, services.VisitInput{
			PatientID: p.ID,
			Treatment: services.TreatmentDraft{
				Procedure: "Limpieza",
				Cost:      decimal.NewFromInt(150),
				Status:    entities.TreatmentStatusCompleted,
			},
			Payment: &services.PaymentDraft{
				Amount: decimal.NewFromInt(150),
				Method: entities.PaymentMethodCash,
			},
		})
		require.NoError(t, err)

		treatments, err := f.store.Treatments().List(ctx)
		require.NoError(t, err)
		require.Len(t, treatments, 1)
		assert.True(t, treatments[0].Date.Equal(now))
	})

	t.Run("unknown patient is rejected", func(t *testing.T) {
		f := newVisitFixture(t)

		err := f.visits.RecordVisit(ctx, services.VisitInput{
			PatientID: "missing",
			Treatment: services.TreatmentDraft{
				Procedure: "Control",
				Cost:      decimal.NewFromInt(50),
				Status:    entities.TreatmentStatusCompleted,
			},
		})
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	})
}

func TestVisitService_RejectedVisitTouchesNothing(t *testing.T) {
	ctx := context.Background()

	s, err := store.New(ctx, snapshot.NewMemory(), zerolog.Nop())
	require.NoError(t, err)
	patient := &entities.Patient{FirstName: "Ana", LastName: "Rojas"}
	require.NoError(t, s.Patients().Create(ctx, patient))

	cases := []struct {
		name  string
		input services.VisitInput
	}{
		{
			name: "empty procedure",
			input: services.VisitInput{
				PatientID: patient.ID,
				Treatment: services.TreatmentDraft{
					Cost:   decimal.NewFromInt(100),
					Status: entities.TreatmentStatusCompleted,
				},
			},
		},
		{
			name: "negative cost",
			input: services.VisitInput{
				PatientID: patient.ID,
				Treatment: services.TreatmentDraft{
					Procedure: "Empaste",
					Cost:      decimal.NewFromInt(-1),
					Status:    entities.TreatmentStatusCompleted,
				},
			},
		},
		{
			name: "unknown payment method",
			input: services.VisitInput{
				PatientID: patient.ID,
				Treatment: services.TreatmentDraft{
					Procedure: "Empaste",
					Cost:      decimal.NewFromInt(100),
					Status:    entities.TreatmentStatusCompleted,
				},
				Payment: &services.PaymentDraft{
					Amount: decimal.NewFromInt(50),
					Method: entities.PaymentMethod("Cheque"),
				},
			},
		},
		{
			name: "follow-up without a date",
			input: services.VisitInput{
				PatientID: patient.ID,
				Treatment: services.TreatmentDraft{
					Procedure: "Empaste",
					Cost:      decimal.NewFromInt(100),
					Status:    entities.TreatmentStatusCompleted,
				},
				NextAppointment: &services.AppointmentDraft{
					Type: entities.AppointmentTypeReview,
				},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockVisits := new(MockVisitRepository)
			visits := services.NewVisitService(s.Patients(), mockVisits)

			err := visits.RecordVisit(ctx, tc.input)
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
			mockVisits.AssertNotCalled(t, "AppendVisit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
