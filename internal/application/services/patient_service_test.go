package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentalflow/backend/internal/adapters/snapshot"
	"github.com/dentalflow/backend/internal/adapters/store"
	"github.com/dentalflow/backend/internal/application/services"
	"github.com/dentalflow/backend/internal/domain/entities"
	apperrors "github.com/dentalflow/backend/pkg/errors"
)

func newPatientService(t *testing.T) (*services.PatientService, *store.Store) {
	t.Helper()
	s, err := store.New(context.Background(), snapshot.NewMemory(), zerolog.Nop())
	require.NoError(t, err)
	return services.NewPatientService(s.Patients()), s
}

func TestPatientService_Register(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPatientService(t)

	t.Run("rejects missing names", func(t *testing.T) {
		err := svc.Register(ctx, &entities.Patient{FirstName: "Ana"})
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))

		err = svc.Register(ctx, &entities.Patient{LastName: "Rojas"})
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	})

	t.Run("assigns an ID and creation timestamp", func(t *testing.T) {
		p := &entities.Patient{FirstName: "Ana", LastName: "Rojas"}
		require.NoError(t, svc.Register(ctx, p))
		assert.NotEmpty(t, p.ID)
		assert.False(t, p.CreatedAt.IsZero())
	})

	t.Run("lists newest first", func(t *testing.T) {
		p := &entities.Patient{FirstName: "Luis", LastName: "Mamani"}
		require.NoError(t, svc.Register(ctx, p))

		patients, err := svc.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, patients)
		assert.Equal(t, p.ID, patients[0].ID)
	})
}

func TestPatientService_Search(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPatientService(t)

	require.NoError(t, svc.Register(ctx, &entities.Patient{FirstName: "Ana", LastName: "Rojas", DNI: "7712345"}))
	require.NoError(t, svc.Register(ctx, &entities.Patient{FirstName: "Luis", LastName: "Rojas Paz", DNI: "5512345"}))
	require.NoError(t, svc.Register(ctx, &entities.Patient{FirstName: "Rosa", LastName: "Quispe", DNI: "9987654"}))

	t.Run("matches names case-insensitively", func(t *testing.T) {
		found, err := svc.Search(ctx, "rojas")
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("matches the national ID", func(t *testing.T) {
		found, err := svc.Search(ctx, "998")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Rosa", found[0].FirstName)
	})

	t.Run("trims the query before matching the national ID", func(t *testing.T) {
		found, err := svc.Search(ctx, "  998 ")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Rosa", found[0].FirstName)
	})

	t.Run("caps results at ten", func(t *testing.T) {
		for i := 0; i < 15; i++ {
			require.NoError(t, svc.Register(ctx, &entities.Patient{
				FirstName: "Carlos",
				LastName:  fmt.Sprintf("Flores %d", i),
			}))
		}
		found, err := svc.Search(ctx, "carlos")
		require.NoError(t, err)
		assert.Len(t, found, 10)
	})
}

func TestPatientService_Update(t *testing.T) {
	ctx := context.Background()
	svc, s := newPatientService(t)

	p := &entities.Patient{FirstName: "Ana", LastName: "Rojas", Phone: "71234567"}
	require.NoError(t, svc.Register(ctx, p))
	created := p.CreatedAt

	t.Run("preserves the creation timestamp", func(t *testing.T) {
		edited := &entities.Patient{ID: p.ID, FirstName: "Ana María", LastName: "Rojas", Phone: "79999999"}
		require.NoError(t, svc.Update(ctx, edited))

		got, err := svc.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ana María", got.FirstName)
		assert.Equal(t, "79999999", got.Phone)
		assert.True(t, got.CreatedAt.Equal(created))
	})

	t.Run("leaves denormalized names on old records untouched", func(t *testing.T) {
		ledger := services.NewLedgerService(s.Patients(), s.Treatments(), s.Payments(), s.Appointments())
		treatment := &entities.Treatment{
			PatientID: p.ID,
			Procedure: "Empaste",
			Status:    entities.TreatmentStatusCompleted,
		}
		require.NoError(t, ledger.AddTreatment(ctx, treatment))
		require.Equal(t, "Ana María Rojas", treatment.PatientName)

		renamed := &entities.Patient{ID: p.ID, FirstName: "Anita", LastName: "Rojas"}
		require.NoError(t, svc.Update(ctx, renamed))

		treatments, err := s.Treatments().ListByPatient(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, treatments, 1)
		assert.Equal(t, "Ana María Rojas", treatments[0].PatientName)
	})

	t.Run("unknown patient is not found", func(t *testing.T) {
		err := svc.Update(ctx, &entities.Patient{ID: "missing", FirstName: "X", LastName: "Y"})
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	})
}
