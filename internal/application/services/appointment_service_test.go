package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentalflow/backend/internal/adapters/snapshot"
	"github.com/dentalflow/backend/internal/adapters/store"
	"github.com/dentalflow/backend/internal/application/services"
	"github.com/dentalflow/backend/internal/domain/entities"
	apperrors "github.com/dentalflow/backend/pkg/errors"
)

func newAppointmentService(t *testing.T) (*services.AppointmentService, *entities.Patient) {
	t.Helper()
	ctx := context.Background()

	s, err := store.New(ctx, snapshot.NewMemory(), zerolog.Nop())
	require.NoError(t, err)

	patient := &entities.Patient{FirstName: "Ana", LastName: "Rojas"}
	require.NoError(t, s.Patients().Create(ctx, patient))

	return services.NewAppointmentService(s.Appointments(), s.Patients()), patient
}

func TestAppointmentService_Book(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC)

	t.Run("defaults the status and denormalizes the patient name", func(t *testing.T) {
		svc, patient := newAppointmentService(t)

		appointment := &entities.Appointment{
			PatientID: patient.ID,
			Date:      date,
			Type:      entities.AppointmentTypeConsultation,
		}
		require.NoError(t, svc.Book(ctx, appointment))
		assert.Equal(t, entities.AppointmentStatusPending, appointment.Status)
		assert.Equal(t, "Ana Rojas", appointment.PatientName)
	})

	t.Run("keeps a known status as sent", func(t *testing.T) {
		svc, patient := newAppointmentService(t)

		appointment := &entities.Appointment{
			PatientID: patient.ID,
			Date:      date,
			Type:      entities.AppointmentTypeReview,
			Status:    entities.AppointmentStatusCompleted,
		}
		require.NoError(t, svc.Book(ctx, appointment))
		assert.Equal(t, entities.AppointmentStatusCompleted, appointment.Status)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		svc, patient := newAppointmentService(t)

		err := svc.Book(ctx, &entities.Appointment{
			PatientID: patient.ID,
			Date:      date,
			Type:      entities.AppointmentTypeConsultation,
			Status:    "Confirmada",
		})
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		svc, patient := newAppointmentService(t)

		err := svc.Book(ctx, &entities.Appointment{
			PatientID: patient.ID,
			Date:      date,
			Type:      "Limpieza",
		})
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	})

	t.Run("rejects a missing date", func(t *testing.T) {
		svc, patient := newAppointmentService(t)

		err := svc.Book(ctx, &entities.Appointment{
			PatientID: patient.ID,
			Type:      entities.AppointmentTypeConsultation,
		})
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	})

	t.Run("unknown patient is not found", func(t *testing.T) {
		svc, _ := newAppointmentService(t)

		err := svc.Book(ctx, &entities.Appointment{
			PatientID: "missing",
			Date:      date,
			Type:      entities.AppointmentTypeConsultation,
		})
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	})
}
