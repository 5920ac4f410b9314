package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TreatmentStatus represents the lifecycle stage of a treatment
type TreatmentStatus string

const (
	TreatmentStatusPlanned    TreatmentStatus = "Planificado"
	TreatmentStatusInProgress TreatmentStatus = "En Proceso"
	TreatmentStatusCompleted  TreatmentStatus = "Completado"
)

// Valid reports whether s is one of the known treatment statuses
func (s TreatmentStatus) Valid() bool {
	switch s {
	case TreatmentStatusPlanned, TreatmentStatusInProgress, TreatmentStatusCompleted:
		return true
	}
	return false
}

// Treatment represents a clinical procedure performed on (or planned for)
// a patient. Treatments are append-only: they are never edited or deleted.
// Planned treatments do not charge the patient's ledger until their status
// moves past Planificado.
type Treatment struct {
	ID          string          `json:"id"`
	PatientID   string          `json:"patient_id"`
	PatientName string          `json:"patient_name"` // denormalized at write time
	Procedure   string          `json:"procedure"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	Status      TreatmentStatus `json:"status"`
	Date        time.Time       `json:"date"`
}
