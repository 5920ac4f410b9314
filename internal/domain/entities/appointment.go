package entities

import (
	"time"
)

// AppointmentType represents the kind of visit an appointment books
type AppointmentType string

const (
	AppointmentTypeConsultation AppointmentType = "Consulta"
	AppointmentTypeTreatment    AppointmentType = "Tratamiento"
	AppointmentTypeReview       AppointmentType = "Revisión"
	AppointmentTypeEmergency    AppointmentType = "Emergencia"
)

// Valid reports whether t is one of the known appointment types
func (t AppointmentType) Valid() bool {
	switch t {
	case AppointmentTypeConsultation, AppointmentTypeTreatment, AppointmentTypeReview, AppointmentTypeEmergency:
		return true
	}
	return false
}

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pendiente"
	AppointmentStatusCompleted AppointmentStatus = "Completada"
	AppointmentStatusCancelled AppointmentStatus = "Cancelada"
)

// Valid reports whether s is one of the known appointment statuses
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment represents a scheduled appointment
type Appointment struct {
	ID          string            `json:"id"`
	PatientID   string            `json:"patient_id"`
	PatientName string            `json:"patient_name"` // denormalized at write time
	Date        time.Time         `json:"date"`
	Type        AppointmentType   `json:"type"`
	Status      AppointmentStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
}
