package entities

import (
	"time"
)

// Medication is one entry in a patient's current medication list
type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
}

// Patient represents a patient of the clinic.
//
// Age, Weight and Height are free-text fields filled in at the front desk,
// so they stay strings rather than numbers.
type Patient struct {
	ID                 string       `json:"id"`
	FirstName          string       `json:"first_name"`
	LastName           string       `json:"last_name"`
	DNI                string       `json:"dni"`
	Email              string       `json:"email,omitempty"`
	Phone              string       `json:"phone,omitempty"`
	Gender             string       `json:"gender,omitempty"`
	CivilStatus        string       `json:"civil_status,omitempty"`
	Occupation         string       `json:"occupation,omitempty"`
	Allergies          string       `json:"allergies"`
	GeneralDescription string       `json:"general_description"`
	MedicalHistory     []string     `json:"medical_history"`
	CurrentMedications []Medication `json:"current_medications,omitempty"`
	Age                string       `json:"age,omitempty"`
	Weight             string       `json:"weight,omitempty"`
	Height             string       `json:"height,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
}

// FullName returns the display name copied onto treatment, payment and
// appointment records at write time. Renaming a patient later does not
// rewrite those historical labels.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
