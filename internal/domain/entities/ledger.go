package entities

import (
	"github.com/shopspring/decimal"
)

// PatientBalance is the computed ledger position of a single patient.
// Debt may be negative, which represents a credit (overpayment) and is
// reported as-is.
type PatientBalance struct {
	TotalCost decimal.Decimal `json:"total_cost"`
	TotalPaid decimal.Decimal `json:"total_paid"`
	Debt      decimal.Decimal `json:"debt"`
}

// Debtor pairs a patient with their positive outstanding debt
type Debtor struct {
	Patient Patient         `json:"patient"`
	Debt    decimal.Decimal `json:"debt"`
}

// RecentPatient pairs a patient with their most recent treatment
type RecentPatient struct {
	Patient       Patient   `json:"patient"`
	LastTreatment Treatment `json:"last_treatment"`
}

// IncomeWindow selects the calendar window for income totals
type IncomeWindow string

const (
	IncomeWindowDay   IncomeWindow = "day"
	IncomeWindowMonth IncomeWindow = "month"
	IncomeWindowYear  IncomeWindow = "year"
)

// Valid reports whether w is one of the known income windows
func (w IncomeWindow) Valid() bool {
	switch w {
	case IncomeWindowDay, IncomeWindowMonth, IncomeWindowYear:
		return true
	}
	return false
}

// ClinicStats is the dashboard summary
type ClinicStats struct {
	Income            decimal.Decimal `json:"income"`
	Patients          int             `json:"patients"`
	AppointmentsToday int             `json:"appointments_today"`
}
