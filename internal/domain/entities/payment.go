package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "Efectivo"
	PaymentMethodQR       PaymentMethod = "QR"
	PaymentMethodCard     PaymentMethod = "Tarjeta"
	PaymentMethodTransfer PaymentMethod = "Transferencia"
)

// Valid reports whether m is one of the known payment methods
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodQR, PaymentMethodCard, PaymentMethodTransfer:
		return true
	}
	return false
}

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Payment represents money received from a patient. Payments are never
// deleted; cancellation is a status transition that removes the amount from
// ledger totals while keeping the record visible in history.
type Payment struct {
	ID          string          `json:"id"`
	PatientID   string          `json:"patient_id"`
	PatientName string          `json:"patient_name"` // denormalized at write time
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Method      PaymentMethod   `json:"method"`
	Notes       string          `json:"notes,omitempty"`
	Status      PaymentStatus   `json:"status"`
}
