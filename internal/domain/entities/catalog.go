package entities

import (
	"github.com/shopspring/decimal"
)

// ProcedureItem is an entry of the clinic's configurable procedure catalog,
// used to prefill treatment costs.
type ProcedureItem struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
