package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dentalflow/backend/internal/domain/entities"
)

// CatalogRepository defines the interface for the clinic's configurable
// procedure catalog, consultation reasons and financial goal.
type CatalogRepository interface {
	// ListProcedures retrieves the procedure catalog
	ListProcedures(ctx context.Context) ([]entities.ProcedureItem, error)

	// AddProcedure adds a catalog entry, generating an ID when absent
	AddProcedure(ctx context.Context, item *entities.ProcedureItem) error

	// RemoveProcedure removes a catalog entry by ID
	RemoveProcedure(ctx context.Context, id string) error

	// ListReasons retrieves the consultation reason list
	ListReasons(ctx context.Context) ([]string, error)

	// AddReason adds a consultation reason; duplicates are ignored
	AddReason(ctx context.Context, reason string) error

	// RemoveReason removes a consultation reason
	RemoveReason(ctx context.Context, reason string) error

	// FinancialGoal retrieves the monthly income goal
	FinancialGoal(ctx context.Context) (decimal.Decimal, error)

	// SetFinancialGoal updates the monthly income goal
	SetFinancialGoal(ctx context.Context, goal decimal.Decimal) error
}
