package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dentalflow/backend/internal/domain/entities"
	apperrors "github.com/dentalflow/backend/pkg/errors"
)

// CatalogStore implements repositories.CatalogRepository over the store
type CatalogStore struct {
	s *Store
}

// Catalog returns the catalog repository view of the store
func (s *Store) Catalog() *CatalogStore {
	return &CatalogStore{s: s}
}

// ListProcedures retrieves the procedure catalog
func (r *CatalogStore) ListProcedures(ctx context.Context) ([]entities.ProcedureItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]entities.ProcedureItem(nil), r.s.procedures...), nil
}

// AddProcedure adds a catalog entry, generating an ID when absent
func (r *CatalogStore) AddProcedure(ctx context.Context, item *entities.ProcedureItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.s.procedures = append(r.s.procedures, *item)
	return r.s.persistLocked(ctx)
}

// RemoveProcedure removes a catalog entry by ID
func (r *CatalogStore) RemoveProcedure(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.procedures {
		if r.s.procedures[i].ID == id {
			r.s.procedures = append(r.s.procedures[:i], r.s.procedures[i+1:]...)
			return r.s.persistLocked(ctx)
		}
	}
	return apperrors.NewNotFoundError("procedure not found")
}

// ListReasons retrieves the consultation reason list
func (r *CatalogStore) ListReasons(ctx context.Context) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]string(nil), r.s.reasons...), nil
}

// AddReason adds a consultation reason; duplicates are ignored
func (r *CatalogStore) AddReason(ctx context.Context, reason string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.reasons {
		if existing == reason {
			return nil
		}
	}
	r.s.reasons = append(r.s.reasons, reason)
	return r.s.persistLocked(ctx)
}

// RemoveReason removes a consultation reason
func (r *CatalogStore) RemoveReason(ctx context.Context, reason string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.reasons {
		if r.s.reasons[i] == reason {
			r.s.reasons = append(r.s.reasons[:i], r.s.reasons[i+1:]...)
			return r.s.persistLocked(ctx)
		}
	}
	return apperrors.NewNotFoundError("consultation reason not found")
}

// FinancialGoal retrieves the monthly income goal
func (r *CatalogStore) FinancialGoal(ctx context.Context) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.financialGoal, nil
}

// SetFinancialGoal updates the monthly income goal
func (r *CatalogStore) SetFinancialGoal(ctx context.Context, goal decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.financialGoal = goal
	return r.s.persistLocked(ctx)
}
