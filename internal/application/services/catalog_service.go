package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dentalflow/backend/internal/domain/entities"
	"github.com/dentalflow/backend/internal/domain/providers"
	"github.com/dentalflow/backend/internal/domain/repositories"
	apperrors "github.com/dentalflow/backend/pkg/errors"
)

// CatalogService handles the clinic's configurable settings: the procedure
// catalog, consultation reasons, the monthly financial goal and the logo
// slot.
type CatalogService struct {
	catalog  repositories.CatalogRepository
	snapshot providers.SnapshotProvider
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalog repositories.CatalogRepository, snapshot providers.SnapshotProvider) *CatalogService {
	return &CatalogService{
		catalog:  catalog,
		snapshot: snapshot,
	}
}

// ListProcedures retrieves the procedure catalog
func (s *CatalogService) ListProcedures(ctx context.Context) ([]entities.ProcedureItem, error) {
	return s.catalog.ListProcedures(ctx)
}

// AddProcedure adds a procedure catalog entry
func (s *CatalogService) AddProcedure(ctx context.Context, item *entities.ProcedureItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return apperrors.NewValidationError("procedure name is required")
	}
	if item.Price.IsNegative() {
		return apperrors.NewValidationError("procedure price must not be negative")
	}
	return s.catalog.AddProcedure(ctx, item)
}

// RemoveProcedure removes a procedure catalog entry
func (s *CatalogService) RemoveProcedure(ctx context.Context, id string) error {
	return s.catalog.RemoveProcedure(ctx, id)
}

// ListReasons retrieves the consultation reason list
func (s *CatalogService) ListReasons(ctx context.Context) ([]string, error) {
	return s.catalog.ListReasons(ctx)
}

// AddReason adds a consultation reason; duplicates are ignored
func (s *CatalogService) AddReason(ctx context.Context, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return apperrors.NewValidationError("reason is required")
	}
	return s.catalog.AddReason(ctx, reason)
}

// RemoveReason removes a consultation reason
func (s *CatalogService) RemoveReason(ctx context.Context, reason string) error {
	return s.catalog.RemoveReason(ctx, reason)
}

// FinancialGoal retrieves the monthly income goal
func (s *CatalogService) FinancialGoal(ctx context.Context) (decimal.Decimal, error) {
	return s.catalog.FinancialGoal(ctx)
}

// SetFinancialGoal updates the monthly income goal
func (s *CatalogService) SetFinancialGoal(ctx context.Context, goal decimal.Decimal) error {
	if goal.IsNegative() {
		return apperrors.NewValidationError("financial goal must not be negative")
	}
	return s.catalog.SetFinancialGoal(ctx, goal)
}

// Logo retrieves the base64 clinic logo, or "" when none is set.
// The logo lives in its own slot and never touches the snapshot.
func (s *CatalogService) Logo(ctx context.Context) (string, error) {
	logo, err := s.snapshot.LoadLogo(ctx)
	if err != nil {
		return "", apperrors.NewPersistenceError("failed to load logo", err)
	}
	return logo, nil
}

// SetLogo overwrites the base64 clinic logo
func (s *CatalogService) SetLogo(ctx context.Context, logo string) error {
	if err := s.snapshot.SaveLogo(ctx, logo); err != nil {
		return apperrors.NewPersistenceError("failed to save logo", err)
	}
	return nil
}
