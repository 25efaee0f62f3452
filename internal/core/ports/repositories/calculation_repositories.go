package repositories

import (
	"context"

	"github.com/SscSPs/money_counter/internal/core/domain"
)

// CalculationReader defines read operations for calculation data
type CalculationReader interface {
	// FindCalculationByID retrieves a calculation by its unique identifier.
	// It returns apperrors.ErrNotFound when there is none.
	FindCalculationByID(ctx context.Context, calculationID string) (*domain.Calculation, error)

	// ListCalculationsByCreator retrieves a page of calculations created by createdBy,
	// newest first, using token-based pagination.
	// It returns the calculations, a token for the next page, and an error.
	ListCalculationsByCreator(ctx context.Context, createdBy string, limit int, nextToken *string) ([]domain.Calculation, *string, error)
}

// CalculationWriter defines write operations for calculation data
type CalculationWriter interface {
	// SaveCalculation persists a new calculation.
	SaveCalculation(ctx context.Context, calculation domain.Calculation) error
}

// CalculationRepositoryFacade combines all calculation-related repository interfaces
type CalculationRepositoryFacade interface {
	CalculationReader
	CalculationWriter
}
