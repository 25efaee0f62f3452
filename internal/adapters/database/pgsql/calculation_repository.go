package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/SscSPs/money_counter/internal/apperrors"
	"github.com/SscSPs/money_counter/internal/core/domain"
	portsrepo "github.com/SscSPs/money_counter/internal/core/ports/repositories"
	"github.com/SscSPs/money_counter/internal/models"
	"github.com/SscSPs/money_counter/internal/utils/mapping"
	"github.com/SscSPs/money_counter/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	calculationsTable   = "calculations"
	defaultPageSize     = 20
	uniqueViolationCode = "23505"
)

var calculationColumns = []string{
	"calculation_id", "budget", "price", "item_count", "total", "leftover",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

type PgxCalculationRepository struct {
	q Querier
}

// NewPgxCalculationRepository creates a new repository for calculation data.
func NewPgxCalculationRepository(q Querier) *PgxCalculationRepository {
	return &PgxCalculationRepository{q: q}
}

// Ensure implementation matches interface
var _ portsrepo.CalculationRepositoryFacade = (*PgxCalculationRepository)(nil)

// SaveCalculation inserts a new calculation.
func (r *PgxCalculationRepository) SaveCalculation(ctx context.Context, calculation domain.Calculation) error {
	m := mapping.ToModelCalculation(calculation)

	query, args, err := psql.Insert(calculationsTable).
		Columns(calculationColumns...).
		Values(m.CalculationID, m.Budget, m.Price, m.Count, m.Total, m.Leftover,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert for calculation %s: %w", m.CalculationID, err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: calculation %s", apperrors.ErrDuplicate, m.CalculationID)
		}
		return fmt.Errorf("failed to save calculation %s: %w", m.CalculationID, err)
	}
	return nil
}

// FindCalculationByID retrieves a calculation by its id.
func (r *PgxCalculationRepository) FindCalculationByID(ctx context.Context, calculationID string) (*domain.Calculation, error) {
	query, args, err := psql.Select(calculationColumns...).
		From(calculationsTable).
		Where(squirrel.Eq{"calculation_id": calculationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select for calculation %s: %w", calculationID, err)
	}

	m, err := scanCalculation(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: calculation %s", apperrors.ErrNotFound, calculationID)
		}
		return nil, fmt.Errorf("failed to find calculation %s: %w", calculationID, err)
	}

	calc, err := mapping.ToDomainCalculation(m)
	if err != nil {
		return nil, err
	}
	return &calc, nil
}

// ListCalculationsByCreator retrieves a page of calculations, newest first.
// Rows are ordered by (created_at, calculation_id) so the cursor is stable.
func (r *PgxCalculationRepository) ListCalculationsByCreator(ctx context.Context, createdBy string, limit int, nextToken *string) ([]domain.Calculation, *string, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := uint64(limit + 1)

	builder := psql.Select(calculationColumns...).
		From(calculationsTable).
		Where(squirrel.Eq{"created_by": createdBy})

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		builder = builder.Where(squirrel.Expr("(created_at, calculation_id) < (?, ?)", lastCreatedAt, lastID))
	}

	query, args, err := builder.
		OrderBy("created_at DESC", "calculation_id DESC").
		Limit(fetchLimit).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build calculation list query: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query calculations for %s: %w", createdBy, err)
	}
	defer rows.Close()

	modelCalcs := make([]models.Calculation, 0, fetchLimit)
	for rows.Next() {
		m, err := scanCalculation(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan calculation row for %s: %w", createdBy, err)
		}
		modelCalcs = append(modelCalcs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating calculation rows for %s: %w", createdBy, err)
	}

	var next *string
	if len(modelCalcs) > limit {
		modelCalcs = modelCalcs[:limit]
		last := modelCalcs[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.CalculationID)
		next = &token
	}

	calcs, err := mapping.ToDomainCalculationSlice(modelCalcs)
	if err != nil {
		return nil, nil, err
	}
	return calcs, next, nil
}

func scanCalculation(row pgx.Row) (models.Calculation, error) {
	var m models.Calculation
	err := row.Scan(
		&m.CalculationID,
		&m.Budget,
		&m.Price,
		&m.Count,
		&m.Total,
		&m.Leftover,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
