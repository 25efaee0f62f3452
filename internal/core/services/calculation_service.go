package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/money_counter/internal/apperrors"
	"github.com/SscSPs/money_counter/internal/core/domain"
	portsrepo "github.com/SscSPs/money_counter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_counter/internal/core/ports/services"
	"github.com/SscSPs/money_counter/internal/dto"
	"github.com/google/uuid"
)

type calculationService struct {
	BaseService
	calculationRepo portsrepo.CalculationRepositoryFacade
}

// NewCalculationService creates a new calculation service.
func NewCalculationService(repo portsrepo.CalculationRepositoryFacade) portssvc.CalculationSvcFacade {
	return &calculationService{calculationRepo: repo}
}

func (s *calculationService) CreateCalculation(ctx context.Context, req dto.CreateCalculationRequest, creatorID string) (*domain.Calculation, error) {
	budget, err := domain.ParseMoney(req.Budget)
	if err != nil {
		return nil, fmt.Errorf("budget: %w", err)
	}
	price, err := domain.ParseMoney(req.Price)
	if err != nil {
		return nil, fmt.Errorf("price: %w", err)
	}
	count, err := domain.ParseCount(req.Count)
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}

	calc, err := domain.NewCalculation(budget, price, count)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	calc.CalculationID = uuid.NewString()
	calc.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorID,
	}

	if err := s.calculationRepo.SaveCalculation(ctx, calc); err != nil {
		s.LogError(ctx, err, "Failed to save calculation", slog.String("calculation_id", calc.CalculationID))
		return nil, fmt.Errorf("failed to create calculation in service: %w", err)
	}

	s.LogInfo(ctx, "Calculation created",
		slog.String("calculation_id", calc.CalculationID),
		slog.Bool("shortfall", calc.Shortfall()))
	return &calc, nil
}

func (s *calculationService) GetCalculationByID(ctx context.Context, calculationID string, requesterID string) (*domain.Calculation, error) {
	if _, err := uuid.Parse(calculationID); err != nil {
		return nil, fmt.Errorf("%w: calculation %s", apperrors.ErrNotFound, calculationID)
	}

	calc, err := s.calculationRepo.FindCalculationByID(ctx, calculationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get calculation by id in service: %w", err)
	}
	// Other clients' calculations are reported as missing.
	if calc.CreatedBy != requesterID {
		s.LogDebug(ctx, "Calculation belongs to another client", slog.String("calculation_id", calculationID))
		return nil, fmt.Errorf("%w: calculation %s", apperrors.ErrNotFound, calculationID)
	}
	return calc, nil
}

func (s *calculationService) ListCalculations(ctx context.Context, requesterID string, params dto.ListCalculationsParams) (*dto.ListCalculationsResponse, error) {
	calcs, next, err := s.calculationRepo.ListCalculationsByCreator(ctx, requesterID, params.Limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations in service: %w", err)
	}
	return &dto.ListCalculationsResponse{
		Calculations: dto.ToCalculationResponses(calcs),
		NextToken:    next,
	}, nil
}
