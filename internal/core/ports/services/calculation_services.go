package services

import (
	"context"

	"github.com/SscSPs/money_counter/internal/core/domain"
	"github.com/SscSPs/money_counter/internal/dto"
)

// CalculationReaderSvc defines read operations for stored calculations
type CalculationReaderSvc interface {
	// GetCalculationByID returns a calculation created by requesterID.
	GetCalculationByID(ctx context.Context, calculationID string, requesterID string) (*domain.Calculation, error)

	// ListCalculations returns a page of the requester's calculations, newest first.
	ListCalculations(ctx context.Context, requesterID string, params dto.ListCalculationsParams) (*dto.ListCalculationsResponse, error)
}

// CalculationWriterSvc defines write operations for calculations
type CalculationWriterSvc interface {
	// CreateCalculation computes and persists a new calculation.
	CreateCalculation(ctx context.Context, req dto.CreateCalculationRequest, creatorID string) (*domain.Calculation, error)
}

// CalculationSvcFacade combines all calculation-related service interfaces
type CalculationSvcFacade interface {
	CalculationReaderSvc
	CalculationWriterSvc
}
