package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/money_counter/internal/apperrors"
	"github.com/SscSPs/money_counter/internal/core/domain"
	portssvc "github.com/SscSPs/money_counter/internal/core/ports/services"
	"github.com/SscSPs/money_counter/internal/core/pronounce"
)

type pronunciationService struct {
	BaseService
}

// NewPronunciationService creates the service behind /pronounce and the spell command.
func NewPronunciationService() portssvc.PronunciationSvc {
	return &pronunciationService{}
}

func (s *pronunciationService) SpellMoney(ctx context.Context, amount string) (*domain.MoneyReading, error) {
	m, err := domain.ParseMoney(amount)
	if err != nil {
		s.LogDebug(ctx, "Rejected amount", slog.String("amount", amount), slog.String("error", err.Error()))
		return nil, err
	}
	reading, err := domain.ReadMoney(m)
	if err != nil {
		s.LogDebug(ctx, "Amount cannot be spelled", slog.String("amount", amount), slog.String("error", err.Error()))
		return nil, unprocessable(err)
	}
	return &reading, nil
}

func (s *pronunciationService) SpellCount(ctx context.Context, value string) (*domain.CountReading, error) {
	c, err := domain.ParseCount(value)
	if err != nil {
		s.LogDebug(ctx, "Rejected count", slog.String("value", value), slog.String("error", err.Error()))
		return nil, err
	}
	reading, err := domain.ReadCount(c)
	if err != nil {
		return nil, unprocessable(err)
	}
	return &reading, nil
}

// unprocessable marks magnitudes the engine cannot spell.
func unprocessable(err error) error {
	if errors.Is(err, pronounce.ErrUnsupportedMagnitude) {
		return fmt.Errorf("%w: %w", apperrors.ErrUnprocessable, err)
	}
	return err
}
