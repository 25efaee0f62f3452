package services

import (
	"context"

	"github.com/SscSPs/money_counter/internal/core/domain"
)

// PronunciationSvc renders amounts and counts in digits and in Russian words.
type PronunciationSvc interface {
	// SpellMoney parses an amount such as "1234.5" and renders it.
	SpellMoney(ctx context.Context, amount string) (*domain.MoneyReading, error)

	// SpellCount parses a non-negative integer and renders it with "единица".
	SpellCount(ctx context.Context, value string) (*domain.CountReading, error)
}
