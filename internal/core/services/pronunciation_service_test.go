package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/SscSPs/money_counter/internal/apperrors"
	"github.com/SscSPs/money_counter/internal/core/domain"
	"github.com/SscSPs/money_counter/internal/core/pronounce"
	"github.com/SscSPs/money_counter/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestPronunciationService_SpellMoney(t *testing.T) {
	svc := services.NewPronunciationService()

	reading, err := svc.SpellMoney(context.Background(), "2.22")
	require.NoError(t, err)
	assert.Equal(t, "2 рубля 22 копейки", reading.Text)
	assert.Equal(t, "два рубля двадцать две копейки", reading.Words)

	_, err = svc.SpellMoney(context.Background(), "1.005")
	assert.ErrorIs(t, err, domain.ErrKopekScale)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	tooBig := "1" + strings.Repeat("0", 39)
	_, err = svc.SpellMoney(context.Background(), tooBig)
	assert.ErrorIs(t, err, apperrors.ErrUnprocessable)
	assert.ErrorIs(t, err, pronounce.ErrUnsupportedMagnitude)
}

func TestPronunciationService_SpellCount(t *testing.T) {
	svc := services.NewPronunciationService()

	reading, err := svc.SpellCount(context.Background(), "21")
	require.NoError(t, err)
	assert.Equal(t, "21 единица", reading.Text)
	assert.Equal(t, "двадцать одна единица", reading.Words)

	_, err = svc.SpellCount(context.Background(), "2.5")
	assert.ErrorIs(t, err, domain.ErrInvalidCount)
}
