package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/money_counter/internal/apperrors"
	"github.com/SscSPs/money_counter/internal/utils"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSpellMoney(t *testing.T) {
	out, err := runCLI(t, "spell", "money", "2.22")

	require.NoError(t, err)
	assert.Equal(t, "2 рубля 22 копейки\nдва рубля двадцать две копейки\n", out)
}

func TestSpellMoney_RejectsThreeFractionalDigits(t *testing.T) {
	_, err := runCLI(t, "spell", "money", "1.005")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSpellCount(t *testing.T) {
	out, err := runCLI(t, "spell", "count", "21")

	require.NoError(t, err)
	assert.Equal(t, "21 единица\nдвадцать одна единица\n", out)
}

func TestSpellCount_RequiresArgument(t *testing.T) {
	_, err := runCLI(t, "spell", "count")

	assert.Error(t, err)
}

func TestCalc(t *testing.T) {
	out, err := runCLI(t, "calc", "--budget", "100", "--price", "30", "--count", "2")

	require.NoError(t, err)
	assert.Equal(t,
		"Итоговая сумма: 60 рублей за 2 единицы.\nВ остатке: 40 рублей\nБюджета хватит на: 3 единицы\n",
		out)
}

func TestCalc_Shortfall(t *testing.T) {
	out, err := runCLI(t, "calc", "-b", "50", "-p", "30", "-n", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "Не хватает: 10 рублей")
	assert.Contains(t, out, "Бюджета хватит на: 1 единица")
}

func TestCalc_ZeroPriceSkipsAffordable(t *testing.T) {
	out, err := runCLI(t, "calc", "--budget", "10", "--price", "0")

	require.NoError(t, err)
	assert.NotContains(t, out, "Бюджета хватит на")
}

func TestCalc_InvalidCount(t *testing.T) {
	_, err := runCLI(t, "calc", "--price", "1", "--count", "abc")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "count:")
}

func TestCalc_RequiresPrice(t *testing.T) {
	_, err := runCLI(t, "calc", "--budget", "1")

	assert.Error(t, err)
}

func TestHashSecret(t *testing.T) {
	out, err := runCLI(t, "hash-secret", "s3cret")

	require.NoError(t, err)
	assert.True(t, utils.CheckSecretHash("s3cret", strings.TrimSpace(out)))
}
