package domain_test

import (
	"testing"

	"github.com/SscSPs/money_counter/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestCount_Render(t *testing.T) {
	tests := []struct {
		value     uint64
		wantText  string
		wantWords string
	}{
		{0, "0 единиц", "ноль единиц"},
		{1, "1 единица", "одна единица"},
		{2, "2 единицы", "две единицы"},
		{5, "5 единиц", "пять единиц"},
		{11, "11 единиц", "одиннадцать единиц"},
		{21, "21 единица", "двадцать одна единица"},
		{1000, "1000 единиц", "одна тысяча единиц"},
		{2002, "2002 единицы", "две тысячи две единицы"},
	}

	for _, tt := range tests {
		t.Run(tt.wantText, func(t *testing.T) {
			c := domain.CountFromUint64(tt.value)
			assert.Equal(t, tt.wantText, c.String())

			words, err := c.Spell()
			require.NoError(t, err)
			assert.Equal(t, tt.wantWords, words)
		})
	}
}

func TestParseCount(t *testing.T) {
	c, err := domain.ParseCount("340282366920938463463374607431768211455")
	require.NoError(t, err)
	assert.Equal(t, uint128.Max, c.Value())

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: domain.ErrInvalidCount},
		{name: "negative", input: "-1", wantErr: domain.ErrInvalidCount},
		{name: "fraction", input: "1.5", wantErr: domain.ErrInvalidCount},
		{name: "past 128 bits", input: "340282366920938463463374607431768211456", wantErr: domain.ErrCountOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseCount(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCount_Arithmetic(t *testing.T) {
	two := domain.CountFromUint64(2)
	seven := domain.CountFromUint64(7)
	max := domain.NewCount(uint128.Max)

	sum, err := seven.Add(two)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Cmp(domain.CountFromUint64(9)))

	diff, err := seven.Sub(two)
	require.NoError(t, err)
	assert.Equal(t, 0, diff.Cmp(domain.CountFromUint64(5)))

	product, err := seven.Mul(two)
	require.NoError(t, err)
	assert.Equal(t, 0, product.Cmp(domain.CountFromUint64(14)))

	quotient, err := seven.Div(two)
	require.NoError(t, err)
	assert.Equal(t, 0, quotient.Cmp(domain.CountFromUint64(3)))

	_, err = max.Add(domain.CountFromUint64(1))
	assert.ErrorIs(t, err, domain.ErrCountOverflow)

	_, err = two.Sub(seven)
	assert.ErrorIs(t, err, domain.ErrCountOverflow)

	_, err = max.Mul(two)
	assert.ErrorIs(t, err, domain.ErrCountOverflow)

	_, err = seven.Div(domain.CountFromUint64(0))
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)
}

func TestCount_MaxSpell(t *testing.T) {
	words, err := domain.NewCount(uint128.Max).Spell()
	require.NoError(t, err)
	assert.Contains(t, words, "ундециллионов")
	assert.Contains(t, words, "четыреста пятьдесят пять единиц")
}

func TestCount_TextRoundTrip(t *testing.T) {
	var c domain.Count
	require.NoError(t, c.UnmarshalText([]byte("42")))
	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "42", string(text))
}
