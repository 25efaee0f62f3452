package domain

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/SscSPs/money_counter/internal/core/pronounce"
	"github.com/shopspring/decimal"
	"lukechampine.com/uint128"
)

// RubleForms and KopekForms are the currency nouns amounts are read with.
var (
	RubleForms = pronounce.Forms{"рубль", "рубля", "рублей"}
	KopekForms = pronounce.Forms{"копейка", "копейки", "копеек"}
)

// KopekScale is the maximum number of fractional digits of an amount.
const KopekScale = 2

// Money is an amount of rubles with at most two fractional digits.
// Values built by NewMoney or ParseMoney are never negative; arithmetic keeps
// the sign so a shortfall can be reported, and rendering uses the magnitude.
type Money struct {
	amount decimal.Decimal
}

// NewMoney validates d and wraps it. The scale of d is kept, so "12.50" stays
// two fractional digits.
func NewMoney(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	if -d.Exponent() > KopekScale {
		return Money{}, ErrKopekScale
	}
	return Money{amount: normalize(d)}, nil
}

// MustNewMoney is NewMoney for literals known to be valid.
func MustNewMoney(d decimal.Decimal) Money {
	m, err := NewMoney(d)
	if err != nil {
		panic(fmt.Sprintf("invalid money: %v", err))
	}
	return m
}

// ParseMoney parses text such as "1234.5" into Money.
func ParseMoney(text string) (Money, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	return NewMoney(d)
}

// normalize drops positive exponents ("1e3" becomes "1000").
func normalize(d decimal.Decimal) decimal.Decimal {
	if d.Exponent() > 0 {
		return d.Round(0)
	}
	return d
}

// result brings an arithmetic result back to kopek precision.
func result(d decimal.Decimal) Money {
	d = normalize(d)
	if -d.Exponent() > KopekScale {
		d = d.Round(KopekScale)
	}
	return Money{amount: d}
}

// Amount returns the underlying decimal.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Scale returns the number of stored fractional digits (0, 1 or 2).
func (m Money) Scale() int {
	if e := m.amount.Exponent(); e < 0 {
		return int(-e)
	}
	return 0
}

func (m Money) Sign() int          { return m.amount.Sign() }
func (m Money) IsNegative() bool   { return m.amount.IsNegative() }
func (m Money) IsZero() bool       { return m.amount.IsZero() }
func (m Money) Cmp(o Money) int    { return m.amount.Cmp(o.amount) }
func (m Money) Equal(o Money) bool { return m.amount.Equal(o.amount) }

func (m Money) Abs() Money { return Money{amount: m.amount.Abs()} }
func (m Money) Neg() Money { return Money{amount: m.amount.Neg()} }

func (m Money) Add(o Money) Money { return result(m.amount.Add(o.amount)) }
func (m Money) Sub(o Money) Money { return result(m.amount.Sub(o.amount)) }

// Mul scales the amount by a plain factor, rounding to kopeks.
func (m Money) Mul(factor decimal.Decimal) Money {
	return result(m.amount.Mul(factor))
}

// Div divides the amount by a plain divisor, rounding to kopeks.
func (m Money) Div(divisor decimal.Decimal) (Money, error) {
	if divisor.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	return result(m.amount.DivRound(divisor, KopekScale)), nil
}

// MulCount returns the price of c items of m each.
func (m Money) MulCount(c Count) Money { return m.Mul(c.Decimal()) }

// DivCount splits m into c equal shares.
func (m Money) DivCount(c Count) (Money, error) { return m.Div(c.Decimal()) }

// AddCount returns m increased by c times itself.
func (m Money) AddCount(c Count) Money { return m.Add(m.MulCount(c)) }

// SubCount returns m decreased by c times itself.
func (m Money) SubCount(c Count) Money { return m.Sub(m.MulCount(c)) }

// Decompose splits the magnitude of m into whole rubles and kopeks (0-99).
// A single stored fractional digit counts tens of kopeks.
func (m Money) Decompose() (uint128.Uint128, uint8, error) {
	whole, kopeks := m.split()
	if whole.BitLen() > 128 {
		return uint128.Zero, 0, fmt.Errorf("%w: %s rubles", pronounce.ErrUnsupportedMagnitude, whole.String())
	}
	return uint128.FromBig(whole), kopeks, nil
}

// split is Decompose without the 128-bit limit.
func (m Money) split() (*big.Int, uint8) {
	abs := m.amount.Abs()
	whole := abs.BigInt()
	fraction := abs.Sub(decimal.NewFromBigInt(whole, 0))
	return whole, uint8(fraction.Shift(KopekScale).IntPart())
}

func (m Money) parts() (rubles string, kopeks uint8, err error) {
	major, minor, err := m.Decompose()
	if err != nil {
		return "", 0, err
	}
	return major.String(), minor, nil
}

// String renders the magnitude in digits, e.g. "2 рубля 22 копейки".
// Kopeks are omitted when there are none.
// Amounts too wide to spell still render in digits.
func (m Money) String() string {
	whole, minor := m.split()
	rubles := whole.String()
	s := rubles + " " + declineOrMany(rubles, RubleForms)
	if minor > 0 {
		kopeks := strconv.Itoa(int(minor))
		s += " " + kopeks + " " + declineOrMany(kopeks, KopekForms)
	}
	return s
}

// Spell renders the magnitude in words: rubles agree in the masculine,
// kopeks in the feminine. Zero rubles read "ноль рублей".
func (m Money) Spell() (string, error) {
	rubles, kopeks, err := m.parts()
	if err != nil {
		return "", err
	}

	major := pronounce.Integer{Digits: rubles, Gender: pronounce.Masculine}
	words, err := pronounce.Pronounce(major)
	if err != nil {
		return "", err
	}
	if words == "" {
		words = zeroWord
	}
	s := words + " " + declineOrMany(rubles, RubleForms)

	if kopeks > 0 {
		digits := strconv.Itoa(int(kopeks))
		minor := pronounce.Integer{Digits: digits, Gender: pronounce.Feminine}
		minorWords, err := pronounce.Pronounce(minor)
		if err != nil {
			return "", err
		}
		s += " " + minorWords + " " + declineOrMany(digits, KopekForms)
	}
	return s, nil
}

// Text returns the editable form of the amount with its stored scale, e.g. "12.0".
func (m Money) Text() string {
	return m.amount.StringFixed(int32(m.Scale()))
}

// MarshalText encodes the amount as Text.
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.Text()), nil
}

// UnmarshalText decodes through ParseMoney.
func (m *Money) UnmarshalText(text []byte) error {
	parsed, err := ParseMoney(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func declineOrMany(digits string, forms pronounce.Forms) string {
	// the form depends on the last two digits only
	if len(digits) > 3 {
		digits = digits[len(digits)-3:]
	}
	noun, err := pronounce.Decline(digits, forms)
	if err != nil {
		return forms[2]
	}
	return noun
}
