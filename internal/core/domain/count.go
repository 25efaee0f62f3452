package domain

import (
	"fmt"
	"math/big"

	"github.com/SscSPs/money_counter/internal/core/pronounce"
	"github.com/shopspring/decimal"
	"lukechampine.com/uint128"
)

// UnitForms are the forms of "единица", the noun a bare Count is read with.
var UnitForms = pronounce.Forms{"единица", "единицы", "единиц"}

// zeroWord is used when the integer part spells as nothing.
const zeroWord = "ноль"

// Count is a non-negative quantity of items, up to 128 bits.
type Count struct {
	value uint128.Uint128
}

// NewCount wraps a 128-bit value.
func NewCount(v uint128.Uint128) Count {
	return Count{value: v}
}

// CountFromUint64 wraps a 64-bit value.
func CountFromUint64(v uint64) Count {
	return Count{value: uint128.From64(v)}
}

// ParseCount parses decimal digits into a Count.
func ParseCount(text string) (Count, error) {
	if text == "" {
		return Count{}, ErrInvalidCount
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return Count{}, fmt.Errorf("%w: %q", ErrInvalidCount, text)
		}
	}
	b, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return Count{}, fmt.Errorf("%w: %q", ErrInvalidCount, text)
	}
	if b.BitLen() > 128 {
		return Count{}, fmt.Errorf("%w: %q", ErrCountOverflow, text)
	}
	return Count{value: uint128.FromBig(b)}, nil
}

// Value returns the underlying 128-bit value.
func (c Count) Value() uint128.Uint128 { return c.value }

// IsZero reports whether the count is zero.
func (c Count) IsZero() bool { return c.value.IsZero() }

// Cmp compares c and o and returns -1, 0 or +1.
func (c Count) Cmp(o Count) int { return c.value.Cmp(o.value) }

// Decimal returns the count as an integer decimal.
func (c Count) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(c.value.Big(), 0)
}

// Add returns c+o, or ErrCountOverflow past 128 bits.
func (c Count) Add(o Count) (Count, error) {
	if c.value.Cmp(uint128.Max.Sub(o.value)) > 0 {
		return Count{}, ErrCountOverflow
	}
	return Count{value: c.value.Add(o.value)}, nil
}

// Sub returns c-o, or ErrCountOverflow when o is larger than c.
func (c Count) Sub(o Count) (Count, error) {
	if c.value.Cmp(o.value) < 0 {
		return Count{}, ErrCountOverflow
	}
	return Count{value: c.value.Sub(o.value)}, nil
}

// Mul returns c*o, or ErrCountOverflow past 128 bits.
func (c Count) Mul(o Count) (Count, error) {
	product := new(big.Int).Mul(c.value.Big(), o.value.Big())
	if product.BitLen() > 128 {
		return Count{}, ErrCountOverflow
	}
	return Count{value: uint128.FromBig(product)}, nil
}

// Div returns c/o truncated.
func (c Count) Div(o Count) (Count, error) {
	if o.value.IsZero() {
		return Count{}, ErrDivisionByZero
	}
	return Count{value: c.value.Div(o.value)}, nil
}

// Triplets lays the count out for pronunciation. Only the units group is
// feminine, agreeing with "единица".
func (c Count) Triplets() ([]pronounce.Triplet, error) {
	return pronounce.Integer{Digits: c.value.String(), Gender: pronounce.Feminine}.Triplets()
}

// Noun returns the form of "единица" that agrees with the count.
func (c Count) Noun() string {
	return declineOrMany(c.value.String(), UnitForms)
}

// String renders the count in digits with its noun, e.g. "21 единица".
func (c Count) String() string {
	return c.value.String() + " " + c.Noun()
}

// Spell renders the count in words with its noun, e.g. "двадцать одна единица".
func (c Count) Spell() (string, error) {
	words, err := pronounce.Pronounce(c)
	if err != nil {
		return "", err
	}
	if words == "" {
		words = zeroWord
	}
	return words + " " + c.Noun(), nil
}

// MarshalText encodes the count as decimal digits.
func (c Count) MarshalText() ([]byte, error) {
	return []byte(c.value.String()), nil
}

// UnmarshalText decodes decimal digits.
func (c *Count) UnmarshalText(text []byte) error {
	parsed, err := ParseCount(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
