// Package pronounce spells non-negative integers in Russian words and picks
// the noun forms that agree with them.
package pronounce

import "strings"

// Gender of the noun attached to a number. Only "1" and "2" change with it.
type Gender int

const (
	Masculine Gender = iota
	Feminine
)

// Magnitude is anything that can lay itself out as triplets.
// Implementations recompute the triplets on every call.
type Magnitude interface {
	Triplets() ([]Triplet, error)
}

// Pronounce renders m from the most significant group down, dropping
// groups that are all zeros. Zero renders as the empty string.
func Pronounce(m Magnitude) (string, error) {
	triplets, err := m.Triplets()
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(triplets))
	for i := len(triplets) - 1; i >= 0; i-- {
		if triplets[i].IsZero() {
			continue
		}
		parts = append(parts, triplets[i].Pronounce())
	}
	return strings.Join(parts, " "), nil
}

// Integer is a Magnitude over a canonical digit string whose units group
// agrees with a noun of the given gender.
type Integer struct {
	Digits string
	Gender Gender
}

func (n Integer) Triplets() ([]Triplet, error) {
	triplets, err := Group(n.Digits)
	if err != nil {
		return nil, err
	}
	if n.Gender == Feminine {
		triplets[0] = triplets[0].AsFeminine()
	}
	return triplets, nil
}

// Decline picks the form of a noun counted by the whole number digits.
func Decline(digits string, forms Forms) (string, error) {
	triplets, err := Group(digits)
	if err != nil {
		return "", err
	}
	return triplets[0].Decline(forms), nil
}
