package pronounce

import (
	"fmt"
	"strings"
)

// Triplet is one group of three decimal digits at a power-of-1000 position.
// Position 0 is the units group, 1 the thousands, 2 the millions and so on.
type Triplet struct {
	digits   [3]byte
	position int
	feminine bool
}

// NewTriplet builds a masculine triplet. digits must be ASCII '0'-'9',
// most significant first.
func NewTriplet(digits [3]byte, position int) (Triplet, error) {
	for _, d := range digits {
		if d < '0' || d > '9' {
			return Triplet{}, fmt.Errorf("%w: %q", ErrInvalidDigits, string(digits[:]))
		}
	}
	if position < 0 {
		return Triplet{}, fmt.Errorf("%w: negative position %d", ErrInvalidDigits, position)
	}
	if position > MaxPosition {
		return Triplet{}, fmt.Errorf("%w: scale position %d exceeds %d", ErrUnsupportedMagnitude, position, MaxPosition)
	}
	return Triplet{digits: digits, position: position}, nil
}

// AsFeminine returns a copy of t whose "1" and "2" agree with a feminine noun.
func (t Triplet) AsFeminine() Triplet {
	t.feminine = true
	return t
}

// Digits returns the three digits of the group, zero padded.
func (t Triplet) Digits() string { return string(t.digits[:]) }

// Position returns the power-of-1000 position of the group.
func (t Triplet) Position() int { return t.position }

// Feminine reports whether the group renders feminine "одна"/"две".
func (t Triplet) Feminine() bool { return t.feminine }

// IsZero reports whether all three digits are zero.
func (t Triplet) IsZero() bool { return t.digits == [3]byte{'0', '0', '0'} }

// Words renders the digits of the group without any noun.
// The thousands group always agrees with the feminine "тысяча".
func (t Triplet) Words() string {
	words := make([]string, 0, 3)

	if w := hundreds[t.digits[0]-'0']; w != "" {
		words = append(words, w)
	}

	unitsDone := false
	switch tens := t.digits[1] - '0'; {
	case tens == 1:
		words = append(words, teens[t.digits[2]-'0'])
		unitsDone = true
	case tens >= 2:
		words = append(words, decades[tens])
	}

	if !unitsDone {
		units := unitsMasculine
		if t.feminine || t.position == 1 {
			units = unitsFeminine
		}
		if w := units[t.digits[2]-'0']; w != "" {
			words = append(words, w)
		}
	}

	return strings.Join(words, " ")
}

// Decline picks the noun form that agrees with the last two digits of the group.
func (t Triplet) Decline(forms Forms) string {
	if t.digits[1] == '1' {
		return forms[2]
	}
	switch t.digits[2] {
	case '1':
		return forms[0]
	case '2', '3', '4':
		return forms[1]
	default:
		return forms[2]
	}
}

// Pronounce renders the group followed by its declined scale noun.
// A group of zeros renders as the empty string.
func (t Triplet) Pronounce() string {
	words := t.Words()
	if words == "" {
		return ""
	}
	scale, ok := ScaleNoun(t.position)
	if !ok {
		return words
	}
	return words + " " + t.Decline(scale)
}

func (t Triplet) String() string {
	return fmt.Sprintf("%s@%d", t.Digits(), t.position)
}
