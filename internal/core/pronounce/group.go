package pronounce

import (
	"fmt"
	"strings"
)

// Group splits a canonical decimal digit string into triplets, index 0 being
// the units group. Every returned triplet is masculine.
func Group(digits string) ([]Triplet, error) {
	if digits == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidDigits)
	}
	if len(digits) > MaxDigits {
		return nil, fmt.Errorf("%w: %d digits, at most %d supported", ErrUnsupportedMagnitude, len(digits), MaxDigits)
	}

	switch len(digits) % 3 {
	case 1:
		digits = "00" + digits
	case 2:
		digits = "0" + digits
	}

	count := len(digits) / 3
	triplets := make([]Triplet, count)
	for i := 0; i < count; i++ {
		// run i (left to right) lands at position count-1-i
		var run [3]byte
		copy(run[:], digits[i*3:i*3+3])
		t, err := NewTriplet(run, count-1-i)
		if err != nil {
			return nil, err
		}
		triplets[count-1-i] = t
	}
	return triplets, nil
}

// Digits reassembles the canonical digit string of triplets produced by Group.
func Digits(triplets []Triplet) string {
	var b strings.Builder
	for i := len(triplets) - 1; i >= 0; i-- {
		b.WriteString(triplets[i].Digits())
	}
	s := strings.TrimLeft(b.String(), "0")
	if s == "" {
		return "0"
	}
	return s
}
