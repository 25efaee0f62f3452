package pronounce

import "errors"

// ErrUnsupportedMagnitude is returned when a number needs a scale word past undecillion.
var ErrUnsupportedMagnitude = errors.New("unsupported magnitude")

// ErrInvalidDigits is returned for input that is not a canonical decimal digit string.
var ErrInvalidDigits = errors.New("invalid digit string")
