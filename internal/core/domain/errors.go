package domain

import (
	"fmt"

	"github.com/SscSPs/money_counter/internal/apperrors"
)

// Construction and arithmetic errors of the value types. All of them are
// validation errors, so errors.Is(err, apperrors.ErrValidation) holds.
var (
	ErrNegativeAmount = fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	ErrKopekScale     = fmt.Errorf("%w: неверно указано количество копеек, правильное значение: [рубли].(1-99)", apperrors.ErrValidation)
	ErrInvalidAmount  = fmt.Errorf("%w: amount is not a decimal number", apperrors.ErrValidation)
	ErrInvalidCount   = fmt.Errorf("%w: count is not a non-negative integer", apperrors.ErrValidation)
	ErrCountOverflow  = fmt.Errorf("%w: count out of range", apperrors.ErrValidation)
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", apperrors.ErrValidation)
)
