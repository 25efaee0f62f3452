package dto

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators adds the "money" and "count" binding tags to gin's validator.
// Only the syntax is checked here; range and scale rules stay with the domain
// so their messages reach the client.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	if err := v.RegisterValidation("money", isDecimal); err != nil {
		return err
	}
	return v.RegisterValidation("count", isDigits)
}

func isDecimal(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(fl.Field().String())
	return err == nil
}

func isDigits(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
