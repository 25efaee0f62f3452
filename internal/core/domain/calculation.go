package domain

import (
	"fmt"
)

// Calculation checks a purchase of Count items at Price against a Budget.
type Calculation struct {
	CalculationID string `json:"calculationID"`
	Budget        Money  `json:"budget"`
	Price         Money  `json:"price"`
	Count         Count  `json:"count"`
	Total         Money  `json:"total"`    // Price * Count
	Leftover      Money  `json:"leftover"` // Budget - Total, negative on shortfall
	AuditFields
}

// NewCalculation computes the total and leftover of buying count items at price.
func NewCalculation(budget, price Money, count Count) (Calculation, error) {
	if budget.IsNegative() || price.IsNegative() {
		return Calculation{}, ErrNegativeAmount
	}
	total := price.MulCount(count)
	return Calculation{
		Budget:   budget,
		Price:    price,
		Count:    count,
		Total:    total,
		Leftover: budget.Sub(total),
	}, nil
}

// Shortfall reports whether the budget does not cover the total.
func (c Calculation) Shortfall() bool {
	return c.Leftover.IsNegative()
}

func (c Calculation) leftoverLabel() string {
	if c.Shortfall() {
		return "Не хватает:"
	}
	return "В остатке:"
}

// Summary describes the calculation with amounts in digits.
func (c Calculation) Summary() string {
	return fmt.Sprintf("Итоговая сумма: %s за %s.\n%s %s",
		c.Total, c.Count, c.leftoverLabel(), c.Leftover.Abs())
}

// SpelledSummary describes the calculation with amounts in words.
func (c Calculation) SpelledSummary() (string, error) {
	total, err := c.Total.Spell()
	if err != nil {
		return "", fmt.Errorf("spell total: %w", err)
	}
	count, err := c.Count.Spell()
	if err != nil {
		return "", fmt.Errorf("spell count: %w", err)
	}
	leftover, err := c.Leftover.Abs().Spell()
	if err != nil {
		return "", fmt.Errorf("spell leftover: %w", err)
	}
	return fmt.Sprintf("Итоговая сумма: %s за %s.\n%s %s", total, count, c.leftoverLabel(), leftover), nil
}

// Affordable returns how many whole items the budget buys at the price.
func (c Calculation) Affordable() (Count, error) {
	if c.Price.IsZero() {
		return Count{}, ErrDivisionByZero
	}
	quotient, _ := c.Budget.Amount().QuoRem(c.Price.Amount(), 0)
	return ParseCount(quotient.BigInt().String())
}
