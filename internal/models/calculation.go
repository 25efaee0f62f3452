package models

import "github.com/shopspring/decimal"

// Calculation is a row of the calculations table.
type Calculation struct {
	CalculationID string          `db:"calculation_id"`
	Budget        decimal.Decimal `db:"budget"`
	Price         decimal.Decimal `db:"price"`
	Count         decimal.Decimal `db:"item_count"`
	Total         decimal.Decimal `db:"total"`
	Leftover      decimal.Decimal `db:"leftover"`
	AuditFields
}
