package mapping

import (
	"fmt"

	"github.com/SscSPs/money_counter/internal/core/domain"
	"github.com/SscSPs/money_counter/internal/models"
)

// ToModelCalculation converts a domain Calculation to a model Calculation
func ToModelCalculation(d domain.Calculation) models.Calculation {
	return models.Calculation{
		CalculationID: d.CalculationID,
		Budget:        d.Budget.Amount(),
		Price:         d.Price.Amount(),
		Count:         d.Count.Decimal(),
		Total:         d.Total.Amount(),
		Leftover:      d.Leftover.Amount(),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCalculation converts a model Calculation to a domain Calculation.
// Total and leftover are recomputed from the inputs.
func ToDomainCalculation(m models.Calculation) (domain.Calculation, error) {
	budget, err := domain.NewMoney(m.Budget)
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("calculation %s budget: %w", m.CalculationID, err)
	}
	price, err := domain.NewMoney(m.Price)
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("calculation %s price: %w", m.CalculationID, err)
	}
	count, err := domain.ParseCount(m.Count.BigInt().String())
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("calculation %s count: %w", m.CalculationID, err)
	}

	calc, err := domain.NewCalculation(budget, price, count)
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("calculation %s: %w", m.CalculationID, err)
	}
	calc.CalculationID = m.CalculationID
	calc.AuditFields = ToDomainAuditFields(m.AuditFields)
	return calc, nil
}

// ToDomainCalculationSlice converts a slice of model Calculations to domain Calculations
func ToDomainCalculationSlice(ms []models.Calculation) ([]domain.Calculation, error) {
	ds := make([]domain.Calculation, len(ms))
	for i, m := range ms {
		d, err := ToDomainCalculation(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
