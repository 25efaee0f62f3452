package dto

import (
	"time"

	"github.com/SscSPs/money_counter/internal/core/domain"
)

// CreateCalculationRequest defines the data needed to check a purchase against a budget.
type CreateCalculationRequest struct {
	Budget string `json:"budget" binding:"required,money" example:"1000"`
	Price  string `json:"price" binding:"required,money" example:"99.90"`
	Count  string `json:"count" binding:"required,count" example:"3"`
}

// ListCalculationsParams defines query parameters for listing calculations.
type ListCalculationsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// CalculationResponse defines the data returned for a calculation.
// Amounts are decimal strings; Leftover is negative on a shortfall.
type CalculationResponse struct {
	CalculationID  string    `json:"calculationID"`
	Budget         string    `json:"budget"`
	Price          string    `json:"price"`
	Count          string    `json:"count"`
	Total          string    `json:"total"`
	Leftover       string    `json:"leftover"`
	Shortfall      bool      `json:"shortfall"`
	Summary        string    `json:"summary"`
	SpelledSummary string    `json:"spelledSummary,omitempty"` // empty past the spellable range
	CreatedAt      time.Time `json:"createdAt"`
	CreatedBy      string    `json:"createdBy"`
}

// ListCalculationsResponse defines one page of calculations.
type ListCalculationsResponse struct {
	Calculations []CalculationResponse `json:"calculations"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToCalculationResponse converts a domain.Calculation to CalculationResponse DTO.
func ToCalculationResponse(c *domain.Calculation) CalculationResponse {
	count, _ := c.Count.MarshalText()
	spelled, err := c.SpelledSummary()
	if err != nil {
		spelled = ""
	}
	return CalculationResponse{
		CalculationID:  c.CalculationID,
		Budget:         c.Budget.Text(),
		Price:          c.Price.Text(),
		Count:          string(count),
		Total:          c.Total.Text(),
		Leftover:       c.Leftover.Text(),
		Shortfall:      c.Shortfall(),
		Summary:        c.Summary(),
		SpelledSummary: spelled,
		CreatedAt:      c.CreatedAt,
		CreatedBy:      c.CreatedBy,
	}
}

// ToCalculationResponses converts a slice of domain.Calculation to []CalculationResponse.
func ToCalculationResponses(calcs []domain.Calculation) []CalculationResponse {
	responses := make([]CalculationResponse, len(calcs))
	for i := range calcs {
		responses[i] = ToCalculationResponse(&calcs[i])
	}
	return responses
}
