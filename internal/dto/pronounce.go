package dto

import "github.com/SscSPs/money_counter/internal/core/domain"

// SpellMoneyRequest asks for the readings of an amount of rubles.
type SpellMoneyRequest struct {
	Amount string `json:"amount" binding:"required,money" example:"1234.56"`
}

// SpellCountRequest asks for the readings of a count.
type SpellCountRequest struct {
	Value string `json:"value" binding:"required,count" example:"21"`
}

// MoneyReadingResponse defines the data returned for a spelled amount.
type MoneyReadingResponse struct {
	Amount string `json:"amount"`
	Text   string `json:"text"`  // "2 рубля 22 копейки"
	Words  string `json:"words"` // "два рубля двадцать две копейки"
}

// CountReadingResponse defines the data returned for a spelled count.
type CountReadingResponse struct {
	Value string `json:"value"`
	Text  string `json:"text"`
	Words string `json:"words"`
}

// ToMoneyReadingResponse converts a domain.MoneyReading to its DTO.
func ToMoneyReadingResponse(r *domain.MoneyReading) MoneyReadingResponse {
	return MoneyReadingResponse{
		Amount: r.Amount.Text(),
		Text:   r.Text,
		Words:  r.Words,
	}
}

// ToCountReadingResponse converts a domain.CountReading to its DTO.
func ToCountReadingResponse(r *domain.CountReading) CountReadingResponse {
	value, _ := r.Count.MarshalText()
	return CountReadingResponse{
		Value: string(value),
		Text:  r.Text,
		Words: r.Words,
	}
}
