package dto

import (
	"time"

	"github.com/SscSPs/change_maker/internal/core/domain"
)

// DenominationRequest is one (value, singular, plural) triple supplied by a caller.
type DenominationRequest struct {
	Value    string `json:"value" yaml:"value" binding:"required,numeric"`
	Singular string `json:"singular" yaml:"singular" binding:"required"`
	Plural   string `json:"plural" yaml:"plural" binding:"required"`
}

// CreateCurrencyRequest defines the data needed to register a new currency.
type CreateCurrencyRequest struct {
	CurrencyCode  string                `json:"currencyCode" yaml:"code" binding:"required,uppercase,len=3"`
	Denominations []DenominationRequest `json:"denominations" yaml:"denominations" binding:"required,min=1,dive"`
}

// DenominationResponse defines the data returned for a denomination.
type DenominationResponse struct {
	Value    string `json:"value"`
	Singular string `json:"singular"`
	Plural   string `json:"plural"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode  string                 `json:"currencyCode"`
	MinorUnit     string                 `json:"minorUnit"`
	Denominations []DenominationResponse `json:"denominations"`
	CreatedAt     time.Time              `json:"createdAt"`
	CreatedBy     string                 `json:"createdBy"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	units := make([]DenominationResponse, len(curr.Denominations))
	for i, d := range curr.Denominations {
		units[i] = DenominationResponse{
			Value:    d.Value.String(),
			Singular: d.Singular,
			Plural:   d.Plural,
		}
	}
	return CurrencyResponse{
		CurrencyCode:  curr.CurrencyCode,
		MinorUnit:     curr.MinorUnit.String(),
		Denominations: units,
		CreatedAt:     curr.CreatedAt,
		CreatedBy:     curr.CreatedBy,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []*domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(curr)
	}
	return res
}
