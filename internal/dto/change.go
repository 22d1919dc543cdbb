package dto

import (
	"github.com/SscSPs/change_maker/internal/core/domain"
	"github.com/SscSPs/change_maker/internal/utils"
)

// ComputeChangeRequest is a single owed/paid pair. Amounts are decimal strings.
type ComputeChangeRequest struct {
	Owed         string `json:"owed" binding:"required"`
	Paid         string `json:"paid" binding:"required"`
	CurrencyCode string `json:"currencyCode" binding:"omitempty,uppercase,len=3"`
}

// BatchChangeRequest carries raw "<owed>,<paid>" lines.
type BatchChangeRequest struct {
	Lines        []string `json:"lines" binding:"required,min=1"`
	CurrencyCode string   `json:"currencyCode" binding:"omitempty,uppercase,len=3"`
}

// DenominationCountResponse is one entry of a breakdown.
type DenominationCountResponse struct {
	Count int64  `json:"count"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// ChangeResponse defines the data returned for a computed change.
type ChangeResponse struct {
	CurrencyCode string                      `json:"currencyCode"`
	Change       string                      `json:"change"`
	Strategy     domain.Strategy             `json:"strategy"`
	Breakdown    []DenominationCountResponse `json:"breakdown"`
	Display      string                      `json:"display"`
}

// BatchChangeResponse holds one output line per valid input line.
// Errors is only set in collect mode and lists the skipped lines.
type BatchChangeResponse struct {
	RunID        string   `json:"runID"`
	CurrencyCode string   `json:"currencyCode"`
	Lines        []string `json:"lines"`
	Processed    int      `json:"processed"`
	Skipped      int      `json:"skipped"`
	Errors       []string `json:"errors,omitempty"`
}

// ToChangeResponse converts a decomposition to its DTO, formatting amounts with the currency's precision.
func ToChangeResponse(res *domain.DecompositionResult, currency *domain.Currency) ChangeResponse {
	breakdown := make([]DenominationCountResponse, len(res.Counts))
	for i, dc := range res.Counts {
		breakdown[i] = DenominationCountResponse{
			Count: dc.Count,
			Label: dc.Denomination.Label(dc.Count),
			Value: utils.FormatWithCurrencyPrecision(dc.Denomination.Value, currency),
		}
	}
	return ChangeResponse{
		CurrencyCode: res.CurrencyCode,
		Change:       utils.FormatWithCurrencyPrecision(res.Change, currency),
		Strategy:     res.Strategy,
		Breakdown:    breakdown,
		Display:      res.String(),
	}
}
