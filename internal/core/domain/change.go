package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Strategy names the algorithm that produced a decomposition.
type Strategy string

const (
	StrategyGreedy     Strategy = "greedy"
	StrategyRandomized Strategy = "randomized"
)

// specialDivisorFactor times the minor unit is the divisor of the special-case predicate.
const specialDivisorFactor = 3

// IsSpecialCase reports whether owed is a multiple of three minor units.
// Such transactions get randomized change instead of greedy change.
func IsSpecialCase(c *Currency, owed decimal.Decimal) bool {
	divisor := decimal.NewFromInt(specialDivisorFactor).Mul(c.MinorUnit)
	return owed.Mod(divisor).IsZero()
}

// DenominationCount is one entry of a decomposition.
type DenominationCount struct {
	Denomination Denomination `json:"denomination"`
	Count        int64        `json:"count"`
}

// Segment renders the entry as "<count> <label>".
func (dc DenominationCount) Segment() string {
	return fmt.Sprintf("%d %s", dc.Count, dc.Denomination.Label(dc.Count))
}

// DecompositionResult holds the non-zero counts of a change decomposition,
// in the currency's descending denomination order.
type DecompositionResult struct {
	CurrencyCode string              `json:"currencyCode"`
	Change       decimal.Decimal     `json:"change"`
	Strategy     Strategy            `json:"strategy"`
	Counts       []DenominationCount `json:"counts"`
}

// NewDecompositionResult assembles a result from counts aligned with c.Denominations.
// Zero counts are dropped.
func NewDecompositionResult(c *Currency, change decimal.Decimal, strategy Strategy, counts []int64) *DecompositionResult {
	res := &DecompositionResult{
		CurrencyCode: c.CurrencyCode,
		Change:       change,
		Strategy:     strategy,
		Counts:       make([]DenominationCount, 0, len(counts)),
	}
	for i, count := range counts {
		if count > 0 {
			res.Counts = append(res.Counts, DenominationCount{Denomination: c.Denominations[i], Count: count})
		}
	}
	return res
}

// Total sums count × value over all entries.
func (r *DecompositionResult) Total() decimal.Decimal {
	total := decimal.Zero
	for _, dc := range r.Counts {
		total = total.Add(dc.Denomination.Value.Mul(decimal.NewFromInt(dc.Count)))
	}
	return total
}

// Pieces is the number of coins and notes handed out.
func (r *DecompositionResult) Pieces() int64 {
	var n int64
	for _, dc := range r.Counts {
		n += dc.Count
	}
	return n
}

// Segments renders every entry, e.g. ["3 quarters", "1 dime"].
func (r *DecompositionResult) Segments() []string {
	out := make([]string, len(r.Counts))
	for i, dc := range r.Counts {
		out[i] = dc.Segment()
	}
	return out
}

// String is the output-file form: segments joined by commas.
func (r *DecompositionResult) String() string {
	return strings.Join(r.Segments(), ",")
}
