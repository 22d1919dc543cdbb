package domain_test

import (
	"testing"

	"github.com/SscSPs/change_maker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSpecialCase(t *testing.T) {
	usd := usdCurrency(t)

	tests := []struct {
		owed string
		want bool
	}{
		{"2.12", false},
		{"2.13", true}, // 71 × 0.03
		{"3.00", true},
		{"0.03", true},
		{"0.00", true},
		{"1.01", false},
		{"9.99", true},
	}
	for _, tt := range tests {
		t.Run(tt.owed, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.IsSpecialCase(usd, decimal.RequireFromString(tt.owed)))
		})
	}
}

func TestNewDecompositionResult(t *testing.T) {
	usd := usdCurrency(t)
	// quarters, dime, pennies
	counts := []int64{0, 0, 0, 0, 0, 3, 1, 0, 2}

	res := domain.NewDecompositionResult(usd, decimal.RequireFromString("0.87"), domain.StrategyGreedy, counts)

	require.Len(t, res.Counts, 3)
	assert.Equal(t, "USD", res.CurrencyCode)
	assert.Equal(t, domain.StrategyGreedy, res.Strategy)
	assert.Equal(t, []string{"3 quarters", "1 dime", "2 pennies"}, res.Segments())
	assert.Equal(t, "3 quarters,1 dime,2 pennies", res.String())
	assert.True(t, decimal.RequireFromString("0.87").Equal(res.Total()))
	assert.Equal(t, int64(6), res.Pieces())
}

func TestDecompositionResult_Empty(t *testing.T) {
	usd := usdCurrency(t)
	res := domain.NewDecompositionResult(usd, decimal.Zero, domain.StrategyGreedy, make([]int64, len(usd.Denominations)))

	assert.Empty(t, res.Counts)
	assert.Equal(t, "", res.String())
	assert.True(t, res.Total().IsZero())
}
