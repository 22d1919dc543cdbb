package domain_test

import (
	"testing"

	"github.com/SscSPs/change_maker/internal/apperrors"
	"github.com/SscSPs/change_maker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCurrency_SortsDescending(t *testing.T) {
	units := []domain.Denomination{
		denom(t, "0.05", "nickel", "nickels"),
		denom(t, "1", "dollar", "dollars"),
		denom(t, "0.25", "quarter", "quarters"),
	}

	c, err := domain.NewCurrency("tst", units)
	require.NoError(t, err)

	assert.Equal(t, "TST", c.CurrencyCode)
	require.Len(t, c.Denominations, 3)
	assert.Equal(t, "dollar", c.Denominations[0].Singular)
	assert.Equal(t, "quarter", c.Denominations[1].Singular)
	assert.Equal(t, "nickel", c.Denominations[2].Singular)
	assert.True(t, decimal.RequireFromString("0.05").Equal(c.MinorUnit))
	assert.True(t, c.IsStrictlyDescending())
	assert.Equal(t, "nickel", units[0].Singular, "input slice is not reordered")
}

func TestNewCurrency_StableOnTies(t *testing.T) {
	c, err := domain.NewCurrency("TST", []domain.Denomination{
		denom(t, "1", "first", "firsts"),
		denom(t, "2", "two", "twos"),
		denom(t, "1", "second", "seconds"),
	})
	require.NoError(t, err)

	assert.Equal(t, "first", c.Denominations[1].Singular)
	assert.Equal(t, "second", c.Denominations[2].Singular)
	assert.False(t, c.IsStrictlyDescending())
}

func TestNewCurrency_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		units []domain.Denomination
	}{
		{name: "empty code", code: " ", units: []domain.Denomination{denom(t, "1", "a", "as")}},
		{name: "no denominations", code: "TST"},
		{name: "zero value", code: "TST", units: []domain.Denomination{denom(t, "0", "a", "as")}},
		{name: "negative value", code: "TST", units: []domain.Denomination{denom(t, "-1", "a", "as")}},
		{name: "missing plural", code: "TST", units: []domain.Denomination{denom(t, "1", "a", "")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewCurrency(tt.code, tt.units)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestNewDenomination_BadValue(t *testing.T) {
	_, err := domain.NewDenomination("ten", "ten", "tens")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDenomination_Label(t *testing.T) {
	d := denom(t, "0.01", "penny", "pennies")
	assert.Equal(t, "penny", d.Label(1))
	assert.Equal(t, "pennies", d.Label(2))
	assert.Equal(t, "pennies", d.Label(40))
}

func TestBuiltinCurrencies(t *testing.T) {
	currencies := domain.BuiltinCurrencies()
	require.Len(t, currencies, 2)

	byCode := map[string]*domain.Currency{}
	for _, c := range currencies {
		byCode[c.CurrencyCode] = c
		assert.True(t, c.IsStrictlyDescending(), c.CurrencyCode)
		assert.True(t, decimal.RequireFromString("0.01").Equal(c.MinorUnit), c.CurrencyCode)
		assert.Equal(t, domain.CreatedByBuiltin, c.CreatedBy)
	}

	require.Contains(t, byCode, "USD")
	require.Contains(t, byCode, "EUR")
	assert.Len(t, byCode["USD"].Denominations, 9)
	assert.Len(t, byCode["EUR"].Denominations, 15)
	assert.True(t, decimal.NewFromInt(500).Equal(byCode["EUR"].Denominations[0].Value))
}

func TestCurrency_QuantizeAndPlaces(t *testing.T) {
	usd := usdCurrency(t)
	assert.Equal(t, int32(2), usd.Places())
	assert.True(t, usd.IsMultipleOfMinorUnit(decimal.RequireFromString("0.87")))
	assert.False(t, usd.IsMultipleOfMinorUnit(decimal.RequireFromString("0.875")))

	chf, err := domain.NewCurrency("CHF", []domain.Denomination{
		denom(t, "1", "franc", "francs"),
		denom(t, "0.05", "5 rappen", "5 rappen"),
	})
	require.NoError(t, err)

	tests := []struct{ in, want string }{
		{"1.02", "1.00"},
		{"1.025", "1.00"},
		{"1.03", "1.05"},
		{"1.05", "1.05"},
		{"0", "0.00"},
	}
	for _, tt := range tests {
		got := chf.Quantize(decimal.RequireFromString(tt.in))
		assert.Equal(t, tt.want, got.StringFixed(2), tt.in)
	}

	yen, err := domain.NewCurrency("JPY", []domain.Denomination{denom(t, "1", "yen", "yen")})
	require.NoError(t, err)
	assert.Equal(t, int32(0), yen.Places())
}

func TestCurrency_IsCountable(t *testing.T) {
	usd := usdCurrency(t)
	assert.True(t, usd.IsCountable(decimal.RequireFromString("92233720368547758.07")))
	assert.False(t, usd.IsCountable(decimal.RequireFromString("92233720368547758.08")))
	assert.False(t, usd.IsCountable(decimal.RequireFromString("1e25")))
}

func denom(t *testing.T, value, singular, plural string) domain.Denomination {
	t.Helper()
	d, err := domain.NewDenomination(value, singular, plural)
	require.NoError(t, err)
	return d
}
