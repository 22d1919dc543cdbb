package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/SscSPs/change_maker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Denomination is a single coin or note with its display labels.
type Denomination struct {
	Value    decimal.Decimal `json:"value"`
	Singular string          `json:"singular"` // e.g. "quarter"
	Plural   string          `json:"plural"`   // e.g. "quarters"
}

// NewDenomination parses value as an exact decimal.
func NewDenomination(value, singular, plural string) (Denomination, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Denomination{}, fmt.Errorf("%w: denomination value '%s': %v", apperrors.ErrValidation, value, err)
	}
	return Denomination{Value: v, Singular: singular, Plural: plural}, nil
}

// Label picks the singular form for a count of one and the plural form otherwise.
func (d Denomination) Label(count int64) string {
	if count == 1 {
		return d.Singular
	}
	return d.Plural
}

// Currency is an ordered set of denominations. Denominations are kept sorted
// descending by value and MinorUnit is always the value of the last one.
// A Currency is read-only once built; share it freely across goroutines.
type Currency struct {
	CurrencyCode  string          `json:"currencyCode"` // ISO 4217 style code (e.g., "USD")
	Denominations []Denomination  `json:"denominations"`
	MinorUnit     decimal.Decimal `json:"minorUnit"`
	AuditFields
}

// NewCurrency builds a Currency from denominations in any order.
// The sort is stable, so equal values keep their relative order.
func NewCurrency(code string, denominations []Denomination) (*Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("%w: currency code is required", apperrors.ErrValidation)
	}
	if len(denominations) == 0 {
		return nil, fmt.Errorf("%w: currency %s has no denominations", apperrors.ErrValidation, code)
	}

	units := make([]Denomination, len(denominations))
	copy(units, denominations)
	for _, unit := range units {
		if !unit.Value.IsPositive() {
			return nil, fmt.Errorf("%w: currency %s has non-positive denomination %s", apperrors.ErrValidation, code, unit.Value)
		}
		if unit.Singular == "" || unit.Plural == "" {
			return nil, fmt.Errorf("%w: denomination %s of %s needs singular and plural labels", apperrors.ErrValidation, unit.Value, code)
		}
	}

	sort.SliceStable(units, func(i, j int) bool {
		return units[i].Value.GreaterThan(units[j].Value)
	})

	return &Currency{
		CurrencyCode:  code,
		Denominations: units,
		MinorUnit:     units[len(units)-1].Value,
	}, nil
}

// mustCurrency is NewCurrency for compiled-in tables. It panics on bad input.
func mustCurrency(code string, table [][3]string) *Currency {
	units := make([]Denomination, 0, len(table))
	for _, row := range table {
		unit, err := NewDenomination(row[0], row[1], row[2])
		if err != nil {
			panic(err)
		}
		units = append(units, unit)
	}
	c, err := NewCurrency(code, units)
	if err != nil {
		panic(err)
	}
	return c
}

// IsStrictlyDescending reports whether every denomination is larger than the next.
func (c *Currency) IsStrictlyDescending() bool {
	for i := 1; i < len(c.Denominations); i++ {
		if !c.Denominations[i-1].Value.GreaterThan(c.Denominations[i].Value) {
			return false
		}
	}
	return true
}

// IsMultipleOfMinorUnit reports whether amount can be paid exactly in this currency.
func (c *Currency) IsMultipleOfMinorUnit(amount decimal.Decimal) bool {
	return amount.Mod(c.MinorUnit).IsZero()
}

// maxPieceCount is the largest count of one denomination a decomposition can hold.
var maxPieceCount = decimal.NewFromInt(math.MaxInt64)

// IsCountable reports whether amount is at most MaxInt64 minor units, so every
// denomination count of its decomposition fits in an int64.
func (c *Currency) IsCountable(amount decimal.Decimal) bool {
	q, _ := amount.QuoRem(c.MinorUnit, 0)
	return q.LessThanOrEqual(maxPieceCount)
}

// Quantize rounds a non-negative amount to a multiple of the minor unit,
// with ties going towards zero.
func (c *Currency) Quantize(amount decimal.Decimal) decimal.Decimal {
	q, r := amount.QuoRem(c.MinorUnit, 0)
	if r.Mul(decimal.NewFromInt(2)).GreaterThan(c.MinorUnit) {
		q = q.Add(decimal.NewFromInt(1))
	}
	return q.Mul(c.MinorUnit)
}

// Places returns how many fractional digits the minor unit needs.
func (c *Currency) Places() int32 {
	s := c.MinorUnit.String()
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return int32(len(s) - i - 1)
	}
	return 0
}
