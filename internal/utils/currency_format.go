package utils

import (
	"github.com/SscSPs/change_maker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision formats an amount with as many places as the currency's minor unit
// Example: amount 0.1 with USD (minor unit 0.01) returns "0.10"
// Example: amount 12 with JPY (minor unit 1) returns "12"
// Example: amount 1.5 with CHF (minor unit 0.05) returns "1.50"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency *domain.Currency) string {
	return amount.StringFixed(currency.Places())
}
