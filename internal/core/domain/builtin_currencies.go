package domain

// DefaultCurrencyCode is used when no currency is configured.
const DefaultCurrencyCode = "USD"

// BuiltinCurrencies returns fresh copies of the compiled-in currency tables.
func BuiltinCurrencies() []*Currency {
	usd := mustCurrency("USD", [][3]string{
		{"100", "100 dollar bill", "100 dollar bills"},
		{"20", "20 dollar bill", "20 dollar bills"},
		{"10", "10 dollar bill", "10 dollar bills"},
		{"5", "5 dollar bill", "5 dollar bills"},
		{"1", "1 dollar bill", "1 dollar bills"},
		{"0.25", "quarter", "quarters"},
		{"0.10", "dime", "dimes"},
		{"0.05", "nickle", "nickles"},
		{"0.01", "penny", "pennies"},
	})

	eur := mustCurrency("EUR", [][3]string{
		{"500", "500 euro note", "500 euro notes"},
		{"200", "200 euro note", "200 euro notes"},
		{"100", "100 euro note", "100 euro notes"},
		{"50", "50 euro note", "50 euro notes"},
		{"20", "20 euro note", "20 euro notes"},
		{"10", "10 euro note", "10 euro notes"},
		{"5", "5 euro note", "5 euro notes"},
		{"2", "2 euro coin", "2 euro coins"},
		{"1", "1 euro coin", "1 euro coins"},
		{"0.50", "50 cent coin", "50 cent coins"},
		{"0.20", "20 cent coin", "20 cent coins"},
		{"0.10", "10 cent coin", "10 cent coins"},
		{"0.05", "5 cent coin", "5 cent coins"},
		{"0.02", "2 cent coin", "2 cent coins"},
		{"0.01", "1 cent coin", "1 cent coins"},
	})

	usd.CreatedBy = CreatedByBuiltin
	eur.CreatedBy = CreatedByBuiltin
	return []*Currency{usd, eur}
}
