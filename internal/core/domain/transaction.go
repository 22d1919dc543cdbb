package domain

import (
	"fmt"

	"github.com/SscSPs/change_maker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Transaction is one line of the input file: an owed amount and the amount paid.
type Transaction struct {
	Line int             `json:"line"` // 1-based, 0 when not read from a file
	Raw  string          `json:"raw"`
	Owed decimal.Decimal `json:"owed"`
	Paid decimal.Decimal `json:"paid"`
}

// Change is the amount to hand back.
func (t Transaction) Change() decimal.Decimal {
	return t.Paid.Sub(t.Owed)
}

// Validate checks the amounts against the currency they are paid in.
func (t Transaction) Validate(c *Currency) error {
	if err := validateAmount("owed", t.Owed, c); err != nil {
		return err
	}
	if err := validateAmount("paid", t.Paid, c); err != nil {
		return err
	}
	if t.Paid.LessThan(t.Owed) {
		return fmt.Errorf("%w: paid amount %s is less than owed amount %s", apperrors.ErrInsufficientPayment, t.Paid, t.Owed)
	}
	return nil
}

// Quantized returns a copy with both amounts rounded to the currency's minor unit.
func (t Transaction) Quantized(c *Currency) Transaction {
	t.Owed = c.Quantize(t.Owed)
	t.Paid = c.Quantize(t.Paid)
	return t
}

func validateAmount(field string, amount decimal.Decimal, c *Currency) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s amount %s", apperrors.ErrNegativeAmount, field, amount)
	}
	if amount.LessThan(c.MinorUnit) {
		return fmt.Errorf("%w: %s amount %s is smaller than %s %s", apperrors.ErrAmountBelowMinorUnit, field, amount, c.MinorUnit, c.CurrencyCode)
	}
	if !c.IsCountable(amount) {
		return fmt.Errorf("%w: %s amount %s %s", apperrors.ErrAmountTooLarge, field, amount, c.CurrencyCode)
	}
	return nil
}
