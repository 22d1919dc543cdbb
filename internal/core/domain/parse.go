package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/change_maker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ParseTransaction reads an "<owed>,<paid>" line. Amounts are not checked
// against a currency here; see Transaction.Validate.
func ParseTransaction(line string, lineNo int) (Transaction, error) {
	fields := strings.Split(line, ",")
	switch {
	case len(fields) < 2:
		return Transaction{}, fmt.Errorf("%w: does not have a comma", apperrors.ErrMalformedLine)
	case len(fields) > 2:
		return Transaction{}, fmt.Errorf("%w: does not have two values", apperrors.ErrMalformedLine)
	}

	owed, err := parseAmount(fields[0])
	if err != nil {
		return Transaction{}, err
	}
	paid, err := parseAmount(fields[1])
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{Line: lineNo, Raw: line, Owed: owed, Paid: paid}, nil
}

func parseAmount(field string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(field))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: unable to convert '%s' to currency", apperrors.ErrUnparsableAmount, field)
	}
	return amount, nil
}
