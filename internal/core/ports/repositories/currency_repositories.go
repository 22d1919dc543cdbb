package repositories

import (
	"context"

	"github.com/SscSPs/change_maker/internal/core/domain"
)

// CurrencyReader defines read operations for the currency catalog
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	// It returns apperrors.ErrUnknownCurrency when the code is absent.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all catalog entries ordered by code.
	ListCurrencies(ctx context.Context) ([]*domain.Currency, error)
}

// CurrencyWriter defines write operations for the currency catalog
type CurrencyWriter interface {
	// SaveCurrency adds a new currency. It returns apperrors.ErrDuplicate
	// when the code is already registered.
	SaveCurrency(ctx context.Context, currency *domain.Currency) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
