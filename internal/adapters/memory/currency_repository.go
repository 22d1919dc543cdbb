package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/SscSPs/change_maker/internal/apperrors"
	"github.com/SscSPs/change_maker/internal/core/domain"
	portsrepo "github.com/SscSPs/change_maker/internal/core/ports/repositories"
)

// CurrencyRepository is a process-wide currency catalog held in memory.
// Reads vastly outnumber writes, so it is guarded by a RWMutex.
type CurrencyRepository struct {
	mu         sync.RWMutex
	currencies map[string]*domain.Currency
}

// NewCurrencyRepository creates a catalog seeded with the given currencies.
// Later entries with the same code replace earlier ones.
func NewCurrencyRepository(seed ...*domain.Currency) *CurrencyRepository {
	r := &CurrencyRepository{currencies: make(map[string]*domain.Currency, len(seed))}
	for _, c := range seed {
		r.currencies[c.CurrencyCode] = c
	}
	return r
}

// NewBuiltinCurrencyRepository creates a catalog holding the compiled-in currencies.
func NewBuiltinCurrencyRepository() portsrepo.CurrencyRepositoryFacade {
	return NewCurrencyRepository(domain.BuiltinCurrencies()...)
}

// SaveCurrency registers a new currency.
func (r *CurrencyRepository) SaveCurrency(ctx context.Context, currency *domain.Currency) error {
	if currency == nil {
		return fmt.Errorf("%w: currency is nil", apperrors.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.currencies[currency.CurrencyCode]; exists {
		return fmt.Errorf("currency %s: %w", currency.CurrencyCode, apperrors.ErrDuplicate)
	}
	r.currencies[currency.CurrencyCode] = currency
	return nil
}

// FindCurrencyByCode retrieves a currency by its code. Lookup is case-insensitive.
func (r *CurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))

	r.mu.RLock()
	defer r.mu.RUnlock()

	currency, ok := r.currencies[code]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", apperrors.ErrUnknownCurrency, currencyCode)
	}
	return currency, nil
}

// ListCurrencies retrieves all currencies ordered by code.
func (r *CurrencyRepository) ListCurrencies(ctx context.Context) ([]*domain.Currency, error) {
	r.mu.RLock()
	currencies := make([]*domain.Currency, 0, len(r.currencies))
	for _, c := range r.currencies {
		currencies = append(currencies, c)
	}
	r.mu.RUnlock()

	sort.Slice(currencies, func(i, j int) bool {
		return currencies[i].CurrencyCode < currencies[j].CurrencyCode
	})
	return currencies, nil
}

var _ portsrepo.CurrencyRepositoryFacade = (*CurrencyRepository)(nil)
