package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/change_maker/internal/apperrors"
	"github.com/SscSPs/change_maker/internal/core/domain"
	portsrepo "github.com/SscSPs/change_maker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/change_maker/internal/core/ports/services"
	"github.com/SscSPs/change_maker/internal/dto"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/currency"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
	validate     *validator.Validate
}

// NewCurrencyService creates the catalog service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	validate := validator.New()
	// Same rules the HTTP layer binds with.
	validate.SetTagName("binding")
	return &currencyService{currencyRepo: currencyRepo, validate: validate}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// CreateCurrency validates req and registers the resulting currency.
func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, createdBy string) (*domain.Currency, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if _, err := currency.ParseISO(req.CurrencyCode); err != nil {
		return nil, fmt.Errorf("%w: '%s' is not an ISO 4217 currency code", apperrors.ErrValidation, req.CurrencyCode)
	}

	units := make([]domain.Denomination, 0, len(req.Denominations))
	for _, d := range req.Denominations {
		unit, err := domain.NewDenomination(d.Value, d.Singular, d.Plural)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}

	curr, err := domain.NewCurrency(req.CurrencyCode, units)
	if err != nil {
		return nil, err
	}
	if !curr.IsStrictlyDescending() {
		return nil, fmt.Errorf("%w: currency %s lists a denomination value twice", apperrors.ErrValidation, curr.CurrencyCode)
	}
	curr.AuditFields = domain.AuditFields{
		CreatedAt: time.Now().UTC(),
		CreatedBy: createdBy,
	}

	if err := s.currencyRepo.SaveCurrency(ctx, curr); err != nil {
		s.LogError(ctx, err, "Failed to save currency", slog.String("currency_code", curr.CurrencyCode))
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	s.LogInfo(ctx, "Currency registered",
		slog.String("currency_code", curr.CurrencyCode),
		slog.Int("denominations", len(curr.Denominations)),
		slog.String("created_by", createdBy))
	return curr, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	curr, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return curr, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]*domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []*domain.Currency{}, nil
	}
	return currencies, nil
}
