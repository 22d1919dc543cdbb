package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/change_maker/internal/apperrors"
	"github.com/SscSPs/change_maker/internal/core/domain"
	portssvc "github.com/SscSPs/change_maker/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// changeService implements portssvc.ChangeSvc
type changeService struct {
	BaseService
	random RandomSource
}

// ChangeOption is a functional option for configuring the change service
type ChangeOption func(*changeService)

// WithRandomSource replaces the source used by the randomized strategy.
func WithRandomSource(src RandomSource) ChangeOption {
	return func(s *changeService) {
		if src != nil {
			s.random = src
		}
	}
}

// NewChangeService creates a change service. Without options it draws from the global generator.
func NewChangeService(options ...ChangeOption) portssvc.ChangeSvc {
	svc := &changeService{random: NewGlobalSource()}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ChangeSvc = (*changeService)(nil)

// ComputeChange validates tx, rounds both amounts to the minor unit and decomposes the difference.
func (s *changeService) ComputeChange(ctx context.Context, currency *domain.Currency, tx domain.Transaction) (*domain.DecompositionResult, error) {
	if err := tx.Validate(currency); err != nil {
		return nil, err
	}
	q := tx.Quantized(currency)
	return s.Decompose(ctx, currency, q.Owed, q.Change())
}

// Decompose splits change into denominations of currency. Owed amounts that are
// a multiple of three minor units get a randomized decomposition, all others
// the greedy one.
func (s *changeService) Decompose(ctx context.Context, currency *domain.Currency, owed, change decimal.Decimal) (*domain.DecompositionResult, error) {
	if change.IsNegative() {
		return nil, fmt.Errorf("%w: change %s", apperrors.ErrNegativeAmount, change)
	}
	if !currency.IsStrictlyDescending() {
		return nil, fmt.Errorf("currency %s: %w", currency.CurrencyCode, apperrors.ErrUnsortedDenominations)
	}
	if !currency.IsCountable(change) {
		return nil, fmt.Errorf("%w: change %s %s", apperrors.ErrAmountTooLarge, change, currency.CurrencyCode)
	}
	if !currency.IsMultipleOfMinorUnit(change) {
		return nil, fmt.Errorf("%w: %s is not a multiple of %s %s", apperrors.ErrNonTerminatingDecomposition, change, currency.MinorUnit, currency.CurrencyCode)
	}

	var (
		counts   []int64
		err      error
		strategy domain.Strategy
	)
	if domain.IsSpecialCase(currency, owed) {
		strategy = domain.StrategyRandomized
		counts, err = s.randomized(currency, change)
	} else {
		strategy = domain.StrategyGreedy
		counts, err = greedy(currency, change)
	}
	if err != nil {
		return nil, err
	}

	res := domain.NewDecompositionResult(currency, change, strategy, counts)
	s.LogDebug(ctx, "Change decomposed",
		slog.String("currency", currency.CurrencyCode),
		slog.String("owed", owed.String()),
		slog.String("change", change.String()),
		slog.String("strategy", string(strategy)),
		slog.String("result", res.String()))
	return res, nil
}

// greedy takes as many of each denomination as fit, largest first.
func greedy(currency *domain.Currency, change decimal.Decimal) ([]int64, error) {
	counts := make([]int64, len(currency.Denominations))
	remaining := change
	for i, unit := range currency.Denominations {
		if remaining.IsZero() {
			break
		}
		q, r := remaining.QuoRem(unit.Value, 0)
		counts[i] = q.IntPart()
		remaining = r
	}
	if !remaining.IsZero() {
		return nil, fmt.Errorf("%w: %s %s left over", apperrors.ErrNonTerminatingDecomposition, remaining, currency.CurrencyCode)
	}
	return counts, nil
}

// randomized repeatedly draws a denomination at or after minEligible. A draw
// that fits is taken; one that does not makes it and every larger
// denomination ineligible for the rest of the run.
func (s *changeService) randomized(currency *domain.Currency, change decimal.Decimal) ([]int64, error) {
	n := len(currency.Denominations)
	counts := make([]int64, n)
	remaining := change
	minEligible := 0
	for remaining.IsPositive() {
		if minEligible >= n {
			return nil, fmt.Errorf("%w: %s %s left over", apperrors.ErrNonTerminatingDecomposition, remaining, currency.CurrencyCode)
		}
		i := minEligible + s.random.IntN(n-minEligible)
		value := currency.Denominations[i].Value
		if value.LessThanOrEqual(remaining) {
			counts[i]++
			remaining = remaining.Sub(value)
		} else {
			minEligible = i + 1
		}
	}
	return counts, nil
}
