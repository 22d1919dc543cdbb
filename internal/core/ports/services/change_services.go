package services

import (
	"context"
	"io"

	"github.com/SscSPs/change_maker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ChangeSvc decomposes change amounts into denominations.
type ChangeSvc interface {
	// Decompose splits change into denominations of currency. owed selects the strategy.
	Decompose(ctx context.Context, currency *domain.Currency, owed, change decimal.Decimal) (*domain.DecompositionResult, error)

	// ComputeChange validates and quantizes a transaction, then decomposes its change.
	ComputeChange(ctx context.Context, currency *domain.Currency, tx domain.Transaction) (*domain.DecompositionResult, error)
}

// BatchSvc processes whole input files of "<owed>,<paid>" lines.
type BatchSvc interface {
	// ProcessLines reads transactions from r and returns one output line per valid transaction, in input order.
	ProcessLines(ctx context.Context, r io.Reader, currencyCode string) (*BatchResult, error)
}

// BatchResult is the outcome of a batch run.
type BatchResult struct {
	RunID     string
	Currency  string
	Lines     []string // output lines, input order
	Processed int      // valid transactions
	Skipped   int      // invalid lines dropped in collect mode
}
