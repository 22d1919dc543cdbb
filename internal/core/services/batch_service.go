package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/SscSPs/change_maker/internal/apperrors"
	"github.com/SscSPs/change_maker/internal/core/domain"
	portsrepo "github.com/SscSPs/change_maker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/change_maker/internal/core/ports/services"
	"github.com/SscSPs/change_maker/internal/middleware"
	"github.com/SscSPs/change_maker/pkg/flatfile"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ErrorMode controls what a batch does with an invalid line.
type ErrorMode string

const (
	// ErrorModeFailFast aborts the batch on the first invalid line. No output is produced.
	ErrorModeFailFast ErrorMode = "fail_fast"
	// ErrorModeCollect skips invalid lines and reports them all at the end.
	ErrorModeCollect ErrorMode = "collect"
)

// ParseErrorMode accepts "fail_fast" or "collect" in any case.
func ParseErrorMode(s string) (ErrorMode, error) {
	switch ErrorMode(strings.ToLower(strings.TrimSpace(s))) {
	case ErrorModeFailFast, "":
		return ErrorModeFailFast, nil
	case ErrorModeCollect:
		return ErrorModeCollect, nil
	}
	return "", fmt.Errorf("%w: unknown error mode '%s'", apperrors.ErrValidation, s)
}

type batchService struct {
	BaseService
	currencyRepo portsrepo.CurrencyReader
	change       portssvc.ChangeSvc
	mode         ErrorMode
	workers      int
}

// BatchOption is a functional option for configuring the batch service
type BatchOption func(*batchService)

// WithErrorMode sets how invalid lines are handled.
func WithErrorMode(mode ErrorMode) BatchOption {
	return func(s *batchService) {
		s.mode = mode
	}
}

// WithWorkers sets how many transactions are decomposed at once. Values below one mean one.
func WithWorkers(n int) BatchOption {
	return func(s *batchService) {
		s.workers = max(n, 1)
	}
}

// NewBatchService creates a batch service that decomposes sequentially and fails fast by default.
func NewBatchService(currencyRepo portsrepo.CurrencyReader, change portssvc.ChangeSvc, options ...BatchOption) portssvc.BatchSvc {
	svc := &batchService{
		currencyRepo: currencyRepo,
		change:       change,
		mode:         ErrorModeFailFast,
		workers:      1,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BatchSvc = (*batchService)(nil)

// ProcessLines turns every "<owed>,<paid>" line of r into one output line.
//
// In fail-fast mode the first bad line aborts the run and no result is returned.
// In collect mode the result holds the valid lines and the returned error joins
// one *apperrors.LineError per skipped line.
func (s *batchService) ProcessLines(ctx context.Context, r io.Reader, currencyCode string) (*portssvc.BatchResult, error) {
	runID := uuid.NewString()
	logger := s.GetLogger(ctx).With(slog.String("run_id", runID))
	ctx = middleware.WithLogger(ctx, logger)

	if currencyCode == "" {
		currencyCode = domain.DefaultCurrencyCode
	}
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		s.LogError(ctx, err, "Currency lookup failed", slog.String("currency_code", currencyCode))
		return nil, err
	}

	lines, err := flatfile.ReadLines(r)
	if err != nil {
		return nil, err
	}

	var lineErrs []error
	txs := make([]domain.Transaction, 0, len(lines))
	for i, line := range lines {
		tx, err := domain.ParseTransaction(line, i+1)
		if err == nil {
			err = tx.Validate(currency)
		}
		if err != nil {
			lineErr := apperrors.NewLineError(i+1, line, err)
			if s.mode == ErrorModeFailFast {
				s.LogError(ctx, lineErr, "Invalid transaction, aborting run")
				return nil, lineErr
			}
			s.LogDebug(ctx, "Skipping invalid transaction", slog.Int("line", i+1), slog.String("error", err.Error()))
			lineErrs = append(lineErrs, lineErr)
			continue
		}
		txs = append(txs, tx)
	}

	// Index-aligned with txs so output order never depends on scheduling.
	outputs := make([]string, len(txs))
	decomposeErrs := make([]error, len(txs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, tx := range txs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.change.ComputeChange(gctx, currency, tx)
			if err != nil {
				lineErr := apperrors.NewLineError(tx.Line, tx.Raw, err)
				if s.mode == ErrorModeFailFast {
					return lineErr
				}
				decomposeErrs[i] = lineErr
				return nil
			}
			outputs[i] = res.String()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Batch aborted")
		return nil, err
	}

	result := &portssvc.BatchResult{
		RunID:    runID,
		Currency: currency.CurrencyCode,
		Lines:    make([]string, 0, len(txs)),
	}
	for i := range txs {
		if decomposeErrs[i] != nil {
			lineErrs = append(lineErrs, decomposeErrs[i])
			continue
		}
		result.Lines = append(result.Lines, outputs[i])
	}
	result.Processed = len(result.Lines)
	result.Skipped = len(lineErrs)

	s.LogInfo(ctx, "Batch processed",
		slog.String("currency", currency.CurrencyCode),
		slog.Int("lines", len(lines)),
		slog.Int("processed", result.Processed),
		slog.Int("skipped", result.Skipped),
		slog.Int("workers", s.workers))

	return result, errors.Join(lineErrs...)
}
