package services

import (
	"context"
	"log/slog"

	portsrepo "github.com/SscSPs/change_maker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/change_maker/internal/core/ports/services"
	"github.com/SscSPs/change_maker/internal/middleware"
	"github.com/SscSPs/change_maker/internal/platform/config"
	"github.com/SscSPs/change_maker/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The seed of the randomized change source is logged at debug level through the logger in ctx.
func NewServiceContainer(ctx context.Context, cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	mode, err := ParseErrorMode(cfg.ErrorMode)
	if err != nil {
		return nil, err
	}

	// Unseeded runs still log the seed they drew so a run can be replayed.
	seed := cfg.RandomSeed
	if seed == 0 {
		if seed, err = utils.SecureSeed(); err != nil {
			return nil, err
		}
	}
	middleware.GetLoggerFromCtx(ctx).Debug("Randomized change source ready", slog.Uint64("seed", seed), slog.Bool("configured", cfg.RandomSeed != 0))

	container := &portssvc.ServiceContainer{}
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Change = NewChangeService(WithRandomSource(NewLockedSource(seed)))
	container.Batch = NewBatchService(
		repos.CurrencyRepo,
		container.Change,
		WithErrorMode(mode),
		WithWorkers(cfg.Workers),
	)

	return container, nil
}
