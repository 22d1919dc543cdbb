package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/change_maker/internal/adapters/memory"
	"github.com/SscSPs/change_maker/internal/core/domain"
	portsrepo "github.com/SscSPs/change_maker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/change_maker/internal/core/ports/services"
	"github.com/SscSPs/change_maker/internal/core/services"
	"github.com/SscSPs/change_maker/internal/middleware"
	"github.com/SscSPs/change_maker/internal/platform/config"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app is everything a command needs once configuration has been read.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	services *portssvc.ServiceContainer
}

func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag.Name, err))
	}
}

// newLogger writes JSON logs to w, at debug level when debug is set.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// bootstrap loads configuration, the currency catalog and the services.
func bootstrap(ctx context.Context, v *viper.Viper, logOut io.Writer) (*app, context.Context, error) {
	cfg, err := config.LoadConfigFrom(v)
	if err != nil {
		return nil, ctx, fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger(logOut, cfg.Debug)
	ctx = middleware.WithLogger(ctx, logger)

	repos := portsrepo.RepositoryProvider{CurrencyRepo: memory.NewBuiltinCurrencyRepository()}
	container, err := services.NewServiceContainer(ctx, cfg, repos)
	if err != nil {
		return nil, ctx, err
	}

	if cfg.CurrenciesFile != "" {
		f, err := os.Open(cfg.CurrenciesFile)
		if err != nil {
			return nil, ctx, fmt.Errorf("failed to open currencies file: %w", err)
		}
		defer f.Close()

		n, err := services.LoadCurrencyCatalog(ctx, f, container.Currency, domain.CreatedByCatalogFile)
		if err != nil {
			return nil, ctx, err
		}
		logger.Info("Loaded currencies file", slog.String("path", cfg.CurrenciesFile), slog.Int("currencies", n))
	}

	return &app{cfg: cfg, logger: logger, services: container}, ctx, nil
}
