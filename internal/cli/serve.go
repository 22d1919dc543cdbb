package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/change_maker/internal/handlers"
	"github.com/spf13/cobra"
)

// NewServe creates the command that runs the HTTP API.
func NewServe(params *CmdParams) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the change API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, err := bootstrap(cmd.Context(), params.Viper, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			r, err := handlers.NewRouter(a.cfg, a.logger, a.services)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              ":" + a.cfg.Port,
				Handler:           r,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					a.logger.Error("Server shutdown failed", slog.String("error", err.Error()))
				}
			}()

			a.logger.Info("Server starting", slog.String("port", a.cfg.Port))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error("Server failed to run", slog.String("error", err.Error()))
				return err
			}
			a.logger.Info("Server stopped")
			return nil
		},
	}

	serveCmd.Flags().String("port", "8080", "HTTP listen port")
	bindFlag(params.Viper, "PORT", serveCmd.Flags().Lookup("port"))

	return serveCmd
}
