package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rgehrsitz/ley73/internal/api"
	"github.com/rgehrsitz/ley73/internal/calculation"
	"github.com/rgehrsitz/ley73/internal/config"
	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the pension calculation HTTP API",
		Long: `Serve the pension calculation HTTP API. Settings come from the environment:

  LEY73_ADDR            listen address (default :8080)
  LEY73_CONFIG          YAML file whose parameters section replaces the defaults
  LEY73_READ_TIMEOUT    request read timeout (default 5s)
  LEY73_WRITE_TIMEOUT   response write timeout (default 10s)
  LEY73_MAX_BODY_BYTES  request body limit (default 65536)
  LEY73_DEBUG           log calculation details (default false)
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return err
			}

			params := domain.DefaultParameters()
			if cfg.ConfigFile != "" {
				params, err = config.NewInputParser().LoadParametersFromFile(cfg.ConfigFile)
				if err != nil {
					return err
				}
			}

			logger := simpleCLILogger{}
			engine := calculation.NewPensionEngine(params)
			if cfg.Debug {
				engine.SetLogger(logger)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, api.NewServer(cfg, api.NewHandler(engine, logger)))
		},
	}
}

// serve runs srv until ctx is cancelled, then drains open connections
func serve(ctx context.Context, srv *api.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return <-errCh
}
