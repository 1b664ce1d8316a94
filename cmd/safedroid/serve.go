package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/safedroid/safedroid/internal/config"
	"github.com/safedroid/safedroid/internal/dashboard"
	httpapp "github.com/safedroid/safedroid/internal/http"
	"github.com/safedroid/safedroid/internal/logging"
	"github.com/safedroid/safedroid/internal/metrics"
	"github.com/safedroid/safedroid/internal/scanapi"
)

var serveCmd = &cobra.Command{
	Use:         "serve",
	Short:       "Run the dashboard HTTP server.",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationStructuredLogging: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.CommandPath())
	},
}

func runServe(commandPath string) error {
	logger, err := logging.BootstrapFromEnv(logging.BootstrapOptions{Command: commandPath})
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := scanapi.New(cfg.ScanServiceURL)
	if err != nil {
		return err
	}

	state := dashboard.NewState()
	ctrl := dashboard.NewController(state, client, logger)
	ctrl.LoadInventory(ctx)

	refresher := &dashboard.Refresher{Loader: ctrl, Interval: cfg.InventoryRefresh}
	go refresher.Run(ctx)

	srv, err := httpapp.NewEchoServer(cfg, state, ctrl, logger)
	if err != nil {
		return err
	}

	_, metricsErrCh := metrics.StartServer(ctx, cfg.MetricsAddr)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("dashboard listening", "addr", cfg.HTTPAddr, "scan_service", cfg.ScanServiceURL)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-metricsErrCh:
		return err
	}
}
