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
	"github.com/safedroid/safedroid/internal/logging"
	"github.com/safedroid/safedroid/internal/metrics"
	"github.com/safedroid/safedroid/internal/scand"
)

var scandCmd = &cobra.Command{
	Use:         "scand",
	Short:       "Run the scan service that extracts permissions and scores apps.",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationStructuredLogging: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScand(cmd.CommandPath())
	},
}

func runScand(commandPath string) error {
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

	srv := scand.NewEchoServer(logger)

	_, metricsErrCh := metrics.StartServer(ctx, cfg.MetricsAddr)

	httpServer := &http.Server{
		Addr:              cfg.ScandHTTPAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("scan service listening", "addr", cfg.ScandHTTPAddr)
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
