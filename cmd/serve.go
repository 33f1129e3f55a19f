package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/mrzname/internal/config"
	"github.com/kozaktomas/mrzname/internal/database/postgres"
	"github.com/kozaktomas/mrzname/internal/metrics"
	"github.com/kozaktomas/mrzname/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long: `Start the mrzname HTTP API.
POST /api/v1/extract turns FTM entities into person records and
POST /api/v1/normalize shows how single names are cleaned. Large inputs can be
submitted as background jobs under /api/v1/jobs, with progress streamed over
server-sent events. When DATABASE_URL is set, runs can be stored and browsed
under /api/v1/runs. Setting WEB_API_KEY protects /api/v1. Prometheus metrics
are served at /metrics.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 8080, "Port to listen on (default from WEB_PORT)")
	serveCmd.Flags().String("host", "0.0.0.0", "Host to bind to (default from WEB_HOST)")
}

// resolveServeHostPort applies --host and --port when they were given.
func resolveServeHostPort(cmd *cobra.Command, cfg *config.WebConfig) {
	cfg.Port = intFlagOr(cmd, "port", cfg.Port)
	if cmd.Flags().Changed("host") {
		cfg.Host = mustGetString(cmd, "host")
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	resolveServeHostPort(cmd, &cfg.Web)

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Database.URL != "" {
		logger.Info("connecting to PostgreSQL database")
		if err := postgres.Initialize(&cfg.Database); err != nil {
			return fmt.Errorf("failed to initialize PostgreSQL: %w", err)
		}
		defer postgres.GetGlobalPool().Close()
		logger.Info("run storage enabled (PostgreSQL)")
	} else {
		logger.Info("DATABASE_URL not set, run storage disabled")
	}

	server, err := web.NewServer(cfg, logger, metrics.New())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Errorw("error during shutdown", "error", err)
		}
	}()

	fmt.Printf("Starting mrzname API on http://%s:%d\n", cfg.Web.Host, cfg.Web.Port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Start(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	return nil
}
