package cli

import (
	"context"
	stderrors "errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/rileyhilliard/fasam/internal/config"
	"github.com/rileyhilliard/fasam/internal/dashboard"
	"github.com/rileyhilliard/fasam/internal/errors"
	"github.com/rileyhilliard/fasam/internal/logger"
	"github.com/rileyhilliard/fasam/internal/metrics"
	"github.com/rileyhilliard/fasam/internal/tui"
)

// runUI drives the dashboard on the terminal. Tests replace it.
var runUI = tui.Run

// runDashboard loads config, wires diagnostics and metrics, and runs the
// dashboard until the user quits or the process is signalled.
func runDashboard(ctx context.Context, configPath string) error {
	cfg, path, err := config.Load(configPath)
	if err != nil {
		return err
	}

	mode, err := tui.ParseColorMode(cfg.Color)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, "Invalid color mode", "Use one of: auto, always, never.")
	}

	sessionID := uuid.NewString()
	diag, closeDiag, err := openDiagnostics(cfg, sessionID)
	if err != nil {
		return err
	}
	defer closeDiag()

	if path != "" {
		diag.Info("loaded config from %s", path)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec := metrics.NewRecorder()
	runErr := runUI(ctx, mode, dashboard.Options{
		TickInterval: cfg.TickInterval,
		FallbackWait: cfg.FallbackWait,
		LogRetention: cfg.LogRetention,
		Seed:         cfg.Seed,
		SessionID:    sessionID,
		Observer:     rec,
		Logger:       diag,
	})

	if cfg.MetricsFile != "" {
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			diag.Error("writing metrics to %s: %v", cfg.MetricsFile, err)
			if runErr == nil {
				runErr = errors.WrapWithCode(err, errors.ErrConfig,
					"Failed to write metrics file",
					"Check that "+cfg.MetricsFile+" is writable, or unset metrics_file.")
			}
		}
	}

	// A signal is a normal way to stop.
	if stderrors.Is(runErr, context.Canceled) {
		diag.Info("stopped by signal")
		return nil
	}
	if runErr != nil {
		diag.Error("dashboard failed: %v", runErr)
	}
	return runErr
}

// openDiagnostics returns the zap file logger when debug_log is set, tagged
// with the session id. Without it diagnostics are discarded because the
// dashboard owns the terminal.
func openDiagnostics(cfg *config.Config, sessionID string) (logger.Logger, func(), error) {
	if cfg.DebugLog == "" {
		return logger.Noop(), func() {}, nil
	}

	fl, err := logger.NewFileLogger(cfg.DebugLog, cfg.LogLevel)
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot open debug log "+cfg.DebugLog,
			"Check the directory exists and is writable, or unset debug_log.")
	}
	return fl.With("session", sessionID), func() { _ = fl.Close() }, nil
}
