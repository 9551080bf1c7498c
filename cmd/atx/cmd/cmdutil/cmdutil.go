// Package cmdutil holds what every atx subcommand needs: configuration,
// a logger and a context cancelled on interrupt.
package cmdutil

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"s3-audio-translate/internal/config"
	"s3-audio-translate/internal/logging"
)

var (
	// Verbose forces the development logger
	Verbose bool
	// ConfigPath is the --config flag
	ConfigPath string
)

// Load reads the configuration and builds the logger for it
func Load() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(Verbose || !cfg.IsProduction())
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// SignalContext is cancelled on SIGINT or SIGTERM
func SignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
