// Package main is the entry point for the lathe surface gallery.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/lathe/internal/app"
	"github.com/Faultbox/lathe/internal/config"
	"github.com/Faultbox/lathe/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== lathe ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Log level follows edits to the config file; window settings need a restart.
	if path := config.FindFile(); path != "" {
		err := config.Watch(ctx, path, func(c *config.Config) {
			logger.SetLevel(c.Logging.Level)
		})
		if err != nil {
			logger.Warn("config watch disabled", zap.Error(err))
		}
	}

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to initialize", zap.Error(err))
		return 1
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		logger.Error("frame loop error", zap.Error(err))
		return 1
	}

	logger.Info("lathe closed normally")
	return 0
}
