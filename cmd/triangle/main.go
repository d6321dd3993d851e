// Package main is the entry point for the animated triangle demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/gltriangle/internal/app"
	"github.com/Faultbox/gltriangle/internal/config"
	"github.com/Faultbox/gltriangle/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			logger.Error("failed to write config", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config written", zap.String("path", path))
		return
	}

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("initialization failed", zap.Error(err))
		os.Exit(1)
	}

	// Close before exiting so GPU resources are released even when the
	// loop fails; os.Exit would skip a deferred call.
	runErr := a.Run()
	a.Close()

	if runErr != nil {
		logger.Error("render loop error", zap.Error(runErr))
		os.Exit(1)
	}

	logger.Info("closed normally")
}
