package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/folderkeeper/internal/app"
	"github.com/dmitrijs2005/folderkeeper/internal/config"
	"github.com/dmitrijs2005/folderkeeper/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closer := logging.New(logging.Options{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	defer closer.Close()

	ctx := context.Background()
	a, err := app.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		closer.Close()
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		logger.Error(ctx, "app stopped with error", "error", err)
		closer.Close()
		os.Exit(1)
	}
}
