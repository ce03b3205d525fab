package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/bikeshare-explorer/internal/common/config"
	"github.com/bikeshare-explorer/internal/common/logger"
	"github.com/bikeshare-explorer/internal/loader"
	"github.com/bikeshare-explorer/internal/shell"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env file: %v\n", err)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	loggerConfig := logger.DefaultLoggerConfig()
	loggerConfig.Level = logger.ParseLogLevel(cfg.Logging.Level)
	loggerConfig.Console = cfg.Logging.Console
	loggerConfig.File = cfg.Logging.FilePath != ""
	loggerConfig.FilePath = cfg.Logging.FilePath
	log := logger.FromConfig(loggerConfig)

	log.Info("Bikeshare explorer starting",
		"data_dir", cfg.Data.Dir,
		"cities", cfg.Data.Cities.Names(),
		"log_level", cfg.Logging.Level,
	)

	l := loader.New(cfg.Data.Cities, log)
	sh := shell.New(os.Stdin, os.Stdout, l, cfg.Data.Cities, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sh.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Interrupted, shutting down")
			fmt.Fprintln(os.Stdout, "\nInterrupted.")
			return 130
		}
		var dsErr *loader.DataSourceError
		if errors.As(err, &dsErr) {
			log.Error("Data source unavailable", "city", dsErr.City, "path", dsErr.Path, "error", err)
		} else {
			log.Error("Session failed", "error", err)
		}
		fmt.Fprintf(os.Stderr, "bikeshare: %v\n", err)
		return 1
	}

	log.Info("Bikeshare explorer stopped")
	return 0
}
