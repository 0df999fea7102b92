package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/vancomm/minesweeper-bot/internal/app"
	"github.com/vancomm/minesweeper-bot/internal/config"
	"github.com/vancomm/minesweeper-bot/internal/logging"
)

func main() {
	configPath := flag.String(
		"config", os.Getenv("CONFIG_FILE"), "path to a YAML config file",
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Fallback().WithError(err).Fatal("failed to load config")
	}

	log, err := logging.New(cfg, os.Stderr)
	if err != nil {
		logging.Fallback().WithError(err).Fatal("failed to set up logging")
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	a, err := app.New(log, cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to create app")
	}

	if err := a.Start(ctx); err != nil {
		log.WithError(err).Fatal("failed to run app")
	}
}
