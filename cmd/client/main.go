package main

import (
	"context"
	"os"

	charm "github.com/charmbracelet/log"

	"soukclient/internal/client/cli"
	"soukclient/internal/client/config"
	"soukclient/internal/logging"
)

func main() {
	log := logging.NewCharmLogger(charm.NewWithOptions(os.Stderr, charm.Options{
		ReportTimestamp: true,
		Prefix:          "souk",
	}))

	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(context.Background(), "startup failed", "err", err)
		os.Exit(1)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Error(context.Background(), "exited with error", "err", err)
		os.Exit(1)
	}
}
