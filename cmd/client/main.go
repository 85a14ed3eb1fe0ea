package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/Rajatbisht12/EmiterA/internal/client/cli"
	"github.com/Rajatbisht12/EmiterA/internal/client/config"
	"github.com/Rajatbisht12/EmiterA/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
