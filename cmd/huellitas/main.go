package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/huellitas-app/huellitas/internal/buildinfo"
	"github.com/huellitas-app/huellitas/internal/cli"
	"github.com/huellitas-app/huellitas/internal/config"
	"github.com/huellitas-app/huellitas/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
