// Command server serves the Toki Pona converter API.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/MauritiusChief/toki-ante/internal/app"
	"github.com/MauritiusChief/toki-ante/internal/config"
)

var cli struct {
	Config   string `help:"YAML config file (./config.yaml when present)" env:"CONFIG_PATH" type:"path"`
	PrintEnv bool   `name:"print-env" help:"List the environment variables the server reads and exit"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("server"),
		kong.Description("Toki Pona to Hanzi converter API."),
		kong.UsageOnError(),
	)

	if cli.PrintEnv {
		if err := config.WriteUsage(os.Stdout); err != nil {
			log.Fatalf("print env: %v", err)
		}
		return
	}

	cfg, err := config.LoadFile(cli.Config)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
