package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/stylocoin/dashboard/internal/buildinfo"
	"github.com/stylocoin/dashboard/internal/client/cli"
	"github.com/stylocoin/dashboard/internal/client/config"
	"github.com/stylocoin/dashboard/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
