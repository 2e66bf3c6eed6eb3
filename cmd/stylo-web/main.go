package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/stylocoin/dashboard/internal/buildinfo"
	"github.com/stylocoin/dashboard/internal/client/config"
	"github.com/stylocoin/dashboard/internal/client/services"
	"github.com/stylocoin/dashboard/internal/client/web"
	"github.com/stylocoin/dashboard/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig(config.WebDefaults)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dash, db, err := services.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close()

	srv := web.NewServer(dash, cfg, logger)
	if err := srv.Run(ctx, cfg.ListenAddr); err != nil {
		logger.Error(ctx, "gateway stopped", "error", err)
		os.Exit(1)
	}

}
