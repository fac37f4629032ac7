package main

import (
	"log"
	"net"
	"time"

	"github.com/joho/godotenv"

	"github.com/honeycarbs/urban-match/internal/config"
	"github.com/honeycarbs/urban-match/internal/httpserver"
	"github.com/honeycarbs/urban-match/pkg/logging"
	"github.com/honeycarbs/urban-match/pkg/shutdown"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	srv, err := httpserver.InitializeServer(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize server", "err", err)
	}

	go shutdown.Graceful(
		shutdown.DefaultSignals(),
		srv,
		10*time.Second,
		logger,
	)

	logger.Info("recommendation server initialized and starting",
		"addr", net.JoinHostPort(cfg.Host, cfg.Port))

	if err := srv.Run(); err != nil {
		logger.Error("server exited with error", "err", err)
	} else {
		logger.Info("server stopped")
	}
}
