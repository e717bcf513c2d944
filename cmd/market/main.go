package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/article-market/internal/market/bootstrap"
	"github.com/Lexv0lk/article-market/internal/pkg/env"
	"github.com/Lexv0lk/article-market/internal/pkg/logging"
)

const (
	networkProtocol = "tcp"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.StdoutLogger

	cfg, err := env.Load[bootstrap.MarketConfig](".env")
	if err != nil {
		logger.Error("failed to load config", "error", err.Error())
		os.Exit(1)
	}

	lis, err := net.Listen(networkProtocol, cfg.HttpPort)
	if err != nil {
		logger.Error("failed to listen", "port", cfg.HttpPort, "error", err.Error())
		os.Exit(1)
	}

	app := bootstrap.NewMarketApp(cfg, logger)
	defer app.Shutdown()

	if err := app.Run(mainCtx, lis); err != nil {
		logger.Error("market stopped with error", "error", err.Error())
	}
}
