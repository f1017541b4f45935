package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/apetrenko/file-market/internal/market/bootstrap"
	"github.com/apetrenko/file-market/internal/pkg/logging"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.StdoutLogger

	cfg := bootstrap.LoadConfig()
	app := bootstrap.NewMarketApp(cfg, logger)
	defer app.Shutdown()

	if err := app.Run(mainCtx); err != nil {
		logger.Error("market app stopped with error", "error", err.Error())
	}
}
