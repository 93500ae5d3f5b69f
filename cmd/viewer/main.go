package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fieldware/fieldbill/internal/buildinfo"
	"github.com/fieldware/fieldbill/internal/logging"
	"github.com/fieldware/fieldbill/internal/viewer"
	"github.com/fieldware/fieldbill/internal/viewer/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.LoadConfig()
	s := viewer.NewServer(cfg, logger)

	ctx, cancelFunc := context.WithCancel(context.Background())
	initSignalHandler(cancelFunc)

	if err := s.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}

func initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}
