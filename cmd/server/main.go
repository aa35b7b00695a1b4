package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wickes36/golf/internal/config"
	"github.com/wickes36/golf/internal/di"
	"github.com/wickes36/golf/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Printf("server exited: %v", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := di.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		app.Close(closeCtx)
	}()

	config.LogEnvStatus(app.Config, app.Logger)
	app.Logger.Info(
		"http_server_start",
		"host", app.Config.HTTP.Host,
		"port", app.Config.HTTP.Port,
		"http2", app.Config.HTTP.HTTP2Enabled,
		"gzip", app.Config.HTTP.GzipEnabled,
		"tip_model", app.Config.Gemini.TipModel,
		"speech_model", app.Config.Gemini.SpeechModel,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Serve(gctx, app.Server, shutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		app.Logger.Error("http_server_failed", "err", err)
		return err
	}
	app.Logger.Info("http_server_stopped")
	return nil
}
