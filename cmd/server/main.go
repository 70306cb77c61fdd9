package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/blockdoc/internal/api"
	"github.com/dgallion1/blockdoc/internal/config"
	"github.com/dgallion1/blockdoc/internal/pipeline"
	"github.com/dgallion1/blockdoc/internal/store"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	docs, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open document store", "error", err)
		os.Exit(1)
	}

	// Initialize import pipeline.
	pipe := pipeline.NewOrchestrator(cfg, docs, log)
	pipe.Start(ctx)

	// Initialize HTTP server.
	srv := api.NewServer(docs, pipe, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		// Drain HTTP first so no in-flight request submits to a stopped
		// pipeline.
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		pipe.Stop()
		docs.Close()
	}()

	log.Info("starting blockdoc", "port", cfg.Port, "db", docs.Path())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
