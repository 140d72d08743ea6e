package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"smarthome/internal/api"
	"smarthome/internal/config"
	"smarthome/internal/db"
	"smarthome/internal/processors/publisher"
	"smarthome/internal/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Service stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	slog.InfoContext(ctx, "Starting service...")

	store, err := db.Init(ctx, db.Config{
		ConnString:     cfg.DBDSN,
		MigrationsPath: cfg.MigrationsPath,
		SkipMigrate:    !cfg.Migrate,
	})
	if err != nil {
		return err
	}
	defer store.Close()

	renderer, err := render.New()
	if err != nil {
		return err
	}

	apiCfg := api.Config{
		DB:             store,
		Renderer:       renderer,
		NotFoundStatus: cfg.NotFoundStatus,
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	wg := sync.WaitGroup{}

	var events *publisher.Publisher
	if cfg.PublishEvents() {
		events = publisher.New(publisher.Config{
			Brokers:   cfg.KafkaBrokers,
			Topic:     cfg.KafkaTopic,
			QueueSize: cfg.EventQueueSize,
		})
		apiCfg.Events = events
		wg.Go(func() {
			events.Run(workerCtx)
		})
		slog.InfoContext(ctx, "Publishing lookup events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewRouter(api.New(apiCfg)),
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "HTTP server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errChan:
	}

	slog.InfoContext(ctx, "Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "Server shutdown error", "error", err)
	}

	stopWorkers()
	wg.Wait()
	if events != nil {
		events.Close(shutdownCtx)
	}
	return serveErr
}
