package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/abduss/mediarepo/internal/config"
	"github.com/abduss/mediarepo/internal/media"
	"github.com/abduss/mediarepo/internal/metrics"
	"github.com/abduss/mediarepo/internal/server"
	"github.com/abduss/mediarepo/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.InitMetrics()

	backend, err := buildBackend(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("init storage backend: %v", err)
	}

	mediaService := media.NewService(backend)

	router := server.NewRouter(server.Dependencies{
		Config:  cfg,
		Backend: backend,
		Media:   mediaService,
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("media repo API listening on %s (backend: %s)", cfg.Server.Address(), cfg.Storage.Backend)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fmt.Println("shutting down gracefully...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func buildBackend(ctx context.Context, cfg config.StorageConfig) (storage.Backend, error) {
	switch cfg.Backend {
	case config.BackendLocal:
		return storage.NewLocal(cfg.LocalDir, cfg.PublicBase, cfg.ListLimit)
	case config.BackendMinIO:
		remote, err := storage.NewMinIO(cfg.MinIO, cfg.PublicBase, cfg.ListLimit)
		if err != nil {
			return nil, err
		}
		if err := remote.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return remote, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
