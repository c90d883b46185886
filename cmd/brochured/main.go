package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/propintel/brochure-extractor/internal/catalog"
	"github.com/propintel/brochure-extractor/internal/common"
	"github.com/propintel/brochure-extractor/internal/extract"
	"github.com/propintel/brochure-extractor/internal/repository"
	"github.com/propintel/brochure-extractor/internal/server"
)

func main() {
	// Logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Env
	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Keyword catalog
	cat := catalog.Default()
	if cfg.Extract.CatalogPath != "" {
		var err error
		cat, err = catalog.Load(cfg.Extract.CatalogPath)
		if err != nil {
			logger.Error("failed to load catalog", "path", cfg.Extract.CatalogPath, "error", err)
			os.Exit(1)
		}
	}

	// Record store
	db, err := repository.Open(repository.Config{
		Path:        cfg.Store.Path,
		InMemory:    cfg.Store.InMemory,
		BusyTimeout: cfg.Store.BusyTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open record store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	store := repository.NewStore(db, logger)
	if err := store.Init(ctx); err != nil {
		logger.Error("failed to initialize record store", "error", err)
		os.Exit(1)
	}

	// HTTP server
	extractor := extract.NewExtractor(extract.Config{MaxFileSize: cfg.Extract.MaxFileSize}, logger)
	srv := server.New(server.Config{
		Addr:        cfg.Server.Addr,
		UploadDir:   cfg.Server.UploadDir,
		MaxUploadMB: int64(cfg.Server.MaxUploadMB),
	}, extractor, cat, store, logger)

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
