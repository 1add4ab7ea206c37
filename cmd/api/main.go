package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ascend-local-store/internal/cache"
	"ascend-local-store/internal/config"
	"ascend-local-store/internal/handler"
	"ascend-local-store/internal/repository"
	"ascend-local-store/internal/router"
	"ascend-local-store/internal/service"
	"ascend-local-store/pkg/objecturl"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Info().Msg("Starting Ascend local store API...")

	// Load configuration
	cfg := config.MustLoad()
	if cfg.App.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Info().Str("environment", cfg.App.Environment).Msg("configuration loaded")

	// Open the embedded store
	if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0o755); err != nil {
		log.Fatal().Err(err).Msg("failed to create data directory")
	}
	db, err := repository.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("failed to open local store")
	}
	defer db.Close()
	log.Info().Str("path", cfg.Store.Path).Msg("local store opened")

	// Repositories
	urls := objecturl.NewRegistry()
	catalogRepo := repository.NewSQLiteCatalogRepository(db)
	imageRepo := repository.NewSQLiteImageRepository(db, urls)
	settingsRepo := repository.NewSQLiteSettingsRepository(db)

	// In-memory catalog read cache
	memCache := cache.NewMemoryCache()
	defer memCache.Close()

	// Services
	catalogService := service.NewCatalogService(catalogRepo, memCache, cfg.Cache.TTL)
	importer := service.NewImporter(catalogRepo)
	session := service.NewSession(settingsRepo)
	session.Load(context.Background())
	log.Info().
		Str("language", session.Language()).
		Str("theme", session.Theme()).
		Msg("session restored")

	// Boot hydration: warm the store so first reads are instant
	products, source := catalogService.Hydrate(context.Background())
	log.Info().Int("count", len(products)).Str("source", string(source)).Msg("catalog hydrated")

	// Handlers
	healthHandler := handler.New(db, cfg.App.Version)
	catalogHandler := handler.NewCatalogHandler(catalogService, importer)
	imageHandler := handler.NewImageHandler(imageRepo, urls)
	settingsHandler := handler.NewSettingsHandler(settingsRepo, session)

	// Create router
	r := router.New(router.Config{
		Handler:         healthHandler,
		CatalogHandler:  catalogHandler,
		ImageHandler:    imageHandler,
		SettingsHandler: settingsHandler,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", cfg.Server.Address()).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server stopped")
}
