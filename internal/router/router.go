package router

import (
	"ascend-local-store/internal/handler"
	"ascend-local-store/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds the configuration for creating a router.
type Config struct {
	Handler         *handler.Handler
	CatalogHandler  *handler.CatalogHandler
	ImageHandler    *handler.ImageHandler
	SettingsHandler *handler.SettingsHandler
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", "X-File-Name"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if cfg.Handler != nil {
		r.Get("/api/status", cfg.Handler.Status)
	}

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Handler != nil {
			r.Get("/health", cfg.Handler.Health)
		}

		if cfg.CatalogHandler != nil {
			r.Route("/catalog", func(r chi.Router) {
				r.Get("/", cfg.CatalogHandler.Hydrate)
				r.Put("/", cfg.CatalogHandler.Persist)
				r.Delete("/", cfg.CatalogHandler.Clear)
				r.Get("/stats", cfg.CatalogHandler.Stats)
				r.Get("/slug/{slug}", cfg.CatalogHandler.BySlug)
				r.Post("/import", cfg.CatalogHandler.Import)
				r.Post("/reset", cfg.CatalogHandler.Reset)
			})
		}

		if cfg.ImageHandler != nil {
			r.Route("/images", func(r chi.Router) {
				r.Post("/", cfg.ImageHandler.Save)
				r.Post("/{id}", cfg.ImageHandler.Save)
				r.Get("/{id}", cfg.ImageHandler.Load)
			})
		}

		if cfg.SettingsHandler != nil {
			r.Get("/session", cfg.SettingsHandler.Session)
			r.Route("/settings", func(r chi.Router) {
				r.Get("/{key}", cfg.SettingsHandler.Get)
				r.Put("/{key}", cfg.SettingsHandler.Set)
			})
		}
	})

	return r
}
