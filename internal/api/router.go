package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/iconidentify/tunelink/internal/api/handler"
	mw "github.com/iconidentify/tunelink/internal/api/middleware"
)

// NewRouter creates the HTTP router with all routes configured.
func NewRouter(
	indexHandler *handler.IndexHandler,
	mediaHandler *handler.MediaHandler,
	legacyHandler *handler.LegacyHandler,
	secret string,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CleanPath)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Logger)
	r.Use(middleware.Recoverer)

	// Service info (no auth)
	r.Get("/", indexHandler.Info)

	r.Route("/api", func(r chi.Router) {
		// Modern endpoints (no auth)
		r.Get("/info", mediaHandler.Info)
		r.Get("/search", mediaHandler.Search)

		// Legacy key-protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(mw.SecretAuth(secret))
			r.Get("/get", legacyHandler.Get)
			r.Get("/stream", legacyHandler.Stream)
		})
	})

	return r
}
