// Package http provides the HTTP delivery layer for the bookmark service.
// This package contains the HTTP handlers and related types used for processing
// incoming requests, validating input, and formatting responses, plus the
// public short-link redirect.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/go-playground/validator/v10"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/vadimbarashkov/bookmarker/internal/auth"
	"github.com/vadimbarashkov/bookmarker/internal/metrics"
)

type tokenVerifier interface {
	Verify(token string) (string, error)
}

// NewRouter initializes and returns a new Chi router configured with middleware and routes for the bookmark API.
func NewRouter(
	logger *httplog.Logger,
	bookmarkUseCase bookmarkUseCase,
	verifier tokenVerifier,
	m *metrics.Metrics,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*"},
		AllowedMethods:   []string{"POST", "GET", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(m.Middleware)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./docs/swagger.yml")
	})

	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", handlePing)

		r.Route("/bookmarks", func(r chi.Router) {
			r.Use(auth.Authenticator(verifier))

			h := newBookmarkHandler(bookmarkUseCase, validator.New())

			r.Post("/", h.createBookmark)
			r.Get("/", h.listBookmarks)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getBookmark)
				r.Put("/", h.updateBookmark)
				r.Patch("/", h.updateBookmark)
				r.Delete("/", h.deleteBookmark)
			})
		})
	})

	rh := &redirectHandler{useCase: bookmarkUseCase, observer: m}
	r.Get("/{shortCode}", rh.redirect)

	return r
}
