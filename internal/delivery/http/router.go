package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/screenbase/movie_catalog/internal/config"
	"github.com/screenbase/movie_catalog/internal/delivery/http/handler"
	"github.com/screenbase/movie_catalog/internal/delivery/http/middleware"
	"github.com/screenbase/movie_catalog/internal/delivery/http/response"
	"github.com/screenbase/movie_catalog/internal/pkg/logger"
)

// Router holds HTTP handlers and router configuration
type Router struct {
	movieHandler *handler.MovieHandler
	genreHandler *handler.GenreHandler
	logger       *logger.Logger
	cfg          *config.Config
}

// NewRouter creates a new HTTP router
func NewRouter(
	movieHandler *handler.MovieHandler,
	genreHandler *handler.GenreHandler,
	cfg *config.Config,
	log *logger.Logger,
) *Router {
	return &Router{
		movieHandler: movieHandler,
		genreHandler: genreHandler,
		logger:       log,
		cfg:          cfg,
	}
}

// Setup configures and returns the HTTP router
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", rt.healthCheck)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/movies", func(r chi.Router) {
			r.Post("/", rt.movieHandler.Create)
			r.Get("/", rt.movieHandler.List)
			r.Get("/search", rt.movieHandler.Search)
			r.Get("/{id}", rt.movieHandler.GetByID)
			r.Put("/{id}", rt.movieHandler.Update)
			r.Delete("/{id}", rt.movieHandler.Delete)
		})

		r.Get("/genres", rt.genreHandler.List)
	})

	return r
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
