package rest

import (
	"embed"
	"encoding/json"
	"net/http"

	"learnermax/application/services"
	"learnermax/infrastructure/config"
	"learnermax/interfaces/http/rest/handlers"
	"learnermax/interfaces/http/rest/middleware"
	pkgerrors "learnermax/pkg/errors"
	"learnermax/pkg/observability"
	"learnermax/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

//go:embed openapi.yaml
var openapiFS embed.FS

// Router creates and configures the HTTP router
type Router struct {
	cfg     *config.Config
	service *services.ItemService
	metrics *observability.Metrics
	logger  *zap.Logger
	errors  *pkgerrors.ErrorHandler
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	service *services.ItemService,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:     cfg,
		service: service,
		metrics: metrics,
		logger:  logger,
		errors:  pkgerrors.NewErrorHandler(logger, !cfg.IsProduction()),
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware. The error handler middleware replaces chi's
	// Recoverer so panics produce the same envelope as other errors.
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Logger(rt.logger))
	router.Use(rt.errors.Middleware)
	if rt.metrics != nil {
		router.Use(rt.metrics.Middleware)
	}

	// CORS for the Next.js frontend
	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.learnermax.com"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Utility endpoints
	router.Get("/health", rt.healthCheck)
	router.Get("/", rt.root)
	router.Get("/openapi.yaml", rt.openapiSpec)

	// Item endpoints
	router.Route("/api/items", func(r chi.Router) {
		itemHandler := handlers.NewItemHandler(rt.service, rt.errors, rt.logger)
		r.Get("/", itemHandler.ListItems)
		r.Post("/", itemHandler.UpsertItem)
		r.Get("/{id}", itemHandler.GetItem)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	rt.respondJSON(w, http.StatusOK, map[string]string{
		"status":      "ok",
		"timestamp":   utils.NowRFC3339(),
		"environment": rt.cfg.Environment,
	})
}

// root handles requests to the API root
func (rt *Router) root(w http.ResponseWriter, req *http.Request) {
	rt.respondJSON(w, http.StatusOK, map[string]string{
		"message":       "LearnerMax API",
		"version":       rt.cfg.Version,
		"documentation": "/openapi.yaml",
	})
}

// openapiSpec serves the embedded API specification
func (rt *Router) openapiSpec(w http.ResponseWriter, req *http.Request) {
	doc, err := openapiFS.ReadFile("openapi.yaml")
	if err != nil {
		rt.errors.Handle(w, req, pkgerrors.NewInternalError("failed to read openapi spec").WithCause(err))
		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}

// respondJSON sends a JSON response
func (rt *Router) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		rt.logger.Error("Failed to encode response", zap.Error(err))
	}
}
