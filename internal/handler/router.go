// Package handler provides HTTP handlers for the printer portal API.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/prn-tf/printer-portal/internal/auth"
)

// Router assembles the HTTP routing for the portal API.
type Router struct {
	authHandler      *AuthHandler
	printerHandler   *PrinterHandler
	inkFillHandler   *InkFillHandler
	jobHandler       *JobHandler
	inventoryHandler *InventoryHandler
	settingsHandler  *SettingsHandler
	authMiddleware   func(http.Handler) http.Handler
	metricsWrapper   func(http.Handler) http.Handler
	allowedOrigins   []string
	logger           zerolog.Logger
}

// RouterConfig contains configuration for the router.
type RouterConfig struct {
	AuthHandler      *AuthHandler
	PrinterHandler   *PrinterHandler
	InkFillHandler   *InkFillHandler
	JobHandler       *JobHandler
	InventoryHandler *InventoryHandler
	SettingsHandler  *SettingsHandler
	AuthMiddleware   func(http.Handler) http.Handler
	MetricsWrapper   func(http.Handler) http.Handler
	AllowedOrigins   []string
	Logger           zerolog.Logger
}

// NewRouter creates a new Router.
func NewRouter(config RouterConfig) *Router {
	return &Router{
		authHandler:      config.AuthHandler,
		printerHandler:   config.PrinterHandler,
		inkFillHandler:   config.InkFillHandler,
		jobHandler:       config.JobHandler,
		inventoryHandler: config.InventoryHandler,
		settingsHandler:  config.SettingsHandler,
		authMiddleware:   config.AuthMiddleware,
		metricsWrapper:   config.MetricsWrapper,
		allowedOrigins:   config.AllowedOrigins,
		logger:           config.Logger.With().Str("component", "router").Logger(),
	}
}

// Handler returns the main HTTP handler.
func (rt *Router) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(rt.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	if rt.metricsWrapper != nil {
		r.Use(rt.metricsWrapper)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public routes
	r.Get("/", rt.handleRoot)
	r.Get("/health", rt.handleHealth)
	rt.authHandler.RegisterRoutes(r)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(rt.authMiddleware)
		rt.printerHandler.RegisterRoutes(r)
		rt.inkFillHandler.RegisterRoutes(r)
		rt.jobHandler.RegisterRoutes(r)
		rt.inventoryHandler.RegisterRoutes(r)
		rt.settingsHandler.RegisterRoutes(r)
	})

	return r
}

// handleRoot handles requests to the API root.
func (rt *Router) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Printer Portal API"})
}

// handleHealth handles health check requests.
func (rt *Router) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// requestID assigns a request ID, honoring one supplied by the client.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), middleware.RequestIDKey, id)))
	})
}

// requestLogger logs a line per completed request.
func (rt *Router) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		rt.logger.Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	})
}

// mustOwner returns the authenticated owner's email. Handlers registered
// behind the auth middleware may assume it is set.
func mustOwner(r *http.Request) string {
	email, _ := auth.OwnerFromContext(r.Context())
	return email
}
