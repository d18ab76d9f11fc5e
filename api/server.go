package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/abdhesh369/my-portfolio/config"
	"github.com/abdhesh369/my-portfolio/database"
	"github.com/abdhesh369/my-portfolio/metrics"
)

const defaultMaxBodyBytes = 1 << 20

var defaultAcceptedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database, c map[string]string, opts ...func(*router)) (Server, error) {
	// Ensure correct port is set
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	// Capture startup time
	startupTime := time.Now()

	opts = append([]func(*router){withConfig(c), withStartupTime(startupTime)}, opts...)
	router := NewRouter(database, opts...)

	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 15)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 30)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 120)) * time.Second

	server := &http.Server{
		Addr:              address,
		Handler:           router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return Server{server, startupTime}, nil
}

// Option configures the router built by NewServer and NewRouter.
type Option = func(*router)

type router struct {
	config      map[string]string
	startupTime time.Time
	metrics     *metrics.Metrics
	notifier    ContactNotifier
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

// WithMetrics records request metrics and serves them at /metrics.
func WithMetrics(m *metrics.Metrics) func(*router) {
	return func(r *router) {
		r.metrics = m
	}
}

// WithNotifier is told about every stored contact message.
func WithNotifier(n ContactNotifier) func(*router) {
	return func(r *router) {
		r.notifier = n
	}
}

func (r router) environment() string {
	return config.GetString(r.config, "ENVIRONMENT", "development")
}

// NewRouter builds the full handler tree. Options not given fall back to the
// process environment snapshot.
func NewRouter(database database.Database, opts ...func(*router)) *chi.Mux {
	router := router{startupTime: time.Now()}
	for _, opt := range opts {
		opt(&router)
	}
	if router.config == nil {
		router.config = config.New()
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(RequestIDMiddleware)
	chiRouter.Use(LogInternalServerErrors)
	if router.metrics != nil {
		chiRouter.Use(MetricsMiddleware(router.metrics))
	}

	// Apply CORS middleware
	acceptedOrigins := config.GetList(router.config, "ACCEPTED_ORIGINS", defaultAcceptedOrigins)
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	chiRouter.Use(corsMiddleware(acceptedOrigins))

	if strings.EqualFold(router.environment(), "development") {
		chiRouter.Use(ColoredHTTPLoggingMiddleware)
	} else {
		chiRouter.Use(JSONHTTPLoggingMiddleware)
	}
	chiRouter.Use(MaxBodySize(int64(config.GetInt(router.config, "MAX_BODY_BYTES", defaultMaxBodyBytes))))

	handlers := initializeHandlers(database, router)

	setupMetaRoutes(chiRouter, handlers, router)
	setupAPIRoutes(chiRouter, handlers)

	notFound := handlers.metaHandler.notFound()
	if spa := newSPAHandler(config.GetString(router.config, "STATIC_DIR", ""), notFound); spa != nil {
		log.Info().Str("dir", spa.dir).Msg("serving static front end")
		chiRouter.NotFound(spa.ServeHTTP)
	} else {
		chiRouter.NotFound(notFound)
	}

	return chiRouter
}

// Start blocks until the server stops. A graceful shutdown is not an error.
func (s Server) Start() error {
	log.Info().Msgf("Server started on: %s", s.Addr)
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s Server) ShutdownGracefully(timeout time.Duration) error {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
		return err
	}
	log.Info().Msg("HttpServer gracefully shut down")
	return nil
}
