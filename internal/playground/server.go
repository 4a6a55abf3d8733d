package playground

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	ratalog "github.com/rata-lang/rata/core/log"
	"github.com/rata-lang/rata/parser"
)

// Server is the playground HTTP and websocket server.
type Server struct {
	httpServer *http.Server
	handler    *Handler
	ws         *WebSocketHandler
	logger     *ratalog.Logger
	config     Config
}

// Config holds server configuration.
type Config struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Version      string

	// Parser limits. Zero values select the parser defaults.
	MaxInputLength int
	MaxDepth       int
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		Host:         "0.0.0.0",
		Port:         8080,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		Version:      "dev",
	}
}

// New creates a playground server with the given configuration.
func New(cfg Config, logger *ratalog.Logger) (*Server, error) {
	if logger == nil {
		logger = ratalog.GetDefault()
	}
	logger = logger.WithField("component", "rata-playground")

	p, err := parser.New(parser.Options{
		Logger:         logger,
		MaxInputLength: cfg.MaxInputLength,
		MaxDepth:       cfg.MaxDepth,
	})
	if err != nil {
		return nil, fmt.Errorf("creating parser: %w", err)
	}

	h := NewHandler(cfg.Version, logger)
	ws := NewWebSocketHandler(p, logger)

	mux := http.NewServeMux()
	mux.Handle("/ws", ws)
	mux.Handle("/", h)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      loggingMiddleware(logger, mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{
		httpServer: httpServer,
		handler:    h,
		ws:         ws,
		logger:     logger,
		config:     cfg,
	}, nil
}

// loggingMiddleware adds request logging.
func loggingMiddleware(logger *ratalog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap response writer to capture status code
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		logger.Info("HTTP request", ratalog.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   wrapper.statusCode,
			"duration": time.Since(start).String(),
		})
	})
}

// responseWrapper wraps http.ResponseWriter to capture the status code.
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Flush implements http.Flusher.
func (w *responseWrapper) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Hijack implements http.Hijacker so the websocket upgrade works behind
// the logging middleware.
func (w *responseWrapper) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := w.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, fmt.Errorf("underlying response writer does not support hijacking")
}

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *responseWrapper) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("Starting playground server", ratalog.Fields{
		"host": s.config.Host,
		"port": s.config.Port,
	})
	return s.httpServer.ListenAndServe()
}

// StartAsync starts the server in the background.
func (s *Server) StartAsync() error {
	s.logger.Info("Starting playground server (async)", ratalog.Fields{
		"host": s.config.Host,
		"port": s.config.Port,
	})

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.ErrorWithErr("HTTP server error", err)
		}
	}()

	return nil
}

// Stop gracefully stops the server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping playground server")
	return s.httpServer.Shutdown(ctx)
}

// Address returns the configured listen address.
func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}
