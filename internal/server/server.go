// Package server exposes the assistant over HTTP: a query endpoint, usage
// stats, health checks, and Prometheus metrics.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campus-assistant/internal/common/logger"
	"campus-assistant/internal/models"
)

// Config tunes the HTTP listener. QueryTimeout bounds one full
// classify-and-execute round trip.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	QueryTimeout time.Duration
}

// Answerer resolves a classified intent to a user-facing answer.
type Answerer interface {
	Execute(ctx context.Context, intent models.Intent) string
}

// History records processed questions and serves usage counters. It is
// optional; a nil History disables the stats endpoint's data.
type History interface {
	Record(ctx context.Context, question string, category models.Category)
	Stats(ctx context.Context) (map[string]int64, error)
	Recent(ctx context.Context, n int64) ([]string, error)
}

// Pinger is the readiness probe contract shared by the database clients.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	config   *Config
	answerer Answerer
	history  History
	pingers  map[string]Pinger
	logger   logger.Logger
	httpSrv  *http.Server
}

func New(config *Config, answerer Answerer, hist History, pingers map[string]Pinger, log logger.Logger) *Server {
	if config == nil {
		config = &Config{}
	}
	if config.Addr == "" {
		config.Addr = ":8080"
	}
	if config.ReadTimeout == 0 {
		config.ReadTimeout = 10 * time.Second
	}
	if config.WriteTimeout == 0 {
		config.WriteTimeout = 10 * time.Second
	}
	if config.QueryTimeout == 0 {
		config.QueryTimeout = 5 * time.Second
	}

	s := &Server{
		config:   config,
		answerer: answerer,
		history:  hist,
		pingers:  pingers,
		logger:   log.WithFields(map[string]interface{}{"component": "server"}),
	}
	s.httpSrv = &http.Server{
		Addr:         config.Addr,
		Handler:      s.Routes(),
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}
	return s
}

// Routes builds the request mux. Exposed separately so tests can drive the
// handlers through httptest without a listener.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/query", s.handleQuery)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) Start() error {
	s.logger.Info("http server listening", map[string]interface{}{"addr": s.httpSrv.Addr})
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}
