// internal/server/server.go
package server

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dnascan/internal/config"
	"dnascan/internal/history"
)

// Server exposes the sequence analysis endpoints over HTTP. All computation
// is delegated to the pure core; the server owns transport concerns only.
type Server struct {
	cfg     config.Config
	log     *slog.Logger
	hist    *history.Store // nil when run history is disabled
	metrics *metrics
}

// New assembles a Server. hist may be nil.
func New(cfg config.Config, log *slog.Logger, hist *history.Store) *Server {
	return &Server{cfg: cfg, log: log, hist: hist, metrics: newMetrics()}
}

// Handler builds the route table wrapped with logging and metrics.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /compare", s.handleCompare)
	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("GET /history", s.handleHistory)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	return s.instrument(mux)
}
