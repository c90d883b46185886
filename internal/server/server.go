// Package server exposes the extraction pipeline over HTTP: upload a
// brochure, fetch its canonical record under either profile, list
// everything processed so far.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/propintel/brochure-extractor/internal/catalog"
	"github.com/propintel/brochure-extractor/internal/common"
	"github.com/propintel/brochure-extractor/internal/extract"
	"github.com/propintel/brochure-extractor/internal/repository"
)

// Config holds the HTTP-facing knobs.
type Config struct {
	Addr        string
	UploadDir   string
	MaxUploadMB int64
}

// Server wires the extractor, pipeline engines, and record store behind
// the HTTP routes. Uploads are processed under both profiles so either
// record can be served later.
type Server struct {
	logger    *slog.Logger
	cfg       Config
	extractor extract.Service
	catalog   *catalog.Catalog
	store     *repository.Store
}

// New creates a Server. A nil catalog uses the built-in defaults.
func New(cfg Config, svc extract.Service, cat *catalog.Catalog, store *repository.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cat == nil {
		cat = catalog.Default()
	}
	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = 64
	}
	return &Server{
		logger:    logger,
		cfg:       cfg,
		extractor: svc,
		catalog:   cat,
		store:     store,
	}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	// Mirror the chi request id into our own context key so anything
	// below the handler layer can log it without importing chi.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := common.WithRequestID(req.Context(), middleware.GetReqID(req.Context()))
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})

	r.Get("/health", s.handleHealth)
	r.Post("/documents", s.handleUpload)
	r.Get("/documents/{id}/record", s.handleGetRecord)
	r.Get("/records", s.handleListRecords)

	return r
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("server.write.failed", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]any{"ok": false, "error": msg})
}
