// Package server exposes the generator over HTTP for the renderer and
// other clients.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/Achu067/PLANEXA/pkg/building"
	"github.com/Achu067/PLANEXA/pkg/cache"
	"github.com/Achu067/PLANEXA/pkg/catalog"
	"github.com/Achu067/PLANEXA/pkg/geo"
	"github.com/Achu067/PLANEXA/pkg/plan"
	"github.com/Achu067/PLANEXA/pkg/solver"
	"github.com/Achu067/PLANEXA/pkg/validation"
)

// cacheTTL bounds how long generated documents are kept. Generation is
// deterministic, so staleness only matters across catalog changes.
const cacheTTL = time.Hour

// Server serves the generation API.
type Server struct {
	port  int
	gen   *building.Generator
	cat   *catalog.Catalog
	cache cache.Cache
	log   *log.Logger
}

// New creates a server. A nil cache disables caching; a nil logger falls
// back to the package default.
func New(port int, gen *building.Generator, cat *catalog.Catalog, c cache.Cache, logger *log.Logger) *Server {
	if cat == nil {
		cat = catalog.Default()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{port: port, gen: gen, cat: cat, cache: c, log: logger}
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestID)

	r.Get("/api/health", s.handleHealth)
	r.Get("/api/catalog", s.handleCatalog)
	r.Post("/api/validate", s.handleValidate)
	r.Post("/api/generate", s.handleGenerate)
	return r
}

// Start runs the server until the listener fails.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info("server listening", "addr", addr)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// requestID tags every request with a UUID for log correlation. The ID
// never influences generation output.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		s.log.Debug("request", "id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCatalog lists the room profiles clients can request.
func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	type entry struct {
		Type       string  `json:"type"`
		TargetArea float64 `json:"target_area"`
		MinWidth   float64 `json:"min_width"`
		MinLength  float64 `json:"min_length"`
	}
	var out []entry
	for _, t := range catalog.All() {
		p, err := s.cat.Lookup(t)
		if err != nil {
			continue
		}
		out = append(out, entry{
			Type:       t.String(),
			TargetArea: p.TargetArea,
			MinWidth:   p.MinWidth,
			MinLength:  p.MinLength,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleValidate runs schema validation only and always answers 200 with
// the report; validity is in the body.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req plan.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	req.ApplyDefaults()
	writeJSON(w, http.StatusOK, validation.ValidateRequest(&req, s.cat))
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req plan.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, plan.Failure(fmt.Errorf("invalid JSON: %w", err)))
		return
	}
	req.ApplyDefaults()

	key := cache.RequestKey("plan", req)
	if data, ok, err := s.cache.Get(r.Context(), key); err == nil && ok {
		s.log.Debug("cache hit", "key", key)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	doc, err := s.gen.Generate(r.Context(), &req)
	status := statusFor(err)
	if err != nil {
		s.log.Warn("generation failed", "status", status, "err", err)
		writeJSON(w, status, doc)
		return
	}

	data, err := json.Marshal(doc)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, plan.Failure(err))
		return
	}
	if err := s.cache.Set(r.Context(), key, data, cacheTTL); err != nil {
		s.log.Warn("cache store failed", "err", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// statusFor maps the error taxonomy onto HTTP statuses: bad requests are
// 400, well-formed but unsolvable ones are 422, geometry faults are 500.
func statusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var inputErr *plan.InputError
	if errors.As(err, &inputErr) {
		return http.StatusBadRequest
	}
	var infErr *solver.InfeasibleError
	var stairErr *building.StairAlignmentError
	if errors.As(err, &infErr) || errors.As(err, &stairErr) {
		return http.StatusUnprocessableEntity
	}
	var geoErr *geo.GeometryError
	if errors.As(err, &geoErr) {
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
