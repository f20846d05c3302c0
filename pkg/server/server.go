// Package server exposes the lookup service over HTTP.
//
// Routes:
//
//	GET /healthz            {"status":"ok"}
//	GET /v1/search?q=acme   array of summaries, [] when the lookup failed
//	GET /v1/entities/{id}   detail record, {} when the lookup failed
//	GET /v1/records/{id}    previously stored record, 404 if none
//
// Lookup failures are reported the way the lookup service reports them: an
// empty body with status 200. Only malformed input gets a 4xx.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/matzehuels/bizreg/pkg/errors"
	"github.com/matzehuels/bizreg/pkg/lookup"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server serves the HTTP API.
type Server struct {
	svc    *lookup.Service
	logger *log.Logger
	router chi.Router
}

// New builds the router for svc. A nil logger uses log.Default().
func New(svc *lookup.Service, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{svc: svc, logger: logger}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/search", s.handleSearch)
		r.Get("/entities/{id}", s.handleEntity)
		r.Get("/records/{id}", s.handleRecord)
		r.Get("/searches", s.handleSearches)
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. Returns nil after a clean shutdown.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if err := apperrors.ValidateQuery(q); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, s.svc.Search(r.Context(), q))
}

func (s *Server) handleEntity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := apperrors.ValidateEntityID(id); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	record := s.svc.Details(r.Context(), id)
	if record == nil {
		writeJSON(w, http.StatusOK, struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	record, err := s.svc.Stored(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleSearches(w http.ResponseWriter, r *http.Request) {
	run, err := s.svc.StoredSearch(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// writeStoreError maps errors from reads of stored data to a status.
func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.IsValidation(err):
		writeError(w, http.StatusBadRequest, err)
	case apperrors.Is(err, apperrors.ErrCodeEntityNotFound), apperrors.Is(err, apperrors.ErrCodeNotFound):
		writeError(w, http.StatusNotFound, err)
	default:
		s.logger.Error("read stored data", "err", err)
		writeError(w, http.StatusInternalServerError, err)
	}
}

// errorBody is the JSON shape of every 4xx/5xx response.
type errorBody struct {
	Error struct {
		Code    apperrors.Code `json:"code"`
		Message string         `json:"message"`
	} `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	var body errorBody
	body.Error.Code = apperrors.GetCode(err)
	body.Error.Message = apperrors.UserMessage(err)
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
