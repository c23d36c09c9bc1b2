// Package server exposes the search engine over HTTP.
//
// Route table:
//
//	POST   /api/v1/documents       → add a document
//	GET    /api/v1/documents       → list documents
//	DELETE /api/v1/documents/{id}  → remove a document
//	GET    /api/v1/search          → run a query (?q=&threshold=&max=)
//	GET    /api/v1/stats           → index, storage, and search stats
//	GET    /healthz                → liveness probe
//	GET    /metrics                → Prometheus metrics
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/questify/questify/internal/engine"
	"github.com/questify/questify/internal/index"
)

// Server routes HTTP requests to the engine.
type Server struct {
	engine *engine.Engine
	log    *logrus.Entry
	router *mux.Router
}

// New builds a server around eng with all routes registered.
func New(eng *engine.Engine, log *logrus.Entry) *Server {
	s := &Server{
		engine: eng,
		log:    log,
		router: mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/documents", s.handleAddDocument).Methods(http.MethodPost)
	api.HandleFunc("/documents", s.handleListDocuments).Methods(http.MethodGet)
	api.HandleFunc("/documents/{id}", s.handleRemoveDocument).Methods(http.MethodDelete)
	api.HandleFunc("/search", s.handleSearch).Methods(http.MethodGet)
	api.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)

	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	s.router.Use(s.logRequests)
}

// Handler returns the root HTTP handler, exported for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the server on addr and blocks until it stops.
func (s *Server) ListenAndServe(addr string) error {
	s.log.WithField("addr", addr).Info("starting HTTP server")
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return srv.ListenAndServe()
}

type errorResponse struct {
	Error string `json:"error"`
}

type addDocumentRequest struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

func (s *Server) handleAddDocument(w http.ResponseWriter, r *http.Request) {
	var req addDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonResponse(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if err := s.engine.AddDocument(r.Context(), req.ID, req.Content); err != nil {
		s.writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, map[string]string{"status": "added", "doc_id": req.ID})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.engine.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	// Listings omit content; previews come from search.
	type docView struct {
		ID       string    `json:"id"`
		Filename string    `json:"filename,omitempty"`
		Size     int64     `json:"size"`
		AddedAt  time.Time `json:"added_at"`
	}
	views := make([]docView, len(docs))
	for i, doc := range docs {
		views[i] = docView{ID: doc.ID, Filename: doc.Filename, Size: doc.Size, AddedAt: doc.AddedAt}
	}
	jsonResponse(w, http.StatusOK, views)
}

func (s *Server) handleRemoveDocument(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.engine.RemoveDocument(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"status": "removed", "doc_id": id})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		jsonResponse(w, http.StatusBadRequest, errorResponse{Error: "query parameter 'q' is required"})
		return
	}

	var opts *engine.SearchOptions
	thresholdParam := r.URL.Query().Get("threshold")
	maxParam := r.URL.Query().Get("max")
	if thresholdParam != "" || maxParam != "" {
		threshold, maxResults, err := parseSearchParams(thresholdParam, maxParam)
		if err != nil {
			jsonResponse(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		opts = &engine.SearchOptions{Threshold: threshold, MaxResults: maxResults}
	}

	resp, err := s.engine.Search(r.Context(), query, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.engine.Stats(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, stats)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parseSearchParams validates the optional query knobs. An empty value falls
// back to a sentinel the engine replaces with the configured default.
func parseSearchParams(thresholdParam, maxParam string) (float64, int, error) {
	threshold := -1.0
	maxResults := 0
	if thresholdParam != "" {
		parsed, err := strconv.ParseFloat(thresholdParam, 64)
		if err != nil {
			return 0, 0, errors.New("threshold must be a number")
		}
		threshold = parsed
	}
	if maxParam != "" {
		parsed, err := strconv.Atoi(maxParam)
		if err != nil {
			return 0, 0, errors.New("max must be an integer")
		}
		maxResults = parsed
	}
	return threshold, maxResults, nil
}

// writeError maps engine errors to HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, index.ErrDuplicateDocument):
		jsonResponse(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, index.ErrDocumentNotFound):
		jsonResponse(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, index.ErrInvalidParameter):
		jsonResponse(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		s.log.WithError(err).Error("request failed")
		jsonResponse(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"took":   time.Since(start),
		}).Debug("request handled")
	})
}

func jsonResponse(w http.ResponseWriter, code int, payload interface{}) {
	body, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}
