package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"strlens/src/pkg/consts"
	"strlens/src/pkg/httputil"
	"strlens/src/pkg/loggingutil"
	"strlens/src/pkg/query"
	"strlens/src/pkg/store"
)

// Server represents the API server
type Server struct {
	addr    string
	router  *http.ServeMux
	server  *http.Server
	service *Service
}

// NewServer creates a new API server
func NewServer(addr string, service *Service) *Server {
	router := http.NewServeMux()

	return &Server{
		addr:    addr,
		router:  router,
		service: service,
	}
}

// Start begins listening for requests
func (s *Server) Start(ctx context.Context) error {
	logger := loggingutil.Get(ctx)

	// Set up routes
	s.setupRoutes()

	// Create HTTP server
	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s.router,
	}

	// Start the server in a goroutine
	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting API server", "addr", s.addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		// Graceful shutdown with timeout
		logger.Info("API server shutdown initiated")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	case err := <-errChan:
		logger.Error("API server error", "error", err)
		return err
	}
}

// Stop stops the server
func (s *Server) Stop() error {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(ctx)
	}
	return nil
}

// setupRoutes configures API endpoints
func (s *Server) setupRoutes() {
	// Health check
	s.router.HandleFunc(consts.APIHealthEndpoint, s.handleHealth)

	// Status endpoint
	s.router.HandleFunc(consts.APIStatusEndpoint, s.handleStatus)

	// String record endpoints
	s.router.HandleFunc(consts.APIStrings, s.handleStrings)
	s.router.HandleFunc(consts.APIStringsSubtree, s.handleStringByValue)

	// Natural-language query endpoint
	s.router.HandleFunc(consts.APIQueryEndpoint, s.handleQuery)
}

// requestContext attaches a request-scoped logger carrying a unique
// request id, so every log line for one request can be correlated.
func requestContext(r *http.Request) (context.Context, loggingutil.Logger) {
	ctx := r.Context()
	logger := loggingutil.Get(ctx).With("request_id", uuid.NewString())
	return loggingutil.Set(ctx, logger), logger
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_, logger := requestContext(r)

	if !httputil.MethodChecker(w, r, http.MethodGet) {
		return
	}

	logger.Debug("Health check request", "remote_addr", r.RemoteAddr)
	httputil.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// handleStatus handles daemon status requests
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx, logger := requestContext(r)

	if !httputil.MethodChecker(w, r, http.MethodGet) {
		return
	}

	logger.Debug("Status request", "remote_addr", r.RemoteAddr)

	status, err := s.service.GetStatus(ctx)
	if err != nil {
		logger.Error("Failed to get status", "error", err)
		httputil.WriteError(w, fmt.Sprintf("Failed to get status: %v", err), http.StatusInternalServerError)
		return
	}

	httputil.WriteJSON(w, status, http.StatusOK)
}

// handleStrings handles the collection endpoint: POST analyzes and
// stores a new string, GET lists records with optional structured
// filters.
func (s *Server) handleStrings(w http.ResponseWriter, r *http.Request) {
	ctx, logger := requestContext(r)

	if !httputil.MethodChecker(w, r, http.MethodGet, http.MethodPost) {
		return
	}

	if r.Method == http.MethodPost {
		var request AnalyzeRequest
		if err := httputil.ParseJSONRequest(r, &request); err != nil {
			logger.Warn("Invalid request body", "error", err, "remote_addr", r.RemoteAddr)
			httputil.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}

		rec, err := s.service.Create(ctx, request.Value)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyValue):
				logger.Warn("Empty value in analyze request", "remote_addr", r.RemoteAddr)
				httputil.WriteError(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, store.ErrExists):
				logger.Warn("Duplicate string rejected", "remote_addr", r.RemoteAddr)
				httputil.WriteError(w, "String already exists in the system", http.StatusConflict)
			default:
				logger.Error("Failed to store string", "error", err)
				httputil.WriteError(w, fmt.Sprintf("Failed to store string: %v", err), http.StatusInternalServerError)
			}
			return
		}

		logger.Debug("String analyzed and stored", "id", rec.ID)
		httputil.WriteJSON(w, rec, http.StatusCreated)
		return
	}

	// GET: list with optional structured filters
	filters, err := httputil.ParseFilterParameters(r)
	if err != nil {
		logger.Warn("Invalid filter parameters", "error", err, "remote_addr", r.RemoteAddr)
		httputil.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := s.service.List(ctx, filters)
	if err != nil {
		logger.Error("Failed to list strings", "error", err)
		httputil.WriteError(w, fmt.Sprintf("Failed to list strings: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Debug("List request completed", "count", len(records))
	httputil.WriteJSON(w, ListResponse{
		Data:           records,
		Count:          len(records),
		FiltersApplied: filters,
	}, http.StatusOK)
}

// handleStringByValue handles GET and DELETE for a single record
// addressed by its path-escaped value.
func (s *Server) handleStringByValue(w http.ResponseWriter, r *http.Request) {
	ctx, logger := requestContext(r)

	if !httputil.MethodChecker(w, r, http.MethodGet, http.MethodDelete) {
		return
	}

	value, err := url.PathUnescape(strings.TrimPrefix(r.URL.Path, consts.APIStringsSubtree))
	if err != nil {
		logger.Warn("Invalid path encoding", "error", err, "path", r.URL.Path)
		httputil.WriteError(w, "Invalid path encoding", http.StatusBadRequest)
		return
	}
	if value == "" {
		httputil.WriteError(w, "Missing string value in path", http.StatusNotFound)
		return
	}

	if r.Method == http.MethodDelete {
		if err := s.service.Delete(ctx, value); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httputil.WriteError(w, "String does not exist in the system", http.StatusNotFound)
				return
			}
			logger.Error("Failed to delete string", "error", err)
			httputil.WriteError(w, fmt.Sprintf("Failed to delete string: %v", err), http.StatusInternalServerError)
			return
		}

		logger.Debug("String deleted")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	rec, err := s.service.Get(ctx, value)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httputil.WriteError(w, "String does not exist in the system", http.StatusNotFound)
			return
		}
		logger.Error("Failed to fetch string", "error", err)
		httputil.WriteError(w, fmt.Sprintf("Failed to fetch string: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Debug("String fetched", "id", rec.ID)
	httputil.WriteJSON(w, rec, http.StatusOK)
}

// handleQuery handles natural-language filter requests
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	ctx, logger := requestContext(r)

	if !httputil.MethodChecker(w, r, http.MethodGet) {
		return
	}

	queryText := r.URL.Query().Get(consts.QueryParamQuery)
	if queryText == "" {
		logger.Warn("Missing query parameter", "remote_addr", r.RemoteAddr)
		httputil.WriteError(w, "Missing query parameter", http.StatusBadRequest)
		return
	}

	logger.Debug("Natural language query request", "query", queryText, "remote_addr", r.RemoteAddr)

	records, filters, err := s.service.QueryNatural(ctx, queryText)
	if err != nil {
		if errors.Is(err, query.ErrUnparseable) {
			logger.Warn("Unparseable natural language query", "query", queryText)
			httputil.WriteError(w, "Unable to parse natural language query", http.StatusBadRequest)
			return
		}
		logger.Error("Query failed", "error", err, "query", queryText)
		httputil.WriteError(w, fmt.Sprintf("Query failed: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Debug("Query completed", "query", queryText, "resultCount", len(records))
	httputil.WriteJSON(w, QueryResponse{
		Data:  records,
		Count: len(records),
		InterpretedQuery: InterpretedQuery{
			Original:      queryText,
			ParsedFilters: filters,
		},
	}, http.StatusOK)
}
