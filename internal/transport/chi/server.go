// Package chi exposes the render service over HTTP.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docview/internal/domain"
	"github.com/kailas-cloud/docview/internal/domain/recordmap"
	logpkg "github.com/kailas-cloud/docview/internal/logger"
	"github.com/kailas-cloud/docview/internal/metrics"
	assetuc "github.com/kailas-cloud/docview/internal/usecase/asset"
	resolveuc "github.com/kailas-cloud/docview/internal/usecase/resolve"
	searchuc "github.com/kailas-cloud/docview/internal/usecase/search"
	"github.com/kailas-cloud/docview/internal/version"
)

// maxRecordMapBytes caps ingested record-map payloads.
const maxRecordMapBytes = 8 << 20 // 8MB

// PageStore is the page persistence contract the server consumes.
type PageStore interface {
	Put(ctx context.Context, pageID string, payload []byte) error
	Get(ctx context.Context, pageID string) (recordmap.RecordMap, error)
	Delete(ctx context.Context, pageID string) error
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server handles the render service HTTP API.
type Server struct {
	pages         PageStore
	search        searchuc.Provider
	resolver      *resolveuc.Service
	assets        *assetuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	pages PageStore,
	search searchuc.Provider,
	resolver *resolveuc.Service,
	assets *assetuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		pages:    pages,
		search:   search,
		resolver: resolver,
		assets:   assets,
		logger:   logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrPageNotFound, http.StatusNotFound, codePageNotFound),
		sentinelHandler(domain.ErrInvalidRecordMap, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrSearchProvider, http.StatusBadGateway, codeSearchError),
	}
	return s
}

// Register mounts the API routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1/pages/{pageID}", func(r chi.Router) {
		r.Put("/", s.handlePutPage)
		r.Get("/", s.handleGetPage)
		r.Delete("/", s.handleDeletePage)
		r.Get("/search", s.handleSearch)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: version.Version,
		Commit:  version.Commit,
	})
}

// handlePutPage ingests a record map for a page (wrapper shape).
func (s *Server) handlePutPage(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxRecordMapBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "read body: "+err.Error())
		return
	}
	if len(payload) == 0 {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "record map payload is required")
		return
	}

	if err := s.pages.Put(r.Context(), pageID, payload); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleGetPage resolves a stored page into its flattened presentation tree.
func (s *Server) handleGetPage(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")

	rm, err := s.pages.Get(r.Context(), pageID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	rootID := r.URL.Query().Get("root")
	if rootID == "" {
		rootID = pageID
	}

	start := time.Now()
	nodes := make([]renderedNode, 0, rm.Len())
	for n, depth := range s.resolver.Resolve(rm, rootID) {
		dto := renderedNode{
			ID:       n.ID(),
			Type:     string(n.Type()),
			Depth:    depth,
			Title:    n.Title().Plain(),
			ParentID: n.Parent(),
		}
		if n.Type().IsAsset() {
			plan := s.assets.Plan(n, rm)
			dto.Plan = &plan
		}
		nodes = append(nodes, dto)
	}
	metrics.ObserveRenderDuration(time.Since(start))

	writeJSON(w, http.StatusOK, pageResponse{PageID: pageID, Nodes: nodes, Total: len(nodes)})
}

func (s *Server) handleDeletePage(w http.ResponseWriter, r *http.Request) {
	if err := s.pages.Delete(r.Context(), chi.URLParam(r, "pageID")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSearch proxies one query to the provider and annotates the response.
// Debouncing is a client-session concern; the server dispatches directly.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "query parameter q is required")
		return
	}

	resp, err := s.search.Search(r.Context(), query, chi.URLParam(r, "pageID"))
	if err != nil {
		logpkg.FromContext(r.Context()).Warn("search dispatch failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, codeSearchError, "search provider unavailable")
		return
	}
	if respErr := resp.Err(); respErr != nil {
		s.handleDomainError(w, respErr)
		return
	}

	results := searchuc.Annotate(resp)
	dto := searchResponseDTO{Results: make([]searchResultDTO, 0, len(results)), Total: resp.Total}
	for _, res := range results {
		dto.Results = append(dto.Results, searchResultDTO{
			ID:            res.ID,
			Title:         res.Title,
			PageID:        res.Page.ID(),
			HighlightHTML: res.HighlightHTML,
		})
	}
	writeJSON(w, http.StatusOK, dto)
}

// handleDomainError walks the handler chain, falling back to 500.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("unhandled error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternal, "internal error")
}

func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, err.Error())
		return true
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// RequestLogger attaches a request-scoped logger to the context. Handlers
// retrieve it with logger.FromContext.
func RequestLogger(base *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := base.With(
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
			)
			next.ServeHTTP(w, r.WithContext(logpkg.ContextWithLogger(r.Context(), l)))
		})
	}
}
