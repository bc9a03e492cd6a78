package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/brepml/brepgraph/pkg/errors"
	"github.com/brepml/brepgraph/pkg/pipeline"
	"github.com/brepml/brepgraph/pkg/store"
)

// maxDocumentBytes caps the accepted request body size.
const maxDocumentBytes = 8 << 20

// =============================================================================
// Request / Response Types
// =============================================================================

// convertResponse is the body returned by POST /v1/convert.
type convertResponse struct {
	ID     string          `json:"id,omitempty"`
	Hash   string          `json:"hash"`
	Stats  pipeline.Stats  `json:"stats"`
	Cached bool            `json:"cached"`
	Graph  json.RawMessage `json:"graph"`
}

// listResponse is the body returned by GET /v1/graphs.
type listResponse struct {
	Graphs []store.Summary `json:"graphs"`
}

// errorResponse is the JSON envelope for all error replies.
type errorResponse struct {
	Error string `json:"error"`
}

// =============================================================================
// Handlers
// =============================================================================

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleConvert converts the document in the request body. With ?store=true
// the resulting graph is also persisted; ?name= labels the stored record.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	doc, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}
	if len(doc) == 0 {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "empty request body"))
		return
	}

	opts := pipeline.Options{
		Document: doc,
		Formats:  []string{pipeline.FormatJSON},
		Refresh:  r.URL.Query().Get("refresh") == "true",
		Logger:   s.logger,
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := convertResponse{
		Hash:   result.GraphHash,
		Stats:  result.Stats,
		Cached: result.CacheInfo.ConvertHit,
		Graph:  json.RawMessage(result.Artifacts[pipeline.FormatJSON]),
	}

	if r.URL.Query().Get("store") == "true" {
		rec := store.NewRecord(r.URL.Query().Get("name"), result.Graph)
		if err := s.store.Put(r.Context(), rec); err != nil {
			s.writeError(w, err)
			return
		}
		resp.ID = rec.ID
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleListGraphs lists stored graph summaries, newest first.
func (s *Server) handleListGraphs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid limit: %q", v))
			return
		}
		limit = n
	}

	summaries, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if summaries == nil {
		summaries = []store.Summary{}
	}
	writeJSON(w, http.StatusOK, listResponse{Graphs: summaries})
}

// handleGetGraph returns a stored graph record by ID.
func (s *Server) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// handleDeleteGraph removes a stored graph record by ID.
func (s *Server) handleDeleteGraph(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Response Helpers
// =============================================================================

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error's code to an HTTP status and writes the JSON
// error envelope. Messages are sanitized through UserMessage.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusForCode(errors.GetCode(err))
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err)})
}

// statusForCode maps domain error codes to HTTP status codes.
func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidShape,
		errors.ErrCodeInvalidDocument,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound,
		errors.ErrCodeFileNotFound,
		errors.ErrCodeGraphNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeStorage:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
