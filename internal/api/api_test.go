package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/brepml/brepgraph/pkg/hetero"
	"github.com/brepml/brepgraph/pkg/pipeline"
	"github.com/brepml/brepgraph/pkg/store"
)

const boxDocument = `{"solids": [{"kind": "box", "dx": 1, "dy": 1, "dz": 1}]}`

func newTestServer(t *testing.T) (*Server, store.Store) {
	t.Helper()
	st := store.NewMemoryStore()
	runner := pipeline.NewRunner(nil, nil, log.NewWithOptions(io.Discard, log.Options{}))
	return New(runner, st, log.NewWithOptions(io.Discard, log.Options{})), st
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestConvert(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodPost, "/v1/convert", boxDocument)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp convertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Hash == "" {
		t.Error("response missing hash")
	}
	if resp.Stats.VertexCount != 8 || resp.Stats.FaceCount != 6 {
		t.Errorf("stats = %+v", resp.Stats)
	}
	if resp.ID != "" {
		t.Error("ID should be empty without ?store=true")
	}

	var g hetero.Graph
	if err := json.Unmarshal(resp.Graph, &g); err != nil {
		t.Fatalf("decode graph: %v", err)
	}
	if g.NumEdges() != 12 {
		t.Errorf("NumEdges() = %d, want 12", g.NumEdges())
	}
}

func TestConvertEmptyBody(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodPost, "/v1/convert", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestConvertInvalidDocument(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodPost, "/v1/convert", `{"solids": [{"kind": "box", "dx": -1}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400, body = %s", rec.Code, rec.Body.String())
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Error == "" {
		t.Error("error response missing message")
	}
}

func TestConvertAndStore(t *testing.T) {
	s, st := newTestServer(t)
	rec := doRequest(t, s, http.MethodPost, "/v1/convert?store=true&name=box", boxDocument)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp convertResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.ID == "" {
		t.Fatal("response missing stored ID")
	}

	got, err := st.Get(t.Context(), resp.ID)
	if err != nil {
		t.Fatalf("stored record not found: %v", err)
	}
	if got.Name != "box" {
		t.Errorf("Name = %q, want box", got.Name)
	}
	if got.Hash != resp.Hash {
		t.Error("stored hash does not match response hash")
	}
}

func TestListGraphs(t *testing.T) {
	s, _ := newTestServer(t)
	doRequest(t, s, http.MethodPost, "/v1/convert?store=true&name=a", boxDocument)

	rec := doRequest(t, s, http.MethodGet, "/v1/graphs", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp listResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Graphs) != 1 {
		t.Errorf("len(Graphs) = %d, want 1", len(resp.Graphs))
	}
}

func TestListGraphsEmpty(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/v1/graphs", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"graphs":[]`) {
		t.Errorf("empty list should encode as [], got %s", rec.Body.String())
	}
}

func TestListGraphsInvalidLimit(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/v1/graphs?limit=abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetGraphNotFound(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/v1/graphs/does-not-exist", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestDeleteGraph(t *testing.T) {
	s, st := newTestServer(t)
	doRequest(t, s, http.MethodPost, "/v1/convert?store=true&name=a", boxDocument)

	summaries, err := st.List(t.Context(), 0)
	if err != nil || len(summaries) != 1 {
		t.Fatalf("expected one stored graph, got %d (%v)", len(summaries), err)
	}

	rec := doRequest(t, s, http.MethodDelete, "/v1/graphs/"+summaries[0].ID, "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}

	if _, err := st.Get(t.Context(), summaries[0].ID); err == nil {
		t.Error("record should be deleted")
	}
}
