package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/brepml/brepgraph/pkg/pipeline"
)

func writeDocument(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "part.json")
	doc := `{"solids": [{"kind": "box", "dx": 1, "dy": 2, "dz": 3}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunConvert(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	input := writeDocument(t, dir)
	output := filepath.Join(dir, "graph.json")

	c := New(io.Discard, LogInfo)
	opts := pipeline.Options{
		Input:   input,
		Formats: []string{pipeline.FormatJSON},
	}
	if err := c.runConvert(context.Background(), opts, output, false); err != nil {
		t.Fatalf("runConvert() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := decoded["vertex_features"]; !ok {
		t.Error("exported graph missing vertex_features")
	}
}

func TestRunConvertInvalidDocument(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(`{"solids": [{"kind": "warp"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	opts := pipeline.Options{
		Input:   path,
		Formats: []string{pipeline.FormatJSON},
	}
	err := c.runConvert(context.Background(), opts, filepath.Join(dir, "out.json"), true)
	if err == nil {
		t.Error("runConvert() should fail on unknown primitive kind")
	}
}

func TestRunBatchPlain(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	input := writeDocument(t, dir)
	outDir := filepath.Join(dir, "out")

	c := New(io.Discard, LogInfo)
	opts := pipeline.Options{Formats: []string{pipeline.FormatJSON}}
	if err := c.runBatch(context.Background(), []string{input}, opts, outDir, false, true); err != nil {
		t.Fatalf("runBatch() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "part.json")); err != nil {
		t.Errorf("missing batch output: %v", err)
	}
}

func TestRunBatchPlainReportsFailures(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)

	c := New(io.Discard, LogInfo)
	opts := pipeline.Options{Formats: []string{pipeline.FormatJSON}}
	err := c.runBatch(context.Background(), []string{filepath.Join(dir, "missing.json")}, opts, "", false, true)
	if err == nil {
		t.Error("runBatch() should report failed documents")
	}
}

func TestBatchBasePath(t *testing.T) {
	if got := batchBasePath("", "models/part.json"); got != "models/part" {
		t.Errorf("batchBasePath = %q", got)
	}
	if got := batchBasePath("out", "models/part.json"); got != filepath.Join("out", "part") {
		t.Errorf("batchBasePath with outDir = %q", got)
	}
}
