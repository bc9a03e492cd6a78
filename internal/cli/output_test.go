package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derive from input", "", "models/part.json", "models/part"},
		{"output with format ext", "out.svg", "part.json", "out"},
		{"output without format ext", "results/graph", "part.json", "results/graph"},
		{"output with unrelated ext", "archive.tar", "part.json", "archive.tar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteArtifactsSingleFormat(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "graph.json")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"json": []byte(`{}`)},
		formats:   []string{"json"},
		input:     "part.json",
		output:    out,
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("output = %q", data)
	}
}

func TestWriteArtifactsMultipleFormats(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "part")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{
			"json": []byte(`{}`),
			"dot":  []byte("digraph {}"),
		},
		formats: []string{"json", "dot"},
		input:   "part.json",
		output:  base,
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	for _, ext := range []string{".json", ".dot"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("missing artifact %s: %v", base+ext, err)
		}
	}
}

func TestWriteArtifactsMissingData(t *testing.T) {
	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{},
		formats:   []string{"svg"},
		input:     "part.json",
		output:    filepath.Join(t.TempDir(), "out.svg"),
	})
	if err == nil {
		t.Error("writeArtifacts() should fail when artifact data is missing")
	}
}
