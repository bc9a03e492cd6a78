package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/brepml/brepgraph/pkg/pipeline"
)

// =============================================================================
// Artifact Output
// =============================================================================

// artifactWriteParams bundles the inputs needed to write rendered artifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte // format -> rendered bytes
	formats   []string          // requested formats, in order
	input     string            // input file path (used to derive output names)
	output    string            // output file or base path from --output
	cacheHit  bool              // whether the render stage was served from cache
}

// writeArtifacts writes each rendered artifact to disk. A single format goes
// to the --output path directly (or stdout-free derived name); multiple
// formats share a base path and get per-format extensions.
func writeArtifacts(p artifactWriteParams) error {
	if len(p.formats) == 1 {
		format := p.formats[0]
		path := p.output
		if path == "" {
			path = basePath("", p.input) + "." + format
		}
		return writeArtifact(path, p.artifacts[format])
	}

	base := basePath(p.output, p.input)
	for _, format := range p.formats {
		if err := writeArtifact(base+"."+format, p.artifacts[format]); err != nil {
			return err
		}
	}
	return nil
}

// writeArtifact writes a single artifact and prints the file line.
func writeArtifact(path string, data []byte) error {
	if data == nil {
		return fmt.Errorf("no artifact produced for %s", path)
	}
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	printFile(path)
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output has a
// known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
