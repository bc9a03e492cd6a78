package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/brepml/brepgraph/pkg/brep"
	"github.com/brepml/brepgraph/pkg/brep/solid"
	"github.com/brepml/brepgraph/pkg/cache"
	"github.com/brepml/brepgraph/pkg/hetero"
	graphio "github.com/brepml/brepgraph/pkg/io"
	"github.com/brepml/brepgraph/pkg/observability"
	"github.com/brepml/brepgraph/pkg/render/nodelink"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete build → convert → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Build
	buildStart := time.Now()
	observability.Pipeline().OnBuildStart(ctx, opts.Input)
	docData, shape, err := r.Build(opts)
	observability.Pipeline().OnBuildComplete(ctx, opts.Input, time.Since(buildStart), err)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Stats.BuildTime = time.Since(buildStart)

	// Stage 2: Convert
	convertStart := time.Now()
	observability.Pipeline().OnConvertStart(ctx)
	g, convertHit, err := r.ConvertWithCacheInfo(ctx, docData, shape, opts)
	if err != nil {
		observability.Pipeline().OnConvertComplete(ctx, 0, time.Since(convertStart), err)
		return nil, fmt.Errorf("convert: %w", err)
	}
	observability.Pipeline().OnConvertComplete(ctx,
		g.NumVertices()+g.NumEdges()+g.NumFaces()+g.NumControlPoints(),
		time.Since(convertStart), nil)
	result.Graph = g
	result.GraphHash = g.ContentHash()
	result.Stats.ConvertTime = time.Since(convertStart)
	result.Stats.VertexCount = g.NumVertices()
	result.Stats.EdgeCount = g.NumEdges()
	result.Stats.FaceCount = g.NumFaces()
	result.Stats.ControlPointCount = g.NumControlPoints()
	result.CacheInfo.ConvertHit = convertHit

	r.Logger.Info("converted shape",
		"vertices", g.NumVertices(),
		"edges", g.NumEdges(),
		"faces", g.NumFaces(),
		"control_points", g.NumControlPoints(),
		"duration", result.Stats.ConvertTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, g, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Build loads the shape document named by opts and constructs its boundary
// representation. It returns the raw document bytes alongside the shape so
// callers can derive cache keys from the document's content.
func (r *Runner) Build(opts Options) ([]byte, brep.Shape, error) {
	if err := opts.ValidateForBuild(); err != nil {
		return nil, nil, err
	}

	data := opts.Document
	if opts.Input != "" {
		var err error
		data, err = os.ReadFile(opts.Input)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", opts.Input, err)
		}
	}

	shape, err := solid.ParseDocument(data)
	if err != nil {
		return nil, nil, err
	}
	return data, shape, nil
}

// ConvertWithCacheInfo converts a shape with caching and returns cache hit
// info. The cache key derives from the document's content hash, so two
// documents with identical bytes share one cached graph.
func (r *Runner) ConvertWithCacheInfo(ctx context.Context, docData []byte, shape brep.Shape, opts Options) (*hetero.Graph, bool, error) {
	r.applyLogger(&opts)

	cacheKey := r.Keyer.GraphKey(cache.Hash(docData))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			g, err := graphio.ReadJSON(bytes.NewReader(data))
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "graph")
				return g, true, nil // Cache hit
			}
		}
	}
	observability.Cache().OnCacheMiss(ctx, "graph")

	g, err := Convert(shape)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if data, err := graphio.MarshalGraph(g); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLGraph)
		observability.Cache().OnCacheSet(ctx, "graph", len(data))
	}

	return g, false, nil // Cache miss
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *hetero.Graph, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	graphHash := g.ContentHash()

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all formats
	rendered := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(g, format, opts)
		if err != nil {
			return nil, false, fmt.Errorf("render %s: %w", format, err)
		}
		rendered[format] = data
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, g *hetero.Graph, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, g, opts)
	return artifacts, err
}

// renderFormat produces one artifact format from a graph.
func renderFormat(g *hetero.Graph, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		return graphio.MarshalGraph(g)
	case FormatDOT:
		return []byte(nodelink.ToDOT(g, nodelink.Options{Labels: opts.Labels})), nil
	case FormatSVG:
		dot := nodelink.ToDOT(g, nodelink.Options{Labels: opts.Labels})
		return nodelink.RenderSVG(dot)
	default:
		return nil, ValidateFormat(format)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
