package pipeline

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/brepml/brepgraph/pkg/brep"
	"github.com/brepml/brepgraph/pkg/brep/solid"
	"github.com/brepml/brepgraph/pkg/cache"
	"github.com/brepml/brepgraph/pkg/errors"
	"github.com/brepml/brepgraph/pkg/features"
)

func TestConvertRejectsNonShape(t *testing.T) {
	for _, input := range []any{nil, 42, "box", []float64{1, 2, 3}} {
		_, err := Convert(input)
		if err == nil {
			t.Errorf("Convert(%v) should fail", input)
			continue
		}
		if errors.GetCode(err) != errors.ErrCodeInvalidShape {
			t.Errorf("Convert(%v) error code = %s, want %s", input, errors.GetCode(err), errors.ErrCodeInvalidShape)
		}
	}
}

func TestConvertBox(t *testing.T) {
	g, err := Convert(solid.Box(2, 2, 2))
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}

	if g.NumVertices() != 8 {
		t.Errorf("vertices = %d, want 8", g.NumVertices())
	}
	if g.NumEdges() != 12 {
		t.Errorf("edges = %d, want 12", g.NumEdges())
	}
	if g.NumFaces() != 6 {
		t.Errorf("faces = %d, want 6", g.NumFaces())
	}
	if g.NumControlPoints() != 0 {
		t.Errorf("control points = %d, want 0", g.NumControlPoints())
	}

	// Every edge has two endpoints and bounds two faces.
	if got := g.VertexBoundsEdge.Len(); got != 24 {
		t.Errorf("vertex-bounds-edge pairs = %d, want 24", got)
	}
	if got := g.EdgeBoundsFace.Len(); got != 24 {
		t.Errorf("edge-bounds-face pairs = %d, want 24", got)
	}

	// Each face touches 4 others, both directions materialized.
	if got := g.FaceAdjacentFace.Len(); got != 24 {
		t.Errorf("adjacency pairs = %d, want 24", got)
	}
	degree := make(map[int]int)
	seen := make(map[[2]int]bool)
	for _, p := range g.FaceAdjacentFace.Pairs {
		if p[0] == p[1] {
			t.Errorf("adjacency contains self-pair %v", p)
		}
		if seen[p] {
			t.Errorf("adjacency contains duplicate pair %v", p)
		}
		seen[p] = true
		degree[p[0]]++
	}
	for f := 0; f < 6; f++ {
		if degree[f] != 4 {
			t.Errorf("face %d adjacency degree = %d, want 4", f, degree[f])
		}
	}
	for _, p := range g.FaceAdjacentFace.Pairs {
		if !seen[[2]int{p[1], p[0]}] {
			t.Errorf("adjacency pair %v has no reverse", p)
		}
	}

	// All edges are lines, all faces planes, orientations ±1.
	for i, row := range g.EdgeFeatures.Rows {
		if row[int(brep.CurveLine)] != 1 {
			t.Errorf("edge %d not one-hot line", i)
		}
		if o := row[int(brep.NumCurveKinds)]; o != 1 && o != -1 {
			t.Errorf("edge %d orientation = %v, want ±1", i, o)
		}
	}
	for i, row := range g.FaceFeatures.Rows {
		if row[int(brep.SurfacePlane)] != 1 {
			t.Errorf("face %d not one-hot plane", i)
		}
	}
}

func TestConvertCylinder(t *testing.T) {
	g, err := Convert(solid.Cylinder(1.5, 4))
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}

	if g.NumFaces() != 3 {
		t.Fatalf("faces = %d, want 3 (side plus two caps)", g.NumFaces())
	}

	radiusCol := int(brep.NumSurfaceKinds) + 21
	var cylinders, planes int
	for _, row := range g.FaceFeatures.Rows {
		switch {
		case row[int(brep.SurfaceCylinder)] == 1:
			cylinders++
			if math.Abs(row[radiusCol]-1.5) > 1e-9 {
				t.Errorf("cylinder radius = %v, want 1.5", row[radiusCol])
			}
		case row[int(brep.SurfacePlane)] == 1:
			planes++
		}
	}
	if cylinders != 1 || planes != 2 {
		t.Errorf("face kinds: %d cylinders, %d planes, want 1 and 2", cylinders, planes)
	}
}

func TestConvertSphere(t *testing.T) {
	g, err := Convert(solid.Sphere(1))
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}

	if g.NumFaces() != 1 {
		t.Fatalf("faces = %d, want 1", g.NumFaces())
	}
	row := g.FaceFeatures.Rows[0]
	if row[int(brep.SurfaceSphere)] != 1 {
		t.Error("face not one-hot sphere")
	}
	radiusCol := int(brep.NumSurfaceKinds) + 21
	if math.Abs(row[radiusCol]-1) > 1e-3 {
		t.Errorf("sphere radius = %v, want 1", row[radiusCol])
	}

	// A single face has no adjacency, and the seam never pairs a face
	// with itself.
	if g.FaceAdjacentFace.Len() != 0 {
		t.Errorf("adjacency pairs = %d, want 0", g.FaceAdjacentFace.Len())
	}

	// The seam meridian bounds the face twice.
	if got := g.EdgeBoundsFace.Len(); got != 2 {
		t.Errorf("edge-bounds-face pairs = %d, want 2", got)
	}
}

func TestConvertSplineControlPoints(t *testing.T) {
	g, err := Convert(solid.SplineWire(
		brep.Vec3{X: 0, Y: 0, Z: 0},
		brep.Vec3{X: 1, Y: 1, Z: 0},
		brep.Vec3{X: 2, Y: 0, Z: 1},
		brep.Vec3{X: 3, Y: 1, Z: 1},
	))
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}

	if g.NumControlPoints() != 4 {
		t.Fatalf("control points = %d, want 4", g.NumControlPoints())
	}
	if g.ControlsEdge.Len() != 4 {
		t.Fatalf("controls-edge pairs = %d, want 4", g.ControlsEdge.Len())
	}

	// Tags cover the sequence 0..n-1 in order; non-rational weights
	// default to 1.
	for i, tag := range g.ControlsEdge.Tags.Rows {
		if tag[0] != i {
			t.Errorf("tag %d = %d, want %d", i, tag[0], i)
		}
	}
	for i, row := range g.ControlPointFeatures.Rows {
		if row[3] != 1 {
			t.Errorf("control point %d weight = %v, want 1", i, row[3])
		}
	}

	// Knot side tables are populated for the spline edge.
	if len(g.Aux.EdgeKnots[0]) == 0 {
		t.Error("spline edge should have knots")
	}
	if len(g.Aux.EdgeMultiplicities[0]) != len(g.Aux.EdgeKnots[0]) {
		t.Error("multiplicities should pair with knots")
	}
}

func TestConvertBezierPatchControlGrid(t *testing.T) {
	grid := [][]brep.Vec3{
		{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 2, Z: 0}},
		{{X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 2, Z: 0}},
	}
	g, err := Convert(solid.BezierPatch(grid))
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}

	if g.NumControlPoints() != 6 {
		t.Fatalf("control points = %d, want 6", g.NumControlPoints())
	}
	if g.ControlsFace.Len() != 6 {
		t.Fatalf("controls-face pairs = %d, want 6", g.ControlsFace.Len())
	}

	// Tags cover the full (u, v) grid exactly once.
	seen := make(map[[2]int]bool)
	for _, tag := range g.ControlsFace.Tags.Rows {
		seen[[2]int{tag[0], tag[1]}] = true
	}
	for u := 0; u < 2; u++ {
		for v := 0; v < 3; v++ {
			if !seen[[2]int{u, v}] {
				t.Errorf("missing grid tag (%d, %d)", u, v)
			}
		}
	}
}

func TestConvertEmptyShape(t *testing.T) {
	g, err := Convert(solid.New())
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}

	if g.NumVertices() != 0 || g.NumEdges() != 0 || g.NumFaces() != 0 || g.NumControlPoints() != 0 {
		t.Error("empty shape should produce an empty graph")
	}

	// Widths survive emptiness.
	if g.EdgeFeatures.Cols != features.EdgeFeatureDim {
		t.Errorf("edge feature width = %d, want %d", g.EdgeFeatures.Cols, features.EdgeFeatureDim)
	}
	if g.FaceFeatures.Cols != features.FaceFeatureDim {
		t.Errorf("face feature width = %d, want %d", g.FaceFeatures.Cols, features.FaceFeatureDim)
	}
	if g.ControlsEdge.Tags.Cols != 1 {
		t.Errorf("controls-edge tag width = %d, want 1", g.ControlsEdge.Tags.Cols)
	}
	if g.ControlsFace.Tags.Cols != 2 {
		t.Errorf("controls-face tag width = %d, want 2", g.ControlsFace.Tags.Cols)
	}
}

func TestConvertDeterministic(t *testing.T) {
	shape := solid.Cylinder(1, 2)
	g1, err := Convert(shape)
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	g2, err := Convert(shape)
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if g1.ContentHash() != g2.ContentHash() {
		t.Error("converting the same shape twice should produce identical graphs")
	}

	// A freshly built identical shape also converts identically: entity
	// identity drives deduplication, never the generated IDs themselves.
	g3, err := Convert(solid.Cylinder(1, 2))
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if g1.ContentHash() != g3.ContentHash() {
		t.Error("identical shapes should produce identical graphs")
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"json", "dot", "svg"}); err != nil {
		t.Errorf("valid formats rejected: %v", err)
	}
	if err := ValidateFormat("png"); err == nil {
		t.Error("png should be rejected")
	}
}

func TestOptionsValidation(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("empty options should be invalid")
	}

	opts = Options{Input: "a.json", Document: []byte("{}")}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("input and document together should be invalid")
	}

	opts = Options{Document: []byte(`{"solids":[]}`)}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("valid options rejected: %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatJSON {
		t.Errorf("default formats = %v, want [json]", opts.Formats)
	}

	// Idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second validation failed: %v", err)
	}
}

func TestRunnerExecuteWithCache(t *testing.T) {
	ctx := context.Background()

	doc := []byte(`{"solids":[{"kind":"box","dx":1,"dy":2,"dz":3}]}`)
	path := filepath.Join(t.TempDir(), "part.json")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatal(err)
	}

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(fc, nil, nil)
	defer runner.Close()

	opts := Options{Input: path, Formats: []string{FormatJSON, FormatDOT}}
	first, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if first.CacheInfo.ConvertHit {
		t.Error("first run should miss the conversion cache")
	}
	if first.Stats.VertexCount != 8 || first.Stats.EdgeCount != 12 || first.Stats.FaceCount != 6 {
		t.Errorf("stats = %+v, want 8/12/6", first.Stats)
	}
	if len(first.Artifacts[FormatJSON]) == 0 || len(first.Artifacts[FormatDOT]) == 0 {
		t.Error("artifacts missing")
	}

	second, err := runner.Execute(ctx, Options{Input: path, Formats: []string{FormatJSON, FormatDOT}})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !second.CacheInfo.ConvertHit {
		t.Error("second run should hit the conversion cache")
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the artifact cache")
	}
	if first.GraphHash != second.GraphHash {
		t.Errorf("graph hash changed across runs: %s vs %s", first.GraphHash, second.GraphHash)
	}

	// Refresh bypasses the conversion cache but still produces the same graph.
	third, err := runner.Execute(ctx, Options{Input: path, Refresh: true})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if third.CacheInfo.ConvertHit {
		t.Error("refresh run should not hit the conversion cache")
	}
	if third.GraphHash != first.GraphHash {
		t.Error("refresh should reproduce the same graph")
	}
}

func TestRunnerExecuteInvalidDocument(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	_, err := runner.Execute(context.Background(), Options{
		Document: []byte(`{"solids":[{"kind":"box","dx":-1,"dy":1,"dz":1}]}`),
	})
	if err == nil {
		t.Fatal("invalid document should fail")
	}
	if errors.GetCode(err) != errors.ErrCodeInvalidDocument {
		t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidDocument)
	}
}
