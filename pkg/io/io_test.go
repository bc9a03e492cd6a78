package io_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brepml/brepgraph/pkg/brep"
	"github.com/brepml/brepgraph/pkg/brep/solid"
	"github.com/brepml/brepgraph/pkg/hetero"
	graphio "github.com/brepml/brepgraph/pkg/io"
	"github.com/brepml/brepgraph/pkg/pipeline"
)

func point(x, y, z float64) brep.Vec3 {
	return brep.Vec3{X: x, Y: y, Z: z}
}

func convert(t *testing.T, s *solid.Solid) *hetero.Graph {
	t.Helper()
	g, err := pipeline.Convert(s)
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	return g
}

func TestRoundTrip(t *testing.T) {
	g := convert(t, solid.Cylinder(1, 2))

	var buf bytes.Buffer
	if err := graphio.WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}

	back, err := graphio.ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}
	if g.ContentHash() != back.ContentHash() {
		t.Error("round trip changed the graph")
	}
}

func TestRoundTripFile(t *testing.T) {
	g := convert(t, solid.Box(1, 2, 3))
	path := filepath.Join(t.TempDir(), "graph.json")

	if err := graphio.ExportJSON(g, path); err != nil {
		t.Fatalf("ExportJSON error: %v", err)
	}
	back, err := graphio.ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON error: %v", err)
	}
	if g.ContentHash() != back.ContentHash() {
		t.Error("file round trip changed the graph")
	}
}

func TestImportMissingFile(t *testing.T) {
	_, err := graphio.ImportJSON(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("missing file should fail")
	}
	if !strings.Contains(err.Error(), "missing.json") {
		t.Errorf("error should name the path: %v", err)
	}
}

func TestMarshalDeterministic(t *testing.T) {
	g := convert(t, solid.Sphere(2))

	a, err := graphio.MarshalGraph(g)
	if err != nil {
		t.Fatal(err)
	}
	b, err := graphio.MarshalGraph(g)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("marshaling must be deterministic")
	}
}

func TestReadJSONValidation(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*hetero.Graph)
		want string
	}{
		{
			name: "row width mismatch",
			mut: func(g *hetero.Graph) {
				g.VertexFeatures.Rows[0] = g.VertexFeatures.Rows[0][:2]
			},
			want: "vertex_features",
		},
		{
			name: "pair out of range",
			mut: func(g *hetero.Graph) {
				g.VertexBoundsEdge.Pairs[0] = [2]int{99, 0}
			},
			want: "vertex_bounds_edge",
		},
		{
			name: "aux length mismatch",
			mut: func(g *hetero.Graph) {
				g.Aux.EdgeKnots = g.Aux.EdgeKnots[:0]
			},
			want: "edge_knots",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := convert(t, solid.Box(1, 1, 1))
			tt.mut(g)

			data, err := graphio.MarshalGraph(g)
			if err != nil {
				t.Fatal(err)
			}
			_, err = graphio.ReadJSON(bytes.NewReader(data))
			if err == nil {
				t.Fatal("corrupted graph should fail validation")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestReadJSONTagMismatch(t *testing.T) {
	g := convert(t, solid.SplineWire(
		point(0, 0, 0), point(1, 1, 0), point(2, 0, 0),
	))
	g.ControlsEdge.Tags.Rows = g.ControlsEdge.Tags.Rows[:1]

	data, err := graphio.MarshalGraph(g)
	if err != nil {
		t.Fatal(err)
	}
	_, err = graphio.ReadJSON(bytes.NewReader(data))
	if err == nil {
		t.Fatal("tag count mismatch should fail validation")
	}
	if !strings.Contains(err.Error(), "controls_edge") {
		t.Errorf("error %q should mention controls_edge", err)
	}
}
