package topology

import (
	"testing"

	"github.com/brepml/brepgraph/pkg/brep/solid"
)

func TestExtractBox(t *testing.T) {
	topo := Extract(solid.Box(1, 1, 1))

	if len(topo.Vertices) != 8 {
		t.Errorf("vertices = %d, want 8", len(topo.Vertices))
	}
	if len(topo.Edges) != 12 {
		t.Errorf("edges = %d, want 12", len(topo.Edges))
	}
	if len(topo.Faces) != 6 {
		t.Errorf("faces = %d, want 6", len(topo.Faces))
	}

	// Shared entities deduplicate by identity: each corner joins three
	// edges, each edge joins two faces, yet appears once.
	ids := make(map[string]bool)
	for _, v := range topo.Vertices {
		id := string(v.ID())
		if ids[id] {
			t.Errorf("vertex %s indexed twice", id)
		}
		ids[id] = true
	}

	if len(topo.VertexEdge) != 24 {
		t.Errorf("vertex-edge pairs = %d, want 24", len(topo.VertexEdge))
	}
	if len(topo.EdgeFace) != 24 {
		t.Errorf("edge-face pairs = %d, want 24", len(topo.EdgeFace))
	}
}

func TestExtractAdjacency(t *testing.T) {
	topo := Extract(solid.Box(1, 1, 1))

	if len(topo.FaceFace) != 24 {
		t.Fatalf("adjacency pairs = %d, want 24", len(topo.FaceFace))
	}

	seen := make(map[[2]int]bool)
	for _, p := range topo.FaceFace {
		if p[0] == p[1] {
			t.Errorf("self-adjacency pair %v", p)
		}
		if seen[p] {
			t.Errorf("duplicate adjacency pair %v", p)
		}
		seen[p] = true
	}
	for _, p := range topo.FaceFace {
		if !seen[[2]int{p[1], p[0]}] {
			t.Errorf("pair %v missing its reverse", p)
		}
	}
}

func TestExtractClosedEdgeMultiplicity(t *testing.T) {
	// A cylinder cap's rim is a closed circle whose start and end vertex
	// coincide; the incidence list keeps both occurrences.
	topo := Extract(solid.Cylinder(1, 2))

	counts := make(map[[2]int]int)
	for _, p := range topo.VertexEdge {
		counts[p]++
	}
	var doubled int
	for _, n := range counts {
		if n == 2 {
			doubled++
		}
	}
	if doubled < 2 {
		t.Errorf("expected both rim circles to repeat their vertex, got %d doubled pairs", doubled)
	}
}

func TestExtractSeamNoSelfAdjacency(t *testing.T) {
	// The sphere's seam meridian bounds its only face twice. That yields
	// two edge-face incidences but no self-adjacency.
	topo := Extract(solid.Sphere(1))

	if len(topo.Faces) != 1 {
		t.Fatalf("faces = %d, want 1", len(topo.Faces))
	}
	if len(topo.EdgeFace) != 2 {
		t.Errorf("edge-face pairs = %d, want 2", len(topo.EdgeFace))
	}
	if len(topo.FaceFace) != 0 {
		t.Errorf("adjacency pairs = %d, want 0", len(topo.FaceFace))
	}
}

func TestExtractEmptyShape(t *testing.T) {
	topo := Extract(solid.New())

	if topo.Vertices == nil || topo.Edges == nil || topo.Faces == nil {
		t.Error("entity slices must be non-nil")
	}
	if topo.VertexEdge == nil || topo.EdgeFace == nil || topo.FaceFace == nil {
		t.Error("relation slices must be non-nil")
	}
	if len(topo.Vertices)+len(topo.Edges)+len(topo.Faces) != 0 {
		t.Error("empty shape should extract no entities")
	}
}

func TestExtractDeterministic(t *testing.T) {
	shape := solid.Torus(3, 1)

	a := Extract(shape)
	b := Extract(shape)

	if len(a.Vertices) != len(b.Vertices) || len(a.Edges) != len(b.Edges) || len(a.Faces) != len(b.Faces) {
		t.Fatal("repeated extraction changed entity counts")
	}
	for i := range a.Edges {
		if a.Edges[i].ID() != b.Edges[i].ID() {
			t.Fatalf("edge order differs at %d", i)
		}
	}
	for i := range a.FaceFace {
		if a.FaceFace[i] != b.FaceFace[i] {
			t.Fatalf("adjacency order differs at %d", i)
		}
	}
}
