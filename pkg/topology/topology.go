package topology

import "github.com/brepml/brepgraph/pkg/brep"

// Topology holds the deduplicated entities of a shape and the relation pair
// lists between their dense indices. Relation pairs are (source, target).
type Topology struct {
	// Vertices, Edges, Faces hold one entity per identity token,
	// in first-seen traversal order.
	Vertices []brep.Vertex
	Edges    []brep.Edge
	Faces    []brep.Face

	// VertexEdge holds one (vertex, edge) pair per occurrence of the vertex
	// on the edge boundary; a closed edge contributes its vertex twice.
	VertexEdge [][2]int

	// EdgeFace holds one (edge, face) pair per occurrence of the edge on the
	// face boundary; a seam edge contributes twice.
	EdgeFace [][2]int

	// FaceFace holds the face adjacency: symmetric, irreflexive, and
	// deduplicated per unordered pair. Both directions are materialized.
	FaceFace [][2]int
}

// registry assigns dense indices to identity tokens in first-seen order.
// It is the append-only arena used during extraction and discarded with it.
type registry struct {
	index map[brep.ID]int
}

func newRegistry() *registry {
	return &registry{index: make(map[brep.ID]int)}
}

// add registers id if unseen and returns its dense index plus whether the
// token was new.
func (r *registry) add(id brep.ID) (int, bool) {
	if i, ok := r.index[id]; ok {
		return i, false
	}
	i := len(r.index)
	r.index[id] = i
	return i, true
}

// lookup returns the dense index for id, which must have been registered.
func (r *registry) lookup(id brep.ID) (int, bool) {
	i, ok := r.index[id]
	return i, ok
}

// Extract traverses shape once per entity kind and returns its topology.
// A shape with no entities of some kind yields empty (non-nil) lists for
// that kind. Identity is decided purely by the oracle's tokens; geometric
// coincidence never merges entities.
func Extract(shape brep.Shape) *Topology {
	topo := &Topology{
		Vertices:   []brep.Vertex{},
		Edges:      []brep.Edge{},
		Faces:      []brep.Face{},
		VertexEdge: [][2]int{},
		EdgeFace:   [][2]int{},
		FaceFace:   [][2]int{},
	}

	vertices := newRegistry()
	for _, v := range shape.Vertices() {
		if _, fresh := vertices.add(v.ID()); fresh {
			topo.Vertices = append(topo.Vertices, v)
		}
	}

	edges := newRegistry()
	for _, e := range shape.Edges() {
		if _, fresh := edges.add(e.ID()); fresh {
			topo.Edges = append(topo.Edges, e)
		}
	}

	faces := newRegistry()
	for _, f := range shape.Faces() {
		if _, fresh := faces.add(f.ID()); fresh {
			topo.Faces = append(topo.Faces, f)
		}
	}

	// Vertex → edge incidence, multiplicity preserved.
	for edgeIdx, e := range topo.Edges {
		for _, v := range e.BoundVertices() {
			if vertexIdx, ok := vertices.lookup(v.ID()); ok {
				topo.VertexEdge = append(topo.VertexEdge, [2]int{vertexIdx, edgeIdx})
			}
		}
	}

	// Edge → face incidence, multiplicity preserved.
	for faceIdx, f := range topo.Faces {
		for _, e := range f.BoundEdges() {
			if edgeIdx, ok := edges.lookup(e.ID()); ok {
				topo.EdgeFace = append(topo.EdgeFace, [2]int{edgeIdx, faceIdx})
			}
		}
	}

	// Face adjacency via the edge→faces ancestor query. Every unordered
	// pair among an edge's ancestor faces becomes one adjacency, recorded
	// the first time it is seen: a pair that recurs through another shared
	// edge stays a single adjacency.
	seen := make(map[[2]int]bool)
	for _, e := range topo.Edges {
		ancestors := shape.EdgeFaces(e)
		indices := make([]int, 0, len(ancestors))
		for _, f := range ancestors {
			if faceIdx, ok := faces.lookup(f.ID()); ok {
				indices = append(indices, faceIdx)
			}
		}
		for i := 0; i < len(indices); i++ {
			for j := i + 1; j < len(indices); j++ {
				a, b := indices[i], indices[j]
				if a == b {
					continue // seam ancestors never make a face self-adjacent
				}
				key := [2]int{min(a, b), max(a, b)}
				if seen[key] {
					continue
				}
				seen[key] = true
				topo.FaceFace = append(topo.FaceFace, [2]int{a, b}, [2]int{b, a})
			}
		}
	}

	return topo
}
