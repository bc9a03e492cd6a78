package solid

import (
	"github.com/google/uuid"

	"github.com/brepml/brepgraph/pkg/brep"
)

// newID mints a fresh identity token. Tokens are unique per entity instance;
// sharing an entity means sharing the pointer, not minting equal tokens.
func newID() brep.ID {
	return brep.ID(uuid.NewString())
}

// =============================================================================
// Entities
// =============================================================================

// Vertex is a topological vertex.
type Vertex struct {
	id brep.ID
	pt brep.Vec3
}

// NewVertex creates a vertex at p with a fresh identity token.
func NewVertex(p brep.Vec3) *Vertex {
	return &Vertex{id: newID(), pt: p}
}

// ID returns the identity token.
func (v *Vertex) ID() brep.ID { return v.id }

// Point returns the vertex position.
func (v *Vertex) Point() brep.Vec3 { return v.pt }

// Edge is a topological edge.
type Edge struct {
	id          brep.ID
	orientation int
	curve       brep.Curve
	vertices    []*Vertex
}

// NewEdge creates an edge over curve c, bounded by verts in order.
// A closed edge should list its single bounding vertex twice.
func NewEdge(c brep.Curve, orientation int, verts ...*Vertex) *Edge {
	return &Edge{id: newID(), orientation: orientation, curve: c, vertices: verts}
}

// ID returns the identity token.
func (e *Edge) ID() brep.ID { return e.id }

// Orientation returns brep.Forward or brep.Reversed.
func (e *Edge) Orientation() int { return e.orientation }

// Curve returns the analytic curve adaptor.
func (e *Edge) Curve() brep.Curve { return e.curve }

// BoundVertices returns the bounding vertices in stored order.
func (e *Edge) BoundVertices() []brep.Vertex {
	out := make([]brep.Vertex, len(e.vertices))
	for i, v := range e.vertices {
		out[i] = v
	}
	return out
}

// Face is a topological face.
type Face struct {
	id          brep.ID
	orientation int
	surface     brep.Surface
	edges       []*Edge
}

// NewFace creates a face over surface s, bounded by edges in order.
// A seam edge of a closed surface should appear once per seam traversal
// (typically twice).
func NewFace(s brep.Surface, orientation int, edges ...*Edge) *Face {
	return &Face{id: newID(), orientation: orientation, surface: s, edges: edges}
}

// ID returns the identity token.
func (f *Face) ID() brep.ID { return f.id }

// Orientation returns brep.Forward or brep.Reversed.
func (f *Face) Orientation() int { return f.orientation }

// Surface returns the analytic surface adaptor.
func (f *Face) Surface() brep.Surface { return f.surface }

// BoundEdges returns the boundary edges in stored order.
func (f *Face) BoundEdges() []brep.Edge {
	out := make([]brep.Edge, len(f.edges))
	for i, e := range f.edges {
		out[i] = e
	}
	return out
}

// =============================================================================
// Solid - the Shape implementation
// =============================================================================

// Solid is an in-memory B-Rep shape: a list of faces plus any free edges and
// vertices not owned by a face hierarchy. The zero value is an empty shape.
type Solid struct {
	faces        []*Face
	freeEdges    []*Edge
	freeVertices []*Vertex
}

// New returns an empty shape.
func New() *Solid {
	return &Solid{}
}

// AddFace appends a face (and transitively its edges and vertices) to the
// shape's traversal.
func (s *Solid) AddFace(f *Face) {
	s.faces = append(s.faces, f)
}

// AddEdge appends a free edge that is not part of any face boundary.
func (s *Solid) AddEdge(e *Edge) {
	s.freeEdges = append(s.freeEdges, e)
}

// AddVertex appends a free vertex that is not part of any edge.
func (s *Solid) AddVertex(v *Vertex) {
	s.freeVertices = append(s.freeVertices, v)
}

// Compound concatenates the traversals of several shapes into one. Entities
// are not merged: identity tokens stay distinct across the parts.
func Compound(parts ...*Solid) *Solid {
	out := New()
	for _, p := range parts {
		out.faces = append(out.faces, p.faces...)
		out.freeEdges = append(out.freeEdges, p.freeEdges...)
		out.freeVertices = append(out.freeVertices, p.freeVertices...)
	}
	return out
}

// Faces returns face occurrences in traversal order.
func (s *Solid) Faces() []brep.Face {
	out := make([]brep.Face, len(s.faces))
	for i, f := range s.faces {
		out[i] = f
	}
	return out
}

// Edges returns edge occurrences in traversal order: the boundary edges of
// each face (duplicates included, as a real explorer would report them),
// then free edges.
func (s *Solid) Edges() []brep.Edge {
	var out []brep.Edge
	for _, f := range s.faces {
		for _, e := range f.edges {
			out = append(out, e)
		}
	}
	for _, e := range s.freeEdges {
		out = append(out, e)
	}
	return out
}

// Vertices returns vertex occurrences in traversal order: the bounding
// vertices of each edge occurrence (duplicates included), then free vertices.
func (s *Solid) Vertices() []brep.Vertex {
	var out []brep.Vertex
	for _, e := range s.Edges() {
		out = append(out, e.BoundVertices()...)
	}
	for _, v := range s.freeVertices {
		out = append(out, v)
	}
	return out
}

// EdgeFaces returns the faces whose boundary references e, in face traversal
// order. A face referencing e multiple times (seam) is reported once.
func (s *Solid) EdgeFaces(e brep.Edge) []brep.Face {
	var out []brep.Face
	for _, f := range s.faces {
		for _, be := range f.edges {
			if be.ID() == e.ID() {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// Ensure Solid implements the oracle interface.
var _ brep.Shape = (*Solid)(nil)
