package hetero

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
)

// =============================================================================
// Matrices
// =============================================================================

// Matrix is a dense row-major float64 matrix with a fixed column count. Rows
// holds one slice per row; every row has exactly Cols entries. A matrix with
// zero rows still reports its width through Cols, so downstream consumers can
// size tensors without inspecting data.
type Matrix struct {
	Cols int         `json:"cols" bson:"cols"`
	Rows [][]float64 `json:"rows" bson:"rows"`
}

// NewMatrix returns an empty matrix of the given width.
func NewMatrix(cols int) Matrix {
	return Matrix{Cols: cols, Rows: [][]float64{}}
}

// Append adds one row. It panics if the row width does not match Cols;
// callers build rows from fixed-layout encoders, so a mismatch is a
// programming error rather than an input error.
func (m *Matrix) Append(row []float64) {
	if len(row) != m.Cols {
		panic(fmt.Sprintf("hetero: row width %d does not match matrix width %d", len(row), m.Cols))
	}
	m.Rows = append(m.Rows, row)
}

// Len returns the number of rows.
func (m Matrix) Len() int { return len(m.Rows) }

// IntMatrix is a dense row-major integer matrix with a fixed column count,
// used for relation tags.
type IntMatrix struct {
	Cols int     `json:"cols" bson:"cols"`
	Rows [][]int `json:"rows" bson:"rows"`
}

// NewIntMatrix returns an empty integer matrix of the given width.
func NewIntMatrix(cols int) IntMatrix {
	return IntMatrix{Cols: cols, Rows: [][]int{}}
}

// Append adds one row, panicking on a width mismatch.
func (m *IntMatrix) Append(row []int) {
	if len(row) != m.Cols {
		panic(fmt.Sprintf("hetero: tag width %d does not match matrix width %d", len(row), m.Cols))
	}
	m.Rows = append(m.Rows, row)
}

// Len returns the number of rows.
func (m IntMatrix) Len() int { return len(m.Rows) }

// =============================================================================
// Relations
// =============================================================================

// Relation is a directed pair list between two node kinds. Pairs[i] is
// (source index, target index). Tags, when the relation kind carries them,
// has one row per pair; an untagged relation has a zero-width tag matrix.
type Relation struct {
	Pairs [][2]int  `json:"pairs" bson:"pairs"`
	Tags  IntMatrix `json:"tags" bson:"tags"`
}

// NewRelation returns an empty relation whose tags have the given width.
// Pass 0 for relation kinds that carry no tags.
func NewRelation(tagCols int) Relation {
	return Relation{Pairs: [][2]int{}, Tags: NewIntMatrix(tagCols)}
}

// Add appends a pair with no tag row.
func (r *Relation) Add(src, dst int) {
	r.Pairs = append(r.Pairs, [2]int{src, dst})
}

// AddTagged appends a pair together with its tag row.
func (r *Relation) AddTagged(src, dst int, tag []int) {
	r.Pairs = append(r.Pairs, [2]int{src, dst})
	r.Tags.Append(tag)
}

// Len returns the number of pairs.
func (r Relation) Len() int { return len(r.Pairs) }

// =============================================================================
// Graph
// =============================================================================

// Tag widths for the control-point relations.
const (
	ControlsEdgeTagCols = 1 // sequence position along the curve
	ControlsFaceTagCols = 2 // (u, v) position in the control grid
)

// Sequences holds the variable-length per-entity side tables that do not fit
// a fixed-width feature row. Each outer slice has one entry per entity of the
// owning kind, empty (never nil) when the entity has no such data.
type Sequences struct {
	EdgeKnots           [][]float64 `json:"edge_knots" bson:"edge_knots"`
	EdgeMultiplicities  [][]int     `json:"edge_multiplicities" bson:"edge_multiplicities"`
	FaceUKnots          [][]float64 `json:"face_u_knots" bson:"face_u_knots"`
	FaceVKnots          [][]float64 `json:"face_v_knots" bson:"face_v_knots"`
	FaceUMultiplicities [][]int     `json:"face_u_multiplicities" bson:"face_u_multiplicities"`
	FaceVMultiplicities [][]int     `json:"face_v_multiplicities" bson:"face_v_multiplicities"`
}

// Graph is the typed heterogeneous graph for one shape.
type Graph struct {
	VertexFeatures       Matrix `json:"vertex_features" bson:"vertex_features"`
	EdgeFeatures         Matrix `json:"edge_features" bson:"edge_features"`
	FaceFeatures         Matrix `json:"face_features" bson:"face_features"`
	ControlPointFeatures Matrix `json:"control_point_features" bson:"control_point_features"`

	VertexBoundsEdge Relation `json:"vertex_bounds_edge" bson:"vertex_bounds_edge"`
	EdgeBoundsFace   Relation `json:"edge_bounds_face" bson:"edge_bounds_face"`
	FaceAdjacentFace Relation `json:"face_adjacent_face" bson:"face_adjacent_face"`
	ControlsEdge     Relation `json:"controls_edge" bson:"controls_edge"`
	ControlsFace     Relation `json:"controls_face" bson:"controls_face"`

	Aux Sequences `json:"aux" bson:"aux"`
}

// New returns an empty graph whose matrices carry the given feature widths
// and whose relations carry the documented tag widths.
func New(vertexCols, edgeCols, faceCols, controlPointCols int) *Graph {
	return &Graph{
		VertexFeatures:       NewMatrix(vertexCols),
		EdgeFeatures:         NewMatrix(edgeCols),
		FaceFeatures:         NewMatrix(faceCols),
		ControlPointFeatures: NewMatrix(controlPointCols),
		VertexBoundsEdge:     NewRelation(0),
		EdgeBoundsFace:       NewRelation(0),
		FaceAdjacentFace:     NewRelation(0),
		ControlsEdge:         NewRelation(ControlsEdgeTagCols),
		ControlsFace:         NewRelation(ControlsFaceTagCols),
		Aux: Sequences{
			EdgeKnots:           [][]float64{},
			EdgeMultiplicities:  [][]int{},
			FaceUKnots:          [][]float64{},
			FaceVKnots:          [][]float64{},
			FaceUMultiplicities: [][]int{},
			FaceVMultiplicities: [][]int{},
		},
	}
}

// NumVertices returns the vertex node count.
func (g *Graph) NumVertices() int { return g.VertexFeatures.Len() }

// NumEdges returns the edge node count.
func (g *Graph) NumEdges() int { return g.EdgeFeatures.Len() }

// NumFaces returns the face node count.
func (g *Graph) NumFaces() int { return g.FaceFeatures.Len() }

// NumControlPoints returns the control-point node count.
func (g *Graph) NumControlPoints() int { return g.ControlPointFeatures.Len() }

// =============================================================================
// Content hashing
// =============================================================================

// ContentHash returns a hex sha256 digest over the graph's full content.
// Two graphs with identical features, relations, tags, and side tables hash
// identically regardless of how they were produced, which makes the digest
// usable as a cache and store key.
func (g *Graph) ContentHash() string {
	h := sha256.New()
	hashMatrix := func(m Matrix) {
		writeInt(h, m.Cols)
		writeInt(h, len(m.Rows))
		for _, row := range m.Rows {
			for _, v := range row {
				writeFloat(h, v)
			}
		}
	}
	hashRelation := func(r Relation) {
		writeInt(h, len(r.Pairs))
		for _, p := range r.Pairs {
			writeInt(h, p[0])
			writeInt(h, p[1])
		}
		writeInt(h, r.Tags.Cols)
		for _, row := range r.Tags.Rows {
			for _, v := range row {
				writeInt(h, v)
			}
		}
	}
	hashMatrix(g.VertexFeatures)
	hashMatrix(g.EdgeFeatures)
	hashMatrix(g.FaceFeatures)
	hashMatrix(g.ControlPointFeatures)
	hashRelation(g.VertexBoundsEdge)
	hashRelation(g.EdgeBoundsFace)
	hashRelation(g.FaceAdjacentFace)
	hashRelation(g.ControlsEdge)
	hashRelation(g.ControlsFace)
	for _, seq := range [][][]float64{g.Aux.EdgeKnots, g.Aux.FaceUKnots, g.Aux.FaceVKnots} {
		writeInt(h, len(seq))
		for _, s := range seq {
			writeInt(h, len(s))
			for _, v := range s {
				writeFloat(h, v)
			}
		}
	}
	for _, seq := range [][][]int{g.Aux.EdgeMultiplicities, g.Aux.FaceUMultiplicities, g.Aux.FaceVMultiplicities} {
		writeInt(h, len(seq))
		for _, s := range seq {
			writeInt(h, len(s))
			for _, v := range s {
				writeInt(h, v)
			}
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

func writeInt(h interface{ Write([]byte) (int, error) }, v int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
	h.Write(buf[:])
}

func writeFloat(h interface{ Write([]byte) (int, error) }, v float64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	h.Write(buf[:])
}
