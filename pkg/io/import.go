package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/brepml/brepgraph/pkg/hetero"
)

// ReadJSON decodes a JSON graph from r and validates its structure.
//
// ReadJSON returns an error if:
//   - The JSON is malformed
//   - A matrix row's width differs from its declared column count
//   - A relation endpoint references a node index out of range
//   - A tagged relation's tag count differs from its pair count
//   - A side table's length differs from its owning entity count
//
// Errors name the offending matrix, relation, or index. The returned graph
// is independent of r; ReadJSON does not close r.
func ReadJSON(r io.Reader) (*hetero.Graph, error) {
	var g hetero.Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := validate(&g); err != nil {
		return nil, err
	}
	return &g, nil
}

// ImportJSON reads a JSON file at path and returns the decoded graph.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context,
// and include the same validation errors as [ReadJSON].
func ImportJSON(path string) (*hetero.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	g, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func validate(g *hetero.Graph) error {
	matrices := []struct {
		name string
		m    hetero.Matrix
	}{
		{"vertex_features", g.VertexFeatures},
		{"edge_features", g.EdgeFeatures},
		{"face_features", g.FaceFeatures},
		{"control_point_features", g.ControlPointFeatures},
	}
	for _, mx := range matrices {
		for i, row := range mx.m.Rows {
			if len(row) != mx.m.Cols {
				return fmt.Errorf("%s: row %d has width %d, want %d", mx.name, i, len(row), mx.m.Cols)
			}
		}
	}

	relations := []struct {
		name    string
		r       hetero.Relation
		nSrc    int
		nDst    int
		tagCols int
	}{
		{"vertex_bounds_edge", g.VertexBoundsEdge, g.NumVertices(), g.NumEdges(), 0},
		{"edge_bounds_face", g.EdgeBoundsFace, g.NumEdges(), g.NumFaces(), 0},
		{"face_adjacent_face", g.FaceAdjacentFace, g.NumFaces(), g.NumFaces(), 0},
		{"controls_edge", g.ControlsEdge, g.NumControlPoints(), g.NumEdges(), hetero.ControlsEdgeTagCols},
		{"controls_face", g.ControlsFace, g.NumControlPoints(), g.NumFaces(), hetero.ControlsFaceTagCols},
	}
	for _, rel := range relations {
		for i, p := range rel.r.Pairs {
			if p[0] < 0 || p[0] >= rel.nSrc {
				return fmt.Errorf("%s: pair %d source index %d out of range [0, %d)", rel.name, i, p[0], rel.nSrc)
			}
			if p[1] < 0 || p[1] >= rel.nDst {
				return fmt.Errorf("%s: pair %d target index %d out of range [0, %d)", rel.name, i, p[1], rel.nDst)
			}
		}
		if rel.tagCols > 0 {
			if rel.r.Tags.Cols != rel.tagCols {
				return fmt.Errorf("%s: tag width %d, want %d", rel.name, rel.r.Tags.Cols, rel.tagCols)
			}
			if len(rel.r.Tags.Rows) != len(rel.r.Pairs) {
				return fmt.Errorf("%s: %d tag rows for %d pairs", rel.name, len(rel.r.Tags.Rows), len(rel.r.Pairs))
			}
			for i, row := range rel.r.Tags.Rows {
				if len(row) != rel.tagCols {
					return fmt.Errorf("%s: tag row %d has width %d, want %d", rel.name, i, len(row), rel.tagCols)
				}
			}
		}
	}

	aux := []struct {
		name string
		got  int
		want int
	}{
		{"edge_knots", len(g.Aux.EdgeKnots), g.NumEdges()},
		{"edge_multiplicities", len(g.Aux.EdgeMultiplicities), g.NumEdges()},
		{"face_u_knots", len(g.Aux.FaceUKnots), g.NumFaces()},
		{"face_v_knots", len(g.Aux.FaceVKnots), g.NumFaces()},
		{"face_u_multiplicities", len(g.Aux.FaceUMultiplicities), g.NumFaces()},
		{"face_v_multiplicities", len(g.Aux.FaceVMultiplicities), g.NumFaces()},
	}
	for _, a := range aux {
		if a.got != a.want {
			return fmt.Errorf("aux %s: %d entries for %d entities", a.name, a.got, a.want)
		}
	}

	return nil
}
