package pipeline

import (
	"github.com/brepml/brepgraph/pkg/brep"
	"github.com/brepml/brepgraph/pkg/errors"
	"github.com/brepml/brepgraph/pkg/features"
	"github.com/brepml/brepgraph/pkg/geometry"
	"github.com/brepml/brepgraph/pkg/hetero"
	"github.com/brepml/brepgraph/pkg/topology"
)

// =============================================================================
// Graph Assembly
// =============================================================================

// Convert turns a boundary representation into its heterogeneous graph.
//
// The input must implement [brep.Shape]; any other value is rejected up
// front with [errors.ErrCodeInvalidShape] so callers holding an untyped
// payload (API handlers, batch loaders) get a diagnostic naming the
// offending type instead of a panic deep in traversal.
//
// Conversion is deterministic and idempotent: the same shape always yields
// the same node order, the same relation order, and therefore the same
// content hash.
func Convert(input any) (*hetero.Graph, error) {
	shape, ok := input.(brep.Shape)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidShape,
			"unsupported input type %T: want a boundary representation shape", input)
	}
	return convertShape(shape), nil
}

// convertShape assembles the graph from a validated shape. Entities are
// indexed in first-seen exploration order; control points are appended in
// owner order, sequence order within a curve and row-major (u, v) order
// within a surface grid.
func convertShape(shape brep.Shape) *hetero.Graph {
	topo := topology.Extract(shape)

	g := hetero.New(
		features.VertexFeatureDim,
		features.EdgeFeatureDim,
		features.FaceFeatureDim,
		features.ControlPointFeatureDim,
	)

	for _, v := range topo.Vertices {
		g.VertexFeatures.Append(features.VertexRow(geometry.DescribeVertex(v)))
	}

	for ei, e := range topo.Edges {
		desc := geometry.DescribeEdge(e)
		g.EdgeFeatures.Append(features.EdgeRow(desc))
		g.Aux.EdgeKnots = append(g.Aux.EdgeKnots, emptyFloats(desc.Knots))
		g.Aux.EdgeMultiplicities = append(g.Aux.EdgeMultiplicities, emptyInts(desc.Multiplicities))
		for _, cp := range desc.ControlPoints {
			ci := g.NumControlPoints()
			g.ControlPointFeatures.Append(features.ControlPointRow(cp))
			g.ControlsEdge.AddTagged(ci, ei, []int{cp.Index[0]})
		}
	}

	for fi, f := range topo.Faces {
		desc := geometry.DescribeFace(f)
		g.FaceFeatures.Append(features.FaceRow(desc))
		g.Aux.FaceUKnots = append(g.Aux.FaceUKnots, emptyFloats(desc.UKnots))
		g.Aux.FaceVKnots = append(g.Aux.FaceVKnots, emptyFloats(desc.VKnots))
		g.Aux.FaceUMultiplicities = append(g.Aux.FaceUMultiplicities, emptyInts(desc.UMultiplicities))
		g.Aux.FaceVMultiplicities = append(g.Aux.FaceVMultiplicities, emptyInts(desc.VMultiplicities))
		for _, cp := range desc.ControlPoints {
			ci := g.NumControlPoints()
			g.ControlPointFeatures.Append(features.ControlPointRow(cp))
			g.ControlsFace.AddTagged(ci, fi, []int{cp.Index[0], cp.Index[1]})
		}
	}

	for _, p := range topo.VertexEdge {
		g.VertexBoundsEdge.Add(p[0], p[1])
	}
	for _, p := range topo.EdgeFace {
		g.EdgeBoundsFace.Add(p[0], p[1])
	}
	for _, p := range topo.FaceFace {
		g.FaceAdjacentFace.Add(p[0], p[1])
	}

	return g
}

func emptyFloats(s []float64) []float64 {
	if s == nil {
		return []float64{}
	}
	return s
}

func emptyInts(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}
