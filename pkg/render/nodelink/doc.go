// Package nodelink renders converted shape graphs as node-link diagrams.
//
// # Overview
//
// This package produces Graphviz visualizations of the heterogeneous graph,
// where every topological entity (vertex, edge, face, control point) appears
// as a typed node and every relation as a link. The diagram is an inspection
// aid for checking what a conversion produced, not a geometric rendering of
// the shape.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Labels: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Labels: When true, node labels include the entity's curve or surface
//     kind decoded from its feature row.
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// Node shapes distinguish entity kinds: vertices are points, edges are
// ellipses, faces are boxes, control points are small diamonds. Face
// adjacency is stored in both directions in the graph; the diagram draws
// each adjacent pair once as an undirected link to keep the picture
// readable.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
