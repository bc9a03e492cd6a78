// Package io provides JSON import and export for converted shape graphs.
//
// # Overview
//
// This package serializes a [hetero.Graph] to and from JSON. The format is
// designed for:
//
//   - Feeding graph-learning pipelines that consume node features and
//     relation pair lists as plain arrays
//   - Caching conversion results for faster re-rendering
//   - Round-trip preservation: export, re-import, and render identically
//
// # JSON Format
//
// The document mirrors the graph container: four feature matrices, five
// relations, and the auxiliary side tables:
//
//	{
//	  "vertex_features": {"cols": 3, "rows": [[0, 0, 0], ...]},
//	  "edge_features": {"cols": 24, "rows": [...]},
//	  "face_features": {"cols": 34, "rows": [...]},
//	  "control_point_features": {"cols": 4, "rows": [...]},
//	  "vertex_bounds_edge": {"pairs": [[0, 0], ...], "tags": {...}},
//	  ...
//	  "aux": {"edge_knots": [...], ...}
//	}
//
// Matrices carry their column count explicitly so an empty graph still
// declares its feature widths.
//
// # Import
//
// Use [ImportJSON] to read a graph from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	g, err := io.ImportJSON("graph.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions validate structural integrity: row widths must match the
// declared column counts, relation endpoints must reference existing nodes,
// tagged relations must carry one tag row per pair, and the side tables must
// have one entry per owning entity. Errors name the offending matrix,
// relation, or index.
//
// # Export
//
// Use [ExportJSON] to write a graph to a file, or [WriteJSON] to write to
// any io.Writer:
//
//	err := io.ExportJSON(g, "graph.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The export is deterministic for a given graph, so exported files can be
// content-hashed and diffed.
//
// [hetero.Graph]: github.com/brepml/brepgraph/pkg/hetero.Graph
package io
