// Package brep defines the geometry-oracle boundary for boundary
// representation (B-Rep) models.
//
// A B-Rep solid is a nested vertex/edge/face structure with analytic or
// freeform geometry attached to each topological entity. This package
// declares the minimal oracle the converter consumes: entity exploration by
// kind, canonical identity tokens, analytic type classification, and raw
// parameter accessors. It deliberately contains no geometry kernel of its
// own; implementations (the built-in [github.com/brepml/brepgraph/pkg/brep/solid]
// kernel, or a binding to an external CAD kernel) live behind these
// interfaces so backends can be swapped without touching the converter.
//
// # Identity
//
// Every entity carries an opaque [ID]. Two entities denote the same
// topological object if and only if their IDs are equal. Geometric
// coincidence is irrelevant: two vertices at the same coordinates with
// different IDs are distinct entities, and the converter must treat them as
// such.
//
// # Exploration order
//
// Shape exploration methods return entity occurrences in a deterministic
// traversal order and may contain duplicates (a shared vertex is reported
// once per owning edge path). Deduplication is the consumer's job; the
// oracle only guarantees that repeated calls on the same shape yield the
// same sequence.
//
// # Classification
//
// Curves and surfaces expose a closed [CurveKind]/[SurfaceKind] vocabulary
// modeled after the GeomAbs enums of traditional kernels. Parameter access
// uses narrow per-kind interfaces ([Line], [Circle], [NurbsSurface], ...)
// that consumers type-assert after reading the kind tag; geometry that does
// not satisfy the interface matching its tag is treated as unclassified.
package brep
