// Package hetero defines the heterogeneous graph container produced by the
// converter.
//
// A [Graph] carries four node kinds (vertex, edge, face, control point),
// each with a fixed-width feature matrix, and five relation kinds as
// directed pair lists in source/target order. Control-point relations carry
// an integer tag matrix (sequence index for curve-owned points, (u, v) grid
// position for surface-owned points). Variable-length per-entity data such
// as knot vectors and multiplicities live in auxiliary side tables keyed by
// entity index, one entry per entity.
//
// The container is the canonical serialization format: json tags serve file
// export and the HTTP API, bson tags serve the dataset store. Constructors
// guarantee well-typed empties, so a degenerate shape still produces
// matrices and relations of the documented width at zero rows.
package hetero
