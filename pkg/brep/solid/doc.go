// Package solid is the built-in in-memory B-Rep kernel.
//
// It implements the [github.com/brepml/brepgraph/pkg/brep] oracle interfaces
// with plain Go structs: entities carry uuid identity tokens assigned at
// construction, so identity is explicit and never derived from coordinates.
// Two primitives built with the same parameters are distinct shapes; entities
// are shared only when the same *Vertex/*Edge/*Face value is wired into
// multiple parents.
//
// The package provides primitive constructors (Box, Sphere, Cylinder, Cone,
// Torus, spline wires, Bezier and B-spline patches) that build correct shared
// topology, including the awkward cases a converter must survive: closed
// edges repeat their single bounding vertex, and seam edges of closed
// surfaces appear twice in the owning face's boundary list.
//
// Shapes can also be loaded from JSON shape documents (see [ParseDocument]),
// which is how the CLI and HTTP API accept input without a CAD kernel.
package solid
