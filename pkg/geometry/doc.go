// Package geometry maps topological entities to analytic parameter
// descriptors.
//
// Each Describe function is a pure, stateless mapping from an oracle entity
// to a descriptor record holding exactly the parameters needed to rebuild
// the primitive to stored precision: a line keeps its unit direction, a
// circle its center/axis/radius, a B-spline its degree, knot vector with
// multiplicities, and weighted control points, and so on for the full
// 9-curve / 11-surface vocabulary. Optional fields are nil when the kind
// does not define them.
//
// Classification is defensive in one direction only: an unrecognized kind
// tag, or geometry that does not satisfy the parameter interface its tag
// promises, degrades to the "other" kind with generic fields populated
// rather than failing the conversion.
package geometry
