package brep

// ID is the canonical identity token of a topological entity. Tokens are
// opaque: equality of tokens is the only identity notion, independent of any
// stored coordinates.
type ID string

// Orientation of an entity relative to its underlying geometry.
const (
	// Forward means the entity follows its geometry's natural direction.
	Forward = 1
	// Reversed means the entity runs against its geometry's natural direction.
	Reversed = -1
)

// Vec3 is a point or direction in model space.
type Vec3 struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
	Z float64 `json:"z" bson:"z"`
}

// =============================================================================
// Shape and Entities
// =============================================================================

// Shape is a B-Rep model as seen by the converter. Implementations wrap a
// geometry kernel's shape handle.
type Shape interface {
	// Vertices returns all vertex occurrences in traversal order.
	// The sequence may contain duplicates (same ID reported multiple times).
	Vertices() []Vertex

	// Edges returns all edge occurrences in traversal order.
	Edges() []Edge

	// Faces returns all face occurrences in traversal order.
	Faces() []Face

	// EdgeFaces returns the faces whose boundary references e, in traversal
	// order. This is the ancestor query used to derive face adjacency.
	EdgeFaces(e Edge) []Face
}

// Entity is the common surface of all topological entities.
type Entity interface {
	// ID returns the canonical identity token.
	ID() ID
}

// Vertex is a topological vertex with an attached point.
type Vertex interface {
	Entity

	// Point returns the vertex position.
	Point() Vec3
}

// Edge is a topological edge with an attached curve.
type Edge interface {
	Entity

	// Orientation is Forward or Reversed.
	Orientation() int

	// Curve returns the analytic curve adaptor for this edge.
	Curve() Curve

	// BoundVertices returns the bounding vertices in oracle order. A closed
	// edge repeats its single bounding vertex; the repetition is observable
	// topology and must be preserved.
	BoundVertices() []Vertex
}

// Face is a topological face with an attached surface.
type Face interface {
	Entity

	// Orientation is Forward or Reversed.
	Orientation() int

	// Surface returns the analytic surface adaptor for this face.
	Surface() Surface

	// BoundEdges returns the boundary edges in oracle order. A seam edge of
	// a closed surface appears once per traversal of the seam (typically
	// twice); the repetition is observable topology and must be preserved.
	BoundEdges() []Edge
}

// =============================================================================
// Curve Adaptors
// =============================================================================

// CurveKind classifies the analytic type of a curve.
type CurveKind int

// Curve kinds, in one-hot encoding order.
const (
	CurveLine CurveKind = iota
	CurveCircle
	CurveEllipse
	CurveHyperbola
	CurveParabola
	CurveBezier
	CurveBSpline
	CurveOffset
	CurveOther

	// NumCurveKinds is the size of the curve kind vocabulary.
	NumCurveKinds = int(CurveOther) + 1
)

var curveKindNames = [...]string{
	"line", "circle", "ellipse", "hyperbola", "parabola",
	"bezier", "bspline", "offset", "other",
}

// String returns the lower-case kind name; out-of-range kinds read "other".
func (k CurveKind) String() string {
	if k < 0 || int(k) >= len(curveKindNames) {
		return "other"
	}
	return curveKindNames[k]
}

// Curve is the analytic curve adaptor attached to an edge.
//
// Kind reports the classification; parameter access goes through the narrow
// interface matching the kind ([Line], [Circle], ...). A curve reporting a
// kind whose narrow interface it does not satisfy is treated as CurveOther.
type Curve interface {
	// Kind returns the analytic classification.
	Kind() CurveKind

	// Domain returns the parametric domain [tmin, tmax].
	Domain() (tmin, tmax float64)

	// Closed reports whether the curve closes onto itself over its domain.
	Closed() bool
}

// Line is a straight curve.
type Line interface {
	Curve

	// Direction returns the unit direction vector.
	Direction() Vec3
}

// Circle is a circular arc or full circle.
type Circle interface {
	Curve

	// Center returns the circle center.
	Center() Vec3

	// Axis returns the unit normal of the circle plane.
	Axis() Vec3

	// Radius returns the circle radius.
	Radius() float64
}

// Ellipse is an elliptical arc or full ellipse.
type Ellipse interface {
	Curve

	// Center returns the ellipse center.
	Center() Vec3

	// Axis returns the unit normal of the ellipse plane.
	Axis() Vec3

	// MajorRadius returns the semi-major axis length.
	MajorRadius() float64

	// MinorRadius returns the semi-minor axis length.
	MinorRadius() float64
}

// Nurbs is a B-spline curve.
type Nurbs interface {
	Curve

	// Degree returns the polynomial degree.
	Degree() int

	// Knots returns the strictly increasing knot vector.
	Knots() []float64

	// Multiplicities returns the knot multiplicities, aligned with Knots.
	Multiplicities() []int

	// Poles returns the ordered control points.
	Poles() []Vec3

	// Weights returns per-pole weights aligned with Poles, or nil when the
	// curve is declared non-rational.
	Weights() []float64
}

// Bezier is a Bezier curve.
type Bezier interface {
	Curve

	// Degree returns the polynomial degree.
	Degree() int

	// Poles returns the ordered control points.
	Poles() []Vec3

	// Weights returns per-pole weights aligned with Poles, or nil when the
	// curve is declared non-rational.
	Weights() []float64
}

// =============================================================================
// Surface Adaptors
// =============================================================================

// SurfaceKind classifies the analytic type of a surface.
type SurfaceKind int

// Surface kinds, in one-hot encoding order.
const (
	SurfacePlane SurfaceKind = iota
	SurfaceCylinder
	SurfaceCone
	SurfaceSphere
	SurfaceTorus
	SurfaceBezier
	SurfaceBSpline
	SurfaceRevolution
	SurfaceExtrusion
	SurfaceOffset
	SurfaceOther

	// NumSurfaceKinds is the size of the surface kind vocabulary.
	NumSurfaceKinds = int(SurfaceOther) + 1
)

var surfaceKindNames = [...]string{
	"plane", "cylinder", "cone", "sphere", "torus",
	"bezier", "bspline", "revolution", "extrusion", "offset", "other",
}

// String returns the lower-case kind name; out-of-range kinds read "other".
func (k SurfaceKind) String() string {
	if k < 0 || int(k) >= len(surfaceKindNames) {
		return "other"
	}
	return surfaceKindNames[k]
}

// Surface is the analytic surface adaptor attached to a face.
//
// Kind reports the classification; parameter access goes through the narrow
// interface matching the kind ([Plane], [Elementary], ...). A surface
// reporting a kind whose narrow interface it does not satisfy is treated as
// SurfaceOther.
type Surface interface {
	// Kind returns the analytic classification.
	Kind() SurfaceKind

	// Domain returns the parametric domain box [umin, umax] x [vmin, vmax].
	Domain() (umin, umax, vmin, vmax float64)

	// UClosed reports whether the surface closes onto itself along u.
	UClosed() bool

	// VClosed reports whether the surface closes onto itself along v.
	VClosed() bool
}

// Plane is a planar surface.
type Plane interface {
	Surface

	// Normal returns the unit plane normal.
	Normal() Vec3

	// Origin returns a reference point on the plane.
	Origin() Vec3
}

// Elementary is an axis-placed quadric or toroidal surface: cylinder, cone,
// sphere, or torus. MinorRadius is meaningful for the torus and SemiAngle
// for the cone; the others return zero.
type Elementary interface {
	Surface

	// AxisDirection returns the unit axis direction.
	AxisDirection() Vec3

	// AxisOrigin returns the axis placement origin.
	AxisOrigin() Vec3

	// Radius returns the defining radius (major radius for a torus, the
	// reference radius for a cone).
	Radius() float64

	// MinorRadius returns the torus minor radius, zero otherwise.
	MinorRadius() float64

	// SemiAngle returns the cone half-angle in radians, zero otherwise.
	SemiAngle() float64
}

// NurbsSurface is a B-spline surface.
type NurbsSurface interface {
	Surface

	// UDegree returns the polynomial degree along u.
	UDegree() int

	// VDegree returns the polynomial degree along v.
	VDegree() int

	// UKnots returns the strictly increasing knot vector along u.
	UKnots() []float64

	// VKnots returns the strictly increasing knot vector along v.
	VKnots() []float64

	// UMultiplicities returns knot multiplicities aligned with UKnots.
	UMultiplicities() []int

	// VMultiplicities returns knot multiplicities aligned with VKnots.
	VMultiplicities() []int

	// Poles returns the control-point grid, indexed [u][v].
	Poles() [][]Vec3

	// Weights returns the weight grid aligned with Poles, or nil when the
	// surface is rational in neither direction.
	Weights() [][]float64
}

// BezierSurface is a Bezier surface.
type BezierSurface interface {
	Surface

	// UDegree returns the polynomial degree along u.
	UDegree() int

	// VDegree returns the polynomial degree along v.
	VDegree() int

	// Poles returns the control-point grid, indexed [u][v].
	Poles() [][]Vec3

	// Weights returns the weight grid aligned with Poles, or nil when the
	// surface is rational in neither direction.
	Weights() [][]float64
}
