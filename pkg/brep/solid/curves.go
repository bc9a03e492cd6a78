package solid

import "github.com/brepml/brepgraph/pkg/brep"

// Concrete curve adaptors. Each type implements brep.Curve plus the narrow
// parameter interface matching its kind.

// LineCurve is a straight segment with unit direction Dir over [First, Last].
type LineCurve struct {
	Dir         brep.Vec3
	First, Last float64
}

// Kind returns brep.CurveLine.
func (c *LineCurve) Kind() brep.CurveKind { return brep.CurveLine }

// Domain returns the parametric interval.
func (c *LineCurve) Domain() (float64, float64) { return c.First, c.Last }

// Closed always reports false for a line.
func (c *LineCurve) Closed() bool { return false }

// Direction returns the unit direction.
func (c *LineCurve) Direction() brep.Vec3 { return c.Dir }

// CircleCurve is a circular arc (Full=false) or full circle (Full=true).
type CircleCurve struct {
	Loc         brep.Vec3 // center
	Norm        brep.Vec3 // unit normal of the circle plane
	R           float64
	First, Last float64
	Full        bool
}

// Kind returns brep.CurveCircle.
func (c *CircleCurve) Kind() brep.CurveKind { return brep.CurveCircle }

// Domain returns the parametric interval.
func (c *CircleCurve) Domain() (float64, float64) { return c.First, c.Last }

// Closed reports whether the arc spans the full circle.
func (c *CircleCurve) Closed() bool { return c.Full }

// Center returns the circle center.
func (c *CircleCurve) Center() brep.Vec3 { return c.Loc }

// Axis returns the plane normal.
func (c *CircleCurve) Axis() brep.Vec3 { return c.Norm }

// Radius returns the radius.
func (c *CircleCurve) Radius() float64 { return c.R }

// EllipseCurve is an elliptical arc or full ellipse.
type EllipseCurve struct {
	Loc          brep.Vec3
	Norm         brep.Vec3
	Major, Minor float64
	First, Last  float64
	Full         bool
}

// Kind returns brep.CurveEllipse.
func (c *EllipseCurve) Kind() brep.CurveKind { return brep.CurveEllipse }

// Domain returns the parametric interval.
func (c *EllipseCurve) Domain() (float64, float64) { return c.First, c.Last }

// Closed reports whether the arc spans the full ellipse.
func (c *EllipseCurve) Closed() bool { return c.Full }

// Center returns the ellipse center.
func (c *EllipseCurve) Center() brep.Vec3 { return c.Loc }

// Axis returns the plane normal.
func (c *EllipseCurve) Axis() brep.Vec3 { return c.Norm }

// MajorRadius returns the semi-major axis length.
func (c *EllipseCurve) MajorRadius() float64 { return c.Major }

// MinorRadius returns the semi-minor axis length.
func (c *EllipseCurve) MinorRadius() float64 { return c.Minor }

// NurbsCurve is a B-spline curve with clamped or arbitrary knots.
type NurbsCurve struct {
	Deg         int
	Knot        []float64 // strictly increasing distinct knots
	Mult        []int     // multiplicities aligned with Knot
	CPs         []brep.Vec3
	Wts         []float64 // nil when non-rational
	First, Last float64
	IsClosed    bool
}

// Kind returns brep.CurveBSpline.
func (c *NurbsCurve) Kind() brep.CurveKind { return brep.CurveBSpline }

// Domain returns the parametric interval.
func (c *NurbsCurve) Domain() (float64, float64) { return c.First, c.Last }

// Closed reports whether the curve closes onto itself.
func (c *NurbsCurve) Closed() bool { return c.IsClosed }

// Degree returns the polynomial degree.
func (c *NurbsCurve) Degree() int { return c.Deg }

// Knots returns the distinct knot vector.
func (c *NurbsCurve) Knots() []float64 { return c.Knot }

// Multiplicities returns the knot multiplicities.
func (c *NurbsCurve) Multiplicities() []int { return c.Mult }

// Poles returns the ordered control points.
func (c *NurbsCurve) Poles() []brep.Vec3 { return c.CPs }

// Weights returns the pole weights, nil when non-rational.
func (c *NurbsCurve) Weights() []float64 { return c.Wts }

// BezierCurve is a Bezier curve; its degree is len(CPs)-1.
type BezierCurve struct {
	CPs         []brep.Vec3
	Wts         []float64 // nil when non-rational
	First, Last float64
}

// Kind returns brep.CurveBezier.
func (c *BezierCurve) Kind() brep.CurveKind { return brep.CurveBezier }

// Domain returns the parametric interval.
func (c *BezierCurve) Domain() (float64, float64) { return c.First, c.Last }

// Closed always reports false for a Bezier segment.
func (c *BezierCurve) Closed() bool { return false }

// Degree returns len(CPs)-1.
func (c *BezierCurve) Degree() int { return len(c.CPs) - 1 }

// Poles returns the ordered control points.
func (c *BezierCurve) Poles() []brep.Vec3 { return c.CPs }

// Weights returns the pole weights, nil when non-rational.
func (c *BezierCurve) Weights() []float64 { return c.Wts }

// GenericCurve carries only a kind tag and generic properties. It stands in
// for kinds without a parameter interface (hyperbola, parabola, offset,
// other) and for exotic geometry a backend cannot describe.
type GenericCurve struct {
	K           brep.CurveKind
	First, Last float64
	IsClosed    bool
}

// Kind returns the stored kind tag.
func (c *GenericCurve) Kind() brep.CurveKind { return c.K }

// Domain returns the parametric interval.
func (c *GenericCurve) Domain() (float64, float64) { return c.First, c.Last }

// Closed reports the stored closed flag.
func (c *GenericCurve) Closed() bool { return c.IsClosed }

var (
	_ brep.Line    = (*LineCurve)(nil)
	_ brep.Circle  = (*CircleCurve)(nil)
	_ brep.Ellipse = (*EllipseCurve)(nil)
	_ brep.Nurbs   = (*NurbsCurve)(nil)
	_ brep.Bezier  = (*BezierCurve)(nil)
	_ brep.Curve   = (*GenericCurve)(nil)
)
