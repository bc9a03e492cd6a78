package geometry

import "github.com/brepml/brepgraph/pkg/brep"

// VertexGeometry is the descriptor of a vertex.
type VertexGeometry struct {
	X, Y, Z float64
}

// ControlPoint is one weighted control point of a B-spline or Bezier
// geometry. Index is the zero-based position: one element (sequence index)
// for curve-owned points, two elements (u index, v index) for surface-owned
// points.
type ControlPoint struct {
	X, Y, Z float64
	Weight  float64
	Index   []int
}

// EdgeGeometry is the descriptor of an edge's curve. Fields not defined for
// the curve kind stay nil/empty.
type EdgeGeometry struct {
	Kind        brep.CurveKind
	Orientation int
	Degree      int
	Closed      bool
	TMin, TMax  float64

	// line
	LineDirection *brep.Vec3

	// circle / ellipse
	Center      *brep.Vec3
	Axis        *brep.Vec3
	Radius      *float64
	MinorRadius *float64 // ellipse only

	// bspline / bezier
	Knots          []float64
	Multiplicities []int
	ControlPoints  []ControlPoint
}

// FaceGeometry is the descriptor of a face's surface. Fields not defined
// for the surface kind stay nil/empty.
type FaceGeometry struct {
	Kind             brep.SurfaceKind
	Orientation      int
	UDegree, VDegree int
	UClosed, VClosed bool
	UMin, UMax       float64
	VMin, VMax       float64

	// plane
	PlaneNormal *brep.Vec3
	PlaneOrigin *brep.Vec3

	// cylinder / cone / sphere / torus
	AxisDirection *brep.Vec3
	AxisOrigin    *brep.Vec3
	Radius        *float64
	Radius2       *float64 // torus minor radius
	HalfAngle     *float64 // cone only; not part of the fixed feature row

	// bspline
	UKnots          []float64
	VKnots          []float64
	UMultiplicities []int
	VMultiplicities []int

	// bspline / bezier: grid flattened row-major over (u, v)
	ControlPoints []ControlPoint
}

// DescribeVertex extracts the vertex descriptor.
func DescribeVertex(v brep.Vertex) VertexGeometry {
	p := v.Point()
	return VertexGeometry{X: p.X, Y: p.Y, Z: p.Z}
}

// DescribeEdge extracts the curve descriptor of an edge. Kinds without a
// parameter set (hyperbola, parabola, offset, other) keep their tag with
// generic fields only; a tag whose parameter interface is missing degrades
// to CurveOther.
func DescribeEdge(e brep.Edge) EdgeGeometry {
	c := e.Curve()
	tmin, tmax := c.Domain()

	g := EdgeGeometry{
		Kind:        c.Kind(),
		Orientation: e.Orientation(),
		Degree:      1,
		Closed:      c.Closed(),
		TMin:        tmin,
		TMax:        tmax,
	}

	switch g.Kind {
	case brep.CurveLine:
		l, ok := c.(brep.Line)
		if !ok {
			g.Kind = brep.CurveOther
			break
		}
		dir := l.Direction()
		g.LineDirection = &dir

	case brep.CurveCircle:
		ci, ok := c.(brep.Circle)
		if !ok {
			g.Kind = brep.CurveOther
			break
		}
		g.Degree = 2
		center, axis, radius := ci.Center(), ci.Axis(), ci.Radius()
		g.Center, g.Axis, g.Radius = &center, &axis, &radius

	case brep.CurveEllipse:
		el, ok := c.(brep.Ellipse)
		if !ok {
			g.Kind = brep.CurveOther
			break
		}
		g.Degree = 2
		center, axis := el.Center(), el.Axis()
		major, minor := el.MajorRadius(), el.MinorRadius()
		g.Center, g.Axis = &center, &axis
		g.Radius, g.MinorRadius = &major, &minor

	case brep.CurveBSpline:
		n, ok := c.(brep.Nurbs)
		if !ok {
			g.Kind = brep.CurveOther
			break
		}
		g.Degree = n.Degree()
		g.Knots = append([]float64(nil), n.Knots()...)
		g.Multiplicities = append([]int(nil), n.Multiplicities()...)
		g.ControlPoints = curvePoles(n.Poles(), n.Weights())

	case brep.CurveBezier:
		b, ok := c.(brep.Bezier)
		if !ok {
			g.Kind = brep.CurveOther
			break
		}
		g.Degree = b.Degree()
		g.ControlPoints = curvePoles(b.Poles(), b.Weights())

	case brep.CurveHyperbola, brep.CurveParabola, brep.CurveOffset, brep.CurveOther:
		// generic fields only

	default:
		g.Kind = brep.CurveOther
	}

	return g
}

// DescribeFace extracts the surface descriptor of a face, with the same
// degradation rules as DescribeEdge.
func DescribeFace(f brep.Face) FaceGeometry {
	s := f.Surface()
	umin, umax, vmin, vmax := s.Domain()

	g := FaceGeometry{
		Kind:        s.Kind(),
		Orientation: f.Orientation(),
		UDegree:     1,
		VDegree:     1,
		UClosed:     s.UClosed(),
		VClosed:     s.VClosed(),
		UMin:        umin,
		UMax:        umax,
		VMin:        vmin,
		VMax:        vmax,
	}

	switch g.Kind {
	case brep.SurfacePlane:
		p, ok := s.(brep.Plane)
		if !ok {
			g.Kind = brep.SurfaceOther
			break
		}
		normal, origin := p.Normal(), p.Origin()
		g.PlaneNormal, g.PlaneOrigin = &normal, &origin

	case brep.SurfaceCylinder, brep.SurfaceCone, brep.SurfaceSphere, brep.SurfaceTorus:
		el, ok := s.(brep.Elementary)
		if !ok {
			g.Kind = brep.SurfaceOther
			break
		}
		dir, origin, radius := el.AxisDirection(), el.AxisOrigin(), el.Radius()
		g.AxisDirection, g.AxisOrigin, g.Radius = &dir, &origin, &radius
		g.UDegree = 2
		switch g.Kind {
		case brep.SurfaceCone:
			angle := el.SemiAngle()
			g.HalfAngle = &angle
		case brep.SurfaceSphere, brep.SurfaceTorus:
			g.VDegree = 2
			if g.Kind == brep.SurfaceTorus {
				minor := el.MinorRadius()
				g.Radius2 = &minor
			}
		}

	case brep.SurfaceBSpline:
		n, ok := s.(brep.NurbsSurface)
		if !ok {
			g.Kind = brep.SurfaceOther
			break
		}
		g.UDegree, g.VDegree = n.UDegree(), n.VDegree()
		g.UKnots = append([]float64(nil), n.UKnots()...)
		g.VKnots = append([]float64(nil), n.VKnots()...)
		g.UMultiplicities = append([]int(nil), n.UMultiplicities()...)
		g.VMultiplicities = append([]int(nil), n.VMultiplicities()...)
		g.ControlPoints = surfacePoles(n.Poles(), n.Weights())

	case brep.SurfaceBezier:
		b, ok := s.(brep.BezierSurface)
		if !ok {
			g.Kind = brep.SurfaceOther
			break
		}
		g.UDegree, g.VDegree = b.UDegree(), b.VDegree()
		g.ControlPoints = surfacePoles(b.Poles(), b.Weights())

	case brep.SurfaceRevolution, brep.SurfaceExtrusion, brep.SurfaceOffset, brep.SurfaceOther:
		// generic fields only

	default:
		g.Kind = brep.SurfaceOther
	}

	return g
}

// curvePoles builds the control-point sequence of a curve. Weights default
// to 1.0 when the geometry is declared non-rational (nil weights).
func curvePoles(poles []brep.Vec3, weights []float64) []ControlPoint {
	out := make([]ControlPoint, len(poles))
	for i, p := range poles {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		out[i] = ControlPoint{X: p.X, Y: p.Y, Z: p.Z, Weight: w, Index: []int{i}}
	}
	return out
}

// surfacePoles flattens a control grid row-major over (u, v), retaining the
// zero-based (u, v) grid position of every point.
func surfacePoles(grid [][]brep.Vec3, weights [][]float64) []ControlPoint {
	var out []ControlPoint
	for u, row := range grid {
		for v, p := range row {
			w := 1.0
			if weights != nil {
				w = weights[u][v]
			}
			out = append(out, ControlPoint{X: p.X, Y: p.Y, Z: p.Z, Weight: w, Index: []int{u, v}})
		}
	}
	return out
}
