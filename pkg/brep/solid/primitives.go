package solid

import (
	"math"

	"github.com/brepml/brepgraph/pkg/brep"
)

// Primitive constructors. Every call builds fresh entities with fresh
// identity tokens; topology (shared vertices, shared edges, seam repeats)
// matches what a traditional kernel reports for the same primitive.

// Box builds an axis-aligned box of extents dx, dy, dz centered at the
// origin: 8 vertices, 12 line edges, 6 plane faces, each edge shared by
// exactly two faces.
func Box(dx, dy, dz float64) *Solid {
	half := [3]float64{dx / 2, dy / 2, dz / 2}

	// Corners indexed by bit pattern: bit 0 → +x, bit 1 → +y, bit 2 → +z.
	var corners [8]*Vertex
	for i := 0; i < 8; i++ {
		p := brep.Vec3{X: -half[0], Y: -half[1], Z: -half[2]}
		if i&1 != 0 {
			p.X = half[0]
		}
		if i&2 != 0 {
			p.Y = half[1]
		}
		if i&4 != 0 {
			p.Z = half[2]
		}
		corners[i] = NewVertex(p)
	}

	axisDir := [3]brep.Vec3{{X: 1}, {Y: 1}, {Z: 1}}
	lengths := [3]float64{dx, dy, dz}

	// One edge per corner pair differing in a single bit.
	edges := make(map[[2]int]*Edge)
	for axis := 0; axis < 3; axis++ {
		bit := 1 << axis
		for i := 0; i < 8; i++ {
			if i&bit != 0 {
				continue
			}
			curve := &LineCurve{Dir: axisDir[axis], First: 0, Last: lengths[axis]}
			edges[[2]int{i, i | bit}] = NewEdge(curve, brep.Forward, corners[i], corners[i|bit])
		}
	}

	// faceEdges collects the four edges whose endpoints both have the given
	// axis bit fixed at side.
	faceEdges := func(axis, side int) []*Edge {
		bit := 1 << axis
		var out []*Edge
		for other := 0; other < 3; other++ {
			if other == axis {
				continue
			}
			obit := 1 << other
			third := 7 &^ bit &^ obit
			for _, t := range []int{0, third} {
				lo := side*bit | t
				out = append(out, edges[[2]int{lo, lo | obit}])
			}
		}
		return out
	}

	s := New()
	for axis := 0; axis < 3; axis++ {
		for side := 0; side < 2; side++ {
			normal := axisDir[axis]
			origin := brep.Vec3{}
			sign := -1.0
			if side == 1 {
				sign = 1.0
			}
			normal = brep.Vec3{X: normal.X * sign, Y: normal.Y * sign, Z: normal.Z * sign}
			switch axis {
			case 0:
				origin.X = sign * half[0]
			case 1:
				origin.Y = sign * half[1]
			case 2:
				origin.Z = sign * half[2]
			}
			u, v := (axis+1)%3, (axis+2)%3
			surf := &PlaneSurface{
				Norm: normal,
				Loc:  origin,
				U0:   -half[u], U1: half[u],
				V0: -half[v], V1: half[v],
			}
			s.AddFace(NewFace(surf, brep.Forward, faceEdges(axis, side)...))
		}
	}
	return s
}

// Sphere builds a full sphere of radius r centered at the origin: one
// spherical face whose boundary traverses the seam meridian twice, one seam
// edge bounded by the two pole vertices.
func Sphere(r float64) *Solid {
	south := NewVertex(brep.Vec3{Z: -r})
	north := NewVertex(brep.Vec3{Z: r})

	seam := NewEdge(&CircleCurve{
		Loc:   brep.Vec3{},
		Norm:  brep.Vec3{Y: 1},
		R:     r,
		First: -math.Pi / 2, Last: math.Pi / 2,
	}, brep.Forward, south, north)

	face := NewFace(&AxisSurface{
		K:   brep.SurfaceSphere,
		Dir: brep.Vec3{Z: 1},
		Loc: brep.Vec3{},
		R:   r,
		U0:  0, U1: 2 * math.Pi,
		V0: -math.Pi / 2, V1: math.Pi / 2,
		ClosedU: true,
	}, brep.Forward, seam, seam)

	s := New()
	s.AddFace(face)
	return s
}

// Cylinder builds a solid cylinder of radius r and height h centered at the
// origin with its axis along z: a closed lateral face with a seam, and two
// planar caps. The cap circles are closed edges and repeat their single
// bounding vertex.
func Cylinder(r, h float64) *Solid {
	bottomV := NewVertex(brep.Vec3{X: r, Z: -h / 2})
	topV := NewVertex(brep.Vec3{X: r, Z: h / 2})

	bottom := NewEdge(&CircleCurve{
		Loc: brep.Vec3{Z: -h / 2}, Norm: brep.Vec3{Z: 1}, R: r,
		First: 0, Last: 2 * math.Pi, Full: true,
	}, brep.Forward, bottomV, bottomV)
	top := NewEdge(&CircleCurve{
		Loc: brep.Vec3{Z: h / 2}, Norm: brep.Vec3{Z: 1}, R: r,
		First: 0, Last: 2 * math.Pi, Full: true,
	}, brep.Forward, topV, topV)
	seam := NewEdge(&LineCurve{Dir: brep.Vec3{Z: 1}, First: 0, Last: h},
		brep.Forward, bottomV, topV)

	side := NewFace(&AxisSurface{
		K:   brep.SurfaceCylinder,
		Dir: brep.Vec3{Z: 1},
		Loc: brep.Vec3{Z: -h / 2},
		R:   r,
		U0:  0, U1: 2 * math.Pi, V0: 0, V1: h,
		ClosedU: true,
	}, brep.Forward, bottom, seam, top, seam)

	bottomFace := NewFace(&PlaneSurface{
		Norm: brep.Vec3{Z: -1}, Loc: brep.Vec3{Z: -h / 2},
		U0: -r, U1: r, V0: -r, V1: r,
	}, brep.Forward, bottom)
	topFace := NewFace(&PlaneSurface{
		Norm: brep.Vec3{Z: 1}, Loc: brep.Vec3{Z: h / 2},
		U0: -r, U1: r, V0: -r, V1: r,
	}, brep.Forward, top)

	s := New()
	s.AddFace(side)
	s.AddFace(bottomFace)
	s.AddFace(topFace)
	return s
}

// Cone builds a solid right cone with base radius r and height h, base at
// z=-h/2 and apex at z=+h/2. The lateral face records the half-angle
// atan(r/h).
func Cone(r, h float64) *Solid {
	baseV := NewVertex(brep.Vec3{X: r, Z: -h / 2})
	apex := NewVertex(brep.Vec3{Z: h / 2})

	base := NewEdge(&CircleCurve{
		Loc: brep.Vec3{Z: -h / 2}, Norm: brep.Vec3{Z: 1}, R: r,
		First: 0, Last: 2 * math.Pi, Full: true,
	}, brep.Forward, baseV, baseV)
	slant := math.Hypot(r, h)
	seam := NewEdge(&LineCurve{
		Dir:   brep.Vec3{X: -r / slant, Z: h / slant},
		First: 0, Last: slant,
	}, brep.Forward, baseV, apex)

	side := NewFace(&AxisSurface{
		K:     brep.SurfaceCone,
		Dir:   brep.Vec3{Z: 1},
		Loc:   brep.Vec3{Z: -h / 2},
		R:     r,
		Angle: math.Atan2(r, h),
		U0:    0, U1: 2 * math.Pi, V0: 0, V1: slant,
		ClosedU: true,
	}, brep.Forward, base, seam, seam)

	baseFace := NewFace(&PlaneSurface{
		Norm: brep.Vec3{Z: -1}, Loc: brep.Vec3{Z: -h / 2},
		U0: -r, U1: r, V0: -r, V1: r,
	}, brep.Forward, base)

	s := New()
	s.AddFace(side)
	s.AddFace(baseFace)
	return s
}

// Torus builds a torus with the given major and minor radii, centered at the
// origin with its axis along z: a single doubly-closed face whose boundary
// traverses both seam circles twice, and one vertex shared by both seams.
func Torus(major, minor float64) *Solid {
	v := NewVertex(brep.Vec3{X: major + minor})

	// Seam at u=0: the minor profile circle in the xz-plane.
	profile := NewEdge(&CircleCurve{
		Loc: brep.Vec3{X: major}, Norm: brep.Vec3{Y: 1}, R: minor,
		First: 0, Last: 2 * math.Pi, Full: true,
	}, brep.Forward, v, v)
	// Seam at v=0: the outer equator circle.
	equator := NewEdge(&CircleCurve{
		Loc: brep.Vec3{}, Norm: brep.Vec3{Z: 1}, R: major + minor,
		First: 0, Last: 2 * math.Pi, Full: true,
	}, brep.Forward, v, v)

	face := NewFace(&AxisSurface{
		K:   brep.SurfaceTorus,
		Dir: brep.Vec3{Z: 1},
		Loc: brep.Vec3{},
		R:   major,
		R2:  minor,
		U0:  0, U1: 2 * math.Pi, V0: 0, V1: 2 * math.Pi,
		ClosedU: true, ClosedV: true,
	}, brep.Forward, profile, equator, profile, equator)

	s := New()
	s.AddFace(face)
	return s
}

// clampedKnots returns the distinct knot vector and multiplicities of a
// uniform clamped B-spline with n poles of degree p: end knots of
// multiplicity p+1, interior knots simple, values spread over [0, 1].
func clampedKnots(n, p int) ([]float64, []int) {
	k := n - p + 1 // distinct knot count, n > p required
	knots := make([]float64, k)
	mults := make([]int, k)
	for i := range knots {
		knots[i] = float64(i) / float64(k-1)
		mults[i] = 1
	}
	mults[0] = p + 1
	mults[k-1] = p + 1
	return knots, mults
}

// splineDegree picks the usual cubic degree, lowered when too few poles.
func splineDegree(n int) int {
	if n-1 < 3 {
		return n - 1
	}
	return 3
}

// SplineWire builds a shape holding a single free B-spline edge through the
// given control points (at least two), with a uniform clamped knot vector.
func SplineWire(pts ...brep.Vec3) *Solid {
	n := len(pts)
	deg := splineDegree(n)
	knots, mults := clampedKnots(n, deg)

	start := NewVertex(pts[0])
	end := NewVertex(pts[n-1])
	edge := NewEdge(&NurbsCurve{
		Deg:  deg,
		Knot: knots, Mult: mults,
		CPs:   append([]brep.Vec3(nil), pts...),
		First: 0, Last: 1,
	}, brep.Forward, start, end)

	s := New()
	s.AddEdge(edge)
	return s
}

// BezierPatch builds a one-face shape over a Bezier surface with the given
// control grid (indexed [u][v], at least 2x2). The four boundary edges are
// the Bezier border curves and share the corner vertices.
func BezierPatch(grid [][]brep.Vec3) *Solid {
	nu, nv := len(grid), len(grid[0])

	c00 := NewVertex(grid[0][0])
	c01 := NewVertex(grid[0][nv-1])
	c10 := NewVertex(grid[nu-1][0])
	c11 := NewVertex(grid[nu-1][nv-1])

	row := func(u int) []brep.Vec3 { return append([]brep.Vec3(nil), grid[u]...) }
	col := func(v int) []brep.Vec3 {
		out := make([]brep.Vec3, nu)
		for u := 0; u < nu; u++ {
			out[u] = grid[u][v]
		}
		return out
	}

	e0 := NewEdge(&BezierCurve{CPs: row(0), First: 0, Last: 1}, brep.Forward, c00, c01)
	e1 := NewEdge(&BezierCurve{CPs: col(nv - 1), First: 0, Last: 1}, brep.Forward, c01, c11)
	e2 := NewEdge(&BezierCurve{CPs: row(nu - 1), First: 0, Last: 1}, brep.Forward, c10, c11)
	e3 := NewEdge(&BezierCurve{CPs: col(0), First: 0, Last: 1}, brep.Forward, c00, c10)

	face := NewFace(&BezierPatchSurface{
		CPs: copyGrid(grid),
		U0:  0, U1: 1, V0: 0, V1: 1,
	}, brep.Forward, e0, e1, e2, e3)

	s := New()
	s.AddFace(face)
	return s
}

// BSplinePatch builds a one-face shape over a B-spline surface with the
// given control grid (indexed [u][v], at least 2x2), uniform clamped knots
// in both directions, and B-spline border edges sharing the corner vertices.
func BSplinePatch(grid [][]brep.Vec3) *Solid {
	nu, nv := len(grid), len(grid[0])
	degU, degV := splineDegree(nu), splineDegree(nv)
	knotsU, multsU := clampedKnots(nu, degU)
	knotsV, multsV := clampedKnots(nv, degV)

	c00 := NewVertex(grid[0][0])
	c01 := NewVertex(grid[0][nv-1])
	c10 := NewVertex(grid[nu-1][0])
	c11 := NewVertex(grid[nu-1][nv-1])

	col := func(v int) []brep.Vec3 {
		out := make([]brep.Vec3, nu)
		for u := 0; u < nu; u++ {
			out[u] = grid[u][v]
		}
		return out
	}
	border := func(cps []brep.Vec3, a, b *Vertex) *Edge {
		deg := splineDegree(len(cps))
		knots, mults := clampedKnots(len(cps), deg)
		return NewEdge(&NurbsCurve{
			Deg: deg, Knot: knots, Mult: mults,
			CPs: cps, First: 0, Last: 1,
		}, brep.Forward, a, b)
	}

	e0 := border(append([]brep.Vec3(nil), grid[0]...), c00, c01)
	e1 := border(col(nv-1), c01, c11)
	e2 := border(append([]brep.Vec3(nil), grid[nu-1]...), c10, c11)
	e3 := border(col(0), c00, c10)

	face := NewFace(&NurbsPatch{
		DegU: degU, DegV: degV,
		KnotU: knotsU, KnotV: knotsV,
		MultU: multsU, MultV: multsV,
		CPs: copyGrid(grid),
		U0:  0, U1: 1, V0: 0, V1: 1,
	}, brep.Forward, e0, e1, e2, e3)

	s := New()
	s.AddFace(face)
	return s
}

func copyGrid(grid [][]brep.Vec3) [][]brep.Vec3 {
	out := make([][]brep.Vec3, len(grid))
	for i, row := range grid {
		out[i] = append([]brep.Vec3(nil), row...)
	}
	return out
}
