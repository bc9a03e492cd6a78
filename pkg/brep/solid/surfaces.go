package solid

import "github.com/brepml/brepgraph/pkg/brep"

// Concrete surface adaptors. Each type implements brep.Surface plus the
// narrow parameter interface matching its kind.

// PlaneSurface is a bounded planar patch.
type PlaneSurface struct {
	Norm           brep.Vec3 // unit normal
	Loc            brep.Vec3 // reference point on the plane
	U0, U1, V0, V1 float64
}

// Kind returns brep.SurfacePlane.
func (s *PlaneSurface) Kind() brep.SurfaceKind { return brep.SurfacePlane }

// Domain returns the parametric box.
func (s *PlaneSurface) Domain() (float64, float64, float64, float64) {
	return s.U0, s.U1, s.V0, s.V1
}

// UClosed always reports false for a plane.
func (s *PlaneSurface) UClosed() bool { return false }

// VClosed always reports false for a plane.
func (s *PlaneSurface) VClosed() bool { return false }

// Normal returns the unit plane normal.
func (s *PlaneSurface) Normal() brep.Vec3 { return s.Norm }

// Origin returns the reference point.
func (s *PlaneSurface) Origin() brep.Vec3 { return s.Loc }

// AxisSurface is an axis-placed elementary surface: cylinder, cone, sphere,
// or torus, selected by K. R2 is the torus minor radius and Angle the cone
// half-angle; both are zero for the other kinds.
type AxisSurface struct {
	K                brep.SurfaceKind
	Dir, Loc         brep.Vec3
	R, R2, Angle     float64
	U0, U1, V0, V1   float64
	ClosedU, ClosedV bool
}

// Kind returns the stored elementary kind.
func (s *AxisSurface) Kind() brep.SurfaceKind { return s.K }

// Domain returns the parametric box.
func (s *AxisSurface) Domain() (float64, float64, float64, float64) {
	return s.U0, s.U1, s.V0, s.V1
}

// UClosed reports whether the surface closes along u.
func (s *AxisSurface) UClosed() bool { return s.ClosedU }

// VClosed reports whether the surface closes along v.
func (s *AxisSurface) VClosed() bool { return s.ClosedV }

// AxisDirection returns the unit axis direction.
func (s *AxisSurface) AxisDirection() brep.Vec3 { return s.Dir }

// AxisOrigin returns the axis placement origin.
func (s *AxisSurface) AxisOrigin() brep.Vec3 { return s.Loc }

// Radius returns the defining radius.
func (s *AxisSurface) Radius() float64 { return s.R }

// MinorRadius returns the torus minor radius, zero otherwise.
func (s *AxisSurface) MinorRadius() float64 { return s.R2 }

// SemiAngle returns the cone half-angle in radians, zero otherwise.
func (s *AxisSurface) SemiAngle() float64 { return s.Angle }

// NurbsPatch is a B-spline surface patch.
type NurbsPatch struct {
	DegU, DegV       int
	KnotU, KnotV     []float64
	MultU, MultV     []int
	CPs              [][]brep.Vec3 // [u][v]
	Wts              [][]float64   // nil when rational in neither direction
	U0, U1, V0, V1   float64
	ClosedU, ClosedV bool
}

// Kind returns brep.SurfaceBSpline.
func (s *NurbsPatch) Kind() brep.SurfaceKind { return brep.SurfaceBSpline }

// Domain returns the parametric box.
func (s *NurbsPatch) Domain() (float64, float64, float64, float64) {
	return s.U0, s.U1, s.V0, s.V1
}

// UClosed reports whether the surface closes along u.
func (s *NurbsPatch) UClosed() bool { return s.ClosedU }

// VClosed reports whether the surface closes along v.
func (s *NurbsPatch) VClosed() bool { return s.ClosedV }

// UDegree returns the degree along u.
func (s *NurbsPatch) UDegree() int { return s.DegU }

// VDegree returns the degree along v.
func (s *NurbsPatch) VDegree() int { return s.DegV }

// UKnots returns the distinct knots along u.
func (s *NurbsPatch) UKnots() []float64 { return s.KnotU }

// VKnots returns the distinct knots along v.
func (s *NurbsPatch) VKnots() []float64 { return s.KnotV }

// UMultiplicities returns knot multiplicities along u.
func (s *NurbsPatch) UMultiplicities() []int { return s.MultU }

// VMultiplicities returns knot multiplicities along v.
func (s *NurbsPatch) VMultiplicities() []int { return s.MultV }

// Poles returns the control grid indexed [u][v].
func (s *NurbsPatch) Poles() [][]brep.Vec3 { return s.CPs }

// Weights returns the weight grid, nil when non-rational.
func (s *NurbsPatch) Weights() [][]float64 { return s.Wts }

// BezierPatchSurface is a Bezier surface patch; degrees derive from the grid.
type BezierPatchSurface struct {
	CPs            [][]brep.Vec3 // [u][v]
	Wts            [][]float64   // nil when rational in neither direction
	U0, U1, V0, V1 float64
}

// Kind returns brep.SurfaceBezier.
func (s *BezierPatchSurface) Kind() brep.SurfaceKind { return brep.SurfaceBezier }

// Domain returns the parametric box.
func (s *BezierPatchSurface) Domain() (float64, float64, float64, float64) {
	return s.U0, s.U1, s.V0, s.V1
}

// UClosed always reports false for a Bezier patch.
func (s *BezierPatchSurface) UClosed() bool { return false }

// VClosed always reports false for a Bezier patch.
func (s *BezierPatchSurface) VClosed() bool { return false }

// UDegree returns len(CPs)-1.
func (s *BezierPatchSurface) UDegree() int { return len(s.CPs) - 1 }

// VDegree returns the v-direction degree from the first grid row.
func (s *BezierPatchSurface) VDegree() int {
	if len(s.CPs) == 0 {
		return 0
	}
	return len(s.CPs[0]) - 1
}

// Poles returns the control grid indexed [u][v].
func (s *BezierPatchSurface) Poles() [][]brep.Vec3 { return s.CPs }

// Weights returns the weight grid, nil when non-rational.
func (s *BezierPatchSurface) Weights() [][]float64 { return s.Wts }

// GenericSurface carries only a kind tag and generic properties. It stands
// in for kinds without a parameter interface (revolution, extrusion, offset,
// other).
type GenericSurface struct {
	K                brep.SurfaceKind
	U0, U1, V0, V1   float64
	ClosedU, ClosedV bool
}

// Kind returns the stored kind tag.
func (s *GenericSurface) Kind() brep.SurfaceKind { return s.K }

// Domain returns the parametric box.
func (s *GenericSurface) Domain() (float64, float64, float64, float64) {
	return s.U0, s.U1, s.V0, s.V1
}

// UClosed reports the stored flag.
func (s *GenericSurface) UClosed() bool { return s.ClosedU }

// VClosed reports the stored flag.
func (s *GenericSurface) VClosed() bool { return s.ClosedV }

var (
	_ brep.Plane         = (*PlaneSurface)(nil)
	_ brep.Elementary    = (*AxisSurface)(nil)
	_ brep.NurbsSurface  = (*NurbsPatch)(nil)
	_ brep.BezierSurface = (*BezierPatchSurface)(nil)
	_ brep.Surface       = (*GenericSurface)(nil)
)
