package features

import (
	"github.com/brepml/brepgraph/pkg/brep"
	"github.com/brepml/brepgraph/pkg/geometry"
)

// =============================================================================
// Row layouts
// =============================================================================

// Feature row widths per node kind.
const (
	VertexFeatureDim       = 3
	ControlPointFeatureDim = 4
	EdgeFeatureDim         = int(brep.NumCurveKinds) + 15
	FaceFeatureDim         = int(brep.NumSurfaceKinds) + 23
)

// Edge row column offsets, relative to the end of the curve-kind one-hot
// block. The one-hot block occupies columns [0, NumCurveKinds).
const (
	edgeColOrientation = int(brep.NumCurveKinds) + iota
	edgeColDegree
	edgeColClosed
	edgeColTMin
	edgeColTMax
	edgeColDirection // 3 columns
	_
	_
	edgeColCenter // 3 columns
	_
	_
	edgeColAxis // 3 columns
	_
	_
	edgeColRadius
)

// Face row column offsets, relative to the end of the surface-kind one-hot
// block. The one-hot block occupies columns [0, NumSurfaceKinds).
const (
	faceColOrientation = int(brep.NumSurfaceKinds) + iota
	faceColUDegree
	faceColVDegree
	faceColUClosed
	faceColVClosed
	faceColUMin
	faceColUMax
	faceColVMin
	faceColVMax
	faceColNormal // 3 columns
	_
	_
	faceColOrigin // 3 columns
	_
	_
	faceColAxisDirection // 3 columns
	_
	_
	faceColAxisOrigin // 3 columns
	_
	_
	faceColRadius
	faceColRadius2
)

// =============================================================================
// Encoders
// =============================================================================

// VertexRow encodes a vertex position as its feature row.
func VertexRow(v geometry.VertexGeometry) []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// ControlPointRow encodes a control point as position plus weight.
func ControlPointRow(p geometry.ControlPoint) []float64 {
	return []float64{p.X, p.Y, p.Z, p.Weight}
}

// EdgeRow encodes an edge descriptor. Fields absent for the edge's curve
// kind stay zero.
func EdgeRow(e geometry.EdgeGeometry) []float64 {
	row := make([]float64, EdgeFeatureDim)
	row[int(e.Kind)] = 1
	row[edgeColOrientation] = float64(e.Orientation)
	row[edgeColDegree] = float64(e.Degree)
	row[edgeColClosed] = boolFeature(e.Closed)
	row[edgeColTMin] = e.TMin
	row[edgeColTMax] = e.TMax
	putVec(row, edgeColDirection, e.LineDirection)
	putVec(row, edgeColCenter, e.Center)
	putVec(row, edgeColAxis, e.Axis)
	putScalar(row, edgeColRadius, e.Radius)
	return row
}

// FaceRow encodes a face descriptor. Fields absent for the face's surface
// kind stay zero.
func FaceRow(f geometry.FaceGeometry) []float64 {
	row := make([]float64, FaceFeatureDim)
	row[int(f.Kind)] = 1
	row[faceColOrientation] = float64(f.Orientation)
	row[faceColUDegree] = float64(f.UDegree)
	row[faceColVDegree] = float64(f.VDegree)
	row[faceColUClosed] = boolFeature(f.UClosed)
	row[faceColVClosed] = boolFeature(f.VClosed)
	row[faceColUMin] = f.UMin
	row[faceColUMax] = f.UMax
	row[faceColVMin] = f.VMin
	row[faceColVMax] = f.VMax
	putVec(row, faceColNormal, f.PlaneNormal)
	putVec(row, faceColOrigin, f.PlaneOrigin)
	putVec(row, faceColAxisDirection, f.AxisDirection)
	putVec(row, faceColAxisOrigin, f.AxisOrigin)
	putScalar(row, faceColRadius, f.Radius)
	putScalar(row, faceColRadius2, f.Radius2)
	return row
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func putVec(row []float64, at int, v *brep.Vec3) {
	if v == nil {
		return
	}
	row[at] = v.X
	row[at+1] = v.Y
	row[at+2] = v.Z
}

func putScalar(row []float64, at int, v *float64) {
	if v == nil {
		return
	}
	row[at] = *v
}
