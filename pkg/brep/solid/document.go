package solid

import (
	"encoding/json"
	"os"

	"github.com/brepml/brepgraph/pkg/brep"
	"github.com/brepml/brepgraph/pkg/errors"
)

// Document is the JSON shape-document format accepted by the CLI and API.
// Each entry describes one primitive; the document as a whole loads as a
// compound of all entries.
type Document struct {
	Solids []Primitive `json:"solids"`
}

// Primitive describes a single primitive solid. Kind selects the parameters
// that apply; unused fields are ignored.
type Primitive struct {
	Kind string `json:"kind"`

	// box
	DX float64 `json:"dx,omitempty"`
	DY float64 `json:"dy,omitempty"`
	DZ float64 `json:"dz,omitempty"`

	// sphere, cylinder, cone
	Radius float64 `json:"radius,omitempty"`
	Height float64 `json:"height,omitempty"`

	// torus
	MajorRadius float64 `json:"major_radius,omitempty"`
	MinorRadius float64 `json:"minor_radius,omitempty"`

	// spline
	Points []brep.Vec3 `json:"points,omitempty"`

	// bezier_patch, bspline_patch
	Grid [][]brep.Vec3 `json:"grid,omitempty"`
}

// Primitive kind names accepted in shape documents.
const (
	KindBox          = "box"
	KindSphere       = "sphere"
	KindCylinder     = "cylinder"
	KindCone         = "cone"
	KindTorus        = "torus"
	KindSpline       = "spline"
	KindBezierPatch  = "bezier_patch"
	KindBSplinePatch = "bspline_patch"
)

// Build constructs the solid described by p.
func (p Primitive) Build() (*Solid, error) {
	switch p.Kind {
	case KindBox:
		if p.DX <= 0 || p.DY <= 0 || p.DZ <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "box requires positive dx, dy, dz")
		}
		return Box(p.DX, p.DY, p.DZ), nil
	case KindSphere:
		if p.Radius <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "sphere requires positive radius")
		}
		return Sphere(p.Radius), nil
	case KindCylinder:
		if p.Radius <= 0 || p.Height <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "cylinder requires positive radius and height")
		}
		return Cylinder(p.Radius, p.Height), nil
	case KindCone:
		if p.Radius <= 0 || p.Height <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "cone requires positive radius and height")
		}
		return Cone(p.Radius, p.Height), nil
	case KindTorus:
		if p.MajorRadius <= 0 || p.MinorRadius <= 0 || p.MinorRadius >= p.MajorRadius {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "torus requires 0 < minor_radius < major_radius")
		}
		return Torus(p.MajorRadius, p.MinorRadius), nil
	case KindSpline:
		if len(p.Points) < 2 {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "spline requires at least 2 points, got %d", len(p.Points))
		}
		return SplineWire(p.Points...), nil
	case KindBezierPatch, KindBSplinePatch:
		if err := validateGrid(p.Grid); err != nil {
			return nil, err
		}
		if p.Kind == KindBezierPatch {
			return BezierPatch(p.Grid), nil
		}
		return BSplinePatch(p.Grid), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidDocument, "unknown primitive kind %q", p.Kind)
	}
}

func validateGrid(grid [][]brep.Vec3) error {
	if len(grid) < 2 {
		return errors.New(errors.ErrCodeInvalidDocument, "patch grid requires at least 2 rows, got %d", len(grid))
	}
	width := len(grid[0])
	if width < 2 {
		return errors.New(errors.ErrCodeInvalidDocument, "patch grid requires at least 2 columns, got %d", width)
	}
	for i, row := range grid {
		if len(row) != width {
			return errors.New(errors.ErrCodeInvalidDocument, "patch grid row %d has %d columns, want %d", i, len(row), width)
		}
	}
	return nil
}

// ParseDocument decodes a JSON shape document and builds the compound shape
// it describes. An empty solids list yields an empty shape, not an error.
func ParseDocument(data []byte) (*Solid, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode shape document")
	}
	parts := make([]*Solid, 0, len(doc.Solids))
	for i, prim := range doc.Solids {
		s, err := prim.Build()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "solid %d", i)
		}
		parts = append(parts, s)
	}
	return Compound(parts...), nil
}

// LoadDocument reads and parses a JSON shape document from disk.
func LoadDocument(path string) (*Solid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "shape document %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read shape document %s", path)
	}
	return ParseDocument(data)
}
