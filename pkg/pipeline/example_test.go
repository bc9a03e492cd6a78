package pipeline_test

import (
	"fmt"

	"github.com/brepml/brepgraph/pkg/brep"
	"github.com/brepml/brepgraph/pkg/brep/solid"
	"github.com/brepml/brepgraph/pkg/pipeline"
)

func solidPoint(x, y, z float64) brep.Vec3 {
	return brep.Vec3{X: x, Y: y, Z: z}
}

// Convert a primitive solid and inspect the resulting graph.
func ExampleConvert() {
	g, err := pipeline.Convert(solid.Box(1, 1, 1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("vertices:", g.NumVertices())
	fmt.Println("edges:", g.NumEdges())
	fmt.Println("faces:", g.NumFaces())
	fmt.Println("adjacency pairs:", g.FaceAdjacentFace.Len())
	// Output:
	// vertices: 8
	// edges: 12
	// faces: 6
	// adjacency pairs: 24
}

// Convert a freeform patch; its control net appears as tagged control-point
// nodes.
func ExampleConvert_controlPoints() {
	g, err := pipeline.Convert(solid.SplineWire(
		solidPoint(0, 0, 0),
		solidPoint(1, 1, 0),
		solidPoint(2, 0, 0),
	))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("control points:", g.NumControlPoints())
	for _, tag := range g.ControlsEdge.Tags.Rows {
		fmt.Println("sequence:", tag[0])
	}
	// Output:
	// control points: 3
	// sequence: 0
	// sequence: 1
	// sequence: 2
}
