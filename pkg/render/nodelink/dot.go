package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/brepml/brepgraph/pkg/brep"
	"github.com/brepml/brepgraph/pkg/hetero"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Labels includes the decoded curve or surface kind in edge and face
	// node labels. When false, only the node's index is shown.
	Labels bool
}

// ToDOT converts a heterogeneous graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(g *hetero.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=12, margin=\"0.1,0.05\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for i := 0; i < g.NumVertices(); i++ {
		fmt.Fprintf(&buf, "  \"v%d\" [shape=point, width=0.15];\n", i)
	}
	for i, row := range g.EdgeFeatures.Rows {
		label := fmt.Sprintf("e%d", i)
		if opts.Labels {
			label += "\\n" + edgeKind(row).String()
		}
		fmt.Fprintf(&buf, "  \"e%d\" [shape=ellipse, label=%q];\n", i, label)
	}
	for i, row := range g.FaceFeatures.Rows {
		label := fmt.Sprintf("f%d", i)
		if opts.Labels {
			label += "\\n" + faceKind(row).String()
		}
		fmt.Fprintf(&buf, "  \"f%d\" [shape=box, style=rounded, label=%q];\n", i, label)
	}
	for i := 0; i < g.NumControlPoints(); i++ {
		fmt.Fprintf(&buf, "  \"c%d\" [shape=diamond, width=0.2, height=0.2, label=\"\"];\n", i)
	}

	buf.WriteString("\n")
	for _, p := range g.VertexBoundsEdge.Pairs {
		fmt.Fprintf(&buf, "  \"v%d\" -> \"e%d\";\n", p[0], p[1])
	}
	for _, p := range g.EdgeBoundsFace.Pairs {
		fmt.Fprintf(&buf, "  \"e%d\" -> \"f%d\";\n", p[0], p[1])
	}
	// Adjacency holds both directions; emit each pair once, undirected.
	for _, p := range g.FaceAdjacentFace.Pairs {
		if p[0] < p[1] {
			fmt.Fprintf(&buf, "  \"f%d\" -> \"f%d\" [dir=none, style=dashed];\n", p[0], p[1])
		}
	}
	for _, p := range g.ControlsEdge.Pairs {
		fmt.Fprintf(&buf, "  \"c%d\" -> \"e%d\" [style=dotted, color=grey];\n", p[0], p[1])
	}
	for _, p := range g.ControlsFace.Pairs {
		fmt.Fprintf(&buf, "  \"c%d\" -> \"f%d\" [style=dotted, color=grey];\n", p[0], p[1])
	}

	buf.WriteString("}\n")
	return buf.String()
}

// edgeKind decodes the curve kind from an edge feature row's one-hot block.
func edgeKind(row []float64) brep.CurveKind {
	for i := 0; i < int(brep.NumCurveKinds); i++ {
		if row[i] != 0 {
			return brep.CurveKind(i)
		}
	}
	return brep.CurveOther
}

// faceKind decodes the surface kind from a face feature row's one-hot block.
func faceKind(row []float64) brep.SurfaceKind {
	for i := 0; i < int(brep.NumSurfaceKinds); i++ {
		if row[i] != 0 {
			return brep.SurfaceKind(i)
		}
	}
	return brep.SurfaceOther
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
