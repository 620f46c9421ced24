// Package meshviz renders a mesh.Neighborhood and its authorized
// critical-point set to Graphviz DOT, for debugging and demoing the
// simplification engine. It never reads or writes scalars/offsets —
// only adjacency and the vertex ids Execute classified as minima or
// maxima.
package meshviz

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/vertexfield/tsimplify/mesh"
)

// Options configures DOT rendering.
type Options struct {
	// Detailed labels each node with its vertex id; when false, nodes are
	// rendered unlabeled dots.
	Detailed bool
}

// ToDOT renders an undirected graph over vertices [0, n) using nbh's
// adjacency, coloring minima and maxima distinctly from regular
// vertices. Each undirected edge is emitted once, from the
// lower-numbered endpoint. This assumes a symmetric neighborhood such as
// mesh.AdjacencyMesh; mesh.Neighborhood itself does not require symmetry,
// and an adjacency listed only at its higher-numbered endpoint is not
// drawn.
func ToDOT(nbh mesh.Neighborhood, n int, minima, maxima []mesh.VId, opts Options) string {
	isMin := make(map[mesh.VId]bool, len(minima))
	for _, v := range minima {
		isMin[v] = true
	}
	isMax := make(map[mesh.VId]bool, len(maxima))
	for _, v := range maxima {
		isMax[v] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for v := mesh.VId(0); v < mesh.VId(n); v++ {
		attrs := []string{}
		switch {
		case isMin[v]:
			attrs = append(attrs, `fillcolor="lightblue"`)
		case isMax[v]:
			attrs = append(attrs, `fillcolor="salmon"`)
		}
		if opts.Detailed {
			attrs = append(attrs, fmt.Sprintf("label=%q", fmt.Sprintf("%d", v)))
		} else {
			attrs = append(attrs, `label=""`)
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", v, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for v := mesh.VId(0); v < mesh.VId(n); v++ {
		count := nbh.NeighborCount(v)
		for k := 0; k < count; k++ {
			nb := nbh.NeighborAt(v, k)
			if nb > v {
				fmt.Fprintf(&buf, "  %d -- %d;\n", v, nb)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph produced by ToDOT to SVG bytes using
// Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("meshviz: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("meshviz: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("meshviz: render: %w", err)
	}
	return buf.Bytes(), nil
}
