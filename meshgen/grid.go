package meshgen

import (
	"fmt"

	"github.com/vertexfield/tsimplify/mesh"
)

const minGridDim = 1

// Grid builds a rows x cols orthogonal mesh with 4-neighborhood
// (right and bottom neighbors per cell), the dense terrain shape a
// scalar field is most commonly sampled on. Vertex ids are assigned in
// row-major order: vertex r*cols+c sits at row r, column c.
//
// Grid mirrors the teacher's builder.Grid contract (rows, cols >= 1,
// deterministic row-major vertex/edge emission) with the coordinate-ID
// scheme replaced by mesh's dense integer VId, since AdjacencyMesh has
// no string-keyed vertices to label.
func Grid(rows, cols int) (*mesh.AdjacencyMesh, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d (each must be >= %d): %w", rows, cols, minGridDim, ErrTooFewVertices)
	}

	m := mesh.NewAdjacencyMesh(rows * cols)
	id := func(r, c int) mesh.VId { return mesh.VId(r*cols + c) }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				m.AddEdge(id(r, c), id(r, c+1))
			}
			if r+1 < rows {
				m.AddEdge(id(r, c), id(r+1, c))
			}
		}
	}
	return m, nil
}

const minPathNodes = 2

// Path builds the simple path 0-1-2-...-(n-1), the one-dimensional mesh
// used by this module's own chain fixtures.
//
// Grounded on the teacher's builder.Path: same minimum-size contract and
// deterministic ascending edge emission.
func Path(n int) (*mesh.AdjacencyMesh, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}
	m := mesh.NewAdjacencyMesh(n)
	for i := 1; i < n; i++ {
		m.AddEdge(mesh.VId(i-1), mesh.VId(i))
	}
	return m, nil
}

// GridCoordinates returns the (row, col) a Grid(rows, cols) vertex id
// corresponds to, the inverse of Grid's id(r, c) = r*cols+c scheme.
func GridCoordinates(v mesh.VId, cols int) (row, col int) {
	return int(v) / cols, int(v) % cols
}
