package simplify_test

import (
	"fmt"

	"github.com/vertexfield/tsimplify/mesh"
	"github.com/vertexfield/tsimplify/simplify"
)

// Example simplifies a five-vertex chain down to its two mandatory
// extrema, preserving the global minimum and maximum and flattening
// everything else.
func Example() {
	m := mesh.NewAdjacencyMesh(5)
	for i := 0; i < 4; i++ {
		m.AddEdge(mesh.VId(i), mesh.VId(i+1))
	}

	scalars := []float64{3, 1, 4, 1, 5}
	offsets := []int32{0, 1, 2, 3, 4}
	out := make([]float64, 5)
	outOffsets := make([]int32, 5)

	cfg := simplify.Config{
		N:             5,
		InputScalars:  simplify.NewFloat64Field(scalars),
		InputOffsets:  offsets,
		Identifiers:   []mesh.VId{1, 4},
		Neighborhood:  m,
		Mode:          simplify.Whitelist,
		OutputScalars: simplify.NewFloat64Field(out),
		OutputOffsets: outOffsets,
	}

	result, err := simplify.Execute(cfg)
	if err != nil {
		fmt.Println("simplification failed:", err)
		return
	}

	fmt.Println("minima:", result.Minima)
	fmt.Println("maxima:", result.Maxima)
	// Output:
	// minima: [1]
	// maxima: [4]
}
