package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vertexfield/tsimplify/mesh"
)

func TestAdjacencyMesh_Chain(t *testing.T) {
	// 0-1-2-3-4 chain
	m := mesh.NewAdjacencyMesh(5)
	for i := mesh.VId(0); i < 4; i++ {
		m.AddEdge(i, i+1)
	}

	require.Equal(t, 5, m.N())
	require.Equal(t, 1, m.NeighborCount(0))
	require.Equal(t, 2, m.NeighborCount(1))
	require.Equal(t, mesh.VId(1), m.NeighborAt(0, 0))
	require.Equal(t, mesh.VId(0), m.NeighborAt(1, 0))
	require.Equal(t, mesh.VId(2), m.NeighborAt(1, 1))
}

func TestAdjacencyMesh_Isolated(t *testing.T) {
	m := mesh.NewAdjacencyMesh(3)
	m.AddEdge(0, 1)
	// vertex 2 stays isolated
	require.Equal(t, 0, m.NeighborCount(2))
}
