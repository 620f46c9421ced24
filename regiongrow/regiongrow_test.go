package regiongrow_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vertexfield/tsimplify/mesh"
	"github.com/vertexfield/tsimplify/regiongrow"
)

func chain(n int) *mesh.AdjacencyMesh {
	m := mesh.NewAdjacencyMesh(n)
	for i := 0; i < n-1; i++ {
		m.AddEdge(mesh.VId(i), mesh.VId(i+1))
	}
	return m
}

func TestRun_AscendingMakesSequenceNonDecreasing(t *testing.T) {
	m := chain(5)
	scalars := []float64{3, 1, 4, 1, 5}
	offsets := []int32{0, 1, 2, 3, 4}

	seq, err := regiongrow.Run(regiongrow.Ascending, []mesh.VId{1}, m, 5, scalars, offsets)
	require.NoError(t, err)
	require.Len(t, seq, 5)

	for i := 1; i < len(seq); i++ {
		require.LessOrEqual(t, scalars[seq[i-1]], scalars[seq[i]])
	}
	// offsets are a permutation of [1, 5]
	seen := make(map[int32]bool)
	for _, o := range offsets {
		require.False(t, seen[o])
		seen[o] = true
		require.GreaterOrEqual(t, o, int32(1))
		require.LessOrEqual(t, o, int32(5))
	}
}

func TestRun_DescendingMakesSequenceNonIncreasing(t *testing.T) {
	m := chain(5)
	scalars := []float64{3, 1, 4, 1, 5}
	offsets := []int32{0, 1, 2, 3, 4}

	seq, err := regiongrow.Run(regiongrow.Descending, []mesh.VId{4}, m, 5, scalars, offsets)
	require.NoError(t, err)
	require.Len(t, seq, 5)

	for i := 1; i < len(seq); i++ {
		require.GreaterOrEqual(t, scalars[seq[i-1]], scalars[seq[i]])
	}
}

func TestRun_SeedPreservesItsExtremeValue(t *testing.T) {
	m := chain(5)
	scalars := []float64{3, 1, 4, 1, 5}
	offsets := []int32{0, 1, 2, 3, 4}
	original := scalars[1]

	_, err := regiongrow.Run(regiongrow.Ascending, []mesh.VId{1}, m, 5, scalars, offsets)
	require.NoError(t, err)
	// the seed is first in the sequence and nothing precedes it to clamp against
	require.Equal(t, original, scalars[1])
}

func TestRun_EmptySeedsIsDisconnected(t *testing.T) {
	m := chain(3)
	scalars := []float64{1, 2, 3}
	offsets := []int32{0, 1, 2}
	_, err := regiongrow.Run(regiongrow.Ascending, nil, m, 3, scalars, offsets)
	require.ErrorIs(t, err, regiongrow.ErrDisconnected)
}

func TestRun_DisconnectedMesh(t *testing.T) {
	// two disjoint chains: 0-1 and 2-3, seed only vertex 0
	m := mesh.NewAdjacencyMesh(4)
	m.AddEdge(0, 1)
	m.AddEdge(2, 3)
	scalars := []float64{1, 2, 3, 4}
	offsets := []int32{0, 1, 2, 3}

	_, err := regiongrow.Run(regiongrow.Ascending, []mesh.VId{0}, m, 4, scalars, offsets)
	require.ErrorIs(t, err, regiongrow.ErrDisconnected)
}
