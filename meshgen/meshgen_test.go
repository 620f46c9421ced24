package meshgen

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vertexfield/tsimplify/mesh"
)

func TestGrid_BuildsRowMajorAdjacency(t *testing.T) {
	m, err := Grid(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, m.N())

	// vertex (0,0) = 0 connects right to (0,1) = 1 and down to (1,0) = 3.
	assert.Equal(t, 2, m.NeighborCount(0))
	// vertex (1,1) = 4 connects to (1,0)=3, (1,2)=5, (0,1)=1.
	assert.Equal(t, 3, m.NeighborCount(4))
}

func TestGrid_RejectsTooSmallDimensions(t *testing.T) {
	_, err := Grid(0, 3)
	assert.True(t, errors.Is(err, ErrTooFewVertices))
}

func TestGridCoordinates_InvertsGridIndexing(t *testing.T) {
	r, c := GridCoordinates(mesh.VId(4), 3)
	assert.Equal(t, 1, r)
	assert.Equal(t, 1, c)
}

func TestPath_BuildsChain(t *testing.T) {
	m, err := Path(5)
	require.NoError(t, err)
	assert.Equal(t, 1, m.NeighborCount(0))
	assert.Equal(t, 2, m.NeighborCount(2))
}

func TestPath_RejectsTooFewNodes(t *testing.T) {
	_, err := Path(1)
	assert.True(t, errors.Is(err, ErrTooFewVertices))
}

func TestNoisyScalars_NilRNGIsDeterministicMidpoint(t *testing.T) {
	scalars, offsets := NoisyScalars(4, 0, 10, nil)
	for i, v := range scalars {
		assert.Equal(t, 5.0, v)
		assert.Equal(t, int32(i), offsets[i])
	}
}

func TestNoisyScalars_StaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	scalars, _ := NoisyScalars(100, 2, 3, rng)
	for _, v := range scalars {
		assert.GreaterOrEqual(t, v, 2.0)
		assert.LessOrEqual(t, v, 3.0)
	}
}

func TestGridRidge_PeaksAtCenterWithoutNoise(t *testing.T) {
	scalars := GridRidge(3, 3, 0, nil)
	center := scalars[1*3+1]
	for i, v := range scalars {
		if i != 4 {
			assert.Less(t, v, center)
		}
	}
}
