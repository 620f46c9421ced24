package perturb_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vertexfield/tsimplify/perturb"
)

func TestRun_FlatFieldBecomesStrictlyIncreasing(t *testing.T) {
	scalars := []float64{0, 0, 0, 0}
	offsets := []int32{0, 1, 2, 3}

	require.NoError(t, perturb.Run(scalars, offsets, perturb.Float64))

	for i := 1; i < len(scalars); i++ {
		require.Greater(t, scalars[i], scalars[i-1])
	}
}

func TestRun_OffsetsUnchanged(t *testing.T) {
	scalars := []float64{5, 5, 5}
	offsets := []int32{7, 3, 1}
	original := append([]int32{}, offsets...)

	require.NoError(t, perturb.Run(scalars, offsets, perturb.Float64))
	require.Equal(t, original, offsets)
}

func TestRun_AlreadyMonotoneIsUnchanged(t *testing.T) {
	scalars := []float64{1, 2, 3, 4}
	offsets := []int32{0, 1, 2, 3}

	require.NoError(t, perturb.Run(scalars, offsets, perturb.Float64))
	require.Equal(t, []float64{1, 2, 3, 4}, scalars)
}

func TestEpsilon_UnsupportedKind(t *testing.T) {
	_, err := perturb.Epsilon(perturb.Kind(99))
	require.ErrorIs(t, err, perturb.ErrUnsupportedScalarType)
}

func TestEpsilon_Float32IsLargerThanFloat64(t *testing.T) {
	e64, _ := perturb.Epsilon(perturb.Float64)
	e32, _ := perturb.Epsilon(perturb.Float32)
	require.Greater(t, e32, e64)
}
