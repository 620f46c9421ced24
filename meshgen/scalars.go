package meshgen

import "math/rand"

// NoisyScalars returns a []float64 of length n sampled i.i.d. uniformly
// from [lo, hi] using rng, and a matching []int32 of distinct offsets
// [0, n) in generation order — a ready-made (scalars, offsets) pair for
// order.New and simplify.Config.InputOffsets.
//
// Grounded on the teacher's builder.UniformWeightFn: a rng-parametric
// sampler with a deterministic fallback (nil rng yields the midpoint of
// [lo, hi] for every vertex, matching UniformWeightFn's "nil rng ->
// constant" fallback policy) rather than panicking.
func NoisyScalars(n int, lo, hi float64, rng *rand.Rand) ([]float64, []int32) {
	scalars := make([]float64, n)
	offsets := make([]int32, n)
	for i := 0; i < n; i++ {
		if rng == nil {
			scalars[i] = (lo + hi) / 2
		} else {
			scalars[i] = lo + rng.Float64()*(hi-lo)
		}
		offsets[i] = int32(i)
	}
	return scalars, offsets
}

// GridRidge returns a synthetic "ridge" scalar field over a rows x cols
// Grid mesh: the field rises from the grid's border to a single peak at
// its center, perturbed by rng-driven noise of the given amplitude. It
// is a convenient non-trivial fixture with a known single maximum
// before noise and an arbitrary number of spurious extrema after it —
// exactly the shape TestableProperty "noise creates spurious extrema
// that simplification removes" exercises.
func GridRidge(rows, cols int, noiseAmplitude float64, rng *rand.Rand) []float64 {
	scalars := make([]float64, rows*cols)
	cr, cc := float64(rows-1)/2, float64(cols-1)/2
	maxDist := cr + cc
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			dist := absf(float64(r)-cr) + absf(float64(c)-cc)
			v := maxDist - dist
			if rng != nil && noiseAmplitude > 0 {
				v += (rng.Float64()*2 - 1) * noiseAmplitude
			}
			scalars[r*cols+c] = v
		}
	}
	return scalars
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
