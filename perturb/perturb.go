// Package perturb implements PerturbationPass: an optional epsilon-lift
// applied after a driver iteration so that repeated equality clamps in
// RegionGrowPass — which can leave long flat plateaus — are resolved
// into strictly increasing floating-point values, for downstream
// analyses that require strict monotonicity.
//
// Grounded directly on the original source's addPerturbation: sort
// (scalar, offset, vertex) triples under the ascending symbolic order,
// then walk the sorted sequence lifting any value that did not strictly
// increase over its predecessor by at least epsilon.
package perturb

import (
	"errors"
	"sort"
)

// ErrUnsupportedScalarType is returned by Epsilon for a scalar kind the
// perturbation pass has no defined epsilon for. The original source
// returns -1 from addPerturbation for any non floating-point dataType;
// this module only ever operates on float32/float64, so the only way to
// hit this is a caller-supplied Kind outside that set.
var ErrUnsupportedScalarType = errors.New("perturb: unsupported scalar type")

// Kind discriminates the precision epsilon is computed for.
type Kind int8

const (
	// Float64 scalars get epsilon = 10^(1-15) (≈ double decimal digits).
	Float64 Kind = iota
	// Float32 scalars get epsilon = 10^(1-6) (≈ float decimal digits).
	Float32
)

// digits mirrors DBL_DIG/FLT_DIG from the original source.
const (
	doubleDigits = 15
	floatDigits  = 6
)

// Epsilon returns the minimum lift applied between consecutive values of
// the given Kind, or ErrUnsupportedScalarType for an unknown kind.
func Epsilon(kind Kind) (float64, error) {
	switch kind {
	case Float64:
		return powIntTen(1 - doubleDigits), nil
	case Float32:
		return powIntTen(1 - floatDigits), nil
	default:
		return 0, ErrUnsupportedScalarType
	}
}

// powIntTen computes 10^n for an integer exponent without accumulating
// the rounding error of a general math.Pow call on a non-integer base.
func powIntTen(n int) float64 {
	result := 1.0
	if n >= 0 {
		for i := 0; i < n; i++ {
			result *= 10
		}
		return result
	}
	for i := 0; i < -n; i++ {
		result /= 10
	}
	return result
}

// triple pairs a vertex's (scalar, offset) with its id, for sorting.
type triple struct {
	scalar float64
	offset int32
	vertex int
}

// Run lifts scalars in place so that, walked in ascending symbolic
// order, every value is at least epsilon greater than its predecessor.
// offsets are read but never modified — the lift is scalar-only (spec
// §4.5, "Side effect: scalars only; offsets are unchanged").
func Run(scalars []float64, offsets []int32, kind Kind) error {
	epsilon, err := Epsilon(kind)
	if err != nil {
		return err
	}

	n := len(scalars)
	triples := make([]triple, n)
	for i := 0; i < n; i++ {
		triples[i] = triple{scalar: scalars[i], offset: offsets[i], vertex: i}
	}

	sort.Slice(triples, func(i, j int) bool {
		a, b := triples[i], triples[j]
		return a.scalar < b.scalar || (a.scalar == b.scalar && a.offset < b.offset)
	})

	for i := 1; i < n; i++ {
		if triples[i].scalar <= triples[i-1].scalar {
			triples[i].scalar = triples[i-1].scalar + epsilon
		}
	}
	for _, t := range triples {
		scalars[t.vertex] = t.scalar
	}
	return nil
}
