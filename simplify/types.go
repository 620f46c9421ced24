package simplify

import (
	"time"

	"github.com/vertexfield/tsimplify/classify"
	"github.com/vertexfield/tsimplify/mesh"
)

// ScalarKind discriminates which floating-point width a ScalarField
// holds. This is the sum-type resolution the REDESIGN FLAGS section asks
// for in place of the original source's template dispatch over dataType.
type ScalarKind int8

const (
	// Float64Kind holds values in F64.
	Float64Kind ScalarKind = iota
	// Float32Kind holds values in F32.
	Float32Kind
)

// ScalarField is a dense R -> value mapping where R is either float32 or
// float64. Exactly one of F64/F32 is populated, selected by Kind.
// Internal arithmetic always happens in float64; a Float32Kind field
// round-trips through float64 only at the Execute boundary.
type ScalarField struct {
	Kind ScalarKind
	F64  []float64
	F32  []float32
}

// NewFloat64Field wraps s as a Float64Kind ScalarField.
func NewFloat64Field(s []float64) ScalarField {
	return ScalarField{Kind: Float64Kind, F64: s}
}

// NewFloat32Field wraps s as a Float32Kind ScalarField.
func NewFloat32Field(s []float32) ScalarField {
	return ScalarField{Kind: Float32Kind, F32: s}
}

// Len returns the field's length under whichever slice is populated.
func (f ScalarField) Len() int {
	if f.Kind == Float32Kind {
		return len(f.F32)
	}
	return len(f.F64)
}

// toFloat64 returns a fresh []float64 copy of f's values, replacing any
// NaN with 0 (spec §3 invariant 2, "After preprocessing, NaN scalars are
// replaced by 0").
func (f ScalarField) toFloat64() []float64 {
	out := make([]float64, f.Len())
	if f.Kind == Float32Kind {
		for i, v := range f.F32 {
			out[i] = float64(v)
		}
	} else {
		copy(out, f.F64)
	}
	for i, v := range out {
		if v != v { // NaN
			out[i] = 0
		}
	}
	return out
}

// writeBack copies working back into f's populated slice, narrowing to
// float32 if Kind is Float32Kind.
func (f ScalarField) writeBack(working []float64) {
	if f.Kind == Float32Kind {
		for i, v := range working {
			f.F32[i] = float32(v)
		}
		return
	}
	copy(f.F64, working)
}

// Mode selects whitelist or blacklist interpretation of Identifiers,
// re-exported from classify so callers only need to import simplify.
type Mode = classify.MaskMode

const (
	// Whitelist treats Identifiers as extrema to keep.
	Whitelist = classify.Whitelist
	// Blacklist treats Identifiers as extrema to remove.
	Blacklist = classify.Blacklist
)

// Status is the outcome of a single Execute call.
type Status int8

const (
	// Converged indicates the requested critical-point set was reached
	// (or the iteration cap was hit with no spurious extrema left).
	Converged Status = iota
	// DidNotConverge indicates MaxIterations was reached with spurious
	// extrema still present; Result still carries the best field found.
	DidNotConverge
)

// Config is the full input to Execute: buffers, flags, and the
// neighborhood handle, all supplied explicitly (spec §9 REDESIGN FLAGS,
// "global mutable output buffers via pointer setters" — replaced here
// with a single record instead of accumulated setter calls).
type Config struct {
	// N is the number of vertices.
	N int
	// InputScalars has length N.
	InputScalars ScalarField
	// InputOffsets has length N and must be pairwise distinct.
	InputOffsets []int32
	// Identifiers lists the vertex ids constrained by Mode.
	Identifiers []mesh.VId
	// Neighborhood is the read-only mesh adjacency the engine queries.
	Neighborhood mesh.Neighborhood
	// Mode interprets Identifiers as a whitelist or blacklist.
	Mode Mode

	// OutputScalars has length N; populated by Execute. Its Kind must
	// match InputScalars.Kind.
	OutputScalars ScalarField
	// OutputOffsets has length N; populated by Execute.
	OutputOffsets []int32
}

// Result carries the outcome and telemetry of one Execute call.
type Result struct {
	Status     Status
	Iterations int
	Elapsed    time.Duration
	Minima     []mesh.VId
	Maxima     []mesh.VId
}
