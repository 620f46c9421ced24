// Package order implements the symbolic total order used throughout the
// simplification engine: vertex a precedes vertex b iff its scalar is
// smaller, or the scalars tie and its offset is smaller.
//
// The classifier and the driver compare vertices through SymbolicOrder,
// and the sweep front through LessTriple/GreaterTriple, rather than
// through scattered isLower/isHigher helpers (the shape the original C++
// source used, one templated free function per direction). The
// region-grow rewrite compares raw scalars only, and the perturbation
// pass sorts with its own inline copy of the same (scalar, offset) rule.
package order

import "github.com/vertexfield/tsimplify/mesh"

// SymbolicOrder is bound to a scalar field and an offset field and
// induces a strict total order on vertex ids, provided the offsets are
// pairwise distinct. It holds no state of its own beyond the two slice
// references, so it is cheap to pass by value.
type SymbolicOrder struct {
	scalars []float64
	offsets []int32
}

// New binds a SymbolicOrder to the given scalar/offset slices. The
// slices are not copied; mutating them after construction changes what
// the SymbolicOrder compares.
func New(scalars []float64, offsets []int32) SymbolicOrder {
	return SymbolicOrder{scalars: scalars, offsets: offsets}
}

// Less reports whether a strictly precedes b: scalars[a] < scalars[b],
// or the scalars are equal and offsets[a] < offsets[b].
func (o SymbolicOrder) Less(a, b mesh.VId) bool {
	sa, sb := o.scalars[a], o.scalars[b]
	return sa < sb || (sa == sb && o.offsets[a] < o.offsets[b])
}

// Greater reports whether a strictly follows b. It is the mirror image
// of Less, not its logical negation (a and b may compare equal only when
// a == b, since offsets are required to be distinct).
func (o SymbolicOrder) Greater(a, b mesh.VId) bool {
	sa, sb := o.scalars[a], o.scalars[b]
	return sa > sb || (sa == sb && o.offsets[a] > o.offsets[b])
}

// LessTriple and GreaterTriple compare two (scalar, offset) pairs
// directly, without indirecting through a vertex id. The sweep front
// uses these: once a vertex is popped, its (scalar, offset) may have
// already been superseded by a later rewrite of the shared slices, so
// the front captures the triple's values at insertion time instead of
// re-reading the slices on every comparison.
func LessTriple(sa float64, oa int32, sb float64, ob int32) bool {
	return sa < sb || (sa == sb && oa < ob)
}

// GreaterTriple is the mirror image of LessTriple.
func GreaterTriple(sa float64, oa int32, sb float64, ob int32) bool {
	return sa > sb || (sa == sb && oa > ob)
}
