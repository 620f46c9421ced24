// Package classify implements the critical-point classifier: per-vertex
// classification into {Min, Max, Regular} under a SymbolicOrder and a
// mesh's neighborhood relation, plus the batch scan the driver uses to
// authorize and re-check the current extremum set.
package classify

import (
	"github.com/vertexfield/tsimplify/internal/forkjoin"
	"github.com/vertexfield/tsimplify/mesh"
	"github.com/vertexfield/tsimplify/order"
)

// Type is the classification of a vertex.
type Type int8

const (
	// Regular vertices are neither a local minimum nor a local maximum.
	Regular Type = 0
	// Min vertices are strictly less than every neighbor.
	Min Type = -1
	// Max vertices are strictly greater than every neighbor.
	Max Type = 1
)

// MaskMode selects how a mask bitset is interpreted by ClassifyAll: as a
// whitelist of vertices to classify, or as a blacklist of vertices to
// skip. This is the sole mechanism by which user constraints enter the
// algorithm (spec §4.2); it replaces a bare "considerAsBlackList" bool
// with a named enum, matching the teacher's preference for enums over
// bare bools (dijkstra.MemoryMode).
type MaskMode int8

const (
	// Whitelist classifies only vertices with their mask bit set.
	Whitelist MaskMode = iota
	// Blacklist classifies only vertices with their mask bit clear.
	Blacklist
)

// Classify classifies a single vertex v: it is a Min iff it is strictly
// less than every neighbor under ord, a Max iff strictly greater than
// every neighbor, otherwise Regular. The scan short-circuits as soon as
// both possibilities are ruled out.
//
// A vertex with zero neighbors is vacuously both a minimum and a
// maximum; this function treats that case as Regular (isolated vertices
// cannot be simplified, matching the original source's behavior under
// its own short-circuit rule).
func Classify(v mesh.VId, n mesh.Neighborhood, ord order.SymbolicOrder) Type {
	count := n.NeighborCount(v)
	if count == 0 {
		return Regular
	}

	isMin, isMax := true, true
	for k := 0; k < count; k++ {
		nb := n.NeighborAt(v, k)
		if ord.Less(nb, v) {
			isMin = false
		}
		if ord.Greater(nb, v) {
			isMax = false
		}
		if !isMin && !isMax {
			return Regular
		}
	}
	if isMin {
		return Min
	}
	if isMax {
		return Max
	}
	return Regular
}

// ClassifyAll classifies every vertex in [0, n), optionally restricted
// by a mask under mode, and returns the sorted (by vertex id ascending)
// lists of minima and maxima. A nil mask classifies every vertex
// (equivalent to Whitelist with every bit set).
//
// The per-vertex scan is embarrassingly parallel and runs over
// forkjoin.For with the given worker count; the classification buffer is
// pre-sized and written by index, so the final sequential collection
// pass over [0, n) is deterministic regardless of goroutine scheduling
// (spec §5).
func ClassifyAll(n int, nbh mesh.Neighborhood, ord order.SymbolicOrder, mask []bool, mode MaskMode, workers int) (minima, maxima []mesh.VId) {
	types := make([]Type, n)
	forkjoin.For(n, workers, func(i int) {
		v := mesh.VId(i)
		if mask != nil && (mask[i] == (mode == Blacklist)) {
			types[i] = Regular
			return
		}
		types[i] = Classify(v, nbh, ord)
	})

	for i := 0; i < n; i++ {
		switch types[i] {
		case Min:
			minima = append(minima, mesh.VId(i))
		case Max:
			maxima = append(maxima, mesh.VId(i))
		}
	}
	// Collection above walks [0, n) in order, so minima/maxima are already
	// sorted ascending by vertex id; no further sort is needed.
	return minima, maxima
}
