// Package regiongrow implements RegionGrowPass: one directional flood
// from a set of authorized extrema, producing an adjustment sequence,
// and the monotone rewrite of the scalar/offset fields along it.
//
// The flood loop is the same queue/visited-bitset/loop shape as the
// teacher's bfs.walker (bfs/bfs.go: enqueue/dequeue/loop), with the
// queue replaced by a sweep.Front so vertices are popped in scalar order
// rather than insertion order — the growth order that makes the
// subsequent rewrite monotone.
package regiongrow

import (
	"errors"
	"fmt"

	"github.com/vertexfield/tsimplify/mesh"
	"github.com/vertexfield/tsimplify/sweep"
)

// ErrDisconnected is returned when the front empties before every
// vertex has been visited: the mesh is disconnected and some component
// received no seed.
var ErrDisconnected = errors.New("regiongrow: mesh disconnected from seeds")

// Direction mirrors sweep.Direction; RegionGrowPass always grows its
// front in the direction it rewrites.
type Direction = sweep.Direction

const (
	Ascending  = sweep.Ascending
	Descending = sweep.Descending
)

// Run floods n's neighborhood from seeds in the given direction,
// mutating scalars and offsets in place, and returns the adjustment
// sequence (the pop order). scalars and offsets must have length
// nVertices; seeds must be non-empty and drawn from [0, nVertices).
//
// Ascending growth makes the sequence weakly non-decreasing in scalar
// and assigns ascending offsets [1, nVertices]; descending growth makes
// it weakly non-increasing and assigns descending offsets
// [nVertices, ..., 1] (symmetric around nVertices+1, per spec §4.4).
//
// Run returns ErrDisconnected if the front empties before every vertex
// has been dequeued — the mesh has a component the seeds cannot reach.
func Run(dir Direction, seeds []mesh.VId, n mesh.Neighborhood, nVertices int, scalars []float64, offsets []int32) ([]mesh.VId, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("%w: no seeds supplied", ErrDisconnected)
	}

	front := sweep.New(dir)
	visited := make([]bool, nVertices)
	sequence := make([]mesh.VId, 0, nVertices)

	for _, s := range seeds {
		if !visited[s] {
			front.Insert(scalars[s], offsets[s], int(s))
			visited[s] = true
		}
	}

	for !front.IsEmpty() {
		tr, err := front.PopFront()
		if err != nil {
			// unreachable: guarded by the loop condition, kept for symmetry
			// with sweep.Front's own error contract.
			return nil, fmt.Errorf("%w: %v", ErrDisconnected, err)
		}
		v := mesh.VId(tr.Vertex)

		count := n.NeighborCount(v)
		for k := 0; k < count; k++ {
			nb := n.NeighborAt(v, k)
			if !visited[nb] {
				front.Insert(scalars[nb], offsets[nb], int(nb))
				visited[nb] = true
			}
		}
		sequence = append(sequence, v)
	}

	if len(sequence) != nVertices {
		return nil, fmt.Errorf("%w: reached %d of %d vertices", ErrDisconnected, len(sequence), nVertices)
	}

	rewrite(dir, sequence, scalars, offsets)
	return sequence, nil
}

// rewrite performs the monotone clamp and offset assignment described in
// spec §4.4, step 4. offset starts at 0 (ascending) or nVertices+1
// (descending) and is incremented/decremented as the sequence is walked.
func rewrite(dir Direction, sequence []mesh.VId, scalars []float64, offsets []int32) {
	n := len(sequence)
	var offset int32
	if dir == Ascending {
		offset = 0
	} else {
		offset = int32(n) + 1
	}

	for k, v := range sequence {
		if k > 0 {
			prev := sequence[k-1]
			if dir == Ascending {
				if scalars[v] <= scalars[prev] {
					scalars[v] = scalars[prev]
				}
			} else {
				if scalars[v] >= scalars[prev] {
					scalars[v] = scalars[prev]
				}
			}
		}
		if dir == Ascending {
			offset++
		} else {
			offset--
		}
		offsets[v] = offset
	}
}
