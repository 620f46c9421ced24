// Package simplify implements SimplificationDriver: the convergence
// loop that preprocesses a scalar field, authorizes a critical-point
// set, alternates ascending/descending RegionGrowPass calls, and tests
// for a fixed point.
//
// Execute's top-level shape — validate inputs, prepare working state,
// run, return — follows dijkstra.Dijkstra's own numbered-step structure
// in the teacher; the loop body is a direct port of the original
// source's execute() template.
package simplify

import (
	"fmt"
	"time"

	"github.com/vertexfield/tsimplify/classify"
	"github.com/vertexfield/tsimplify/mesh"
	"github.com/vertexfield/tsimplify/order"
	"github.com/vertexfield/tsimplify/perturb"
	"github.com/vertexfield/tsimplify/regiongrow"
)

// Execute runs the simplification engine described in §4.6: it edits
// cfg.OutputScalars/cfg.OutputOffsets in place so that every critical
// point of the field disappears except those cfg.Identifiers (under
// cfg.Mode) authorize, and returns telemetry plus the final status.
//
// Preconditions: cfg.N > 0; cfg.Neighborhood is non-nil; InputScalars,
// OutputScalars have length N and the same Kind; InputOffsets,
// OutputOffsets have length N.
func Execute(cfg Config, opts ...Option) (Result, error) {
	if err := validate(cfg); err != nil {
		return Result{}, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.Logger
	if logger == nil {
		logger = discardLogger()
	}
	workers := o.Workers
	if workers <= 0 {
		workers = 1
	}
	maxIterations := o.MaxIterations
	if maxIterations <= 0 {
		maxIterations = cfg.N
	}

	start := time.Now()

	// Preprocessing (spec §4.6, §3 invariant 2): copy input into working
	// buffers, replacing NaN scalars with 0.
	scalars := cfg.InputScalars.toFloat64()
	offsets := make([]int32, cfg.N)
	copy(offsets, cfg.InputOffsets)

	mask := buildMask(cfg.N, cfg.Identifiers, logger)

	// Authorization: classify under the seed mask to find A-/A+.
	ord := order.New(scalars, offsets)
	authMinima, authMaxima := classify.ClassifyAll(cfg.N, cfg.Neighborhood, ord, mask, cfg.Mode, workers)

	authorized := make([]bool, cfg.N)
	for _, v := range authMinima {
		authorized[v] = true
	}
	for _, v := range authMaxima {
		authorized[v] = true
	}

	logger.Infof("maintaining %d constraints (%d minima, %d maxima)",
		len(cfg.Identifiers), len(authMinima), len(authMaxima))

	var (
		iteration int
		minima    []mesh.VId
		maxima    []mesh.VId
		converged bool
	)

	for iteration = 0; iteration < maxIterations; iteration++ {
		ascSeeds := seedsOrGlobalExtreme(authMinima, cfg.N, ord, regiongrow.Ascending)
		if _, err := regiongrow.Run(regiongrow.Ascending, ascSeeds, cfg.Neighborhood, cfg.N, scalars, offsets); err != nil {
			cfg.OutputScalars.writeBack(scalars)
			copy(cfg.OutputOffsets, offsets)
			return Result{Iterations: iteration}, fmt.Errorf("%w: %v", ErrDisconnected, err)
		}

		descSeeds := seedsOrGlobalExtreme(authMaxima, cfg.N, ord, regiongrow.Descending)
		if _, err := regiongrow.Run(regiongrow.Descending, descSeeds, cfg.Neighborhood, cfg.N, scalars, offsets); err != nil {
			cfg.OutputScalars.writeBack(scalars)
			copy(cfg.OutputOffsets, offsets)
			return Result{Iterations: iteration}, fmt.Errorf("%w: %v", ErrDisconnected, err)
		}

		minima, maxima = classify.ClassifyAll(cfg.N, cfg.Neighborhood, ord, nil, Whitelist, workers)

		logger.Infof("iteration %d: %d minima, %d maxima", iteration, len(minima), len(maxima))

		needMore := len(minima) > len(authMinima) || len(maxima) > len(authMaxima)
		if !needMore {
			needMore = anyUnauthorized(minima, authorized) || anyUnauthorized(maxima, authorized)
		}

		if o.AddPerturbation {
			if err := perturb.Run(scalars, offsets, perturbKind(cfg.InputScalars.Kind)); err != nil {
				cfg.OutputScalars.writeBack(scalars)
				copy(cfg.OutputOffsets, offsets)
				return Result{Iterations: iteration + 1}, fmt.Errorf("%w: %v", ErrUnsupportedScalarType, err)
			}
		}

		if !needMore {
			converged = true
			iteration++ // count the iteration that just finished
			break
		}
	}

	cfg.OutputScalars.writeBack(scalars)
	copy(cfg.OutputOffsets, offsets)

	elapsed := time.Since(start)
	result := Result{
		Iterations: iteration,
		Elapsed:    elapsed,
		Minima:     minima,
		Maxima:     maxima,
	}

	if !converged {
		logger.Infof("scalar field did not converge in %d iterations (%s)", iteration, elapsed)
		result.Status = DidNotConverge
		return result, ErrDidNotConverge
	}

	logger.Infof("scalar field simplified in %s (%d iterations)", elapsed, iteration)
	result.Status = Converged
	return result, nil
}

func validate(cfg Config) error {
	if cfg.N <= 0 {
		return fmt.Errorf("simplify: N must be positive, got %d", cfg.N)
	}
	if cfg.Neighborhood == nil {
		return ErrNilNeighborhood
	}
	if cfg.InputScalars.Len() != cfg.N || len(cfg.InputOffsets) != cfg.N {
		return fmt.Errorf("%w: input buffers", ErrLengthMismatch)
	}
	if cfg.OutputScalars.Len() != cfg.N || len(cfg.OutputOffsets) != cfg.N {
		return fmt.Errorf("%w: output buffers", ErrLengthMismatch)
	}
	if cfg.OutputScalars.Kind != cfg.InputScalars.Kind {
		return fmt.Errorf("simplify: output scalar kind must match input")
	}
	return nil
}

// buildMask marks cfg.N bits, one per identifier, skipping and logging
// (non-fatal) any out-of-range identifier — spec §7 ErrInvalidIdentifier
// policy: log and skip.
func buildMask(n int, identifiers []mesh.VId, logger logWarner) []bool {
	mask := make([]bool, n)
	for _, id := range identifiers {
		if id < 0 || int(id) >= n {
			logger.Warnf("%v: %d not in [0, %d), skipped", ErrInvalidIdentifier, id, n)
			continue
		}
		mask[id] = true
	}
	return mask
}

// logWarner is the subset of *log.Logger buildMask needs, kept narrow
// so it is trivially mockable in tests.
type logWarner interface {
	Warnf(format string, args ...interface{})
}

// seedsOrGlobalExtreme resolves the §9/§10 "empty authorized seed set"
// decision: when authorized is empty, flood from the single global
// extreme vertex in dir instead of refusing to grow at all.
func seedsOrGlobalExtreme(authorized []mesh.VId, n int, ord order.SymbolicOrder, dir regiongrow.Direction) []mesh.VId {
	if len(authorized) > 0 {
		return authorized
	}
	best := mesh.VId(0)
	for v := mesh.VId(1); v < mesh.VId(n); v++ {
		if dir == regiongrow.Ascending {
			if ord.Less(v, best) {
				best = v
			}
		} else {
			if ord.Greater(v, best) {
				best = v
			}
		}
	}
	return []mesh.VId{best}
}

func anyUnauthorized(vs []mesh.VId, authorized []bool) bool {
	for _, v := range vs {
		if !authorized[v] {
			return true
		}
	}
	return false
}

func perturbKind(k ScalarKind) perturb.Kind {
	if k == Float32Kind {
		return perturb.Float32
	}
	return perturb.Float64
}
