package simplify

import "errors"

// Sentinel errors returned by Execute.
var (
	// ErrDisconnected is returned when a region-grow pass cannot reach
	// every vertex from its seeds.
	ErrDisconnected = errors.New("simplify: mesh disconnected from authorized extrema")

	// ErrUnsupportedScalarType is returned when PerturbationPass is
	// requested for a scalar kind it has no epsilon defined for.
	ErrUnsupportedScalarType = errors.New("simplify: unsupported scalar type for perturbation")

	// ErrDidNotConverge is returned when MaxIterations is reached while
	// spurious extrema are still present. The caller may still inspect
	// Result for the best field found so far.
	ErrDidNotConverge = errors.New("simplify: did not converge within MaxIterations")

	// ErrNilNeighborhood indicates a nil Neighborhood was passed to Execute.
	ErrNilNeighborhood = errors.New("simplify: neighborhood is nil")

	// ErrLengthMismatch indicates InputScalars/InputOffsets/output buffers
	// do not all have length N.
	ErrLengthMismatch = errors.New("simplify: buffer length does not match N")

	// ErrInvalidIdentifier is never returned by Execute — an
	// out-of-range identifier is logged and skipped (spec §7: "log and
	// skip; non-fatal"). It is exported so callers that parse their own
	// logger output can match against its text consistently.
	ErrInvalidIdentifier = errors.New("simplify: identifier out of range")
)
