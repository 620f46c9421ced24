// Package meshgen builds deterministic mesh.AdjacencyMesh fixtures and
// synthetic scalar fields over them, for tests, examples, and demos of
// the simplification engine.
//
// Constructors here follow the teacher's builder package contract:
// validate parameters early, return only sentinel errors, never panic
// at runtime, and stay deterministic for a fixed seed.
package meshgen

import "errors"

// ErrTooFewVertices indicates a size parameter (rows, cols, n) is smaller
// than the constructor's minimum.
var ErrTooFewVertices = errors.New("meshgen: parameter too small")

// ErrNeedRandSource names the missing-rng condition. No generator in this
// package returns it: NoisyScalars and GridRidge fall back to
// deterministic output when rng is nil.
var ErrNeedRandSource = errors.New("meshgen: rng is required")
