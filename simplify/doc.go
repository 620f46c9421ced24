// Package simplify ties order, classify, sweep, regiongrow, and perturb
// together into SimplificationDriver: given a scalar field over a mesh
// and a set of critical points to preserve, it rewrites the field so
// that no other critical point survives, or reports that it could not
// converge within the iteration budget.
//
// Execute is the package's single entry point. Everything else here —
// Config, Options, Result, Status — exists to make that one call
// self-contained: the caller supplies a Config describing the problem
// and gets back a Result describing what happened, with no package-level
// state retained between calls.
package simplify
