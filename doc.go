// Package tsimplify edits a scalar field defined over a mesh so that
// only a caller-authorized set of critical points survives, leaving
// every other local minimum and maximum flattened into its
// neighborhood.
//
// # Pipeline
//
// A caller supplies a mesh (anything satisfying mesh.Neighborhood), a
// scalar field, and the vertex ids it wants classified as critical
// (under a whitelist or blacklist), then calls simplify.Execute. Under
// the hood that call:
//
//   - classifies every vertex into a minimum, a maximum, or regular
//     (classify), using a strict total order over (scalar, offset)
//     pairs (order);
//   - alternately floods the mesh ascending from authorized minima and
//     descending from authorized maxima (regiongrow), rewriting the
//     scalar field monotonically along each flood's pop order, tracked
//     through a direction-parametric priority front (sweep);
//   - repeats until no unauthorized critical point remains or an
//     iteration budget is exhausted;
//   - optionally perturbs tied scalars by an epsilon to restore strict
//     monotonicity afterward (perturb).
//
// internal/forkjoin provides the one concurrency primitive the engine
// uses, parallelizing the per-vertex classification scan.
//
// # Supporting packages
//
// config loads simplify.Options overrides from a TOML file. meshviz
// renders a mesh and its critical points to Graphviz DOT/SVG for
// debugging. meshgen builds deterministic mesh and scalar-field
// fixtures for tests, examples, and meshviz demos.
package tsimplify
