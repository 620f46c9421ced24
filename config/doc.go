// Package config loads on-disk overrides for a simplify.Execute call.
//
// Driving the engine by hand means building a slice of simplify.Option
// values in code. This package lets those same options live in a TOML
// file instead, for callers that want to adjust iteration caps, worker
// counts, or perturbation without rebuilding their program.
package config
