package simplify

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options configures a single Execute call. Unlike Config, which carries
// the data, Options carries behavior — the same split the teacher uses
// between e.g. dijkstra.Options (Source, thresholds) and the graph it
// operates on.
type Options struct {
	// AddPerturbation invokes PerturbationPass after every iteration.
	AddPerturbation bool
	// MaxIterations caps the convergence loop. Zero means "use N".
	MaxIterations int
	// Workers bounds the fork/join worker count used by classification.
	// Zero means "use 1" (sequential). Preprocessing always runs
	// sequentially.
	Workers int
	// Logger receives structured per-iteration progress events. A nil
	// Logger (the default) discards them.
	Logger *log.Logger
}

// Option is a functional option for Execute.
type Option func(*Options)

// DefaultOptions returns the zero-value-safe defaults: no perturbation,
// MaxIterations resolved to N by Execute, one worker, logging discarded.
func DefaultOptions() Options {
	return Options{}
}

// WithPerturbation enables PerturbationPass after each iteration.
func WithPerturbation() Option {
	return func(o *Options) { o.AddPerturbation = true }
}

// WithMaxIterations overrides the default iteration cap of N.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithWorkers sets the fork/join worker count for classification.
// n <= 1 runs it sequentially.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger attaches a logger for progress events. Passing nil is
// equivalent to not calling WithLogger at all (events are discarded).
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// discardLogger returns a logger writing to io.Discard, used whenever
// Options.Logger is nil so the driver never needs a nil check at each
// call site.
func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
