// Package config loads SimplificationDriver option overrides from a TOML
// file, the way matzehuels/stacktower's pkg/deps/python package reads
// manifest files: os.ReadFile followed by toml.Unmarshal into a plain
// struct.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/vertexfield/tsimplify/simplify"
)

// Overrides is the on-disk shape of a simplify run's configuration. Zero
// values mean "use Execute's default" — AddPerturbation false,
// MaxIterations/Workers zero (resolved to N/1 respectively by Execute).
type Overrides struct {
	AddPerturbation bool `toml:"add_perturbation"`
	MaxIterations   int  `toml:"max_iterations"`
	Workers         int  `toml:"workers"`
	// LogLevel names a charmbracelet/log level ("debug", "info", "warn",
	// "error"); empty means "info".
	LogLevel string `toml:"log_level"`
}

// Load reads and parses a TOML file at path into an Overrides value.
func Load(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var o Overrides
	if err := toml.Unmarshal(data, &o); err != nil {
		return Overrides{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return o, nil
}

// Options turns Overrides into the simplify.Option slice Execute expects,
// building a logger at the configured level.
func (o Overrides) Options() []simplify.Option {
	opts := []simplify.Option{
		simplify.WithLogger(o.logger()),
	}
	if o.AddPerturbation {
		opts = append(opts, simplify.WithPerturbation())
	}
	if o.MaxIterations > 0 {
		opts = append(opts, simplify.WithMaxIterations(o.MaxIterations))
	}
	if o.Workers > 0 {
		opts = append(opts, simplify.WithWorkers(o.Workers))
	}
	return opts
}

func (o Overrides) logger() *log.Logger {
	level := log.InfoLevel
	switch o.LogLevel {
	case "debug":
		level = log.DebugLevel
	case "warn":
		level = log.WarnLevel
	case "error":
		level = log.ErrorLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
