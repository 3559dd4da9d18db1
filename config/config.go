// Package config contains configuration options for a harness run as well as
// the defaults used when none are given.
package config

import (
	"fmt"
	"strings"

	"github.com/dekarrin/inssort/internal/gen"
	"github.com/dekarrin/inssort/internal/logging"
)

const (
	DefaultMaxSize  = 100
	DefaultMaxValue = 50
	DefaultBaseSize = 10000
	DefaultSamples  = 100
	DefaultPower    = 2.0
	DefaultEpsilon  = 0.1
)

// Log contains logging options.
type Log struct {
	// Enabled is whether to enable built-in logging statements.
	Enabled bool

	// Provider must be the name of one of the logging providers. If set to
	// None or unset, it will default to logging.Jellog.
	Provider logging.Provider

	// File to log to. If not set, all logging will be done to stderr and it
	// will display all logging statements. If set, the file will receive all
	// levels of log messages and stderr will show only those of Info level or
	// higher.
	File string
}

// Create creates the Logger described by log. If logging is not enabled, a
// logging.NoOpLogger is returned.
func (log Log) Create() (logging.Logger, error) {
	if !log.Enabled {
		return logging.NoOpLogger{}, nil
	}
	return logging.New(log.Provider, log.File)
}

func (log Log) FillDefaults() Log {
	newLog := log

	if newLog.Provider == logging.NoLog {
		newLog.Provider = logging.Jellog
	}

	return newLog
}

func (log Log) Validate() error {
	if log.Provider == logging.NoLog {
		return fmt.Errorf("provider: must not be empty")
	}

	return nil
}

// Sweep controls the exhaustive correctness sweeps. Every sweep sorts inputs
// of each size from 1 up to but not including MaxSize; the duplicates and
// stability sweeps additionally do so for every value range from 1 up to but
// not including MaxValue.
type Sweep struct {
	// MaxSize is the exclusive upper bound on input sizes. Defaults to 100.
	MaxSize int

	// MaxValue is the exclusive upper bound on the value range used for inputs
	// with duplicates. Defaults to 50.
	MaxValue int
}

func (sw Sweep) FillDefaults() Sweep {
	newSW := sw

	if newSW.MaxSize == 0 {
		newSW.MaxSize = DefaultMaxSize
	}
	if newSW.MaxValue == 0 {
		newSW.MaxValue = DefaultMaxValue
	}

	return newSW
}

func (sw Sweep) Validate() error {
	if sw.MaxSize < 2 {
		return fmt.Errorf("max_size: must be greater than 1")
	}
	if sw.MaxValue < 2 {
		return fmt.Errorf("max_value: must be greater than 1")
	}
	return nil
}

// Probe configures one complexity measurement.
type Probe struct {
	// Generator is the name of the input generator; see gen.Names. Defaults
	// to "random".
	Generator string

	// BaseSize is N, the smaller of the two input sizes timed. Defaults to
	// 10000.
	BaseSize int

	// Samples is the number of sorts timed at each size. Defaults to 100.
	Samples int

	// Power is the expected exponent of growth. Defaults to 2.
	Power float64

	// Epsilon is the tolerance on Power. Defaults to 0.1.
	Epsilon float64
}

func (p Probe) FillDefaults() Probe {
	newP := p

	if newP.Generator == "" {
		newP.Generator = gen.NameRandom
	}
	newP.Generator = strings.ToLower(newP.Generator)
	if newP.BaseSize == 0 {
		newP.BaseSize = DefaultBaseSize
	}
	if newP.Samples == 0 {
		newP.Samples = DefaultSamples
	}
	if newP.Power == 0 {
		newP.Power = DefaultPower
	}
	if newP.Epsilon == 0 {
		newP.Epsilon = DefaultEpsilon
	}

	return newP
}

func (p Probe) Validate() error {
	if _, err := gen.ByName(p.Generator); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	if p.BaseSize < 1 {
		return fmt.Errorf("base: must be greater than 0")
	}
	if p.Samples < 1 {
		return fmt.Errorf("samples: must be greater than 0")
	}
	if p.Power <= 0 {
		return fmt.Errorf("power: must be greater than 0")
	}
	if p.Epsilon < 0 {
		return fmt.Errorf("epsilon: must not be negative")
	}
	return nil
}

// Config is a complete configuration for a harness run.
type Config struct {
	// Seed seeds every random generator used in the run. If 0, a seed is
	// chosen from the clock when the run starts.
	Seed int64

	// Sweep configures the correctness sweeps.
	Sweep Sweep

	// Probes are the complexity measurements to run after the sweeps. If
	// empty, a single quadratic probe on random unique input is used.
	Probes []Probe

	// SkipComplexity disables running Probes.
	SkipComplexity bool

	// Log is used to configure the built-in logging system. It can be left
	// blank to disable logging entirely.
	Log Log

	// Format is the format the config was loaded from, used in Dump.
	Format Format
}

// FillDefaults returns a new Config identical to cfg but with unset values
// set to their defaults.
func (cfg Config) FillDefaults() Config {
	newCFG := cfg

	newCFG.Sweep = newCFG.Sweep.FillDefaults()

	if len(newCFG.Probes) == 0 {
		newCFG.Probes = []Probe{{}}
	}
	probes := make([]Probe, len(newCFG.Probes))
	for i := range newCFG.Probes {
		probes[i] = newCFG.Probes[i].FillDefaults()
	}
	newCFG.Probes = probes

	newCFG.Log = newCFG.Log.FillDefaults()

	return newCFG
}

// Validate returns an error if the Config has invalid field values set. Empty
// and unset values are considered invalid; if defaults are intended to be used,
// call Validate on the return value of FillDefaults.
func (cfg Config) Validate() error {
	if err := cfg.Sweep.Validate(); err != nil {
		return fmt.Errorf("sweep: %w", err)
	}
	for i := range cfg.Probes {
		if err := cfg.Probes[i].Validate(); err != nil {
			return fmt.Errorf("probes[%d]: %w", i, err)
		}
	}
	if err := cfg.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	return nil
}
