// Package suite runs the full correctness and complexity harness against a
// sort routine.
package suite

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/dekarrin/inssort"
	"github.com/dekarrin/inssort/config"
	"github.com/dekarrin/inssort/internal/complexity"
	"github.com/dekarrin/inssort/internal/gen"
	"github.com/dekarrin/inssort/internal/logging"
	"github.com/dekarrin/inssort/internal/verify"
	"github.com/google/uuid"
)

// Names of the correctness sweeps, in the order they run.
const (
	SweepSorted     = "sorted"
	SweepReversed   = "reversed"
	SweepRandom     = "random"
	SweepDuplicates = "duplicates"
	SweepStability  = "stability"
)

// Result is the outcome of one sweep or probe.
type Result struct {
	// Name is the sweep name, or "complexity/" followed by the generator name
	// for probes.
	Name string

	// Inputs is the number of inputs that were sorted and checked.
	Inputs int

	// Err is nil if the sweep or probe passed.
	Err error

	// Duration is the wall time the sweep or probe took.
	Duration time.Duration

	// Complexity holds the measurement of a probe. It is nil for sweeps and
	// for probes that could not complete a measurement.
	Complexity *complexity.Result
}

// Ok returns whether r passed.
func (r Result) Ok() bool {
	return r.Err == nil
}

// Report is the outcome of a complete run.
type Report struct {
	RunID   uuid.UUID
	Seed    int64
	Results []Result
}

// Failed returns the results that did not pass.
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Ok() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Ok returns whether every result passed.
func (r Report) Ok() bool {
	return len(r.Failed()) == 0
}

// Suite runs sweeps and probes. Use New to create one.
type Suite struct {
	cfg  config.Config
	log  logging.Logger
	sort func([]uint32)
	pair func([]gen.Pair, func(a, b gen.Pair) bool)
}

// Option modifies a Suite created with New.
type Option func(*Suite)

// WithSort replaces the routines under test. sortFn is used for the uint32
// sweeps and probes and pairFn for the stability sweep. Either may be nil to
// keep the default of inssort.Sort and inssort.SortFunc respectively.
func WithSort(sortFn func([]uint32), pairFn func([]gen.Pair, func(a, b gen.Pair) bool)) Option {
	return func(s *Suite) {
		if sortFn != nil {
			s.sort = sortFn
		}
		if pairFn != nil {
			s.pair = pairFn
		}
	}
}

// New creates a Suite from cfg. Unset values of cfg are given their defaults
// before it is validated. If log is nil, nothing is logged.
func New(cfg config.Config, log logging.Logger, opts ...Option) (*Suite, error) {
	cfg = cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, inssort.NewError(fmt.Sprintf("config: %v", err), inssort.ErrBadArgument)
	}
	if log == nil {
		log = logging.NoOpLogger{}
	}

	s := &Suite{
		cfg:  cfg,
		log:  log,
		sort: inssort.Sort[uint32],
		pair: inssort.SortFunc[gen.Pair],
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Config returns the complete configuration the Suite runs with.
func (s *Suite) Config() config.Config {
	return s.cfg
}

// Run runs every sweep and then every probe. Failures are recorded in the
// returned Report and do not stop the run. A non-nil error is returned only
// if ctx is canceled, in which case the Report holds the results completed
// so far.
func (s *Suite) Run(ctx context.Context) (Report, error) {
	seed := s.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rep := Report{RunID: uuid.New(), Seed: seed}
	log := logging.WithRun(s.log, rep.RunID.String())
	r := rand.New(rand.NewSource(seed))

	log.Infof("Starting run with seed %d", seed)

	sweeps := []struct {
		name string
		run  func(context.Context, *rand.Rand) (int, error)
	}{
		{SweepSorted, s.fixedSweep(func(_ *rand.Rand, n int) []uint32 { return gen.Sorted(n) })},
		{SweepReversed, s.fixedSweep(func(_ *rand.Rand, n int) []uint32 { return gen.Reversed(n) })},
		{SweepRandom, s.fixedSweep(gen.RandomUnique)},
		{SweepDuplicates, s.duplicatesSweep},
		{SweepStability, s.stabilitySweep},
	}

	for _, sw := range sweeps {
		start := time.Now()
		n, err := sw.run(ctx, r)
		if errors.Is(err, inssort.ErrCanceled) {
			log.Warnf("Sweep %s canceled", sw.name)
			return rep, err
		}

		res := Result{Name: sw.name, Inputs: n, Err: err, Duration: time.Since(start)}
		rep.Results = append(rep.Results, res)
		s.logResult(log, res)
	}

	if s.cfg.SkipComplexity {
		log.Info("Skipping complexity probes")
		return rep, nil
	}

	h := complexity.Harness{Sort: s.sort, Rand: r}
	for _, p := range s.cfg.Probes {
		genFn, err := gen.ByName(p.Generator)
		if err != nil {
			// config was validated in New
			panic(fmt.Sprintf("generator lookup failed; should never happen: %v", err))
		}

		name := "complexity/" + p.Generator
		log.Debugf("Probe %s: base size %d, %d samples", name, p.BaseSize, p.Samples)

		start := time.Now()
		measured, err := h.Run(ctx, complexity.Probe{
			Name:     p.Generator,
			Gen:      genFn,
			BaseSize: p.BaseSize,
			Samples:  p.Samples,
			Power:    p.Power,
			Epsilon:  p.Epsilon,
		})
		if errors.Is(err, inssort.ErrCanceled) {
			log.Warnf("Probe %s canceled", name)
			return rep, err
		}

		res := Result{Name: name, Inputs: 2 * p.Samples, Err: err, Duration: time.Since(start)}
		if err == nil || errors.Is(err, inssort.ErrComplexity) {
			res.Complexity = &measured
		}
		rep.Results = append(rep.Results, res)
		s.logResult(log, res)
	}

	return rep, nil
}

func (s *Suite) logResult(log logging.Logger, res Result) {
	if res.Ok() {
		log.Infof("%s: passed %d inputs in %s", res.Name, res.Inputs, res.Duration)
	} else {
		log.Errorf("%s: failed after %d inputs: %v", res.Name, res.Inputs, res.Err)
	}
}

// fixedSweep sorts one input of every size from gen and stops at the first
// failure.
func (s *Suite) fixedSweep(genFn gen.Func) func(context.Context, *rand.Rand) (int, error) {
	return func(ctx context.Context, r *rand.Rand) (int, error) {
		count := 0
		for size := 1; size < s.cfg.Sweep.MaxSize; size++ {
			if err := canceled(ctx); err != nil {
				return count, err
			}

			count++
			if err := s.checkUint32(genFn(r, size)); err != nil {
				return count, err
			}
		}
		return count, nil
	}
}

func (s *Suite) duplicatesSweep(ctx context.Context, r *rand.Rand) (int, error) {
	count := 0
	for size := 1; size < s.cfg.Sweep.MaxSize; size++ {
		if err := canceled(ctx); err != nil {
			return count, err
		}

		for maxVal := 1; maxVal < s.cfg.Sweep.MaxValue; maxVal++ {
			count++
			if err := s.checkUint32(gen.RandomWithDuplicates(r, size, uint32(maxVal))); err != nil {
				return count, err
			}
		}
	}
	return count, nil
}

func (s *Suite) stabilitySweep(ctx context.Context, r *rand.Rand) (int, error) {
	count := 0
	for size := 1; size < s.cfg.Sweep.MaxSize; size++ {
		if err := canceled(ctx); err != nil {
			return count, err
		}

		for maxVal := 1; maxVal < s.cfg.Sweep.MaxValue; maxVal++ {
			count++

			arr := gen.RandomPairs(r, size, uint32(maxVal))
			orig := make([]gen.Pair, len(arr))
			copy(orig, arr)

			// sort by key only; the index rides along hidden from the sort.
			s.pair(arr, gen.PairKeyLess)

			if err := verify.Stable(orig, arr); err != nil {
				return count, err
			}
			if err := verify.Permutation(orig, arr); err != nil {
				return count, err
			}
		}
	}
	return count, nil
}

func (s *Suite) checkUint32(arr []uint32) error {
	orig := make([]uint32, len(arr))
	copy(orig, arr)

	s.sort(arr)

	return verify.All(orig, arr, func(a, b uint32) bool { return a < b })
}

func canceled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return inssort.NewError("", inssort.ErrCanceled, err)
	}
	return nil
}
