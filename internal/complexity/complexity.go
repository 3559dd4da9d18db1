// Package complexity empirically checks the growth rate of a sort.
//
// It tests the hypothesis T(n) = C*n^p, where T is the running time, n is the
// input size, C is some constant and p is the exponent being checked. Timing
// sorts of size N and 2N gives T(2N)/T(N) = 2^p, so p = log2(T(2N)/T(N)).
package complexity

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/dekarrin/inssort"
	"github.com/dekarrin/inssort/internal/gen"
	"github.com/dekarrin/inssort/internal/verify"
)

// Probe describes a single complexity check.
type Probe struct {
	// Name identifies the probe in results. Usually the generator name.
	Name string

	// Gen creates each input.
	Gen gen.Func

	// BaseSize is N; inputs of size N and 2N are timed.
	BaseSize int

	// Samples is the number of inputs timed at each size.
	Samples int

	// Power is the expected exponent p.
	Power float64

	// Epsilon is the largest allowed distance between Power and the measured
	// exponent.
	Epsilon float64
}

// Validate returns an error if p cannot be run.
func (p Probe) Validate() error {
	if p.Gen == nil {
		return inssort.Errorf(inssort.ErrBadArgument, "probe %q: generator is not set", p.Name)
	}
	if p.BaseSize < 1 {
		return inssort.Errorf(inssort.ErrBadArgument, "probe %q: base size must be greater than 0", p.Name)
	}
	if p.Samples < 1 {
		return inssort.Errorf(inssort.ErrBadArgument, "probe %q: samples must be greater than 0", p.Name)
	}
	if p.Epsilon < 0 {
		return inssort.Errorf(inssort.ErrBadArgument, "probe %q: epsilon must not be negative", p.Name)
	}
	return nil
}

// Result is the outcome of running a Probe.
type Result struct {
	Probe    string
	BaseSize int
	Samples  int

	// Avg is the average time to sort an input of size BaseSize; Avg2 is the
	// same for 2*BaseSize.
	Avg  time.Duration
	Avg2 time.Duration

	// Power is the measured exponent.
	Power float64

	Expected float64
	Epsilon  float64
}

// Ok returns whether the measured exponent is within Epsilon of Expected.
func (r Result) Ok() bool {
	return math.Abs(r.Expected-r.Power) <= r.Epsilon
}

// Exponent gives the exponent p such that t2 = t1 * 2^p.
func Exponent(t1, t2 time.Duration) float64 {
	return math.Log2(float64(t2) / float64(t1))
}

// Harness runs probes against a sort routine.
type Harness struct {
	// Sort is the routine being measured. It defaults to inssort.Sort.
	Sort func([]uint32)

	// Rand is passed to generators. It defaults to a source seeded from the
	// current time.
	Rand *rand.Rand

	// Clock gives the current time. It defaults to time.Now.
	Clock func() time.Time
}

// Run times p.Samples sorts at p.BaseSize and at twice that and compares the
// resulting exponent to p.Power. Every sorted sample is checked to be a sorted
// permutation of its input.
//
// A Result is returned whenever measurement completed. If the exponent is out
// of tolerance the error matches inssort.ErrComplexity. Cancellation of ctx is
// checked between samples and gives an error matching inssort.ErrCanceled.
func (h Harness) Run(ctx context.Context, p Probe) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	h = h.withDefaults()

	avg, err := h.average(ctx, p, p.BaseSize)
	if err != nil {
		return Result{}, err
	}
	avg2, err := h.average(ctx, p, 2*p.BaseSize)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Probe:    p.Name,
		BaseSize: p.BaseSize,
		Samples:  p.Samples,
		Avg:      avg,
		Avg2:     avg2,
		Expected: p.Power,
		Epsilon:  p.Epsilon,
	}

	if avg <= 0 || avg2 <= 0 {
		res.Power = math.NaN()
		return res, inssort.Errorf(inssort.ErrComplexity, "probe %q: sorts too fast to time at base size %d", p.Name, p.BaseSize)
	}

	res.Power = Exponent(avg, avg2)
	if !res.Ok() {
		return res, inssort.Errorf(inssort.ErrComplexity, "probe %q: power = %.3f, want %.3f ± %.3f", p.Name, res.Power, p.Power, p.Epsilon)
	}

	return res, nil
}

func (h Harness) average(ctx context.Context, p Probe, size int) (time.Duration, error) {
	var total time.Duration

	for i := 0; i < p.Samples; i++ {
		if err := ctx.Err(); err != nil {
			return 0, inssort.NewError(fmt.Sprintf("probe %q", p.Name), inssort.ErrCanceled, err)
		}

		arr := p.Gen(h.Rand, size)
		orig := make([]uint32, len(arr))
		copy(orig, arr)

		start := h.Clock()
		h.Sort(arr)
		end := h.Clock()

		total += end.Sub(start)

		if err := verify.All(orig, arr, lessUint32); err != nil {
			return 0, inssort.NewError(fmt.Sprintf("probe %q", p.Name), err)
		}
	}

	return total / time.Duration(p.Samples), nil
}

func (h Harness) withDefaults() Harness {
	if h.Sort == nil {
		h.Sort = inssort.Sort[uint32]
	}
	if h.Rand == nil {
		h.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if h.Clock == nil {
		h.Clock = time.Now
	}
	return h
}

func lessUint32(a, b uint32) bool {
	return a < b
}
