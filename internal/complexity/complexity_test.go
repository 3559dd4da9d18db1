package complexity

import (
	"context"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/dekarrin/inssort"
	"github.com/dekarrin/inssort/internal/gen"
	"github.com/stretchr/testify/assert"
)

// fakeClock is advanced by the sort under test rather than by real time, so
// that measured growth is exact.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) sortCosting(cost func(n int) time.Duration) func([]uint32) {
	return func(arr []uint32) {
		inssort.Sort(arr)
		c.now = c.now.Add(cost(len(arr)))
	}
}

func Test_Exponent(t *testing.T) {
	testCases := []struct {
		name   string
		t1, t2 time.Duration
		expect float64
	}{
		{name: "linear", t1: 10, t2: 20, expect: 1},
		{name: "quadratic", t1: 10, t2: 40, expect: 2},
		{name: "cubic", t1: time.Second, t2: 8 * time.Second, expect: 3},
		{name: "constant", t1: 5, t2: 5, expect: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.InDelta(tc.expect, Exponent(tc.t1, tc.t2), 1e-9)
		})
	}
}

func Test_Harness_Run(t *testing.T) {
	quadratic := func(n int) time.Duration { return time.Duration(n * n) }
	linear := func(n int) time.Duration { return time.Duration(n) }
	free := func(n int) time.Duration { return 0 }

	testCases := []struct {
		name        string
		cost        func(n int) time.Duration
		probe       Probe
		expectPower float64
		expectErr   error
	}{
		{
			name: "quadratic within tolerance",
			cost: quadratic,
			probe: Probe{
				Name: "random", Gen: gen.RandomUnique,
				BaseSize: 50, Samples: 3, Power: 2, Epsilon: 0.1,
			},
			expectPower: 2,
		},
		{
			name: "linear cost fails a quadratic probe",
			cost: linear,
			probe: Probe{
				Name: "random", Gen: gen.RandomUnique,
				BaseSize: 50, Samples: 3, Power: 2, Epsilon: 0.1,
			},
			expectPower: 1,
			expectErr:   inssort.ErrComplexity,
		},
		{
			name: "linear probe on sorted input",
			cost: linear,
			probe: Probe{
				Name: "sorted", Gen: func(_ *rand.Rand, n int) []uint32 { return gen.Sorted(n) },
				BaseSize: 20, Samples: 1, Power: 1, Epsilon: 0.1,
			},
			expectPower: 1,
		},
		{
			name: "untimeable sorts",
			cost: free,
			probe: Probe{
				Name: "random", Gen: gen.RandomUnique,
				BaseSize: 10, Samples: 2, Power: 2, Epsilon: 0.1,
			},
			expectErr: inssort.ErrComplexity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			clock := &fakeClock{now: time.Unix(0, 0)}
			h := Harness{
				Sort:  clock.sortCosting(tc.cost),
				Rand:  rand.New(rand.NewSource(1)),
				Clock: clock.Now,
			}

			actual, err := h.Run(context.Background(), tc.probe)

			if tc.expectErr != nil {
				assert.ErrorIs(err, tc.expectErr)
			} else {
				assert.NoError(err)
				assert.True(actual.Ok())
			}
			if tc.expectPower != 0 {
				assert.InDelta(tc.expectPower, actual.Power, 1e-9)
				assert.Equal(tc.probe.BaseSize, actual.BaseSize)
			}
		})
	}
}

func Test_Harness_Run_badProbe(t *testing.T) {
	testCases := []struct {
		name  string
		probe Probe
	}{
		{name: "no generator", probe: Probe{BaseSize: 1, Samples: 1}},
		{name: "zero base size", probe: Probe{Gen: gen.RandomUnique, Samples: 1}},
		{name: "zero samples", probe: Probe{Gen: gen.RandomUnique, BaseSize: 1}},
		{name: "negative epsilon", probe: Probe{Gen: gen.RandomUnique, BaseSize: 1, Samples: 1, Epsilon: -1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			_, err := Harness{}.Run(context.Background(), tc.probe)

			assert.ErrorIs(err, inssort.ErrBadArgument)
		})
	}
}

func Test_Harness_Run_brokenSort(t *testing.T) {
	assert := assert.New(t)
	h := Harness{
		Sort: func(arr []uint32) {},
		Rand: rand.New(rand.NewSource(1)),
	}
	p := Probe{
		Name: "reversed", Gen: func(_ *rand.Rand, n int) []uint32 { return gen.Reversed(n) },
		BaseSize: 4, Samples: 1, Power: 2, Epsilon: 0.1,
	}

	_, err := h.Run(context.Background(), p)

	assert.ErrorIs(err, inssort.ErrNotSorted)
	assert.Contains(err.Error(), "bad case = [3, 2, 1, 0]")
}

func Test_Harness_Run_canceled(t *testing.T) {
	assert := assert.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := Probe{Name: "random", Gen: gen.RandomUnique, BaseSize: 10, Samples: 1, Power: 2}

	_, err := Harness{}.Run(ctx, p)

	assert.ErrorIs(err, inssort.ErrCanceled)
	assert.ErrorIs(err, context.Canceled)
}

func Test_Harness_Run_wallClock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping wall-clock complexity measurement in short mode")
	}
	assert := assert.New(t)

	p := Probe{
		Name:     "random",
		Gen:      gen.RandomUnique,
		BaseSize: 2000,
		Samples:  10,
		Power:    2,
		Epsilon:  0.5,
	}

	actual, err := Harness{Rand: rand.New(rand.NewSource(11))}.Run(context.Background(), p)

	assert.NoError(err)
	assert.False(math.IsNaN(actual.Power))
}
