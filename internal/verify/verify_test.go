package verify

import (
	"testing"

	"github.com/dekarrin/inssort"
	"github.com/dekarrin/inssort/internal/gen"
	"github.com/stretchr/testify/assert"
)

func intLess(a, b int) bool {
	return a < b
}

func Test_Format(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("[]", Format([]int{}))
	assert.Equal("[5]", Format([]int{5}))
	assert.Equal("[3, 1, 2]", Format([]int{3, 1, 2}))
	assert.Equal("[(2, 0), (1, 1)]", Format([]gen.Pair{{Key: 2, Index: 0}, {Key: 1, Index: 1}}))
}

func Test_Sorted(t *testing.T) {
	testCases := []struct {
		name      string
		orig      []int
		got       []int
		expectErr error
	}{
		{
			name: "empty",
		},
		{
			name: "sorted with duplicates",
			orig: []int{2, 1, 2},
			got:  []int{1, 2, 2},
		},
		{
			name:      "not sorted",
			orig:      []int{3, 1, 2},
			got:       []int{1, 3, 2},
			expectErr: inssort.ErrNotSorted,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			err := Sorted(tc.orig, tc.got, intLess)

			if tc.expectErr != nil {
				assert.ErrorIs(err, tc.expectErr)
				assert.Contains(err.Error(), "bad case = "+Format(tc.orig))
			} else {
				assert.NoError(err)
			}
		})
	}
}

func Test_Permutation(t *testing.T) {
	testCases := []struct {
		name      string
		orig      []int
		got       []int
		expectErr bool
	}{
		{
			name: "same multiset",
			orig: []int{3, 1, 3, 2},
			got:  []int{1, 2, 3, 3},
		},
		{
			name:      "duplicated element",
			orig:      []int{3, 1, 2},
			got:       []int{1, 1, 2},
			expectErr: true,
		},
		{
			name:      "lost element",
			orig:      []int{3, 1, 2},
			got:       []int{1, 2},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			err := Permutation(tc.orig, tc.got)

			if tc.expectErr {
				assert.ErrorIs(err, inssort.ErrNotPermutation)
			} else {
				assert.NoError(err)
			}
		})
	}
}

func Test_Stable(t *testing.T) {
	orig := []gen.Pair{{Key: 2, Index: 0}, {Key: 1, Index: 1}, {Key: 2, Index: 2}, {Key: 1, Index: 3}}

	testCases := []struct {
		name      string
		got       []gen.Pair
		expectErr error
	}{
		{
			name: "stable",
			got:  []gen.Pair{{Key: 1, Index: 1}, {Key: 1, Index: 3}, {Key: 2, Index: 0}, {Key: 2, Index: 2}},
		},
		{
			name:      "sorted but unstable",
			got:       []gen.Pair{{Key: 1, Index: 3}, {Key: 1, Index: 1}, {Key: 2, Index: 0}, {Key: 2, Index: 2}},
			expectErr: inssort.ErrUnstable,
		},
		{
			name:      "not sorted",
			got:       orig,
			expectErr: inssort.ErrNotSorted,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			err := Stable(orig, tc.got)

			if tc.expectErr != nil {
				assert.ErrorIs(err, tc.expectErr)
			} else {
				assert.NoError(err)
			}
		})
	}
}

func Test_All_afterSort(t *testing.T) {
	assert := assert.New(t)

	orig := []int{5, 3, 4, 1, 2}
	got := make([]int, len(orig))
	copy(got, orig)

	inssort.Sort(got)

	assert.NoError(All(orig, got, intLess))
	assert.Equal([]int{1, 2, 3, 4, 5}, got)
}
