package inssort

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Error_Error(t *testing.T) {
	testCases := []struct {
		name   string
		err    Error
		expect string
	}{
		{
			name:   "message only",
			err:    NewError("bad case"),
			expect: "bad case",
		},
		{
			name:   "cause only",
			err:    NewError("", ErrNotSorted),
			expect: "result is not sorted",
		},
		{
			name:   "message and causes",
			err:    NewError("bad case = [2, 1]", ErrNotSorted, ErrUnstable),
			expect: "bad case = [2, 1]: result is not sorted",
		},
		{
			name:   "Errorf",
			err:    Errorf(ErrComplexity, "power = %.2f", 2.5),
			expect: "power = 2.50: measured growth does not match expected complexity",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.expect, tc.err.Error())
		})
	}
}

func Test_Error_Is(t *testing.T) {
	assert := assert.New(t)

	inner := NewError("bad case = [1, 0]", ErrNotSorted)
	outer := NewError("sweep sorted", inner)

	assert.ErrorIs(inner, ErrNotSorted)
	assert.ErrorIs(outer, ErrNotSorted)
	assert.ErrorIs(outer, inner)
	assert.False(errors.Is(outer, ErrUnstable))
	assert.Nil(NewError("no causes").Unwrap())
}
