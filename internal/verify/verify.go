// Package verify checks the output of a sort against the properties every
// sort result must have and renders offending inputs for failure messages.
package verify

import (
	"fmt"
	"strings"

	"github.com/dekarrin/inssort"
	"github.com/dekarrin/inssort/internal/gen"
)

// Format renders s as "[a, b, c]" using the default formatting of each
// element, which includes the String method of types that have one.
func Format[E any](s []E) string {
	var sb strings.Builder

	sb.WriteRune('[')
	for i := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, s[i])
	}
	sb.WriteRune(']')

	return sb.String()
}

// Sorted returns a non-nil error if got is not sorted according to less. The
// returned error gives the input the sort was run on, orig, as the bad case
// and matches inssort.ErrNotSorted.
func Sorted[E any](orig, got []E, less func(a, b E) bool) error {
	for i := 1; i < len(got); i++ {
		if less(got[i], got[i-1]) {
			return inssort.Errorf(inssort.ErrNotSorted, "bad case = %s (position %d)", Format(orig), i)
		}
	}
	return nil
}

// Permutation returns a non-nil error matching inssort.ErrNotPermutation if
// got does not hold exactly the same multiset of elements as orig.
func Permutation[E comparable](orig, got []E) error {
	if len(orig) != len(got) {
		return inssort.Errorf(inssort.ErrNotPermutation, "bad case = %s (length %d became %d)", Format(orig), len(orig), len(got))
	}

	counts := make(map[E]int, len(orig))
	for _, v := range orig {
		counts[v]++
	}
	for _, v := range got {
		counts[v]--
		if counts[v] < 0 {
			return inssort.Errorf(inssort.ErrNotPermutation, "bad case = %s (extra %v)", Format(orig), v)
		}
	}

	return nil
}

// Stable returns a non-nil error matching inssort.ErrUnstable if got, the
// result of sorting orig by gen.PairKeyLess, has two pairs of equal key that
// are not in ascending Index order. It checks sortedness by key first; an
// unsorted result gives an error matching inssort.ErrNotSorted instead.
func Stable(orig, got []gen.Pair) error {
	if err := Sorted(orig, got, gen.PairKeyLess); err != nil {
		return err
	}

	for i := 1; i < len(got); i++ {
		if gen.PairLess(got[i], got[i-1]) {
			return inssort.Errorf(inssort.ErrUnstable, "bad case = %s (position %d)", Format(orig), i)
		}
	}
	return nil
}

// All runs Sorted and Permutation on the result of a sort and returns the
// first error found.
func All[E comparable](orig, got []E, less func(a, b E) bool) error {
	if err := Sorted(orig, got, less); err != nil {
		return err
	}
	return Permutation(orig, got)
}
