// Package inssort provides a stable, in-place insertion sort over slices.
//
// The routine sorts a contiguous range. To sort only part of a sequence, pass
// the sub-slice delimiting the half-open range, e.g. Sort(s[begin:end]); only
// elements of that sub-slice are ever read or written.
//
// Insertion sort is quadratic in the average and worst case but linear on
// input that is already sorted, and it never reorders elements that compare
// equal.
package inssort

import "golang.org/x/exp/constraints"

// Sort sorts s in place in ascending order using the natural ordering of E.
// Elements that are neither less nor greater than one another keep their
// original relative order.
//
// For floating-point types, NaN values do not form a strict weak ordering and
// their final position is unspecified.
func Sort[E constraints.Ordered](s []E) {
	SortFunc(s, less[E])
}

// SortFunc sorts s in place in ascending order as determined by less. less
// must return true if a must come before b and must describe a strict weak
// ordering. The sort is stable: elements for which neither less(a, b) nor
// less(b, a) holds keep their original relative order.
//
// If less is nil, s is left as-is.
func SortFunc[E any](s []E, less func(a, b E) bool) {
	if less == nil {
		return
	}

	for i := 1; i < len(s); i++ {
		key := s[i]

		// shift elements of the sorted prefix strictly greater than key one
		// slot right. equal elements are never passed, so they stay ahead of
		// key.
		j := i
		for j > 0 && less(key, s[j-1]) {
			s[j] = s[j-1]
			j--
		}

		if j != i {
			s[j] = key
		}
	}
}

// By takes the items and uses the provided function to sort the list. The
// function should return true if left is less than (comes before) right.
//
// items will not be modified.
func By[E any](items []E, lt func(left E, right E) bool) []E {
	if len(items) == 0 || lt == nil {
		return items
	}

	sorted := make([]E, len(items))
	copy(sorted, items)
	SortFunc(sorted, lt)
	return sorted
}

// IsSorted returns whether s is in ascending order by the natural ordering of
// E.
func IsSorted[E constraints.Ordered](s []E) bool {
	return IsSortedFunc(s, less[E])
}

// IsSortedFunc returns whether s is sorted according to less, that is, whether
// there is no adjacent pair for which less(s[i+1], s[i]) is true.
func IsSortedFunc[E any](s []E, less func(a, b E) bool) bool {
	for i := len(s) - 1; i > 0; i-- {
		if less(s[i], s[i-1]) {
			return false
		}
	}
	return true
}

func less[E constraints.Ordered](a, b E) bool {
	return a < b
}
