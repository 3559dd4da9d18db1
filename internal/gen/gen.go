// Package gen generates input sequences for exercising the sort.
package gen

import (
	"fmt"
	"math/rand"
	"strings"
)

// Func creates a sequence of n values. Funcs that need randomness draw it from
// r; the others ignore it.
type Func func(r *rand.Rand, n int) []uint32

// Pair is a sort key along with the position it held in the generated
// sequence. Sorting pairs by Key alone and then checking Index is how
// stability is observed.
type Pair struct {
	Key   uint32
	Index uint32
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d, %d)", p.Key, p.Index)
}

// PairKeyLess orders pairs by Key only, hiding Index from the sort.
func PairKeyLess(a, b Pair) bool {
	return a.Key < b.Key
}

// PairLess orders pairs lexicographically by Key and then Index. A stable sort
// by PairKeyLess of pairs created by RandomPairs is sorted by PairLess as well.
func PairLess(a, b Pair) bool {
	if a.Key != b.Key {
		return a.Key < b.Key
	}
	return a.Index < b.Index
}

// Sorted returns {0, 1, 2, ..., n-1}.
func Sorted(n int) []uint32 {
	arr := make([]uint32, n)
	for i := range arr {
		arr[i] = uint32(i)
	}
	return arr
}

// Reversed returns {n-1, n-2, ..., 1, 0}.
func Reversed(n int) []uint32 {
	arr := make([]uint32, n)
	for i := range arr {
		arr[i] = uint32(n - 1 - i)
	}
	return arr
}

// RandomUnique returns the values 0 through n-1 in shuffled order.
func RandomUnique(r *rand.Rand, n int) []uint32 {
	arr := Sorted(n)
	r.Shuffle(len(arr), func(i, j int) {
		arr[i], arr[j] = arr[j], arr[i]
	})
	return arr
}

// RandomWithDuplicates returns n values drawn uniformly from [0, max). max must
// be at least 1.
func RandomWithDuplicates(r *rand.Rand, n int, max uint32) []uint32 {
	arr := make([]uint32, n)
	for i := range arr {
		arr[i] = uint32(r.Int63n(int64(max)))
	}
	return arr
}

// RandomPairs returns n pairs whose keys are drawn uniformly from [0, max) and
// whose Index is their position in the returned slice. max must be at least 1.
func RandomPairs(r *rand.Rand, n int, max uint32) []Pair {
	arr := make([]Pair, n)
	for i := range arr {
		arr[i] = Pair{Key: uint32(r.Int63n(int64(max))), Index: uint32(i)}
	}
	return arr
}

// DuplicatesOf returns a Func that calls RandomWithDuplicates with the given
// max.
func DuplicatesOf(max uint32) Func {
	return func(r *rand.Rand, n int) []uint32 {
		return RandomWithDuplicates(r, n, max)
	}
}

// Names of the generators known to ByName.
const (
	NameSorted     = "sorted"
	NameReversed   = "reversed"
	NameRandom     = "random"
	NameDuplicates = "duplicates"
)

// DefaultDuplicatesMax is the value range used by the generator that ByName
// returns for NameDuplicates.
const DefaultDuplicatesMax = 50

// Names returns the names accepted by ByName.
func Names() []string {
	return []string{NameSorted, NameReversed, NameRandom, NameDuplicates}
}

// ByName returns the generator with the given name. Matching is not
// case-sensitive.
func ByName(name string) (Func, error) {
	switch strings.ToLower(name) {
	case NameSorted:
		return func(_ *rand.Rand, n int) []uint32 { return Sorted(n) }, nil
	case NameReversed:
		return func(_ *rand.Rand, n int) []uint32 { return Reversed(n) }, nil
	case NameRandom:
		return RandomUnique, nil
	case NameDuplicates:
		return DuplicatesOf(DefaultDuplicatesMax), nil
	default:
		return nil, fmt.Errorf("unknown generator %q; must be one of %s", name, strings.Join(Names(), ", "))
	}
}
