package support

import (
	radixsort "github.com/dgryski/go-radixsort"
)

// SortKeys returns a sorted copy of keys. Batch construction of the trie
// family sorts its input first ("for a batch insert, sort the input first",
// spec §4.4); since keys are fixed-width unsigned integers, a radix sort is
// a better fit than a comparison sort, so this wraps the teacher's own
// go-radixsort dependency's Uint64s instead of sort.Slice.
func SortKeys(keys []uint64) []uint64 {
	out := make([]uint64, len(keys))
	copy(out, keys)
	radixsort.Uint64s(out)
	return out
}
