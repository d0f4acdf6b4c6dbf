// Package eliasfano implements the Elias–Fano succinct sorted-list
// representation (spec §4.3): O(1) random access to a monotone sequence of
// n unsigned integers drawn from a universe [0, m) in roughly
// n*(2 + ceil(log2(m/n))) bits.
package eliasfano

import (
	"math/bits"

	"github.com/DominikHorn/exotic-hashing/bitvector"
	"github.com/DominikHorn/exotic-hashing/internal/support"
	"github.com/hillbig/rsdic"
)

// List is an Elias–Fano encoded non-decreasing sequence of uint64s.
//
// The upper stream (bucket sizes, unary encoded) is backed by
// github.com/hillbig/rsdic.RSDic so that List.At can locate a bucket via
// rank/select instead of a linear scan, the same dependency the teacher
// uses for its own descriptor bitvector (trie/shzft/shzft.go).
type List struct {
	upper *rsdic.RSDic
	lower *bitvector.BV
	l     int
	n     int
}

func log2Ceil(x uint64) int {
	if x <= 1 {
		return 0
	}
	return bits.Len64(x - 1)
}

// Build constructs a List from an already-sorted slice.
func Build(sorted []uint64) *List {
	n := len(sorted)
	lst := &List{n: n}
	if n == 0 {
		lst.upper = rsdic.New()
		lst.lower = bitvector.New()
		return lst
	}

	m := sorted[n-1] + 1
	logM := log2Ceil(m)
	u := log2Ceil(uint64(n))
	l := logM - u
	if l < 0 {
		l = 0
	}
	lst.l = l

	lst.lower = bitvector.NewWithGenerator(n*l, func(int) bool { return false })
	for i, elem := range sorted {
		for j := 0; j < l; j++ {
			bitIdx := l - 1 - j
			lst.lower.Set(i*l+j, (elem>>uint(bitIdx))&1 != 0)
		}
	}

	lst.upper = rsdic.New()
	lastBucket := uint64(0)
	for _, elem := range sorted {
		bucket := elem >> uint(l)
		for k := uint64(0); k < bucket-lastBucket; k++ {
			lst.upper.PushBack(false)
		}
		lst.upper.PushBack(true)
		lastBucket = bucket
	}

	return lst
}

// At reconstructs element i.
func (lst *List) At(i int) uint64 {
	// The upper bits are the bucket index: count the zeroes preceding the
	// i-th (0-indexed) one bit, i.e. select_1(i) - i (spec §4.3). rsdic.Select
	// takes a 0-indexed rank argument: Select(0, true) is the first one-bit.
	pos := lst.upper.Select(uint64(i), true)
	bucket := pos - uint64(i)

	res := bucket
	base := lst.l * i
	for j := 0; j < lst.l; j++ {
		res = (res << 1) | boolToUint64(lst.lower.Get(base+j))
	}
	return res
}

func boolToUint64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Size returns n, the number of elements stored.
func (lst *List) Size() int {
	return lst.n
}

// ByteSize reports a sdsl::size_in_bytes-equivalent accounting: upper +
// lower + select support + the l field (spec §11, SUPPLEMENTED FEATURES).
func (lst *List) ByteSize() int {
	upperBytes := 0
	if lst.upper != nil {
		upperBytes = lst.upper.AllocSize()
	}
	return upperBytes + lst.lower.ByteSize() + 8
}

// Report breaks ByteSize down into the upper unary stream (with its rsdic
// select support) and the lower fixed-width stream.
func (lst *List) Report() support.Report {
	upperBytes := 0
	if lst.upper != nil {
		upperBytes = lst.upper.AllocSize()
	}
	return support.Report{
		Name:       "eliasfano.List",
		TotalBytes: lst.ByteSize(),
		Children: []support.Report{
			{Name: "upper (rsdic select support)", TotalBytes: upperBytes},
			{Name: "lower (fixed-width stream)", TotalBytes: lst.lower.ByteSize()},
			{Name: "l field (bucket width)", TotalBytes: 8},
		},
	}
}
