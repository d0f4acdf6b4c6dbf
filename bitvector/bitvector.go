// Package bitvector implements a packed, mutable bit vector backed by an
// array of fixed-width storage words (spec §4.1). It is the shared succinct
// support layer every other package in this module builds on.
package bitvector

import (
	"math/bits"

	"github.com/DominikHorn/exotic-hashing/internal/support"
)

// wordBits is W, the storage word width.
const wordBits = 64

// BV is a packed sequence of bits over []uint64 storage. The zero value is
// an empty, usable bit vector.
type BV struct {
	storage []uint64
	size    int
}

// New returns an empty bit vector.
func New() *BV {
	return &BV{}
}

// NewWithGenerator builds a BV of size n where bit i equals f(i). Filling
// proceeds word by word to minimize per-bit overhead (§4.1).
func NewWithGenerator(n int, f func(i int) bool) *BV {
	wordCnt := (n + wordBits - 1) / wordBits
	bv := &BV{storage: make([]uint64, wordCnt), size: n}

	for u := 0; u < wordCnt; u++ {
		base := u * wordBits
		msb := wordBits
		if n-base < msb {
			msb = n - base
		}

		var word uint64
		for l := msb - 1; l >= 0; l-- {
			word <<= 1
			if f(base + l) {
				word |= 1
			}
		}
		bv.storage[u] = word
	}
	return bv
}

// NewFill returns an all-zero (b == false) or all-one (b == true) vector of
// size n.
func NewFill(n int, b bool) *BV {
	return NewWithGenerator(n, func(int) bool { return b })
}

// FromBools builds a BV from a []bool, preserving index order.
func FromBools(vals []bool) *BV {
	return NewWithGenerator(len(vals), func(i int) bool { return vals[i] })
}

// Size returns the number of bits stored.
func (bv *BV) Size() int {
	return bv.size
}

func unitIndex(i int) int      { return i / wordBits }
func unitLocalIndex(i int) int { return i % wordBits }

// Get returns bit i.
func (bv *BV) Get(i int) bool {
	support.BugOn(i < 0 || i >= bv.size, "bitvector: Get index %d out of bounds (size %d)", i, bv.size)
	return (bv.storage[unitIndex(i)]>>uint(unitLocalIndex(i)))&1 != 0
}

// Set assigns bit i.
func (bv *BV) Set(i int, val bool) {
	support.BugOn(i < 0 || i >= bv.size, "bitvector: Set index %d out of bounds (size %d)", i, bv.size)
	u, l := unitIndex(i), unitLocalIndex(i)
	if val {
		bv.storage[u] |= 1 << uint(l)
	} else {
		bv.storage[u] &^= 1 << uint(l)
	}
}

// AppendBit grows the vector by one bit.
func (bv *BV) AppendBit(val bool) {
	idx := bv.size
	bv.size++

	u := unitIndex(idx)
	if u >= len(bv.storage) {
		bv.storage = append(bv.storage, 0)
	}
	if val {
		bv.storage[u] |= 1 << uint(unitLocalIndex(idx))
	}
}

// AppendWord appends cnt bits taken from v starting at bit start (LSB
// indexed). cnt must be in [1, W]. Handles the three sub-cases: the current
// trailing word is empty/nonexistent, the bits fit entirely in the current
// word, or they overflow into a new word (§4.1).
func (bv *BV) AppendWord(v uint64, cnt int, start int) {
	support.BugOn(cnt <= 0 || cnt > wordBits, "bitvector: AppendWord cnt %d out of [1, %d]", cnt, wordBits)

	var mask uint64
	if cnt >= wordBits {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << uint(cnt)) - 1
	}
	data := (v >> uint(start)) & mask

	uInd := unitIndex(bv.size)
	lInd := unitLocalIndex(bv.size)

	if uInd >= len(bv.storage) {
		// empty trailing word: this append starts a fresh storage unit.
		bv.storage = append(bv.storage, data)
	} else {
		// same-word append (possibly followed by overflow below).
		bv.storage[uInd] |= data << uint(lInd)
	}

	lowerBitCnt := wordBits - lInd
	if cnt > lowerBitCnt {
		// overflow into a new word.
		bv.storage = append(bv.storage, data>>uint(lowerBitCnt))
	}

	bv.size += cnt
}

// AppendBV concatenates other onto bv.
func (bv *BV) AppendBV(other *BV) {
	for i := 0; i < other.size; {
		remaining := other.size - i
		take := wordBits
		if remaining < take {
			take = remaining
		}
		word := other.Extract(i, i+take)
		bv.AppendWord(word, take, 0)
		i += take
	}
}

// Extract returns bits [lo, hi) packed into a storage word. Requires
// hi - lo <= W. Handles the same-word case (mask + shift) and the
// word-straddling case, guarding the degenerate shift of exactly W (§4.1).
func (bv *BV) Extract(lo, hi int) uint64 {
	support.BugOn(lo < 0 || hi < lo || hi > bv.size, "bitvector: Extract [%d, %d) out of bounds (size %d)", lo, hi, bv.size)
	n := hi - lo
	support.BugOn(n > wordBits, "bitvector: Extract range %d exceeds word width %d", n, wordBits)
	if n == 0 {
		return 0
	}

	startU, startL := unitIndex(lo), unitLocalIndex(lo)
	stopU := unitIndex(hi)

	if startU == stopU {
		var mask uint64
		if n >= wordBits {
			mask = ^uint64(0)
		} else {
			mask = (uint64(1) << uint(n)) - 1
		}
		return (bv.storage[startU] >> uint(startL)) & mask
	}

	stopL := unitLocalIndex(hi)
	var upper uint64
	if stopL != 0 {
		// stopL == 0 means hi lands exactly on a word boundary: no bits are
		// needed from storage[stopU], which may not even exist (hi == size
		// and size is a multiple of wordBits puts stopU one past the last
		// populated word).
		upperMask := (uint64(1) << uint(stopL)) - 1
		upper = bv.storage[stopU] & upperMask
	}
	lower := bv.storage[startU] >> uint(startL)

	shift := wordBits - startL
	if shift >= wordBits {
		// degenerate: startL == 0, the low word fills the whole range already.
		return lower
	}
	return (upper << uint(shift)) | lower
}

// CountZeroes returns the length of the zero run beginning at bit i: the
// distance to the first set bit, or to the end of the vector if none exists
// in the remainder (§4.1).
func (bv *BV) CountZeroes(i int) int {
	support.BugOn(i < 0 || i >= bv.size, "bitvector: CountZeroes index %d out of bounds (size %d)", i, bv.size)

	lInd := unitLocalIndex(i)
	firstSet := 0
	for u := unitIndex(i); u < len(bv.storage); u++ {
		val := bv.storage[u] >> uint(lInd)
		if val > 0 {
			return firstSet + bits.TrailingZeros64(val)
		}
		firstSet += wordBits - lInd
		lInd = 0
	}

	// No set bit found: account for the unused tail bits in the last word
	// being zero by construction, and report distance to end-of-vector.
	return firstSet - (wordBits*len(bv.storage) - bv.size)
}

// Matches reports whether, for every j with start+j < Size() and j <
// prefix.Size(), bv's bit at start+j equals prefix's bit at j. Matching
// stops at the shorter side (§4.1).
func (bv *BV) Matches(prefix *BV, start int) bool {
	for i := 0; i+start < bv.size && i < prefix.size; i++ {
		if bv.Get(i+start) != prefix.Get(i) {
			return false
		}
	}
	return true
}

// Slice returns a new BV containing bits [lo, hi) of bv.
func (bv *BV) Slice(lo, hi int) *BV {
	support.BugOn(lo < 0 || hi < lo || hi > bv.size, "bitvector: Slice [%d, %d) out of bounds (size %d)", lo, hi, bv.size)
	return NewWithGenerator(hi-lo, func(i int) bool { return bv.Get(lo + i) })
}

// ByteSize reports the resident size of the backing storage plus a fixed
// 16-byte header.
func (bv *BV) ByteSize() int {
	return len(bv.storage)*8 + 16
}
