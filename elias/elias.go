// Package elias implements Elias γ and δ prefix codes over a bitvector.BV,
// for positive integers (spec §4.2).
package elias

import (
	"math/bits"

	"github.com/DominikHorn/exotic-hashing/bitvector"
	"github.com/DominikHorn/exotic-hashing/internal/support"
)

func log2Floor(x uint64) int {
	return 63 - bits.LeadingZeros64(x)
}

// GammaLen returns the length in bits of the γ encoding of x (x >= 1).
func GammaLen(x uint64) int {
	support.BugOn(x == 0, "elias: gamma domain error, x must be >= 1")
	return 2*log2Floor(x) + 1
}

// DeltaLen returns the length in bits of the δ encoding of x (x >= 1).
func DeltaLen(x uint64) int {
	support.BugOn(x == 0, "elias: delta domain error, x must be >= 1")
	n := log2Floor(x)
	return n + 2*log2Floor(uint64(n+1)) + 1
}

// EncodeGamma appends the γ encoding of x (x >= 1) to bv: N = floor(log2 x)
// zero bits, one 1 bit, then the low N bits of x, most significant first.
// x == 1 emits a single 1 bit.
func EncodeGamma(bv *bitvector.BV, x uint64) {
	support.BugOn(x == 0, "elias: gamma domain error, x must be >= 1")
	n := log2Floor(x)
	for i := 0; i < n; i++ {
		bv.AppendBit(false)
	}
	bv.AppendBit(true)
	for i := n - 1; i >= 0; i-- {
		bv.AppendBit((x>>uint(i))&1 != 0)
	}
}

// DecodeGamma decodes a γ codeword from bv starting at cursor start, and
// returns the decoded value together with the new cursor position.
func DecodeGamma(bv *bitvector.BV, start int) (uint64, int) {
	n := bv.CountZeroes(start)
	if n == 0 {
		// x == 1, encoded as a single 1 bit.
		return 1, start + 1
	}

	// EncodeGamma writes the n low bits most-significant-bit first, so the
	// decode loop must read them in the same order rather than via
	// bitvector.Extract (which treats the lowest index as the result's LSB).
	res := uint64(1)
	cursor := start + n + 1
	for i := 0; i < n; i++ {
		res <<= 1
		if bv.Get(cursor + i) {
			res |= 1
		}
	}
	return res, cursor + n
}

// EncodeDelta appends the δ encoding of x (x >= 1): γ-encode N+1, then
// append the low N bits of x.
func EncodeDelta(bv *bitvector.BV, x uint64) {
	support.BugOn(x == 0, "elias: delta domain error, x must be >= 1")
	n := log2Floor(x)
	EncodeGamma(bv, uint64(n+1))
	for i := n - 1; i >= 0; i-- {
		bv.AppendBit((x>>uint(i))&1 != 0)
	}
}

// DecodeDelta decodes a δ codeword from bv starting at cursor start.
func DecodeDelta(bv *bitvector.BV, start int) (uint64, int) {
	nPlus1, cursor := DecodeGamma(bv, start)
	n := int(nPlus1 - 1)

	// EncodeDelta writes the n low bits most-significant-bit first, as
	// EncodeGamma does; read them back in the same order.
	res := uint64(1)
	for i := 0; i < n; i++ {
		res <<= 1
		if bv.Get(cursor + i) {
			res |= 1
		}
	}
	return res, cursor + n
}
