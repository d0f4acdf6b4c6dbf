// Package hollowtrie reinterprets a compacttrie.Trie as a flat Elias-δ
// encoded bitstream (spec §4.5): the "hollow" trie has no arena, no
// pointers, and no per-node heap allocation at query time. Leaves are
// pruned entirely — only internal nodes are encoded, depth-first preorder —
// and a leaf is instead detected structurally while decoding, by crossing
// the bit-position boundary of the nearest enclosing left subtree.
package hollowtrie

import (
	"math"

	"github.com/DominikHorn/exotic-hashing/bitconv"
	"github.com/DominikHorn/exotic-hashing/bitvector"
	"github.com/DominikHorn/exotic-hashing/compacttrie"
	"github.com/DominikHorn/exotic-hashing/elias"
	"github.com/DominikHorn/exotic-hashing/statichash"
)

// Trie is a succinct, pointer-free encoding of a compact trie's internal
// nodes. Each internal node contributes, in order: δ(|prefix|+1) and the
// prefix bits literally, δ(left_subtree_bitsize+1), and δ(left_leaf_count).
// The left subtree's encoding immediately follows the header, then the
// right subtree's (§4.5).
type Trie struct {
	bv       *bitvector.BV
	conv     bitconv.FixedBitConverter
	notFound statichash.NotFoundPolicy
	size     int

	// singleLeaf holds the sole key's bit expansion when size <= 1: a
	// single-leaf trie has no internal nodes and therefore an empty
	// encoding, so Query falls back to a direct comparison instead of
	// decoding a (nonexistent) header.
	singleLeaf []bool
}

// Build encodes src as a hollow trie. width and policy must match the
// values src was itself built with.
func Build(src *compacttrie.Trie, width int, policy statichash.NotFoundPolicy) *Trie {
	t := &Trie{bv: bitvector.New(), conv: bitconv.New(width), notFound: policy, size: src.Size()}

	if src.Size() == 1 {
		edge, _, _, _, _ := src.Node(src.Root())
		t.singleLeaf = edge
		return t
	}

	if src.Root() != 0 {
		encodeNode(src, src.Root(), t.bv)
	}
	return t
}

func encodeNode(src *compacttrie.Trie, idx uint32, out *bitvector.BV) {
	edge, left, right, isLeaf, _ := src.Node(idx)
	if isLeaf {
		return
	}

	leftBV := bitvector.New()
	encodeNode(src, left, leftBV)
	rightBV := bitvector.New()
	encodeNode(src, right, rightBV)

	leftLeafCount := leafCount(src, left)

	elias.EncodeDelta(out, uint64(len(edge)+1))
	for _, b := range edge {
		out.AppendBit(b)
	}
	elias.EncodeDelta(out, uint64(leftBV.Size()+1))
	elias.EncodeDelta(out, uint64(leftLeafCount))

	out.AppendBV(leftBV)
	out.AppendBV(rightBV)
}

func leafCount(src *compacttrie.Trie, idx uint32) int {
	if idx == 0 {
		return 0
	}
	_, left, right, isLeaf, _ := src.Node(idx)
	if isLeaf {
		return 1
	}
	return leafCount(src, left) + leafCount(src, right)
}

func (t *Trie) notFoundValue(acc uint64) uint64 {
	if t.notFound == statichash.ApproxRank {
		return acc
	}
	return math.MaxUint64
}

func equalBits(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Query returns rank(key; D) if key is in D, decoding the bitstream inline
// with no intermediate tree (§4.5, §7).
func (t *Trie) Query(key uint64) uint64 {
	bits := t.conv.Bits(key)

	if t.size == 0 {
		return t.notFoundValue(0)
	}
	if t.size == 1 {
		if equalBits(bits, t.singleLeaf) {
			return 0
		}
		return t.notFoundValue(0)
	}

	bitInd := 0
	keyInd := 0
	leftLeafCnt := uint64(0)
	leftmostRight := t.bv.Size()

	for {
		prefixLenPlus1, cursor := elias.DecodeDelta(t.bv, bitInd)
		prefixLen := int(prefixLenPlus1 - 1)
		prefixStart := cursor

		if keyInd+prefixLen > len(bits) {
			return t.notFoundValue(leftLeafCnt)
		}
		for j := 0; j < prefixLen; j++ {
			if bits[keyInd+j] != t.bv.Get(prefixStart+j) {
				return t.notFoundValue(leftLeafCnt)
			}
		}
		keyInd += prefixLen
		cursor = prefixStart + prefixLen

		leftBitSizePlus1, c2 := elias.DecodeDelta(t.bv, cursor)
		leftBitSize := int(leftBitSizePlus1 - 1)
		cursor = c2

		leftLeafCount, c3 := elias.DecodeDelta(t.bv, cursor)
		cursor = c3

		if keyInd >= len(bits) {
			return t.notFoundValue(leftLeafCnt)
		}

		if bits[keyInd] {
			// Right turn: skip the left subtree's encoding entirely.
			leftLeafCnt += leftLeafCount
			keyInd++
			bitInd = cursor + leftBitSize
			if bitInd >= leftmostRight {
				return leftLeafCnt
			}
		} else {
			// Left turn.
			if leftLeafCount == 1 {
				return leftLeafCnt
			}
			leftmostRight = cursor + leftBitSize
			keyInd++
			bitInd = cursor
		}
	}
}

// Size returns the number of distinct keys the trie was built over.
func (t *Trie) Size() int {
	return t.size
}

// ByteSize reports the resident size of the encoded bitstream.
func (t *Trie) ByteSize() int {
	return t.bv.ByteSize()
}

// Name identifies this structure for diagnostics.
func (t *Trie) Name() string {
	return "hollowtrie.Trie"
}
