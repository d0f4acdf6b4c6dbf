// Package hypergraph builds and peels the random 3-uniform hypergraphs the
// MWHC family solves over (spec §4.6): each key becomes a hyperedge over 3
// vertices drawn from a multi-seed keyed hash, and a construction succeeds
// iff the hypergraph is peelable (has an empty 2-core).
package hypergraph

import (
	"math"
	"math/bits"

	"github.com/DominikHorn/exotic-hashing/internal/support"
	"github.com/zeebo/xxh3"
)

// MultiSeedHasher derives a key's 3 hyperedge vertices from 3 independent
// seeds, so that a failed (unpeelable) construction can be retried with a
// fresh, statistically independent hypergraph (§5).
type MultiSeedHasher struct {
	seed0, seed1, seed2 uint64
}

// NewMultiSeedHasher draws 3 fresh seeds from seeder.
func NewMultiSeedHasher(seeder *support.Seeder) *MultiSeedHasher {
	s0, s1, s2 := seeder.NextTriple()
	return &MultiSeedHasher{seed0: s0, seed1: s1, seed2: s2}
}

// reduce maps a uniformly distributed 64-bit hash into [0, m) via the
// multiply-high trick, avoiding the bias and division cost of hash % m.
func reduce(h uint64, m int) int {
	hi, _ := bits.Mul64(h, uint64(m))
	return int(hi)
}

// Vertices returns the 3 hyperedge vertices key maps to in a hypergraph of
// m vertices.
func (h *MultiSeedHasher) Vertices(key uint64, m int) [3]int {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(key >> uint(8*i))
	}

	h0 := xxh3.HashSeed(buf[:], h.seed0)
	h1 := xxh3.HashSeed(buf[:], h.seed1)
	h2 := xxh3.HashSeed(buf[:], h.seed2)

	return [3]int{reduce(h0, m), reduce(h1, m), reduce(h2, m)}
}

// Distinct reports whether a vertex triple is pairwise distinct, the
// precondition for a well-formed hyperedge. Peel and the MWHC assignment
// sum treat a triple's three entries independently, so a degenerate edge
// (two of the three vertices coincide) would have its repeated vertex
// counted twice; callers reject such triples before peeling.
func Distinct(v [3]int) bool {
	return v[0] != v[1] && v[1] != v[2] && v[0] != v[2]
}

// VertexCount returns a vertex count comfortably above the peelability
// threshold for random 3-uniform hypergraphs. c* ≈ 1.23 vertices per edge is
// only the asymptotic core threshold: the transition has width O(n^-1/3),
// so at the hundreds-to-thousands of keys this library targets, staying
// right at c* leaves a non-negligible chance that any single hypergraph has
// a non-empty 2-core. Budgeting c = 1.35 plus a small additive constant
// pushes construction safely outside that window so maxAttempts (§7) only
// has to absorb ordinary variance, not a structural near-threshold bias.
func VertexCount(n int) int {
	if n == 0 {
		return 1
	}
	return int(math.Ceil(float64(n)*1.35)) + 16
}

// PeelStep records one step of a successful peel: edge was removed because
// vertex had become its last remaining incident vertex.
type PeelStep struct {
	Edge   int
	Vertex int
}

// packedVertex packs a vertex's incidence state into one word: degree (the
// count of not-yet-peeled incident edges) in the high 32 bits, and the XOR
// of those edges' indices in the low 32 bits. A degree-1 vertex's XOR
// accumulator is exactly its one remaining edge's index, letting Peel
// recover that edge without ever storing an explicit incidence list (§4.6).
type packedVertex uint64

func packVertex(degree uint32, edgeXOR uint32) packedVertex {
	return packedVertex(uint64(degree)<<32 | uint64(edgeXOR))
}

func (p packedVertex) degree() uint32 {
	return uint32(p >> 32)
}

func (p packedVertex) edgeXOR() uint32 {
	return uint32(p)
}

func (p packedVertex) toggle(edge int) packedVertex {
	return packVertex(p.degree()+1, p.edgeXOR()^uint32(edge))
}

func (p packedVertex) untoggle(edge int) packedVertex {
	return packVertex(p.degree()-1, p.edgeXOR()^uint32(edge))
}

// Peel attempts to peel a hypergraph of n edges over m vertices, where
// vertexOf(e) returns e's 3 (assumed pairwise distinct) vertices. It
// returns the edges in peel order (leaves removed first) and whether every
// edge was peeled; a false return means the hypergraph has a non-empty
// 2-core and construction must retry with fresh seeds (§5, §7).
//
// The pending-vertex queue doubles as its own work vector: vertices
// discovered to have become degree-1 are appended past the current read
// cursor, so the whole peel runs over one growing slice with no recursion
// and no separate allocation per round (Design Note 9.3).
func Peel(n, m int, vertexOf func(e int) [3]int) ([]PeelStep, bool) {
	support.BugOn(n >= 1<<32, "hypergraph: %d edges overflow the 32-bit XOR accumulator in packedVertex", n)

	vertices := make([]packedVertex, m)
	for e := 0; e < n; e++ {
		for _, v := range vertexOf(e) {
			vertices[v] = vertices[v].toggle(e)
		}
	}

	queue := make([]int, 0, m)
	for v := 0; v < m; v++ {
		if vertices[v].degree() == 1 {
			queue = append(queue, v)
		}
	}

	removed := make([]bool, n)
	steps := make([]PeelStep, 0, n)

	for head := 0; head < len(queue); head++ {
		v := queue[head]
		if vertices[v].degree() != 1 {
			continue
		}
		e := int(vertices[v].edgeXOR())
		if removed[e] {
			continue
		}
		removed[e] = true
		steps = append(steps, PeelStep{Edge: e, Vertex: v})

		for _, ov := range vertexOf(e) {
			vertices[ov] = vertices[ov].untoggle(e)
			if vertices[ov].degree() == 1 {
				queue = append(queue, ov)
			}
		}
	}

	return steps, len(steps) == n
}
