// Package mwhc implements the Majewski–Wormald–Havas–Czech construction
// (spec §4.6, §4.7): a random 3-uniform hypergraph is peeled edge by edge,
// then vertex values are assigned in reverse peel order so that, for every
// key's hyperedge, the sum of its 3 vertex values modulo n reproduces the
// key's target value. Because every key's hyperedge supplies its own array
// index as the target, a single MWHC is simultaneously a minimal perfect
// hash (a bijection onto [0, n)) and an order-preserving MPHF (Query always
// reproduces the position the key was built at) — §9, Open Question.
package mwhc

import (
	"math/bits"

	"github.com/DominikHorn/exotic-hashing/hypergraph"
	"github.com/DominikHorn/exotic-hashing/internal/support"
	"github.com/DominikHorn/exotic-hashing/statichash"
)

// maxAttempts bounds retries with fresh seeds before giving up on an
// unpeelable hypergraph (§7: ConstructionFailed). Combined with
// hypergraph.VertexCount's headroom above the asymptotic peelability
// threshold, this keeps residual construction failure negligible across the
// key-set sizes this library targets.
const maxAttempts = 64

// mod normalizes a%n into [0, n): Go's % can return a negative result when
// a is negative, which the reverse-assignment's target-minus-sum difference
// routinely is (Design Note 9.4).
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func widthFor(n int) int {
	if n <= 1 {
		return 1
	}
	return bits.Len64(uint64(n - 1))
}

// buildCore runs the peel-then-assign construction shared by every MWHC
// variant, returning the raw per-vertex assignment array, a parallel
// is-pivot marker (true where a vertex actually received an edge's
// assignment, false where it keeps its default-zero value), the hasher
// that produced the accepted hypergraph, and the final vertex/edge counts.
func buildCore(keys []uint64, seed uint64) (assign []uint64, isPivot []bool, hasher *hypergraph.MultiSeedHasher, m, n int, err error) {
	n = len(keys)
	if n == 0 {
		return []uint64{}, []bool{}, nil, 0, 0, nil
	}

	m = hypergraph.VertexCount(n)
	seeder := support.NewSeeder(seed)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		h := hypergraph.NewMultiSeedHasher(seeder)
		vertsOf := make([][3]int, n)

		degenerate := false
		for e, k := range keys {
			v := h.Vertices(k, m)
			if !hypergraph.Distinct(v) {
				degenerate = true
				break
			}
			vertsOf[e] = v
		}
		if degenerate {
			continue
		}

		steps, ok := hypergraph.Peel(n, m, func(e int) [3]int { return vertsOf[e] })
		if !ok {
			continue
		}

		a := make([]uint64, m)
		pivot := make([]bool, m)
		for i := len(steps) - 1; i >= 0; i-- {
			step := steps[i]
			verts := vertsOf[step.Edge]

			sum := 0
			for _, v := range verts {
				if v != step.Vertex {
					sum += int(a[v])
				}
			}
			a[step.Vertex] = uint64(mod(step.Edge-sum, n))
			pivot[step.Vertex] = true
		}

		return a, pivot, h, m, n, nil
	}

	return nil, nil, nil, 0, 0, statichash.NewError(statichash.ConstructionFailed,
		"hypergraph peeling did not converge after %d attempts (n=%d)", maxAttempts, n)
}

// MWHC is the uncompressed construction: one full uint64 per vertex.
type MWHC struct {
	assign []uint64
	hasher *hypergraph.MultiSeedHasher
	m, n   int
}

// Build constructs an MWHC over keys. seed makes construction reproducible:
// the same keys and seed always yield the same hypergraph and assignment.
func Build(keys []uint64, seed uint64) (*MWHC, error) {
	assign, _, hasher, m, n, err := buildCore(keys, seed)
	if err != nil {
		return nil, err
	}
	return &MWHC{assign: assign, hasher: hasher, m: m, n: n}, nil
}

// Query returns the index key was built at, for key in the build set.
// Behavior for keys outside the build set is unspecified (§7).
func (mw *MWHC) Query(key uint64) uint64 {
	if mw.n == 0 {
		return 0
	}
	v := mw.hasher.Vertices(key, mw.m)
	sum := int(mw.assign[v[0]]) + int(mw.assign[v[1]]) + int(mw.assign[v[2]])
	return uint64(mod(sum, mw.n))
}

// ByteSize reports the resident size of the assignment array plus a fixed
// 24-byte header (the hasher's 3 seeds).
func (mw *MWHC) ByteSize() int {
	return len(mw.assign)*8 + 24
}

// Report breaks ByteSize down into the per-vertex assignment array and the
// fixed struct overhead (the hasher's 3 seeds).
func (mw *MWHC) Report() support.Report {
	return support.Report{
		Name:       "mwhc.MWHC",
		TotalBytes: mw.ByteSize(),
		Children: []support.Report{
			{Name: "assignment (uint64 per vertex)", TotalBytes: len(mw.assign) * 8},
			{Name: "hasher seeds + header", TotalBytes: 24},
		},
	}
}

// Name identifies this structure for diagnostics.
func (mw *MWHC) Name() string {
	return "mwhc.MWHC"
}
