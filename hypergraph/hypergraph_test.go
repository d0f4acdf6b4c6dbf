package hypergraph

import (
	"testing"

	"github.com/DominikHorn/exotic-hashing/internal/support"
	"github.com/stretchr/testify/require"
)

func buildDistinctEdges(t *testing.T, n int, seed uint64) (*MultiSeedHasher, int, func(e int) [3]int) {
	t.Helper()
	m := VertexCount(n)
	seeder := support.NewSeeder(seed)

	for attempt := 0; attempt < 32; attempt++ {
		hasher := NewMultiSeedHasher(seeder)
		vertexOf := make([][3]int, n)
		ok := true
		for e := 0; e < n; e++ {
			v := hasher.Vertices(uint64(e*2654435761+1), m)
			if !Distinct(v) {
				ok = false
				break
			}
			vertexOf[e] = v
		}
		if ok {
			return hasher, m, func(e int) [3]int { return vertexOf[e] }
		}
	}
	t.Fatal("could not build a hypergraph with all-distinct edges")
	return nil, 0, nil
}

func TestPeelSmallAcyclicHypergraph(t *testing.T) {
	n := 200
	_, m, vertexOf := buildDistinctEdges(t, n, 42)

	steps, ok := Peel(n, m, vertexOf)
	require.True(t, ok, "expected a peelable hypergraph with headroom c=1.35")
	require.Len(t, steps, n)

	seen := make(map[int]bool, n)
	for _, s := range steps {
		require.False(t, seen[s.Edge], "edge %d peeled twice", s.Edge)
		seen[s.Edge] = true
	}
	require.Len(t, seen, n)
}

func TestPeelDetectsNonEmptyCore(t *testing.T) {
	// 3 edges sharing only 3 vertices (a tight triangle-like cycle) cannot be
	// peeled: every vertex has degree >= 2.
	vertexOf := func(e int) [3]int {
		return [3][3]int{{0, 1, 2}, {0, 1, 2}, {0, 1, 2}}[e]
	}
	_, ok := Peel(3, 3, vertexOf)
	require.False(t, ok)
}

func TestPeelSingleEdge(t *testing.T) {
	vertexOf := func(int) [3]int { return [3]int{0, 1, 2} }
	steps, ok := Peel(1, 3, vertexOf)
	require.True(t, ok)
	require.Len(t, steps, 1)
	require.Equal(t, 0, steps[0].Edge)
}

func TestVertexCountHeadroom(t *testing.T) {
	require.Equal(t, 1, VertexCount(0))
	require.GreaterOrEqual(t, VertexCount(100), 123)
}
