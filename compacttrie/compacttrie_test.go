package compacttrie

import (
	"math"
	"testing"

	"github.com/DominikHorn/exotic-hashing/statichash"
	"github.com/stretchr/testify/require"
)

func TestQueryMatchesSortedRank(t *testing.T) {
	keys := []uint64{0, 1, 2, 3, 4, 5, 6, 10}
	trie := Build(keys, 8, statichash.Sentinel)

	for rank, k := range keys {
		require.Equal(t, uint64(rank), trie.Query(k), "key %d", k)
	}
}

func TestQueryUnsortedInput(t *testing.T) {
	keys := []uint64{6, 2, 10, 0, 4, 1, 5, 3}
	trie := Build(keys, 8, statichash.Sentinel)

	expected := map[uint64]uint64{0: 0, 1: 1, 2: 2, 3: 3, 4: 4, 5: 5, 6: 6, 10: 7}
	for k, want := range expected {
		require.Equal(t, want, trie.Query(k))
	}
}

func TestDuplicateKeysIgnored(t *testing.T) {
	keys := []uint64{3, 1, 3, 2, 1}
	trie := Build(keys, 8, statichash.Sentinel)

	require.Equal(t, 3, trie.Size())
	require.Equal(t, uint64(0), trie.Query(1))
	require.Equal(t, uint64(1), trie.Query(2))
	require.Equal(t, uint64(2), trie.Query(3))
}

func TestNotFoundSentinel(t *testing.T) {
	trie := Build([]uint64{0, 1, 2, 3, 4, 5, 6, 10}, 8, statichash.Sentinel)
	require.Equal(t, uint64(math.MaxUint64), trie.Query(7))
}

func TestNotFoundApproxRankNeverPanics(t *testing.T) {
	trie := Build([]uint64{0, 1, 2, 3, 4, 5, 6, 10}, 8, statichash.ApproxRank)
	require.NotPanics(t, func() {
		trie.Query(7)
		trie.Query(255)
	})
}

func TestSingleKey(t *testing.T) {
	trie := Build([]uint64{42}, 8, statichash.Sentinel)
	require.Equal(t, uint64(0), trie.Query(42))
}
