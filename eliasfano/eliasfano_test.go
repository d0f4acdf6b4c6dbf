package eliasfano

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExampleSequence(t *testing.T) {
	values := []uint64{2, 3, 5, 7, 11, 13, 24}
	lst := Build(values)

	require.Equal(t, len(values), lst.Size())
	for i, want := range values {
		require.Equal(t, want, lst.At(i), "index %d", i)
	}
}

func TestRunsAndDuplicates(t *testing.T) {
	values := []uint64{0, 0, 0, 1, 4, 4, 100, 1000}
	lst := Build(values)
	for i, want := range values {
		require.Equal(t, want, lst.At(i))
	}
}

func TestSingleElement(t *testing.T) {
	lst := Build([]uint64{42})
	require.Equal(t, uint64(42), lst.At(0))
}

func TestLargeMonotoneSequence(t *testing.T) {
	n := 5000
	values := make([]uint64, n)
	acc := uint64(0)
	for i := range values {
		acc += uint64(i%7) + 1
		values[i] = acc
	}

	lst := Build(values)
	for i, want := range values {
		require.Equal(t, want, lst.At(i), "index %d", i)
	}
}

func TestEmpty(t *testing.T) {
	lst := Build(nil)
	require.Equal(t, 0, lst.Size())
}

func TestReportBreakdownSumsToByteSize(t *testing.T) {
	lst := Build([]uint64{2, 3, 5, 7, 11, 13, 24})

	r := lst.Report()
	require.Equal(t, "eliasfano.List", r.Name)
	require.Equal(t, lst.ByteSize(), r.TotalBytes)

	sum := 0
	for _, c := range r.Children {
		sum += c.TotalBytes
	}
	require.Equal(t, r.TotalBytes, sum)
	require.Contains(t, r.String(), "upper")
	require.Contains(t, r.String(), "lower")
}
