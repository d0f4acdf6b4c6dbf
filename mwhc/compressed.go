package mwhc

import (
	"github.com/DominikHorn/exotic-hashing/bitvector"
	"github.com/DominikHorn/exotic-hashing/hypergraph"
	"github.com/DominikHorn/exotic-hashing/internal/support"
)

// Compressed is the bit-width-compressed MWHC variant: the same per-vertex
// assignment as MWHC, packed into ceil(log2 n) bits each instead of a full
// uint64 (spec §4.7, SUPPLEMENTED FEATURES).
type Compressed struct {
	values *bitvector.BV
	hasher *hypergraph.MultiSeedHasher
	m, n   int
	width  int
}

// BuildCompressed constructs a width-compressed MWHC over keys.
func BuildCompressed(keys []uint64, seed uint64) (*Compressed, error) {
	assign, _, hasher, m, n, err := buildCore(keys, seed)
	if err != nil {
		return nil, err
	}

	width := widthFor(n)
	values := bitvector.New()
	for _, a := range assign {
		values.AppendWord(a, width, 0)
	}

	return &Compressed{values: values, hasher: hasher, m: m, n: n, width: width}, nil
}

// Query returns the index key was built at, for key in the build set.
func (c *Compressed) Query(key uint64) uint64 {
	if c.n == 0 {
		return 0
	}
	v := c.hasher.Vertices(key, c.m)
	sum := 0
	for _, vv := range v {
		base := vv * c.width
		sum += int(c.values.Extract(base, base+c.width))
	}
	return uint64(mod(sum, c.n))
}

// ByteSize reports the resident size of the packed assignment array plus a
// fixed 24-byte header (the hasher's 3 seeds).
func (c *Compressed) ByteSize() int {
	return c.values.ByteSize() + 24
}

// Report breaks ByteSize down into the width-packed value array and the
// fixed struct overhead (the hasher's 3 seeds).
func (c *Compressed) Report() support.Report {
	return support.Report{
		Name:       "mwhc.Compressed",
		TotalBytes: c.ByteSize(),
		Children: []support.Report{
			{Name: "values (width-packed)", TotalBytes: c.values.ByteSize()},
			{Name: "hasher seeds + header", TotalBytes: 24},
		},
	}
}

// Name identifies this structure for diagnostics.
func (c *Compressed) Name() string {
	return "mwhc.Compressed"
}
