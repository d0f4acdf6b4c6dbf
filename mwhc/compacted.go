package mwhc

import (
	"github.com/DominikHorn/exotic-hashing/bitvector"
	"github.com/DominikHorn/exotic-hashing/hypergraph"
	"github.com/DominikHorn/exotic-hashing/internal/support"
	"github.com/hillbig/rsdic"
)

// Compacted is the rank-1 compacted MWHC variant (SUPPLEMENTED FEATURES,
// grounded on the original CompressedSFMWHC): exactly n of the m vertices
// ever receive an assignment (one per peeled edge); the rest keep their
// default-zero value. Rather than storing m width-bit values, Compacted
// stores an m-bit "is this vertex a pivot" dictionary with O(1) rank
// support and a dense array of only the n real values, trading a rank
// query per vertex lookup for roughly (m-n)*width fewer bits resident.
type Compacted struct {
	pivots *rsdic.RSDic
	values *bitvector.BV
	hasher *hypergraph.MultiSeedHasher
	m, n   int
	width  int
}

// BuildCompacted constructs a rank-1 compacted MWHC over keys.
func BuildCompacted(keys []uint64, seed uint64) (*Compacted, error) {
	assign, isPivot, hasher, m, n, err := buildCore(keys, seed)
	if err != nil {
		return nil, err
	}

	width := widthFor(n)
	pivots := rsdic.New()
	values := bitvector.New()
	for v := 0; v < m; v++ {
		pivots.PushBack(isPivot[v])
		if isPivot[v] {
			values.AppendWord(assign[v], width, 0)
		}
	}

	return &Compacted{pivots: pivots, values: values, hasher: hasher, m: m, n: n, width: width}, nil
}

func (c *Compacted) valueAt(v int) int {
	if !c.pivots.Bit(uint64(v)) {
		return 0
	}
	idx := c.pivots.Rank(uint64(v), true)
	base := int(idx) * c.width
	return int(c.values.Extract(base, base+c.width))
}

// Query returns the index key was built at, for key in the build set.
func (c *Compacted) Query(key uint64) uint64 {
	if c.n == 0 {
		return 0
	}
	v := c.hasher.Vertices(key, c.m)
	sum := c.valueAt(v[0]) + c.valueAt(v[1]) + c.valueAt(v[2])
	return uint64(mod(sum, c.n))
}

// ByteSize reports the resident size of the pivot dictionary plus the dense
// value array plus a fixed 24-byte header (the hasher's 3 seeds).
func (c *Compacted) ByteSize() int {
	pivotBytes := 0
	if c.pivots != nil {
		pivotBytes = c.pivots.AllocSize()
	}
	return pivotBytes + c.values.ByteSize() + 24
}

// Report breaks ByteSize down into the rank-1 pivot dictionary and the
// dense value array it locates cells in.
func (c *Compacted) Report() support.Report {
	pivotBytes := 0
	if c.pivots != nil {
		pivotBytes = c.pivots.AllocSize()
	}
	return support.Report{
		Name:       "mwhc.Compacted",
		TotalBytes: c.ByteSize(),
		Children: []support.Report{
			{Name: "pivots (rsdic rank-1 dictionary)", TotalBytes: pivotBytes},
			{Name: "values (dense, width-packed)", TotalBytes: c.values.ByteSize()},
			{Name: "hasher seeds + header", TotalBytes: 24},
		},
	}
}

// Name identifies this structure for diagnostics.
func (c *Compacted) Name() string {
	return "mwhc.Compacted"
}
