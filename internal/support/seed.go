package support

import (
	"time"

	"golang.org/x/exp/rand"
)

// Seeder produces a deterministic stream of 64-bit seeds from a single root
// seed, so that structures whose construction retries on failure (hypergraph
// peeling, MWHC) remain reproducible in tests (§5: "construction is
// deterministic given the RNG seed").
type Seeder struct {
	r *rand.Rand
}

// NewSeeder builds a deterministic seeder from a caller-supplied root seed.
func NewSeeder(seed uint64) *Seeder {
	return &Seeder{r: rand.New(rand.NewSource(seed))}
}

// NewEntropySeeder builds a seeder rooted in system entropy, for callers that
// don't need reproducibility (the thin wrapper §9.1 describes).
func NewEntropySeeder() *Seeder {
	return NewSeeder(uint64(time.Now().UnixNano()))
}

// Next returns the next 64-bit seed in the stream.
func (s *Seeder) Next() uint64 {
	return s.r.Uint64()
}

// NextTriple returns three independent seeds, as used by the multi-seed
// hash's hypergraph edge construction.
func (s *Seeder) NextTriple() (uint64, uint64, uint64) {
	return s.Next(), s.Next(), s.Next()
}
