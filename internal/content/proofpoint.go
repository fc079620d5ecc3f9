// Package content composes the generated blocks for a tyre size: proof
// point assignment, copy generation under word and count constraints,
// related-size selection and structured-data records.
package content

import (
	"hash/fnv"

	"tyrepage/internal/tyresize"
)

// ProofPointSelector assigns one phrase from a fixed pool to each unique
// size in a batch run. State is scoped to the run and passed explicitly;
// two runs over the same batch produce identical assignments.
type ProofPointSelector struct {
	pool     []string
	assigned map[string]string
	lastUsed map[string]int
	seq      int
}

func NewProofPointSelector(pool []string) *ProofPointSelector {
	return &ProofPointSelector{
		pool:     pool,
		assigned: map[string]string{},
		lastUsed: map[string]int{},
	}
}

// Select returns the phrase for a size, assigning one on first sight.
// The canonical string hashes to a starting offset; linear probing from
// there finds the first unused phrase, so no two sizes share a phrase
// while unused phrases remain. Once the pool is exhausted the
// least-recently-assigned phrase is recycled.
func (s *ProofPointSelector) Select(size tyresize.TyreSize) string {
	canonical := size.Canonical()
	if phrase, ok := s.assigned[canonical]; ok {
		return phrase
	}

	offset := hashOffset(canonical, len(s.pool))
	phrase := ""
	for i := 0; i < len(s.pool); i++ {
		candidate := s.pool[(offset+i)%len(s.pool)]
		if _, used := s.lastUsed[candidate]; !used {
			phrase = candidate
			break
		}
	}
	if phrase == "" {
		phrase = s.leastRecent()
	}

	s.seq++
	s.assigned[canonical] = phrase
	s.lastUsed[phrase] = s.seq
	return phrase
}

func (s *ProofPointSelector) leastRecent() string {
	best := ""
	bestSeq := 0
	for _, phrase := range s.pool {
		seq := s.lastUsed[phrase]
		if best == "" || seq < bestSeq {
			best = phrase
			bestSeq = seq
		}
	}
	return best
}

func hashOffset(canonical string, poolLen int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(canonical))
	return int(h.Sum32() % uint32(poolLen))
}
