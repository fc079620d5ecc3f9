package content

import (
	"errors"

	"tyrepage/internal/sanitise"
	"tyrepage/internal/tyresize"
)

// ErrEmptyBatch means no valid size survived parsing; fatal for the bulk
// path.
var ErrEmptyBatch = errors.New("no valid tyre sizes found")

// Batch is the ordered set of unique sizes for one run. It owns the
// proof-point selector (so uniqueness holds across the whole run) and
// the related-sizes pool. Proof points are assigned up front, in batch
// order, which keeps per-size bundle building pure and freely
// parallelisable afterwards.
type Batch struct {
	Sizes []tyresize.TyreSize

	selector *ProofPointSelector
	pool     []tyresize.TyreSize
}

// NewBatch de-duplicates sizes by canonical string (first-seen order
// kept), assigns proof points, and fixes the related pool: the batch's
// own sizes topped up with the default popular pool.
func NewBatch(sizes []tyresize.TyreSize, proofPool []string, popular []tyresize.TyreSize) (*Batch, error) {
	seen := map[string]struct{}{}
	unique := make([]tyresize.TyreSize, 0, len(sizes))
	for _, s := range sizes {
		c := s.Canonical()
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, s)
	}
	if len(unique) == 0 {
		return nil, ErrEmptyBatch
	}

	b := &Batch{
		Sizes:    unique,
		selector: NewProofPointSelector(proofPool),
		pool:     append(append([]tyresize.TyreSize{}, unique...), popular...),
	}
	for _, s := range unique {
		b.selector.Select(s)
	}
	return b, nil
}

// ProofPoint returns the phrase assigned to a batch member.
func (b *Batch) ProofPoint(size tyresize.TyreSize) string {
	return b.selector.Select(size)
}

// Build generates, sanitises and validates the bundle for one size.
func (b *Batch) Build(size tyresize.TyreSize, s *sanitise.Sanitizer) (ContentBundle, error) {
	segment := tyresize.Classify(size)
	bundle := Generate(size, segment, b.ProofPoint(size), b.pool)
	bundle = bundle.Sanitised(s)
	if err := bundle.Validate(); err != nil {
		return ContentBundle{}, err
	}
	return bundle, nil
}
