package content

import (
	"sort"

	"tyrepage/internal/tyresize"
)

// RelatedSizes picks 4-5 canonical strings from the pool, excluding the
// size itself, nearest by rim diameter then width then canonical string.
// When the pool cannot supply four, deterministic neighbour synthesis
// tops the list up so single-size runs still get a full section.
func RelatedSizes(size tyresize.TyreSize, segment tyresize.Segment, pool []tyresize.TyreSize) []string {
	self := size.Canonical()
	seen := map[string]struct{}{self: {}}
	candidates := make([]tyresize.TyreSize, 0, len(pool))
	for _, p := range pool {
		c := p.Canonical()
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		candidates = append(candidates, p)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if d := abs(a.Rim-size.Rim) - abs(b.Rim-size.Rim); d != 0 {
			return d < 0
		}
		if d := abs(a.Width-size.Width) - abs(b.Width-size.Width); d != 0 {
			return d < 0
		}
		return a.Canonical() < b.Canonical()
	})

	out := make([]string, 0, RelatedMax)
	for _, c := range candidates {
		if len(out) == RelatedMax {
			break
		}
		out = append(out, c.Canonical())
	}
	if len(out) >= RelatedMin {
		return out
	}

	for _, n := range neighbours(size, segment) {
		if len(out) == RelatedMax {
			break
		}
		c := n.Canonical()
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// neighbours proposes realistic nearby sizes: one step in width, aspect
// or rim, plus segment-flavoured tweaks, clamped to the plausible ranges.
func neighbours(size tyresize.TyreSize, segment tyresize.Segment) []tyresize.TyreSize {
	w, a, r := size.Width, size.Aspect, size.Rim
	out := []tyresize.TyreSize{
		{Width: clampWidth(w + 10), Aspect: a, Rim: r},
		{Width: clampWidth(w - 10), Aspect: a, Rim: r},
		{Width: w, Aspect: clampAspect(a + 5), Rim: r},
		{Width: w, Aspect: clampAspect(a - 5), Rim: r},
		{Width: w, Aspect: a, Rim: clampRim(r + 1)},
		{Width: w, Aspect: a, Rim: clampRim(r - 1)},
	}
	switch segment {
	case tyresize.SegmentFourWheel, tyresize.SegmentSUV:
		out = append(out,
			tyresize.TyreSize{Width: clampWidth(w + 20), Aspect: clampAspect(a + 5), Rim: r},
			tyresize.TyreSize{Width: clampWidth(w + 10), Aspect: a, Rim: clampRim(r + 1)},
		)
	case tyresize.SegmentPerformance:
		out = append(out,
			tyresize.TyreSize{Width: clampWidth(w + 10), Aspect: clampAspect(a - 5), Rim: r},
			tyresize.TyreSize{Width: w, Aspect: clampAspect(a - 5), Rim: clampRim(r + 1)},
		)
	}
	// Second ring, for sizes near the range edges where one-step
	// candidates clamp back onto the size itself.
	out = append(out,
		tyresize.TyreSize{Width: clampWidth(w + 20), Aspect: a, Rim: r},
		tyresize.TyreSize{Width: clampWidth(w - 20), Aspect: a, Rim: r},
		tyresize.TyreSize{Width: w, Aspect: clampAspect(a + 10), Rim: r},
		tyresize.TyreSize{Width: w, Aspect: clampAspect(a - 10), Rim: r},
		tyresize.TyreSize{Width: w, Aspect: a, Rim: clampRim(r + 2)},
		tyresize.TyreSize{Width: w, Aspect: a, Rim: clampRim(r - 2)},
	)
	return out
}

func clampWidth(v int) int  { return clamp(v, tyresize.MinWidth, tyresize.MaxWidth) }
func clampAspect(v int) int { return clamp(v, tyresize.MinAspect, tyresize.MaxAspect) }
func clampRim(v int) int    { return clamp(v, tyresize.MinRim, tyresize.MaxRim) }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
