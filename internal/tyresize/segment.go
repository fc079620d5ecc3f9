package tyresize

// Segment is the inferred vehicle-use category for a size. It shapes the
// tone and bullet content of generated copy.
type Segment string

const (
	SegmentPassenger   Segment = "passenger"
	SegmentSUV         Segment = "suv"
	SegmentFourWheel   Segment = "4x4"
	SegmentPerformance Segment = "performance"
)

type segmentRule struct {
	match   func(TyreSize) bool
	segment Segment
}

// segmentRules is evaluated top to bottom; the first match wins. The
// order is load-bearing: boundary sizes can satisfy several predicates
// (235/60R16 is 4x4, not suv).
var segmentRules = []segmentRule{
	{func(s TyreSize) bool { return s.Aspect <= 40 && s.Rim >= 18 }, SegmentPerformance},
	{func(s TyreSize) bool { return s.Width >= 235 && s.Rim >= 16 && s.Aspect >= 60 }, SegmentFourWheel},
	{func(s TyreSize) bool { return s.Rim >= 17 && s.Aspect >= 45 && s.Aspect <= 65 }, SegmentSUV},
}

// Classify maps a valid TyreSize to exactly one Segment. Total: sizes
// matching no rule are passenger.
func Classify(size TyreSize) Segment {
	for _, rule := range segmentRules {
		if rule.match(size) {
			return rule.segment
		}
	}
	return SegmentPassenger
}
