// Package tyresize parses loosely formatted tyre size strings into a
// normalised TyreSize and classifies each size into a vehicle segment.
package tyresize

import "fmt"

// Plausible ranges. Candidates outside these never become a TyreSize.
const (
	MinWidth  = 80
	MaxWidth  = 355
	MinAspect = 20
	MaxAspect = 95
	MinRim    = 10
	MaxRim    = 24
)

// TyreSize is a validated width/aspect/rim triple. The canonical string
// form (e.g. "225/45R19") is the identity used for de-duplication and
// file naming.
type TyreSize struct {
	Width  int // section width, mm
	Aspect int // aspect ratio, percent
	Rim    int // rim diameter, inches
}

// Canonical returns the normalised form, e.g. "225/45R19".
func (s TyreSize) Canonical() string {
	return fmt.Sprintf("%d/%dR%d", s.Width, s.Aspect, s.Rim)
}

// Slug returns the file-name form, e.g. "225-45-19".
func (s TyreSize) Slug() string {
	return fmt.Sprintf("%d-%d-%d", s.Width, s.Aspect, s.Rim)
}

// Phrase returns the spoken form used in keyword copy, e.g. "225 45 19".
func (s TyreSize) Phrase() string {
	return fmt.Sprintf("%d %d %d", s.Width, s.Aspect, s.Rim)
}

func (s TyreSize) String() string { return s.Canonical() }

// Valid reports whether all three fields sit inside the plausible ranges.
func (s TyreSize) Valid() bool {
	return s.Width >= MinWidth && s.Width <= MaxWidth &&
		s.Aspect >= MinAspect && s.Aspect <= MaxAspect &&
		s.Rim >= MinRim && s.Rim <= MaxRim
}

// Reasons for a ParseError.
const (
	ReasonNoMatch      = "no match found"
	ReasonMissingField = "missing field"
	ReasonRange        = "range violation"
)

// ParseError describes why an input did not yield a TyreSize. Parse
// failures are recoverable: bulk callers skip the item, single-size
// callers surface the message inline.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse tyre size %q: %s", e.Input, e.Reason)
}
