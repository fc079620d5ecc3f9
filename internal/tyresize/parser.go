package tyresize

import (
	"regexp"
	"strconv"
	"strings"
)

// tripleRe matches a width/aspect/rim triple separated by "/", "-", "R"
// or whitespace, e.g. "225/45R19", "225 45 19", "225/45 19", "225-45-19".
var tripleRe = regexp.MustCompile(`(?i)\b(\d{2,3})\s*[\s/-]\s*(\d{2})\s*(?:[\s/-]|R)\s*(\d{2})\b`)

// pairRe recognises a two-field fragment so Parse can report a missing
// field instead of a generic no-match.
var pairRe = regexp.MustCompile(`(?i)^(\d{2,3})\s*[\s/R-]\s*(\d{2})$`)

var junkRe = regexp.MustCompile(`(?i)[^0-9R/\- ]`)

// Parse turns one raw size string into a normalised TyreSize. The whole
// input must be a single size; anything else fails with a ParseError
// describing the reason.
func Parse(raw string) (TyreSize, error) {
	cleaned := junkRe.ReplaceAllString(strings.TrimSpace(raw), " ")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if cleaned == "" {
		return TyreSize{}, &ParseError{Input: raw, Reason: ReasonNoMatch}
	}

	m := tripleRe.FindStringSubmatch(cleaned)
	if m == nil || m[0] != cleaned {
		if pairRe.MatchString(cleaned) {
			return TyreSize{}, &ParseError{Input: raw, Reason: ReasonMissingField}
		}
		return TyreSize{}, &ParseError{Input: raw, Reason: ReasonNoMatch}
	}

	size := toSize(m)
	if !size.Valid() {
		return TyreSize{}, &ParseError{Input: raw, Reason: ReasonRange}
	}
	return size, nil
}

// Scan extracts every plausible size from free-form text, in order of
// appearance. Out-of-range candidates are skipped and scanning continues;
// an empty result is not an error at this level.
func Scan(text string) []TyreSize {
	matches := tripleRe.FindAllStringSubmatch(text, -1)
	out := make([]TyreSize, 0, len(matches))
	for _, m := range matches {
		if size := toSize(m); size.Valid() {
			out = append(out, size)
		}
	}
	return out
}

func toSize(m []string) TyreSize {
	w, _ := strconv.Atoi(m[1])
	a, _ := strconv.Atoi(m[2])
	r, _ := strconv.Atoi(m[3])
	return TyreSize{Width: w, Aspect: a, Rim: r}
}
