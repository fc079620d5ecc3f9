// Package sanitise post-processes generated copy: long dashes become
// commas or full stops, whitespace runs collapse, and a fixed table of
// spelling variants is rewritten to Australian English. Sanitisation is
// pure and idempotent; word counts are always measured on its output.
package sanitise

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// longDashes are the characters that must never appear in output: em
// dash, en dash, horizontal bar, figure dash.
const longDashes = "—–―‒"

type spellingRule struct {
	re   *regexp.Regexp
	repl string
}

// Sanitizer applies the fixed substitution rules. The spelling table is
// injected (product copy decision, not engineering), so construct one
// from the loaded copy rules rather than sharing a global.
type Sanitizer struct {
	rules []spellingRule
}

// New builds a Sanitizer from a variant → Australian spelling table.
// Matches are whole-word and case-aware for an initial capital.
func New(spellings map[string]string) *Sanitizer {
	words := make([]string, 0, len(spellings))
	for w := range spellings {
		words = append(words, w)
	}
	sort.Strings(words)

	s := &Sanitizer{rules: make([]spellingRule, 0, len(words)*2)}
	for _, w := range words {
		repl := spellings[w]
		s.rules = append(s.rules,
			spellingRule{regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`), repl},
			spellingRule{regexp.MustCompile(`\b` + regexp.QuoteMeta(capitalise(w)) + `\b`), capitalise(repl)},
		)
	}
	return s
}

// Apply sanitises one text block. Applying it twice gives the same
// result as applying it once.
func (s *Sanitizer) Apply(text string) string {
	if text == "" {
		return ""
	}
	text = replaceDashes(text)
	for _, r := range s.rules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return collapseWhitespace(text)
}

// replaceDashes substitutes every long dash, together with any
// whitespace hugging it, by ", " when the next visible rune is a
// lowercase letter (sentence-internal) and ". " otherwise. The rule is
// fixed so reruns produce identical text.
func replaceDashes(text string) string {
	if !strings.ContainsAny(text, longDashes) {
		return text
	}
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	i := 0
	for i < len(runes) {
		if !strings.ContainsRune(longDashes, runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		// Swallow surrounding whitespace and any dash run.
		trimmed := strings.TrimRight(b.String(), " \t\n")
		b.Reset()
		b.WriteString(trimmed)
		for i < len(runes) && (strings.ContainsRune(longDashes, runes[i]) || unicode.IsSpace(runes[i])) {
			i++
		}
		if i >= len(runes) {
			b.WriteString(".")
			break
		}
		if unicode.IsLower(runes[i]) {
			b.WriteString(", ")
		} else {
			b.WriteString(". ")
		}
	}
	return b.String()
}

func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func capitalise(w string) string {
	if w == "" {
		return w
	}
	r := []rune(w)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
