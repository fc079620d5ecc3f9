package sanitise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSpellings = map[string]string{
	"tire":  "tyre",
	"tires": "tyres",
	"color": "colour",
}

func TestApplyDashes(t *testing.T) {
	s := New(testSpellings)
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"sentence internal", "smooth ride — great value", "smooth ride, great value"},
		{"sentence boundary", "Great grip — Best in class", "Great grip. Best in class"},
		{"en dash", "wet – dry", "wet, dry"},
		{"inside a word", "well—known brands", "well, known brands"},
		{"before a digit", "rated — 95H", "rated. 95H"},
		{"trailing dash", "book online —", "book online."},
		{"no dash untouched", "plain text stays", "plain text stays"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, s.Apply(c.in))
		})
	}
}

func TestApplyWhitespace(t *testing.T) {
	s := New(testSpellings)
	assert.Equal(t, "a b c", s.Apply("  a \t b \n c "))
}

func TestApplySpellings(t *testing.T) {
	s := New(testSpellings)
	cases := []struct{ in, want string }{
		{"buy tires online", "buy tyres online"},
		{"Tire care guide", "Tyre care guide"},
		{"color and tire", "colour and tyre"},
		// no substitution inside longer words
		{"entirely retired", "entirely retired"},
		{"tyres stay tyres", "tyres stay tyres"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, s.Apply(c.in))
	}
}

func TestApplyIdempotent(t *testing.T) {
	s := New(testSpellings)
	inputs := []string{
		"smooth ride — great value",
		"Great grip — Best in class",
		"buy tires online  with   color choices",
		"already clean text",
		"mixed — case – dashes — Everywhere",
	}
	for _, in := range inputs {
		once := s.Apply(in)
		assert.Equal(t, once, s.Apply(once), "input %q", in)
	}
}

func TestApplyRemovesAllLongDashes(t *testing.T) {
	s := New(testSpellings)
	out := s.Apply("a — b – c ― d ‒ e")
	assert.NotContains(t, out, "—")
	assert.NotContains(t, out, "–")
	assert.NotContains(t, out, "―")
	assert.NotContains(t, out, "‒")
}

func TestApplyEmpty(t *testing.T) {
	s := New(testSpellings)
	assert.Equal(t, "", s.Apply(""))
	assert.Equal(t, "", s.Apply("   "))
}
