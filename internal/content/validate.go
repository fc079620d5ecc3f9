package content

import (
	"fmt"
	"strings"
)

// ctaTerms is the list of accepted call-to-action words for the meta
// description check.
var ctaTerms = []string{"shop", "book", "buy", "order"}

// ConstraintError reports generated output outside its hard bounds. This
// is an internal defect, not user input error: it should never occur in
// correct operation and fails the affected size loudly.
type ConstraintError struct {
	Canonical  string
	Violations []string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("content constraints violated for %s: %s", e.Canonical, strings.Join(e.Violations, "; "))
}

// Validate checks every hard constraint on a sanitised bundle. Word
// counts are whitespace-delimited tokens of the final text.
func (b ContentBundle) Validate() error {
	canonical := b.Size.Canonical()
	var v []string

	if n := countDistinct(b.Keywords); n < 3 {
		v = append(v, fmt.Sprintf("keywords: %d distinct, need at least 3", n))
	}
	if n := len(b.MetaTitle); n > TitleMaxChars {
		v = append(v, fmt.Sprintf("meta title: %d chars, max %d", n, TitleMaxChars))
	}
	if !strings.Contains(b.MetaTitle, canonical) {
		v = append(v, "meta title: missing canonical size")
	}
	if n := len(b.MetaDescription); n > DescMaxChars {
		v = append(v, fmt.Sprintf("meta description: %d chars, max %d", n, DescMaxChars))
	}
	if !strings.Contains(b.MetaDescription, canonical) {
		v = append(v, "meta description: missing canonical size")
	}
	if !containsCTATerm(b.MetaDescription) {
		v = append(v, "meta description: missing call to action term")
	}
	if !strings.Contains(b.H1, canonical) {
		v = append(v, "h1: missing canonical size")
	}
	if n := wordCount(b.Intro); n < IntroMinWords || n > IntroMaxWords {
		v = append(v, fmt.Sprintf("intro: %d words, want %d-%d", n, IntroMinWords, IntroMaxWords))
	}
	if n := wordCount(b.BuyOnline); n < BuyMinWords || n > BuyMaxWords {
		v = append(v, fmt.Sprintf("buy online: %d words, want %d-%d", n, BuyMinWords, BuyMaxWords))
	}
	if n := len(b.WhyChoose); n != BulletCount {
		v = append(v, fmt.Sprintf("why choose: %d bullets, want exactly %d", n, BulletCount))
	}
	if n := bulletsWithProof(b.WhyChoose, b.ProofPoint); n != 1 {
		v = append(v, fmt.Sprintf("why choose: proof point appears in %d bullets, want exactly 1", n))
	}
	if n := countDistinct(b.RelatedSizes); n < RelatedMin || n > RelatedMax || n != len(b.RelatedSizes) {
		v = append(v, fmt.Sprintf("related sizes: %d distinct of %d, want %d-%d", n, len(b.RelatedSizes), RelatedMin, RelatedMax))
	}
	for _, r := range b.RelatedSizes {
		if r == canonical {
			v = append(v, "related sizes: contains the size itself")
			break
		}
	}
	if !strings.Contains(b.CTA, canonical) {
		v = append(v, "cta: missing canonical size")
	}
	if b.FAQ != nil {
		if n := len(b.FAQ.MainEntity); n < 3 || n > 5 {
			v = append(v, fmt.Sprintf("faq: %d questions, want 3-5", n))
		}
	}
	for _, text := range b.allText() {
		if strings.ContainsAny(text, "—–―‒") {
			v = append(v, fmt.Sprintf("long dash survived sanitisation in %q", text))
		}
	}

	if len(v) > 0 {
		return &ConstraintError{Canonical: canonical, Violations: v}
	}
	return nil
}

func (b ContentBundle) allText() []string {
	out := make([]string, 0, 16+len(b.Keywords)+len(b.WhyChoose))
	out = append(out, b.MetaTitle, b.MetaDescription, b.H1, b.Intro, b.BuyOnline, b.CTA)
	out = append(out, b.Keywords...)
	out = append(out, b.WhyChoose...)
	if b.Product != nil {
		out = append(out, b.Product.Name, b.Product.Description)
	}
	if b.FAQ != nil {
		for _, q := range b.FAQ.MainEntity {
			out = append(out, q.Name, q.AcceptedAnswer.Text)
		}
	}
	return out
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func countDistinct(in []string) int {
	seen := map[string]struct{}{}
	for _, v := range in {
		seen[v] = struct{}{}
	}
	return len(seen)
}

func containsCTATerm(s string) bool {
	lower := strings.ToLower(s)
	for _, term := range ctaTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func bulletsWithProof(bullets []string, proof string) int {
	n := 0
	for _, b := range bullets {
		if proof != "" && strings.Contains(b, proof) {
			n++
		}
	}
	return n
}
