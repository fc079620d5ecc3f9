package content

import (
	"tyrepage/internal/sanitise"
	"tyrepage/internal/tyresize"
)

// ContentBundle is the full set of generated blocks for one size. It is
// built fresh per size per run and treated as immutable once sanitised;
// regeneration is a clean recomputation from the same inputs.
type ContentBundle struct {
	Size       tyresize.TyreSize
	Segment    tyresize.Segment
	ProofPoint string

	Keywords        []string
	MetaTitle       string
	MetaDescription string
	H1              string
	Intro           string
	BuyOnline       string
	WhyChoose       []string
	RelatedSizes    []string
	CTA             string

	Product *ProductSchema
	FAQ     *FAQSchema
}

// Sanitised returns a copy with every text block passed through the
// sanitiser. Related sizes and canonical strings carry no prose and are
// left as is.
func (b ContentBundle) Sanitised(s *sanitise.Sanitizer) ContentBundle {
	out := b
	out.ProofPoint = s.Apply(b.ProofPoint)
	out.Keywords = applyAll(s, b.Keywords)
	out.MetaTitle = s.Apply(b.MetaTitle)
	out.MetaDescription = s.Apply(b.MetaDescription)
	out.H1 = s.Apply(b.H1)
	out.Intro = s.Apply(b.Intro)
	out.BuyOnline = s.Apply(b.BuyOnline)
	out.WhyChoose = applyAll(s, b.WhyChoose)
	out.CTA = s.Apply(b.CTA)

	if b.Product != nil {
		p := *b.Product
		p.Name = s.Apply(p.Name)
		p.Description = s.Apply(p.Description)
		out.Product = &p
	}
	if b.FAQ != nil {
		f := *b.FAQ
		f.MainEntity = make([]FAQQuestion, len(b.FAQ.MainEntity))
		for i, q := range b.FAQ.MainEntity {
			q.Name = s.Apply(q.Name)
			q.AcceptedAnswer.Text = s.Apply(q.AcceptedAnswer.Text)
			f.MainEntity[i] = q
		}
		out.FAQ = &f
	}
	return out
}

func applyAll(s *sanitise.Sanitizer, in []string) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = s.Apply(v)
	}
	return out
}
