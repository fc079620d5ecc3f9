package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tyrepage/internal/sanitise"
	"tyrepage/internal/tyresize"
)

var testSpellings = map[string]string{"tire": "tyre", "tires": "tyres", "color": "colour"}

func testRelatedPool() []tyresize.TyreSize {
	return []tyresize.TyreSize{
		{Width: 205, Aspect: 55, Rim: 16},
		{Width: 215, Aspect: 55, Rim: 17},
		{Width: 225, Aspect: 45, Rim: 17},
		{Width: 225, Aspect: 45, Rim: 18},
		{Width: 235, Aspect: 45, Rim: 18},
		{Width: 245, Aspect: 40, Rim: 19},
		{Width: 265, Aspect: 70, Rim: 16},
	}
}

func generateFor(t *testing.T, size tyresize.TyreSize) ContentBundle {
	t.Helper()
	segment := tyresize.Classify(size)
	bundle := Generate(size, segment, "Even wear from consistent contact patch pressure", testRelatedPool())
	return bundle.Sanitised(sanitise.New(testSpellings))
}

func TestGenerateBoundsAllSegments(t *testing.T) {
	sizes := []tyresize.TyreSize{
		{Width: 245, Aspect: 35, Rim: 20}, // performance
		{Width: 265, Aspect: 70, Rim: 16}, // 4x4
		{Width: 235, Aspect: 55, Rim: 18}, // suv
		{Width: 195, Aspect: 65, Rim: 15}, // passenger
	}
	for _, size := range sizes {
		t.Run(size.Canonical(), func(t *testing.T) {
			b := generateFor(t, size)
			require.NoError(t, b.Validate())

			intro := len(strings.Fields(b.Intro))
			assert.GreaterOrEqual(t, intro, IntroMinWords)
			assert.LessOrEqual(t, intro, IntroMaxWords)

			buy := len(strings.Fields(b.BuyOnline))
			assert.GreaterOrEqual(t, buy, BuyMinWords)
			assert.LessOrEqual(t, buy, BuyMaxWords)

			assert.Len(t, b.WhyChoose, BulletCount)
			assert.GreaterOrEqual(t, len(b.RelatedSizes), RelatedMin)
			assert.LessOrEqual(t, len(b.RelatedSizes), RelatedMax)
		})
	}
}

func TestGenerateMetaBlocks(t *testing.T) {
	size := tyresize.TyreSize{Width: 225, Aspect: 45, Rim: 19}
	b := generateFor(t, size)
	canonical := size.Canonical()

	assert.LessOrEqual(t, len(b.MetaTitle), TitleMaxChars)
	assert.Contains(t, b.MetaTitle, canonical)
	assert.LessOrEqual(t, len(b.MetaDescription), DescMaxChars)
	assert.Contains(t, b.MetaDescription, canonical)
	assert.Contains(t, b.H1, canonical)
	assert.Contains(t, b.CTA, canonical)
	assert.GreaterOrEqual(t, len(b.Keywords), 3)
	assert.Contains(t, b.Keywords, canonical+" tyres")
	assert.Contains(t, b.Keywords, size.Phrase()+" tyres")
}

func TestGenerateProofPointInExactlyOneBullet(t *testing.T) {
	b := generateFor(t, tyresize.TyreSize{Width: 225, Aspect: 45, Rim: 19})
	hits := 0
	for _, bullet := range b.WhyChoose {
		if strings.Contains(bullet, b.ProofPoint) {
			hits++
		}
	}
	assert.Equal(t, 1, hits)
}

func TestGenerateSegmentTone(t *testing.T) {
	perf := generateFor(t, tyresize.TyreSize{Width: 245, Aspect: 35, Rim: 20})
	assert.Contains(t, perf.Intro, "cornering grip")

	fourByFour := generateFor(t, tyresize.TyreSize{Width: 265, Aspect: 70, Rim: 16})
	assert.Contains(t, fourByFour.Intro, "towing")
	assert.NotEqual(t, perf.Intro, fourByFour.Intro)
}

func TestGenerateDeterministic(t *testing.T) {
	size := tyresize.TyreSize{Width: 225, Aspect: 45, Rim: 19}
	segment := tyresize.Classify(size)
	a := Generate(size, segment, "proof phrase", testRelatedPool())
	b := Generate(size, segment, "proof phrase", testRelatedPool())
	assert.Equal(t, a, b)
}

func TestGenerateStructuredData(t *testing.T) {
	size := tyresize.TyreSize{Width: 225, Aspect: 45, Rim: 19}
	b := generateFor(t, size)

	require.NotNil(t, b.Product)
	assert.Equal(t, "Product", b.Product.Type)
	assert.Equal(t, "225/45R19 Tyres", b.Product.Name)
	assert.Equal(t, "AUD", b.Product.Offers.PriceCurrency)
	require.Len(t, b.Product.AdditionalProperty, 3)
	assert.Equal(t, "225", b.Product.AdditionalProperty[0].Value)

	require.NotNil(t, b.FAQ)
	assert.Equal(t, "FAQPage", b.FAQ.Type)
	require.Len(t, b.FAQ.MainEntity, 4)
	for _, q := range b.FAQ.MainEntity {
		assert.Equal(t, "Question", q.Type)
		assert.NotEmpty(t, q.Name)
		assert.NotEmpty(t, q.AcceptedAnswer.Text)
	}
}

func TestBuildLocalBusiness(t *testing.T) {
	lb := BuildLocalBusiness(BusinessDetails{
		Name: "Bob Jane T-Marts Fitzroy", Country: "AU", AreaServed: "Melbourne",
	})
	assert.Equal(t, "AutomotiveBusiness", lb.Type)
	assert.Equal(t, "AU", lb.Address.Country)
	assert.Equal(t, "Melbourne", lb.AreaServed.Name)
	require.Len(t, lb.OpeningHours, 2)
}

func TestValidateCatchesViolations(t *testing.T) {
	b := generateFor(t, tyresize.TyreSize{Width: 225, Aspect: 45, Rim: 19})

	t.Run("short intro", func(t *testing.T) {
		broken := b
		broken.Intro = "far too short"
		err := broken.Validate()
		require.Error(t, err)
		var cerr *ConstraintError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "225/45R19", cerr.Canonical)
	})

	t.Run("wrong bullet count", func(t *testing.T) {
		broken := b
		broken.WhyChoose = b.WhyChoose[:3]
		assert.Error(t, broken.Validate())
	})

	t.Run("surviving dash", func(t *testing.T) {
		broken := b
		broken.CTA = "Shop 225/45R19 — today"
		assert.Error(t, broken.Validate())
	})

	t.Run("related contains self", func(t *testing.T) {
		broken := b
		broken.RelatedSizes = []string{"225/45R19", "205/55R16", "215/55R17", "225/45R17"}
		assert.Error(t, broken.Validate())
	})
}
