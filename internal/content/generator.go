package content

import (
	"fmt"

	"tyrepage/internal/tyresize"
)

// Word and character bounds enforced on the final, sanitised text.
const (
	IntroMinWords = 50
	IntroMaxWords = 70
	BuyMinWords   = 80
	BuyMaxWords   = 100
	BulletCount   = 4
	RelatedMin    = 4
	RelatedMax    = 5
	TitleMaxChars = 60
	DescMaxChars  = 160
)

// The fixed templates are sized so every segment lands inside the word
// bounds; the size token counts as one word. Changing wording here means
// re-checking the counts (the validator fails loudly if they drift).
var introTemplates = map[tyresize.Segment]string{
	tyresize.SegmentPerformance: "Engineered for performance vehicles, %s tyres deliver sharp handling, strong cornering grip and responsive braking in wet and dry conditions. " +
		"The lower profile keeps steering precise and direct, while modern compounds support stability at highway speeds and under hard braking. " +
		"Choose %s tyres for confident, connected control on Australian roads, from daily commutes to weekend drives on winding country routes.",
	tyresize.SegmentFourWheel: "Designed for 4x4s, utes and larger SUVs, %s tyres provide strength, stability and dependable traction on sealed highways and light off-road terrain. " +
		"Robust construction and versatile tread patterns handle towing, touring and loaded driving with comfort and control across long distances. " +
		"Choose %s tyres for capable all-round performance in varied Australian conditions, from city streets to gravel tracks.",
	tyresize.SegmentSUV: "Built for SUVs and crossovers, %s tyres offer stable handling, sure grip and a quiet, comfortable ride for family driving. " +
		"Durable, touring-focused tread patterns smooth out daily errands, school runs and longer road trips while keeping cabin noise low. " +
		"Choose %s tyres for reliable, predictable performance across Australian roads in every season and all weather conditions.",
	tyresize.SegmentPassenger: "Popular with hatchbacks, sedans and small cars, %s tyres balance safety, comfort and fuel efficiency for everyday driving. " +
		"Carefully tuned tread patterns help reduce road noise while maintaining confident braking and predictable grip in wet and dry conditions. " +
		"Choose %s tyres for long-lasting, economical performance on Australian roads, from short city trips to longer highway journeys.",
}

const buyTemplate = "Buying %s tyres online is quick and simple with Bob Jane T-Marts. " +
	"Use the online tyre finder to select the right fit for your vehicle in minutes, then choose a store and a fitting time that suits you. " +
	"Pricing is transparent and all-inclusive, covering professional fitting, balancing and the responsible disposal of your old tyres, with no hidden extras at the counter. " +
	"With the Best Tyre Price Guarantee, the Tyre Satisfaction Guarantee and stores across the country, you will enjoy great value, easy booking and expert service from checkout to fitment. " +
	"Order %s tyres today and drive with confidence."

var segmentBullets = map[tyresize.Segment][3]string{
	tyresize.SegmentPerformance: {
		"Precise steering and cornering grip",
		"Strong, predictable braking",
		"Sporty road feel with comfort in mind",
	},
	tyresize.SegmentFourWheel: {
		"Confident highway and light off-road grip",
		"Comfortable, stable ride under load",
		"Durable construction for long tyre life",
	},
	tyresize.SegmentSUV: {
		"Stable handling for larger SUVs",
		"Quiet, comfortable touring",
		"Reliable wet and dry performance",
	},
	tyresize.SegmentPassenger: {
		"Comfortable, quiet everyday ride",
		"Confident wet and dry traction",
		"Fuel efficient, long wearing designs",
	},
}

// Generate composes the pre-sanitisation bundle for one size. Pure:
// identical inputs give an identical bundle.
func Generate(size tyresize.TyreSize, segment tyresize.Segment, proofPoint string, relatedPool []tyresize.TyreSize) ContentBundle {
	canonical := size.Canonical()
	bullets := segmentBullets[segment]

	return ContentBundle{
		Size:       size,
		Segment:    segment,
		ProofPoint: proofPoint,
		Keywords: []string{
			fmt.Sprintf("%s tyres", canonical),
			fmt.Sprintf("%s tyres", size.Phrase()),
			fmt.Sprintf("buy %s tyres online", canonical),
			fmt.Sprintf("best price %s Australia", canonical),
			"Bob Jane T-Marts tyres",
		},
		MetaTitle:       fmt.Sprintf("%s Tyres | Best Price Online | Bob Jane T-Marts", canonical),
		MetaDescription: fmt.Sprintf("Shop %s tyres online at Bob Jane T-Marts. Best Price Guarantee, fitting and balancing included, stores Australia wide. Book online today.", canonical),
		H1:              fmt.Sprintf("%s Tyres", canonical),
		Intro:           fmt.Sprintf(introTemplates[segment], canonical, canonical),
		BuyOnline:       fmt.Sprintf(buyTemplate, canonical, canonical),
		WhyChoose:       []string{proofPoint, bullets[0], bullets[1], bullets[2]},
		RelatedSizes:    RelatedSizes(size, segment, relatedPool),
		CTA:             fmt.Sprintf("Shop %s tyres today at Bob Jane T-Marts.", canonical),
		Product:         buildProduct(size),
		FAQ:             buildFAQ(size),
	}
}
