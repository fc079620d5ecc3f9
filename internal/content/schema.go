package content

import (
	"fmt"

	"tyrepage/internal/tyresize"
)

// Structured-data records destined for JSON-LD serialisation by the
// export boundary. These are plain typed records, not strings; bracketed
// values are placeholders for the publisher.

const schemaContext = "https://schema.org"

type ProductSchema struct {
	Context            string          `json:"@context"`
	Type               string          `json:"@type"`
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	Brand              BrandSchema     `json:"brand"`
	Description        string          `json:"description"`
	AdditionalProperty []PropertyValue `json:"additionalProperty"`
	Offers             AggregateOffer  `json:"offers"`
}

type BrandSchema struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type PropertyValue struct {
	Type  string `json:"@type"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

type AggregateOffer struct {
	Type          string `json:"@type"`
	PriceCurrency string `json:"priceCurrency"`
	LowPrice      string `json:"lowPrice"`
	HighPrice     string `json:"highPrice"`
	OfferCount    string `json:"offerCount"`
	Availability  string `json:"availability"`
	URL           string `json:"url"`
}

type FAQSchema struct {
	Context    string        `json:"@context"`
	Type       string        `json:"@type"`
	MainEntity []FAQQuestion `json:"mainEntity"`
}

type FAQQuestion struct {
	Type           string    `json:"@type"`
	Name           string    `json:"name"`
	AcceptedAnswer FAQAnswer `json:"acceptedAnswer"`
}

type FAQAnswer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

type LocalBusinessSchema struct {
	Context      string         `json:"@context"`
	Type         string         `json:"@type"`
	Name         string         `json:"name"`
	URL          string         `json:"url"`
	Telephone    string         `json:"telephone"`
	PriceRange   string         `json:"priceRange"`
	Address      PostalAddress  `json:"address"`
	OpeningHours []OpeningHours `json:"openingHoursSpecification"`
	AreaServed   AreaServed     `json:"areaServed"`
}

type PostalAddress struct {
	Type     string `json:"@type"`
	Street   string `json:"streetAddress"`
	Locality string `json:"addressLocality"`
	Region   string `json:"addressRegion"`
	Postcode string `json:"postalCode"`
	Country  string `json:"addressCountry"`
}

type OpeningHours struct {
	Type      string   `json:"@type"`
	DayOfWeek []string `json:"dayOfWeek"`
	Opens     string   `json:"opens"`
	Closes    string   `json:"closes"`
}

type AreaServed struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// BusinessDetails is the configurable store record behind the
// batch-level LocalBusiness export.
type BusinessDetails struct {
	Name       string
	URL        string
	Telephone  string
	PriceRange string
	Street     string
	Locality   string
	Region     string
	Postcode   string
	Country    string
	AreaServed string
}

func buildProduct(size tyresize.TyreSize) *ProductSchema {
	canonical := size.Canonical()
	return &ProductSchema{
		Context:     schemaContext,
		Type:        "Product",
		Name:        fmt.Sprintf("%s Tyres", canonical),
		Category:    "Tyres",
		Brand:       BrandSchema{Type: "Brand", Name: "Various"},
		Description: fmt.Sprintf("Shop %s tyres online at Bob Jane T-Marts. Best Price Guarantee with fitting and balancing included. Stores Australia wide and easy booking.", canonical),
		AdditionalProperty: []PropertyValue{
			{Type: "PropertyValue", Name: "Width", Value: fmt.Sprintf("%d", size.Width)},
			{Type: "PropertyValue", Name: "Aspect Ratio", Value: fmt.Sprintf("%d", size.Aspect)},
			{Type: "PropertyValue", Name: "Rim Diameter", Value: fmt.Sprintf("%d", size.Rim)},
		},
		Offers: AggregateOffer{
			Type:          "AggregateOffer",
			PriceCurrency: "AUD",
			LowPrice:      "[LOWEST PRICE]",
			HighPrice:     "[HIGHEST PRICE]",
			OfferCount:    "[NUMBER OF LISTINGS]",
			Availability:  "https://schema.org/InStock",
			URL:           "[CANONICAL URL FOR THIS SIZE PAGE]",
		},
	}
}

func buildFAQ(size tyresize.TyreSize) *FAQSchema {
	canonical := size.Canonical()
	qa := func(q, a string) FAQQuestion {
		return FAQQuestion{Type: "Question", Name: q, AcceptedAnswer: FAQAnswer{Type: "Answer", Text: a}}
	}
	return &FAQSchema{
		Context: schemaContext,
		Type:    "FAQPage",
		MainEntity: []FAQQuestion{
			qa(
				fmt.Sprintf("What vehicles use %s tyres?", canonical),
				fmt.Sprintf("Many hatchbacks, sedans and SUVs use %s tyres. Use our online tyre finder to confirm fitment for your vehicle and book fitting at a nearby store.", canonical),
			),
			qa(
				fmt.Sprintf("Can I buy %s tyres online and fit in store?", canonical),
				fmt.Sprintf("Yes. Order %s tyres online, choose a store and a time that suits you, and our team will fit and balance your new tyres with disposal included.", canonical),
			),
			qa(
				"Do prices include fitting and balancing?",
				"Yes. Our all inclusive pricing covers professional fitting, balancing and old tyre disposal. No hidden extras.",
			),
			qa(
				"How long does fitting take?",
				fmt.Sprintf("Most fittings take around an hour. Book %s tyres online, pick a time that suits you and the store will have your vehicle ready the same day.", canonical),
			),
		},
	}
}

// BuildLocalBusiness assembles the batch-level store record. Opening
// hours follow the standard retail pattern; everything else comes from
// the copy rules.
func BuildLocalBusiness(d BusinessDetails) *LocalBusinessSchema {
	return &LocalBusinessSchema{
		Context:    schemaContext,
		Type:       "AutomotiveBusiness",
		Name:       d.Name,
		URL:        d.URL,
		Telephone:  d.Telephone,
		PriceRange: d.PriceRange,
		Address: PostalAddress{
			Type:     "PostalAddress",
			Street:   d.Street,
			Locality: d.Locality,
			Region:   d.Region,
			Postcode: d.Postcode,
			Country:  d.Country,
		},
		OpeningHours: []OpeningHours{
			{Type: "OpeningHoursSpecification", DayOfWeek: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}, Opens: "08:00", Closes: "17:00"},
			{Type: "OpeningHoursSpecification", DayOfWeek: []string{"Saturday"}, Opens: "08:00", Closes: "12:00"},
		},
		AreaServed: AreaServed{Type: "AdministrativeArea", Name: d.AreaServed},
	}
}
