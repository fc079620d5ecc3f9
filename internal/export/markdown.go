// Package export turns finished bundles into their boundary formats:
// markdown, the DocumentWriter handoff, and JSON-LD payloads. Section
// order is fixed and identical across formats.
package export

import (
	"fmt"
	"strings"

	"tyrepage/internal/content"
)

// RenderMarkdown renders one bundle in the fixed section order: Target
// Keywords, Meta Title, Meta Description, H1, Intro, Buy Online, Why
// Choose, Other Popular Sizes, CTA.
func RenderMarkdown(b content.ContentBundle) string {
	canonical := b.Size.Canonical()
	var out strings.Builder

	out.WriteString("Target Keywords: ")
	out.WriteString(strings.Join(b.Keywords, ", "))
	out.WriteString("\n\nMeta Title: ")
	out.WriteString(b.MetaTitle)
	out.WriteString("\n\nMeta Description: ")
	out.WriteString(b.MetaDescription)
	out.WriteString("\n\nH1: ")
	out.WriteString(b.H1)
	out.WriteString("\n\nIntro\n")
	out.WriteString(b.Intro)
	out.WriteString(fmt.Sprintf("\n\nH2: Buy %s Tyres Online\n", canonical))
	out.WriteString(b.BuyOnline)
	out.WriteString(fmt.Sprintf("\n\nH2: Why Choose %s Tyres?\n", canonical))
	for _, bullet := range b.WhyChoose {
		out.WriteString("- ")
		out.WriteString(bullet)
		out.WriteString("\n")
	}
	out.WriteString("\nH2: Other Popular Sizes\n")
	for _, size := range b.RelatedSizes {
		out.WriteString("- ")
		out.WriteString(size)
		out.WriteString("\n")
	}
	out.WriteString("\nCTA:\n")
	out.WriteString(b.CTA)
	out.WriteString("\n")
	return out.String()
}
