package export

import (
	"fmt"
	"strings"

	"tyrepage/internal/content"
)

// BlockKind tags a document block for the external writer.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockParagraph
	BlockBullet
)

type Block struct {
	Kind BlockKind
	Text string
}

// Document is the writer-facing form of a bundle: an ordered list of
// headings, paragraphs and bullets in the fixed section order.
type Document struct {
	Blocks []Block
}

// DocumentWriter is the boundary to external document formats: text
// blocks in, formatted bytes out. The binary format itself is out of
// scope here.
type DocumentWriter interface {
	Write(doc Document) ([]byte, error)
	Ext() string
}

// BuildDocument lays out a bundle as writer blocks, mirroring the
// markdown section order.
func BuildDocument(b content.ContentBundle) Document {
	canonical := b.Size.Canonical()
	blocks := []Block{
		{BlockParagraph, "Target Keywords: " + strings.Join(b.Keywords, ", ")},
		{BlockParagraph, "Meta Title: " + b.MetaTitle},
		{BlockParagraph, "Meta Description: " + b.MetaDescription},
		{BlockHeading, b.H1},
		{BlockParagraph, b.Intro},
		{BlockHeading, fmt.Sprintf("Buy %s Tyres Online", canonical)},
		{BlockParagraph, b.BuyOnline},
		{BlockHeading, fmt.Sprintf("Why Choose %s Tyres?", canonical)},
	}
	for _, bullet := range b.WhyChoose {
		blocks = append(blocks, Block{BlockBullet, bullet})
	}
	blocks = append(blocks, Block{BlockHeading, "Other Popular Sizes"})
	for _, size := range b.RelatedSizes {
		blocks = append(blocks, Block{BlockBullet, size})
	}
	blocks = append(blocks, Block{BlockParagraph, b.CTA})
	return Document{Blocks: blocks}
}

// PlainWriter is the built-in DocumentWriter: plain text with underlined
// headings and dashed bullets.
type PlainWriter struct{}

func (PlainWriter) Ext() string { return ".txt" }

func (PlainWriter) Write(doc Document) ([]byte, error) {
	var out strings.Builder
	for i, block := range doc.Blocks {
		if i > 0 {
			prev := doc.Blocks[i-1]
			if !(prev.Kind == BlockBullet && block.Kind == BlockBullet) {
				out.WriteString("\n")
			}
		}
		switch block.Kind {
		case BlockHeading:
			out.WriteString(block.Text)
			out.WriteString("\n")
			out.WriteString(strings.Repeat("=", len(block.Text)))
			out.WriteString("\n")
		case BlockBullet:
			out.WriteString("- ")
			out.WriteString(block.Text)
			out.WriteString("\n")
		default:
			out.WriteString(block.Text)
			out.WriteString("\n")
		}
	}
	return []byte(out.String()), nil
}
