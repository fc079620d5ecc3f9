// Package output owns deterministic file naming: every artefact for a
// size derives from the canonical slug, so reruns overwrite in place and
// batch members never collide.
package output

import (
	"fmt"
	"os"

	"tyrepage/internal/tyresize"
)

const (
	// LocalBusinessName is batch-level, written once per run.
	LocalBusinessName = "localbusiness.jsonld"
	ArchiveName       = "tyre-pages.zip"
)

func EnsureDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("output directory is empty")
	}
	return os.MkdirAll(dir, 0o755)
}

// MarkdownName returns e.g. "225-45-19.md".
func MarkdownName(size tyresize.TyreSize) string {
	return size.Slug() + ".md"
}

// DocumentName returns e.g. "225-45-19.txt" for the writer's extension.
func DocumentName(size tyresize.TyreSize, ext string) string {
	return size.Slug() + ext
}

// ProductName returns e.g. "225-45-19.product.jsonld".
func ProductName(size tyresize.TyreSize) string {
	return size.Slug() + ".product.jsonld"
}

// FAQName returns e.g. "225-45-19.faq.jsonld".
func FAQName(size tyresize.TyreSize) string {
	return size.Slug() + ".faq.jsonld"
}
