package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tyrepage/internal/tyresize"
)

// CopyRules holds the injectable product-copy decisions: the proof-point
// pool, the Australian spelling table, the default popular-sizes pool,
// the CSV column-name hints, and the store details used by the
// LocalBusiness export. Wording lives in ~/.tyrepage/copy.yaml so it can
// change without a rebuild.
type CopyRules struct {
	ProofPoints  []string          `yaml:"proof_points"`
	Spellings    map[string]string `yaml:"spellings"`
	PopularSizes []string          `yaml:"popular_sizes"`
	ColumnHints  []string          `yaml:"column_hints"`
	Business     BusinessCard      `yaml:"business"`
}

// BusinessCard feeds the batch-level LocalBusiness JSON-LD. Bracketed
// placeholders are kept verbatim for the publisher to fill in.
type BusinessCard struct {
	Name       string `yaml:"name"`
	URL        string `yaml:"url"`
	Telephone  string `yaml:"telephone"`
	PriceRange string `yaml:"price_range"`
	Street     string `yaml:"street"`
	Locality   string `yaml:"locality"`
	Region     string `yaml:"region"`
	Postcode   string `yaml:"postcode"`
	Country    string `yaml:"country"`
	AreaServed string `yaml:"area_served"`
}

// ReadCopyRules parses and validates a copy rules file.
func ReadCopyRules(path string) (*CopyRules, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read copy rules %s: %w", path, err)
	}
	rules := &CopyRules{}
	if err := yaml.Unmarshal(raw, rules); err != nil {
		return nil, fmt.Errorf("malformed copy rules %s: %w", path, err)
	}
	if err := rules.validate(); err != nil {
		return nil, fmt.Errorf("invalid copy rules %s: %w", path, err)
	}
	return rules, nil
}

func (r *CopyRules) validate() error {
	points := make([]string, 0, len(r.ProofPoints))
	for _, p := range r.ProofPoints {
		if strings.TrimSpace(p) != "" {
			points = append(points, strings.TrimSpace(p))
		}
	}
	if len(points) < 2 {
		return fmt.Errorf("proof_points needs at least 2 phrases, got %d", len(points))
	}
	r.ProofPoints = points

	// Spelling substitution must be idempotent: a replacement may not
	// itself be a key of the table.
	for from, to := range r.Spellings {
		if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
			return fmt.Errorf("spellings contains an empty entry")
		}
		if _, chained := r.Spellings[to]; chained {
			return fmt.Errorf("spellings entry %q -> %q chains into another rule", from, to)
		}
	}

	sizes := make([]string, 0, len(r.PopularSizes))
	for _, raw := range r.PopularSizes {
		size, err := tyresize.Parse(raw)
		if err != nil {
			return fmt.Errorf("popular_sizes entry %q: %w", raw, err)
		}
		sizes = append(sizes, size.Canonical())
	}
	r.PopularSizes = sizes

	hints := make([]string, 0, len(r.ColumnHints))
	for _, h := range r.ColumnHints {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			hints = append(hints, h)
		}
	}
	r.ColumnHints = hints
	return nil
}

// PopularPool returns the default related-sizes pool as parsed sizes.
// Entries are already validated, so parse errors cannot occur here.
func (r *CopyRules) PopularPool() []tyresize.TyreSize {
	pool := make([]tyresize.TyreSize, 0, len(r.PopularSizes))
	for _, c := range r.PopularSizes {
		size, err := tyresize.Parse(c)
		if err != nil {
			continue
		}
		pool = append(pool, size)
	}
	return pool
}
