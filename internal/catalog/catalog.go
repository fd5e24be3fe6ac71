// Package catalog holds the read-only findings data shown by the results
// screen: one Finding per risk category and, for some of them, a RiskDetail
// with quoted excerpts.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// ErrInvalidCatalog is returned when catalog data fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// RiskLevel grades a RiskDetail.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
)

func (l RiskLevel) String() string {
	switch l {
	case RiskHigh:
		return "High Risk"
	case RiskMedium:
		return "Medium Risk"
	default:
		return "Low Risk"
	}
}

// ParseRiskLevel accepts "High Risk", "high" and similar spellings.
func ParseRiskLevel(s string) (RiskLevel, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, " risk")
	switch s {
	case "high":
		return RiskHigh, true
	case "medium":
		return RiskMedium, true
	case "low":
		return RiskLow, true
	}
	return RiskLow, false
}

// UnmarshalYAML decodes a level from its display string.
func (l *RiskLevel) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, ok := ParseRiskLevel(s)
	if !ok {
		return fmt.Errorf("%w: unknown risk level %q", ErrInvalidCatalog, s)
	}
	*l = v
	return nil
}

// Finding is one risk category with its occurrence count.
type Finding struct {
	ID       int    `yaml:"id"`
	Category string `yaml:"category"`
	Count    int    `yaml:"count"`
}

// Excerpt is a quoted document fragment with a marked span.
type Excerpt struct {
	Text      string `yaml:"text"`
	Highlight string `yaml:"highlight"`
	Section   string `yaml:"section"`
}

// RiskDetail describes a Finding in depth.
type RiskDetail struct {
	Title       string    `yaml:"title"`
	Level       RiskLevel `yaml:"risk_level"`
	Description string    `yaml:"description"`
	Excerpts    []Excerpt `yaml:"excerpts"`
}

type document struct {
	Findings []Finding          `yaml:"findings"`
	Details  map[int]RiskDetail `yaml:"details"`
}

// Catalog is immutable once loaded; accessors return copies.
type Catalog struct {
	findings []Finding
	details  map[int]RiskDetail
	total    int
}

// Default returns the catalog bundled with the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Load reads a catalog file. An empty path yields the default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %q: %w", path, err)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %q: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates YAML catalog data.
func Parse(b []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return New(doc.Findings, doc.Details)
}

// New builds a catalog from in-memory data. Findings keep their given order.
func New(findings []Finding, details map[int]RiskDetail) (*Catalog, error) {
	seen := make(map[int]bool, len(findings))
	c := &Catalog{
		findings: make([]Finding, 0, len(findings)),
		details:  make(map[int]RiskDetail, len(details)),
	}
	for _, f := range findings {
		if seen[f.ID] {
			return nil, fmt.Errorf("%w: duplicate finding id %d", ErrInvalidCatalog, f.ID)
		}
		if f.Count < 0 {
			return nil, fmt.Errorf("%w: finding %d has negative count", ErrInvalidCatalog, f.ID)
		}
		if strings.TrimSpace(f.Category) == "" {
			return nil, fmt.Errorf("%w: finding %d has no category", ErrInvalidCatalog, f.ID)
		}
		seen[f.ID] = true
		c.findings = append(c.findings, f)
		c.total += f.Count
	}
	for id, d := range details {
		if !seen[id] {
			return nil, fmt.Errorf("%w: detail %d has no finding", ErrInvalidCatalog, id)
		}
		d.Excerpts = append([]Excerpt(nil), d.Excerpts...)
		c.details[id] = d
	}
	return c, nil
}

// Findings returns all findings in catalog order.
func (c *Catalog) Findings() []Finding {
	return append([]Finding(nil), c.findings...)
}

// Finding looks up a finding by id.
func (c *Catalog) Finding(id int) (Finding, bool) {
	for _, f := range c.findings {
		if f.ID == id {
			return f, true
		}
	}
	return Finding{}, false
}

// Detail looks up the detail for a finding id.
func (c *Catalog) Detail(id int) (RiskDetail, bool) {
	d, ok := c.details[id]
	if !ok {
		return RiskDetail{}, false
	}
	d.Excerpts = append([]Excerpt(nil), d.Excerpts...)
	return d, true
}

// Categories returns the distinct categories in order of first appearance.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool, len(c.findings))
	out := make([]string, 0, len(c.findings))
	for _, f := range c.findings {
		if seen[f.Category] {
			continue
		}
		seen[f.Category] = true
		out = append(out, f.Category)
	}
	return out
}

// TotalRisks is the sum of all finding counts.
func (c *Catalog) TotalRisks() int {
	return c.total
}
