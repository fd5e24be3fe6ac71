package wizard

import "github.com/interpretive-systems/riskscan/internal/catalog"

// CategoryAll is the filter key that matches every finding.
const CategoryAll = "all"

// RiskBrowser holds the category filter and the single expanded finding.
type RiskBrowser struct {
	catalog     *catalog.Catalog
	category    string
	expanded    int
	hasExpanded bool
}

// NewRiskBrowser browses cat.
func NewRiskBrowser(cat *catalog.Catalog) *RiskBrowser {
	return &RiskBrowser{catalog: cat, category: CategoryAll}
}

// Catalog is the findings data being browsed.
func (r *RiskBrowser) Catalog() *catalog.Catalog { return r.catalog }

// SelectedCategory is the current filter, CategoryAll or a category name.
func (r *RiskBrowser) SelectedCategory() string { return r.category }

// Expanded returns the expanded finding id, if any.
func (r *RiskBrowser) Expanded() (int, bool) {
	return r.expanded, r.hasExpanded
}

// SelectCategory sets the filter. Matching is exact.
func (r *RiskBrowser) SelectCategory(category string) {
	r.category = category
}

// ToggleRisk collapses id if it is expanded, otherwise expands it and
// collapses any other. Ids with no occurrences are ignored.
func (r *RiskBrowser) ToggleRisk(id int) {
	if r.hasExpanded && r.expanded == id {
		r.expanded, r.hasExpanded = 0, false
		return
	}
	f, ok := r.catalog.Finding(id)
	if !ok || f.Count <= 0 {
		return
	}
	r.expanded, r.hasExpanded = id, true
}

// Reset clears the filter and collapses everything.
func (r *RiskBrowser) Reset() {
	r.category = CategoryAll
	r.expanded, r.hasExpanded = 0, false
}

// TotalRisks is the sum of every finding count in the catalog.
func (r *RiskBrowser) TotalRisks() int {
	return r.catalog.TotalRisks()
}

// Visible returns the findings that pass the filter and have something to
// show: a non-zero count and a detail entry.
func (r *RiskBrowser) Visible() []catalog.Finding {
	var out []catalog.Finding
	for _, f := range r.catalog.Findings() {
		if r.category != CategoryAll && f.Category != r.category {
			continue
		}
		if f.Count <= 0 {
			continue
		}
		if _, ok := r.catalog.Detail(f.ID); !ok {
			continue
		}
		out = append(out, f)
	}
	return out
}
