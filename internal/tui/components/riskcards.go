package components

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/interpretive-systems/riskscan/internal/catalog"
	"github.com/interpretive-systems/riskscan/internal/theme"
	tuiansi "github.com/interpretive-systems/riskscan/internal/tui/ansi"
	"github.com/interpretive-systems/riskscan/internal/tui/highlight"
)

type cardKey struct {
	id       int
	expanded bool
	width    int
}

// RiskCards renders finding cards. The catalog never changes while the
// program runs, so rendered cards are cached by id, expansion and width.
type RiskCards struct {
	catalog *catalog.Catalog
	theme   theme.Theme
	cache   *lru.Cache[cardKey, []string]
}

// NewRiskCards creates a renderer over cat.
func NewRiskCards(cat *catalog.Catalog, th theme.Theme) (*RiskCards, error) {
	cache, err := lru.New[cardKey, []string](64)
	if err != nil {
		return nil, fmt.Errorf("card cache: %w", err)
	}
	return &RiskCards{catalog: cat, theme: th, cache: cache}, nil
}

// Render returns the card lines for finding f. Findings without a detail
// entry or with no occurrences render nothing.
func (r *RiskCards) Render(f catalog.Finding, expanded bool, width int) []string {
	key := cardKey{id: f.ID, expanded: expanded, width: width}
	if lines, ok := r.cache.Get(key); ok {
		return lines
	}
	lines := r.render(f, expanded, width)
	r.cache.Add(key, lines)
	return lines
}

// Cached reports how many cards are cached.
func (r *RiskCards) Cached() int {
	return r.cache.Len()
}

func (r *RiskCards) render(f catalog.Finding, expanded bool, width int) []string {
	d, ok := r.catalog.Detail(f.ID)
	if !ok || f.Count == 0 {
		return nil
	}
	th := r.theme
	bar := th.Level(d.Level, "┃")
	inner := width - 2
	if inner < 10 {
		inner = 10
	}

	arrow := "▸"
	if expanded {
		arrow = "▾"
	}
	title := fmt.Sprintf("%s %s (%d)", arrow, d.Title, f.Count)
	badge := th.Badge(d.Level)
	titleW := inner - tuiansi.VisualWidth(badge) - 1
	if titleW < 1 {
		titleW = 1
	}

	lines := []string{bar + " " + tuiansi.PadExact(title, titleW) + " " + badge}
	for _, l := range tuiansi.WrapWords(d.Description, inner) {
		lines = append(lines, bar+" "+th.Muted(l))
	}
	if !expanded {
		return lines
	}

	style := th.MarkStyle()
	mark := func(s string) string { return style.Render(s) }
	for _, ex := range d.Excerpts {
		lines = append(lines, bar)
		lines = append(lines, bar+" "+th.Level(d.Level, "» "+ex.Section))
		for _, l := range highlight.Excerpt(ex, inner-2, mark) {
			lines = append(lines, bar+"   "+l)
		}
	}
	lines = append(lines, bar, bar+" "+th.Muted(strings.Join([]string{"[Explain Risk]", "[Suggest Changes]"}, " ")))
	return lines
}
