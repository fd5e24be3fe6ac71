package catalog

import "strings"

// Segment is a run of excerpt text, marked or plain.
type Segment struct {
	Text   string
	Marked bool
}

// SplitHighlight splits text around every occurrence of highlight. Plain and
// marked segments alternate; empty plain runs are dropped. When highlight is
// empty or absent the whole text comes back as one plain segment.
func SplitHighlight(text, highlight string) []Segment {
	if highlight == "" || !strings.Contains(text, highlight) {
		return []Segment{{Text: text}}
	}
	parts := strings.Split(text, highlight)
	segs := make([]Segment, 0, len(parts)*2-1)
	for i, p := range parts {
		if p != "" {
			segs = append(segs, Segment{Text: p})
		}
		if i < len(parts)-1 {
			segs = append(segs, Segment{Text: highlight, Marked: true})
		}
	}
	return segs
}

// Segments splits the excerpt on its own highlight.
func (e Excerpt) Segments() []Segment {
	return SplitHighlight(e.Text, e.Highlight)
}

// HasHighlight reports whether the highlight occurs literally in the text.
func (e Excerpt) HasHighlight() bool {
	return e.Highlight != "" && strings.Contains(e.Text, e.Highlight)
}
