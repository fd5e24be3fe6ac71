// Package highlight lays out excerpt text for the terminal with its
// highlight spans marked.
package highlight

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"github.com/interpretive-systems/riskscan/internal/catalog"
)

// Marker decorates a marked run of text.
type Marker func(string) string

// RuneRange is a half-open range of rune offsets.
type RuneRange struct {
	Start int
	End   int
}

// Excerpt word-wraps the excerpt text to width and marks every occurrence of
// its highlight. Marks follow the text across line breaks.
func Excerpt(ex catalog.Excerpt, width int, mark Marker) []string {
	return Lines(ex.Text, MarkRanges(ex.Segments()), width, mark)
}

// MarkRanges converts segments to rune ranges over their concatenation.
func MarkRanges(segs []catalog.Segment) []RuneRange {
	var out []RuneRange
	pos := 0
	for _, s := range segs {
		n := utf8.RuneCountInString(s.Text)
		if s.Marked {
			out = append(out, RuneRange{Start: pos, End: pos + n})
		}
		pos += n
	}
	return out
}

// Lines wraps text to width and applies mark to the given ranges.
func Lines(text string, ranges []RuneRange, width int, mark Marker) []string {
	runes := []rune(text)
	spans := wrapSpans(runes, width)
	out := make([]string, 0, len(spans))
	for _, sp := range spans {
		out = append(out, applyRanges(runes, sp, ranges, mark))
	}
	return out
}

// wrapSpans greedily packs words into lines of at most width terminal
// cells. Spaces at a break are dropped; a word wider than width is split.
func wrapSpans(runes []rune, width int) []RuneRange {
	if width <= 0 {
		width = 1
	}
	var spans []RuneRange
	lineStart, lineEnd := -1, -1
	flush := func() {
		if lineStart >= 0 {
			spans = append(spans, RuneRange{Start: lineStart, End: lineEnd})
		}
		lineStart, lineEnd = -1, -1
	}
	i := 0
	for i < len(runes) {
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		if i >= len(runes) {
			break
		}
		ws := i
		for i < len(runes) && !unicode.IsSpace(runes[i]) {
			i++
		}
		we := i
		for cells(runes[ws:we]) > width {
			flush()
			n := fit(runes[ws:we], width)
			spans = append(spans, RuneRange{Start: ws, End: ws + n})
			ws += n
		}
		if ws == we {
			continue
		}
		if lineStart >= 0 && cells(runes[lineStart:we]) > width {
			flush()
		}
		if lineStart < 0 {
			lineStart = ws
		}
		lineEnd = we
	}
	flush()
	if len(spans) == 0 {
		spans = append(spans, RuneRange{})
	}
	return spans
}

func cells(rs []rune) int {
	return ansi.StringWidth(string(rs))
}

// fit returns how many leading runes of rs fit in width cells, at least one.
func fit(rs []rune, width int) int {
	w := 0
	for i, r := range rs {
		w += ansi.StringWidth(string(r))
		if w > width {
			return max(i, 1)
		}
	}
	return len(rs)
}

func applyRanges(runes []rune, line RuneRange, ranges []RuneRange, mark Marker) string {
	var b strings.Builder
	pos := line.Start
	for _, r := range ranges {
		if r.End <= pos || r.Start >= line.End {
			continue
		}
		start := max(r.Start, pos)
		end := min(r.End, line.End)
		b.WriteString(string(runes[pos:start]))
		b.WriteString(mark(string(runes[start:end])))
		pos = end
	}
	b.WriteString(string(runes[pos:line.End]))
	return b.String()
}
