package highlight

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/interpretive-systems/riskscan/internal/catalog"
)

func brackets(s string) string { return "[" + s + "]" }

func TestExcerpt_SingleLine(t *testing.T) {
	ex := catalog.Excerpt{Text: "pay the fee now", Highlight: "the fee"}
	assert.Equal(t, []string{"pay [the fee] now"}, Excerpt(ex, 80, brackets))
}

func TestExcerpt_MarkAcrossBreak(t *testing.T) {
	ex := catalog.Excerpt{Text: "aa bb cc dd", Highlight: "bb cc"}
	got := Excerpt(ex, 5, brackets)
	assert.Equal(t, []string{"aa [bb]", "[cc] dd"}, got)
}

func TestExcerpt_NoHighlight(t *testing.T) {
	ex := catalog.Excerpt{Text: "timely manner and more", Highlight: "timely manner... more"}
	got := Excerpt(ex, 80, brackets)
	assert.Equal(t, []string{"timely manner and more"}, got)
}

func TestExcerpt_EveryOccurrence(t *testing.T) {
	ex := catalog.Excerpt{Text: "fee and fee", Highlight: "fee"}
	assert.Equal(t, []string{"[fee] and [fee]"}, Excerpt(ex, 80, brackets))
}

func TestWrapSpans_Widths(t *testing.T) {
	d, _ := catalog.Default().Detail(1)
	text := d.Excerpts[0].Text
	lines := Lines(text, nil, 30, brackets)
	for _, l := range lines {
		assert.LessOrEqual(t, utf8.RuneCountInString(l), 30)
	}
	assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(lines, " ")))
}

func TestWrapSpans_LongWord(t *testing.T) {
	assert.Equal(t, []string{"abcd", "ef g"}, Lines("abcdef g", nil, 4, brackets))
	assert.Equal(t, []string{""}, Lines("   ", nil, 4, brackets))
}

func TestWrapSpans_WideRunes(t *testing.T) {
	text := strings.Repeat("契約", 15) + " end"
	lines := Lines(text, nil, 20, func(s string) string { return s })
	for _, l := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(l), 20, l)
	}
	assert.Equal(t, []string{
		strings.Repeat("契約", 5),
		strings.Repeat("契約", 5),
		strings.Repeat("契約", 5),
		"end",
	}, lines)

	// a wide rune that alone exceeds the width still makes progress
	assert.Equal(t, []string{"契", "約"}, Lines("契約", nil, 1, func(s string) string { return s }))
}

func TestMarkRanges(t *testing.T) {
	segs := catalog.SplitHighlight("é-ab-ab", "ab")
	assert.Equal(t, []RuneRange{{Start: 2, End: 4}, {Start: 5, End: 7}}, MarkRanges(segs))
}
