package tui

import (
	"strings"

	"github.com/interpretive-systems/riskscan/internal/theme"
	tuiansi "github.com/interpretive-systems/riskscan/internal/tui/ansi"
)

// Layout manages screen layout calculations.
type Layout struct {
	width  int
	height int
}

// NewLayout creates a new layout manager.
func NewLayout() *Layout {
	return &Layout{}
}

// SetSize updates the layout dimensions.
func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the total width.
func (l *Layout) Width() int {
	return l.width
}

// Ready reports whether a size has been received.
func (l *Layout) Ready() bool {
	return l.width > 0 && l.height > 0
}

// ContentHeight returns the height available for the screen body.
func (l *Layout) ContentHeight(overlayHeight int) int {
	// top bar + top rule + bottom rule + bottom bar + overlays
	h := l.height - 4 - overlayHeight
	if h < 1 {
		h = 1
	}
	return h
}

// RenderFrame renders the header, body, overlays and status bar. The body is
// padded or cut to exactly bodyHeight lines.
func (l *Layout) RenderFrame(top string, body []string, bodyHeight int, overlay []string, bottomBar string, th theme.Theme) string {
	var b strings.Builder
	hr := th.DividerText(strings.Repeat("─", l.width))

	b.WriteString(top)
	b.WriteByte('\n')
	b.WriteString(hr)
	b.WriteByte('\n')

	for i := 0; i < bodyHeight; i++ {
		var line string
		if i < len(body) {
			line = body[i]
		}
		b.WriteString(tuiansi.PadExact(line, l.width))
		b.WriteByte('\n')
	}

	for _, line := range overlay {
		b.WriteString(tuiansi.PadExact(line, l.width))
		b.WriteByte('\n')
	}

	b.WriteString(hr)
	b.WriteByte('\n')
	b.WriteString(bottomBar)
	return b.String()
}
