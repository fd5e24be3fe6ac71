// Package ansi wraps charmbracelet/x/ansi with the width helpers the screens
// share. Every function is ANSI-aware.
package ansi

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Strip removes all ANSI escape sequences.
func Strip(s string) string {
	return ansi.Strip(s)
}

// VisualWidth is the printed cell width of s.
func VisualWidth(s string) int {
	return ansi.StringWidth(s)
}

// PadExact pads or truncates s to exactly w cells. Truncation adds "…".
func PadExact(s string, w int) string {
	if w <= 0 {
		return ""
	}
	vw := VisualWidth(s)
	switch {
	case vw == w:
		return s
	case vw < w:
		return s + strings.Repeat(" ", w-vw)
	default:
		return ansi.Truncate(s, w, "…")
	}
}

// WrapWords word-wraps s to width, breaking long words when they alone
// exceed it. The result has no trailing newline.
func WrapWords(s string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}
