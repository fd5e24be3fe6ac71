package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Header renders the top bar: app name and screen title on the left,
// navigation controls on the right.
func Header(title string, controls []string, width int) string {
	left := lipgloss.NewStyle().Bold(true).Render("riskscan") + " | " + title
	right := lipgloss.NewStyle().Faint(true).Render(strings.Join(controls, "  "))

	rightW := lipgloss.Width(right)
	if rightW >= width {
		return ansi.Truncate(right, width, "…")
	}
	avail := width - rightW - 1
	if lipgloss.Width(left) > avail {
		left = ansi.Truncate(left, avail, "…")
	} else if lipgloss.Width(left) < avail {
		left = left + strings.Repeat(" ", avail-lipgloss.Width(left))
	}
	return left + " " + right
}
