package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StatusBar manages the bottom status bar.
type StatusBar struct {
	session string
	docType string
	message string
	hints   string
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetSession shows the first block of the session id.
func (s *StatusBar) SetSession(id string) {
	if i := strings.IndexByte(id, '-'); i > 0 {
		id = id[:i]
	}
	s.session = id
}

// SetDocType updates the document type label.
func (s *StatusBar) SetDocType(label string) {
	s.docType = label
}

// SetMessage replaces the transient message on the right.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
}

// Message returns the transient message.
func (s *StatusBar) Message() string {
	return s.message
}

// SetHints updates the key hints on the left.
func (s *StatusBar) SetHints(h string) {
	s.hints = h
}

// Render renders the status bar.
func (s *StatusBar) Render(width int) string {
	leftText := "?: help"
	if s.hints != "" {
		leftText += "  " + s.hints
	}

	var right []string
	if s.message != "" {
		right = append(right, s.message)
	}
	if s.docType != "" {
		right = append(right, "doc: "+s.docType)
	}
	if s.session != "" {
		right = append(right, "session "+s.session)
	}
	rightStyled := lipgloss.NewStyle().Faint(true).Render(strings.Join(right, "  |  "))
	leftStyled := lipgloss.NewStyle().Faint(true).Render(leftText)

	// Right part stays visible; the hints give way first.
	rightW := lipgloss.Width(rightStyled)
	if rightW >= width {
		return ansi.Truncate(rightStyled, width, "…")
	}

	avail := width - rightW - 1
	leftRendered := leftStyled
	if lipgloss.Width(leftRendered) > avail {
		leftRendered = ansi.Truncate(leftRendered, avail, "…")
	} else if lipgloss.Width(leftRendered) < avail {
		leftRendered = leftRendered + strings.Repeat(" ", avail-lipgloss.Width(leftRendered))
	}

	return leftRendered + " " + rightStyled
}
