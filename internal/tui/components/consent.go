package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/interpretive-systems/riskscan/internal/theme"
	tuiansi "github.com/interpretive-systems/riskscan/internal/tui/ansi"
)

const consentText = "We use cookies and similar technologies to improve your experience, " +
	"analyze traffic, and provide personalized content. Your document data is " +
	"never stored or shared with third parties."

// ConsentBanner is the privacy notice shown until the user answers it.
type ConsentBanner struct {
	visible bool
}

// NewConsentBanner returns a hidden banner.
func NewConsentBanner() *ConsentBanner {
	return &ConsentBanner{}
}

func (c *ConsentBanner) Show()         { c.visible = true }
func (c *ConsentBanner) Hide()         { c.visible = false }
func (c *ConsentBanner) Visible() bool { return c.visible }

// Render returns the overlay lines, or nil when hidden.
func (c *ConsentBanner) Render(th theme.Theme, width int) []string {
	if !c.visible {
		return nil
	}
	lines := []string{
		th.DividerText(strings.Repeat("─", width)),
		lipgloss.NewStyle().Bold(true).Render("We Value Your Privacy") + "  " + th.Muted("(y: accept, n: decline)"),
	}
	return append(lines, tuiansi.WrapWords(consentText, width)...)
}
