package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/riskscan/internal/prefs"
)

// consentDelay is how long after start the consent banner appears.
const consentDelay = time.Second

// scheduleConsent shows the banner once, after consentDelay.
func scheduleConsent() tea.Cmd {
	return tea.Tick(consentDelay, func(time.Time) tea.Msg {
		return consentDueMsg{}
	})
}

// saveConsent persists the answer off the update loop.
func saveConsent(store *prefs.Store, accepted bool) tea.Cmd {
	return func() tea.Msg {
		return consentSavedMsg{accepted: accepted, err: store.SaveConsent(accepted)}
	}
}
