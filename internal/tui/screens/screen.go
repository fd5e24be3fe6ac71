package screens

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/riskscan/internal/theme"
	"github.com/interpretive-systems/riskscan/internal/tui/components"
	"github.com/interpretive-systems/riskscan/internal/wizard"
)

// Action represents what the screen wants the program to do.
type Action int

const (
	ActionContinue  Action = iota // Stay on the screen
	ActionNext                    // Advance the wizard
	ActionBack                    // Step back
	ActionStartScan               // Landing → Scan
	ActionReset                   // Start over
	ActionClose                   // Close the profile overlay
)

// Screen is the interface every view implements.
type Screen interface {
	// Enter is called whenever the screen becomes visible.
	Enter(s *wizard.Session) tea.Cmd

	// HandleKey processes keyboard input.
	// Returns the action to take and any commands.
	HandleKey(s *wizard.Session, msg tea.KeyMsg) (Action, tea.Cmd)

	// Update processes other tea messages (cursor blink and the like).
	Update(s *wizard.Session, msg tea.Msg) tea.Cmd

	// Render returns at most height lines of at most width cells.
	Render(s *wizard.Session, width, height int) []string

	// Capturing is true while a text input has focus; global keys are
	// then delivered to the screen.
	Capturing() bool

	// Title is shown in the header.
	Title() string

	// Hints lists the screen's keys for the status bar.
	Hints(s *wizard.Session) string
}

// Deps are shared by all screens.
type Deps struct {
	Theme theme.Theme
	Log   *slog.Logger
	Cards *components.RiskCards
}

// Set holds one instance of every screen.
type Set map[wizard.Screen]Screen

// NewSet builds all screens.
func NewSet(d Deps) Set {
	return Set{
		wizard.ScreenLanding:      NewLanding(d),
		wizard.ScreenScan:         NewScan(d),
		wizard.ScreenDocumentType: NewDocumentType(d),
		wizard.ScreenResults:      NewResults(d),
		wizard.ScreenProfile:      NewProfile(d),
	}
}
