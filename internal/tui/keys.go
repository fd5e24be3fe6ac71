package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyAction represents a global action triggered by a key press.
type KeyAction int

const (
	ActionNone KeyAction = iota
	ActionQuit
	ActionToggleHelp
	ActionToggleProfile
	ActionHome
)

// KeyHandler maps keys that work on every screen. Keys it does not know are
// passed on to the active screen.
type KeyHandler struct{}

// NewKeyHandler creates a new key handler.
func NewKeyHandler() *KeyHandler {
	return &KeyHandler{}
}

// Handle returns the global action for msg.
func (k *KeyHandler) Handle(msg tea.KeyMsg) KeyAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit
	case "?":
		return ActionToggleHelp
	case "p":
		return ActionToggleProfile
	case "H":
		return ActionHome
	default:
		return ActionNone
	}
}

// helpKeys is the help overlay content.
var helpKeys = []string{
	"p              Toggle profile",
	"H              Home",
	"b / Esc        Back",
	"i / Esc        Edit input / leave input",
	"?              Toggle help",
	"q              Quit",
}
