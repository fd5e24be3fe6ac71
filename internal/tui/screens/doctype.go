package screens

import (
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/interpretive-systems/riskscan/internal/wizard"
)

// DocumentType is the second wizard step.
type DocumentType struct {
	deps   Deps
	cursor int
}

// NewDocumentType creates the document type screen.
func NewDocumentType(d Deps) *DocumentType {
	return &DocumentType{deps: d}
}

func (d *DocumentType) Enter(s *wizard.Session) tea.Cmd {
	d.cursor = max(slices.Index(wizard.DocumentTypes(), s.DocType.Selected()), 0)
	return nil
}

func (d *DocumentType) HandleKey(s *wizard.Session, msg tea.KeyMsg) (Action, tea.Cmd) {
	types := wizard.DocumentTypes()
	key := msg.String()

	if s.DocType.DropdownOpen() {
		switch key {
		case "j", "down":
			if d.cursor < len(types)-1 {
				d.cursor++
			}
			return ActionContinue, nil
		case "k", "up":
			if d.cursor > 0 {
				d.cursor--
			}
			return ActionContinue, nil
		case "enter", " ":
			s.DocType.SelectType(types[d.cursor])
			d.deps.Log.Debug("document type selected", "type", types[d.cursor])
			return ActionContinue, nil
		case "esc", "d":
			s.DocType.CloseDropdown()
			return ActionContinue, nil
		}
		// Any other key acts as a click outside the list.
		s.DocType.CloseDropdown()
	}

	switch key {
	case "d", " ":
		d.cursor = max(slices.Index(types, s.DocType.Selected()), 0)
		s.DocType.ToggleDropdown()
	case "1", "2", "3", "4", "5":
		i := int(key[0] - '1')
		if i < len(types) {
			s.DocType.SelectType(types[i])
			d.cursor = i
		}
	case "enter", "n":
		return ActionNext, nil
	case "b", "esc":
		return ActionBack, nil
	}
	return ActionContinue, nil
}

func (d *DocumentType) Update(s *wizard.Session, msg tea.Msg) tea.Cmd { return nil }

func (d *DocumentType) Render(s *wizard.Session, width, height int) []string {
	th := d.deps.Theme
	arrow := "▾"
	if s.DocType.DropdownOpen() {
		arrow = "▴"
	}
	lines := []string{
		"",
		lipgloss.NewStyle().Bold(true).Render("Document Type"),
		th.Muted("Step 2 of 3: what kind of document is this?"),
		"",
		fmt.Sprintf("[ %s %s ]", th.Accent(s.DocType.Selected().Label()), arrow),
	}
	if s.DocType.DropdownOpen() {
		for i, t := range wizard.DocumentTypes() {
			prefix := "   "
			if i == d.cursor {
				prefix = " > "
			}
			row := fmt.Sprintf("%s%d. %s", prefix, i+1, t.Label())
			if t == s.DocType.Selected() {
				row += th.Muted("  (selected)")
			}
			if i == d.cursor {
				row = th.Accent(row)
			}
			lines = append(lines, row)
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return lines
}

func (d *DocumentType) Capturing() bool { return false }

func (d *DocumentType) Title() string { return "Document Type" }

func (d *DocumentType) Hints(s *wizard.Session) string {
	if s.DocType.DropdownOpen() {
		return "j/k: move  enter: choose  esc: close"
	}
	return "d: choose type  1-5: pick  enter: analyze  b: back"
}
