package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/interpretive-systems/riskscan/internal/tui/components"
	"github.com/interpretive-systems/riskscan/internal/wizard"
)

// Scan is the first wizard step: choose what to analyze.
type Scan struct {
	deps   Deps
	intake *intake
	files  *components.FileList
	listH  int
}

// NewScan creates the scan screen.
func NewScan(d Deps) *Scan {
	return &Scan{deps: d, intake: newIntake(), files: components.NewFileList()}
}

func (c *Scan) Enter(s *wizard.Session) tea.Cmd {
	c.intake.sync(s)
	return nil
}

func (c *Scan) HandleKey(s *wizard.Session, msg tea.KeyMsg) (Action, tea.Cmd) {
	if handled, cmd := c.intake.handleKey(s, msg); handled {
		return ActionContinue, cmd
	}
	switch msg.String() {
	case "enter", "n":
		return ActionNext, nil
	case "b", "esc":
		return ActionBack, nil
	case "pgdown", "J":
		c.files.Scroll(1, max(c.listH-1, 1))
	case "pgup", "K":
		c.files.Scroll(-1, max(c.listH-1, 1))
	}
	return ActionContinue, nil
}

func (c *Scan) Update(s *wizard.Session, msg tea.Msg) tea.Cmd {
	return c.intake.update(msg)
}

func (c *Scan) Render(s *wizard.Session, width, height int) []string {
	th := c.deps.Theme
	lines := []string{
		"",
		lipgloss.NewStyle().Bold(true).Render("Upload Document"),
		th.Muted("Step 1 of 3: paste a link or choose files"),
		"",
	}
	lines = append(lines, c.intake.render(th, s, width)...)

	c.files.SetRows(s.Upload.Summary())
	c.listH = height - len(lines) - 1
	if c.files.Len() > 0 && c.listH > 0 {
		lines = append(lines, "")
		lines = append(lines, c.files.Render(th, width, c.listH)...)
	} else if c.listH > 0 {
		lines = append(lines, "", th.Muted("Nothing selected yet."))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return lines
}

func (c *Scan) Capturing() bool { return c.intake.inputActive }

func (c *Scan) Title() string { return "Scan" }

func (c *Scan) Hints(s *wizard.Session) string {
	if c.intake.inputActive {
		return c.intake.hints()
	}
	return c.intake.hints() + "  enter: next  b: back"
}
