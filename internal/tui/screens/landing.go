package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	tuiansi "github.com/interpretive-systems/riskscan/internal/tui/ansi"
	"github.com/interpretive-systems/riskscan/internal/tui/components"
	"github.com/interpretive-systems/riskscan/internal/wizard"
)

const (
	heroTitle    = "Scan before you sign"
	heroSubtitle = "Find hidden risks in contracts, agreements and policies in seconds. " +
		"Paste a link or pick files to get started."
	aboutText = "riskscan reads your document and groups problematic clauses by category: " +
		"payment terms, liability, termination and more. Each finding quotes the " +
		"clause it came from so you can check it yourself."
)

// Landing is the home screen with the intake box and the about section.
type Landing struct {
	deps   Deps
	intake *intake
	files  *components.FileList
}

// NewLanding creates the landing screen.
func NewLanding(d Deps) *Landing {
	return &Landing{deps: d, intake: newIntake(), files: components.NewFileList()}
}

func (l *Landing) Enter(s *wizard.Session) tea.Cmd {
	l.intake.sync(s)
	return nil
}

func (l *Landing) HandleKey(s *wizard.Session, msg tea.KeyMsg) (Action, tea.Cmd) {
	if handled, cmd := l.intake.handleKey(s, msg); handled {
		return ActionContinue, cmd
	}
	switch msg.String() {
	case "enter", "s":
		return ActionStartScan, nil
	case "a":
		s.Nav.ToggleAbout()
	}
	return ActionContinue, nil
}

func (l *Landing) Update(s *wizard.Session, msg tea.Msg) tea.Cmd {
	return l.intake.update(msg)
}

func (l *Landing) Render(s *wizard.Session, width, height int) []string {
	th := l.deps.Theme
	lines := []string{
		"",
		lipgloss.NewStyle().Bold(true).Render(th.Accent(heroTitle)),
	}
	lines = append(lines, tuiansi.WrapWords(heroSubtitle, width)...)
	lines = append(lines, "")
	lines = append(lines, l.intake.render(th, s, width)...)

	l.files.SetRows(s.Upload.Summary())
	if l.files.Len() > 0 {
		lines = append(lines, "")
		lines = append(lines, l.files.Render(th, width, 5)...)
	}

	if s.Nav.ShowingAbout() {
		lines = append(lines, "", lipgloss.NewStyle().Bold(true).Render("About"))
		lines = append(lines, tuiansi.WrapWords(aboutText, width)...)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return lines
}

func (l *Landing) Capturing() bool { return l.intake.inputActive }

func (l *Landing) Title() string { return "Home" }

func (l *Landing) Hints(s *wizard.Session) string {
	if l.intake.inputActive {
		return l.intake.hints()
	}
	return l.intake.hints() + "  enter: scan  a: about"
}
