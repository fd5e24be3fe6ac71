package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/interpretive-systems/riskscan/internal/theme"
	"github.com/interpretive-systems/riskscan/internal/wizard"
)

// intake is the URL / file upload box shared by Landing and Scan.
type intake struct {
	url         textinput.Model
	paths       textinput.Model
	inputActive bool
}

func newIntake() *intake {
	u := textinput.New()
	u.Placeholder = "https://example.com/contract.pdf"
	u.Prompt = "URL > "
	u.CharLimit = 0

	p := textinput.New()
	p.Placeholder = "contract.pdf, appendix.docx"
	p.Prompt = "Files > "
	p.CharLimit = 0

	return &intake{url: u, paths: p}
}

// sync pulls the URL from state. The path input keeps what was typed.
func (in *intake) sync(s *wizard.Session) {
	in.url.SetValue(s.Upload.URL())
	in.blur()
}

func (in *intake) blur() {
	in.inputActive = false
	in.url.Blur()
	in.paths.Blur()
}

func (in *intake) active(s *wizard.Session) *textinput.Model {
	if s.Upload.ActiveTab() == wizard.TabFile {
		return &in.paths
	}
	return &in.url
}

// handleKey returns handled=false for keys the intake does not use.
func (in *intake) handleKey(s *wizard.Session, msg tea.KeyMsg) (bool, tea.Cmd) {
	if in.inputActive {
		return true, in.handleInput(s, msg)
	}
	switch msg.String() {
	case "tab":
		if s.Upload.ActiveTab() == wizard.TabURL {
			s.Upload.SwitchTab(wizard.TabFile)
		} else {
			s.Upload.SwitchTab(wizard.TabURL)
		}
		return true, nil
	case "u":
		s.Upload.SwitchTab(wizard.TabURL)
		return true, nil
	case "f":
		s.Upload.SwitchTab(wizard.TabFile)
		return true, nil
	case "i":
		in.inputActive = true
		return true, in.active(s).Focus()
	}
	return false, nil
}

func (in *intake) handleInput(s *wizard.Session, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		in.blur()
		return nil
	case "enter":
		in.blur()
		if s.Upload.ActiveTab() == wizard.TabFile {
			return selectFiles(wizard.SplitPaths(in.paths.Value()))
		}
		return nil
	}
	ti := in.active(s)
	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	if s.Upload.ActiveTab() == wizard.TabURL {
		s.Upload.HandleURLChange(in.url.Value())
	}
	return cmd
}

func (in *intake) update(msg tea.Msg) tea.Cmd {
	if !in.inputActive {
		return nil
	}
	var c1, c2 tea.Cmd
	in.url, c1 = in.url.Update(msg)
	in.paths, c2 = in.paths.Update(msg)
	return tea.Batch(c1, c2)
}

func (in *intake) render(th theme.Theme, s *wizard.Session, width int) []string {
	tab := func(label string, on bool) string {
		if on {
			return th.Accent("[ " + label + " ]")
		}
		return th.Muted("  " + label + "  ")
	}
	isFile := s.Upload.ActiveTab() == wizard.TabFile
	lines := []string{
		tab("Paste URL", !isFile) + " " + tab("Upload Files", isFile),
		th.DividerText(strings.Repeat("─", min(width, 60))),
	}
	ti := in.active(s)
	ti.Width = max(width-lipgloss.Width(ti.Prompt)-2, 10)
	lines = append(lines, ti.View())
	if isFile {
		lines = append(lines, th.Muted("Comma separated paths; any file type is accepted."))
	}
	return lines
}

func (in *intake) hints() string {
	if in.inputActive {
		return "enter: done  esc: leave input"
	}
	return "tab: switch input  i: edit"
}
