package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/interpretive-systems/riskscan/internal/tui/components"
	"github.com/interpretive-systems/riskscan/internal/wizard"
)

const sidebarMaxWidth = 32

// Results is the last wizard step: a category sidebar and the finding cards.
type Results struct {
	deps   Deps
	vp     viewport.Model
	cursor int
	follow bool
}

// NewResults creates the results screen.
func NewResults(d Deps) *Results {
	return &Results{deps: d, vp: viewport.New(0, 0)}
}

func (r *Results) Enter(s *wizard.Session) tea.Cmd {
	r.cursor = 0
	r.follow = true
	r.vp.GotoTop()
	return nil
}

// categories returns "all" followed by the catalog categories.
func categories(s *wizard.Session) []string {
	return append([]string{wizard.CategoryAll}, s.Risks.Catalog().Categories()...)
}

func (r *Results) HandleKey(s *wizard.Session, msg tea.KeyMsg) (Action, tea.Cmd) {
	visible := s.Risks.Visible()
	switch msg.String() {
	case "j", "down":
		if r.cursor < len(visible)-1 {
			r.cursor++
			r.follow = true
		}
	case "k", "up":
		if r.cursor > 0 {
			r.cursor--
			r.follow = true
		}
	case "enter", " ":
		if r.cursor < len(visible) {
			s.Risks.ToggleRisk(visible[r.cursor].ID)
			r.follow = true
		}
	case "c", "right", "l":
		r.cycleCategory(s, 1)
	case "C", "left", "h":
		r.cycleCategory(s, -1)
	case "pgdown", "ctrl+d":
		r.follow = false
		r.vp.SetYOffset(r.vp.YOffset + max(r.vp.Height-1, 1))
	case "pgup", "ctrl+u":
		r.follow = false
		r.vp.SetYOffset(r.vp.YOffset - max(r.vp.Height-1, 1))
	case "r":
		return ActionReset, nil
	case "b", "esc":
		return ActionBack, nil
	}
	return ActionContinue, nil
}

func (r *Results) cycleCategory(s *wizard.Session, delta int) {
	cats := categories(s)
	cur := 0
	for i, c := range cats {
		if c == s.Risks.SelectedCategory() {
			cur = i
			break
		}
	}
	next := (cur + delta + len(cats)) % len(cats)
	s.Risks.SelectCategory(cats[next])
	r.cursor = 0
	r.follow = true
	r.vp.GotoTop()
	r.deps.Log.Debug("category selected", "category", cats[next])
}

func (r *Results) Update(s *wizard.Session, msg tea.Msg) tea.Cmd { return nil }

func (r *Results) Render(s *wizard.Session, width, height int) []string {
	th := r.deps.Theme
	head := []string{
		"",
		lipgloss.NewStyle().Bold(true).Render("Analysis Results") + "  " + th.Muted(s.DocType.Selected().Label()),
		fmt.Sprintf("Total risks found: %s", th.Accent(fmt.Sprint(s.Risks.TotalRisks()))),
		"",
	}
	bodyH := height - len(head)
	if bodyH <= 0 {
		return head[:max(height, 0)]
	}

	leftW := min(sidebarMaxWidth, width/3)
	sep := " │ "
	rightW := max(width-leftW-lipgloss.Width(sep), 10)

	side := r.renderSidebar(s)
	cards := r.renderCards(s, rightW, bodyH)
	return append(head, components.Columns(side, cards, leftW, rightW, bodyH, th.DividerText(sep))...)
}

func (r *Results) renderSidebar(s *wizard.Session) []string {
	th := r.deps.Theme
	cat := s.Risks.Catalog()
	lines := []string{th.Muted("Categories")}
	for _, c := range categories(s) {
		name, count := "All Findings", cat.TotalRisks()
		if c != wizard.CategoryAll {
			name, count = c, countFor(s, c)
		}
		row := fmt.Sprintf("%s (%d)", name, count)
		if c == s.Risks.SelectedCategory() {
			lines = append(lines, th.Accent("> "+row))
		} else {
			lines = append(lines, "  "+row)
		}
	}
	return lines
}

func countFor(s *wizard.Session, category string) int {
	n := 0
	for _, f := range s.Risks.Catalog().Findings() {
		if f.Category == category {
			n += f.Count
		}
	}
	return n
}

func (r *Results) renderCards(s *wizard.Session, width, height int) []string {
	visible := s.Risks.Visible()
	if len(visible) == 0 {
		return []string{r.deps.Theme.Muted("No detailed findings in this category.")}
	}
	if r.cursor >= len(visible) {
		r.cursor = len(visible) - 1
	}
	expanded, hasExpanded := s.Risks.Expanded()

	var lines []string
	var cursorTop, cursorBottom int
	for i, f := range visible {
		card := r.deps.Cards.Render(f, hasExpanded && expanded == f.ID, width-2)
		if i == r.cursor {
			cursorTop = len(lines)
		}
		for j, l := range card {
			prefix := "  "
			if i == r.cursor && j == 0 {
				prefix = r.deps.Theme.Accent("›") + " "
			}
			lines = append(lines, prefix+l)
		}
		if i == r.cursor {
			cursorBottom = len(lines)
		}
		lines = append(lines, "")
	}

	r.vp.Width = width
	r.vp.Height = height
	r.vp.SetContent(strings.Join(lines, "\n"))
	if r.follow {
		switch {
		case cursorTop < r.vp.YOffset:
			r.vp.SetYOffset(cursorTop)
		case cursorBottom > r.vp.YOffset+height:
			r.vp.SetYOffset(min(cursorTop, cursorBottom-height))
		}
	}
	return strings.Split(r.vp.View(), "\n")
}

func (r *Results) Capturing() bool { return false }

func (r *Results) Title() string { return "Results" }

func (r *Results) Hints(s *wizard.Session) string {
	return "j/k: move  enter: expand  c/C: category  r: start over  b: back"
}
