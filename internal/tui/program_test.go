package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/interpretive-systems/riskscan/internal/catalog"
	"github.com/interpretive-systems/riskscan/internal/prefs"
	"github.com/interpretive-systems/riskscan/internal/theme"
	"github.com/interpretive-systems/riskscan/internal/tui/screens"
	"github.com/interpretive-systems/riskscan/internal/wizard"
)

func baseProgramForTest(t *testing.T, store *prefs.Store) *Program {
	t.Helper()
	p, err := New(Options{
		Catalog: catalog.Default(),
		Theme:   theme.DefaultTheme(),
		Prefs:   store,
		DocType: wizard.DocContract,
	})
	if err != nil {
		t.Fatalf("new program: %v", err)
	}
	p.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return p
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func enter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }
func esc() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEsc} }

func press(p *Program, keys ...tea.KeyMsg) {
	for _, k := range keys {
		p.Update(k)
	}
}

func plainView(p *Program) string {
	return ansi.Strip(p.View())
}

func TestView_Landing(t *testing.T) {
	p := baseProgramForTest(t, nil)
	plain := plainView(p)

	if !strings.HasPrefix(plain, "riskscan | Home") {
		t.Fatalf("unexpected header: %q", strings.SplitN(plain, "\n", 2)[0])
	}
	if !strings.Contains(plain, "s: scan") {
		t.Fatalf("expected scan control on landing")
	}
	if strings.Contains(plain, "b: back") {
		t.Fatalf("landing has no back control")
	}
	if got := len(strings.Split(p.View(), "\n")); got != 40 {
		t.Fatalf("expected 40 lines, got %d", got)
	}
}

func TestHappyPath(t *testing.T) {
	p := baseProgramForTest(t, nil)
	s := p.Session()

	press(p, runes("s"))
	if p.current != wizard.ScreenScan {
		t.Fatalf("expected scan screen, got %v", p.current)
	}

	press(p, runes("f"))
	p.Update(screens.FilesSelectedMsg{Files: []wizard.SelectedFile{{Name: "contract.pdf", SizeBytes: 2048}}})
	if !s.Upload.HasContent() {
		t.Fatalf("expected content after file selection")
	}
	plain := plainView(p)
	if !strings.Contains(plain, "contract.pdf") || !strings.Contains(plain, "2.0 KiB") {
		t.Fatalf("expected file row in view, got: %q", plain)
	}

	press(p, enter())
	if p.current != wizard.ScreenDocumentType {
		t.Fatalf("expected document type screen, got %v", p.current)
	}
	press(p, enter())
	if p.current != wizard.ScreenResults {
		t.Fatalf("expected results screen, got %v", p.current)
	}

	press(p, runes("c"))
	if got := s.Risks.SelectedCategory(); got != "Hidden Financial Risk" {
		t.Fatalf("unexpected category %q", got)
	}
	press(p, enter())
	id, ok := s.Risks.Expanded()
	if !ok || id != 1 {
		t.Fatalf("expected finding 1 expanded, got %d %v", id, ok)
	}

	plain = plainView(p)
	if !strings.Contains(plain, "Total risks found: 3") {
		t.Fatalf("expected total of 3, got: %q", plain)
	}
	if !strings.Contains(plain, "Explain Risk") {
		t.Fatalf("expected expanded card actions")
	}
}

func TestBackAndReset(t *testing.T) {
	p := baseProgramForTest(t, nil)
	s := p.Session()
	firstID := s.ID

	press(p, runes("s"), enter(), enter())
	press(p, runes("b"))
	if p.current != wizard.ScreenDocumentType {
		t.Fatalf("expected back to document type, got %v", p.current)
	}
	press(p, enter(), runes("r"))
	if p.current != wizard.ScreenLanding {
		t.Fatalf("expected landing after reset, got %v", p.current)
	}
	if s.ID == firstID {
		t.Fatalf("expected a new session id")
	}
}

func TestDocumentTypeDropdown(t *testing.T) {
	p := baseProgramForTest(t, nil)
	s := p.Session()

	press(p, runes("s"), enter(), runes("d"))
	if !s.DocType.DropdownOpen() {
		t.Fatalf("expected dropdown open")
	}
	press(p, runes("j"), runes("j"), enter())
	if s.DocType.DropdownOpen() {
		t.Fatalf("expected selection to close dropdown")
	}
	if got := s.DocType.Selected(); got != wizard.DocPolicy {
		t.Fatalf("expected policy, got %v", got)
	}

	press(p, runes("d"), runes("x"))
	if s.DocType.DropdownOpen() {
		t.Fatalf("expected other key to close dropdown")
	}
	if !strings.Contains(plainView(p), "doc: Policy") {
		t.Fatalf("expected status bar doc type")
	}
}

func TestProfileClosesDropdown(t *testing.T) {
	p := baseProgramForTest(t, nil)
	s := p.Session()

	press(p, runes("s"), enter(), runes("d"))
	if !s.DocType.DropdownOpen() {
		t.Fatalf("expected dropdown open")
	}
	press(p, runes("p"), runes("p"))
	if p.current != wizard.ScreenDocumentType {
		t.Fatalf("expected document type screen, got %v", p.current)
	}
	if s.DocType.DropdownOpen() {
		t.Fatalf("expected dropdown closed after visiting the profile")
	}
}

func TestProfile_EditKeepsLiveValues(t *testing.T) {
	p := baseProgramForTest(t, nil)
	s := p.Session()

	press(p, runes("p"))
	if p.current != wizard.ScreenProfile {
		t.Fatalf("expected profile screen, got %v", p.current)
	}
	if !strings.Contains(plainView(p), "John Doe") {
		t.Fatalf("expected profile name in view")
	}

	press(p, runes("e"), runes("x"), runes("p"))
	if p.current != wizard.ScreenProfile {
		t.Fatalf("typing must not toggle the profile")
	}
	if got := s.Profile.Data().FirstName; got != "Johnxp" {
		t.Fatalf("expected live edit, got %q", got)
	}

	press(p, esc())
	if s.Profile.Editing() {
		t.Fatalf("expected editing to stop")
	}
	if got := s.Profile.Data().FirstName; got != "Johnxp" {
		t.Fatalf("cancel must keep live edits, got %q", got)
	}

	press(p, esc())
	if p.current != wizard.ScreenLanding {
		t.Fatalf("expected profile closed, got %v", p.current)
	}
}

func TestConsentBanner(t *testing.T) {
	store := prefs.Open(t.TempDir())
	p := baseProgramForTest(t, store)

	if p.Init() == nil {
		t.Fatalf("expected init commands")
	}
	p.Update(consentDueMsg{})
	if !strings.Contains(plainView(p), "We Value Your Privacy") {
		t.Fatalf("expected consent banner")
	}

	_, cmd := p.Update(runes("y"))
	if cmd == nil {
		t.Fatalf("expected save command")
	}
	p.Update(cmd())
	if strings.Contains(plainView(p), "We Value Your Privacy") {
		t.Fatalf("expected banner hidden")
	}
	accepted, set := store.Consent()
	if !set || !accepted {
		t.Fatalf("expected stored acceptance, got %v %v", accepted, set)
	}

	p.Update(consentDueMsg{})
	if p.consent.Visible() {
		t.Fatalf("answered consent must not reappear")
	}
}

func TestHelpOverlay(t *testing.T) {
	p := baseProgramForTest(t, nil)
	press(p, runes("?"))
	if !strings.Contains(plainView(p), "Help: press '?' or Esc to close") {
		t.Fatalf("expected help overlay")
	}
	press(p, runes("s"))
	if p.current != wizard.ScreenLanding {
		t.Fatalf("help swallows screen keys")
	}
	press(p, esc())
	if p.showHelp {
		t.Fatalf("expected help closed")
	}
}

func TestStart_PreloadsScan(t *testing.T) {
	p, err := New(Options{
		Catalog: catalog.Default(),
		Theme:   theme.DefaultTheme(),
		DocType: wizard.DocAgreement,
		Start: Start{
			Scan:  true,
			Files: []wizard.SelectedFile{{Name: "nda.pdf", SizeBytes: 1024}},
		},
	})
	if err != nil {
		t.Fatalf("new program: %v", err)
	}
	s := p.Session()
	if p.current != wizard.ScreenScan {
		t.Fatalf("expected scan screen, got %v", p.current)
	}
	if s.Upload.ActiveTab() != wizard.TabFile || len(s.Upload.Files()) != 1 {
		t.Fatalf("expected preloaded file, got %+v", s.Upload.Files())
	}
	if s.DocType.Selected() != wizard.DocAgreement {
		t.Fatalf("expected agreement, got %v", s.DocType.Selected())
	}
}
