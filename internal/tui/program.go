package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/interpretive-systems/riskscan/internal/catalog"
	"github.com/interpretive-systems/riskscan/internal/config"
	"github.com/interpretive-systems/riskscan/internal/prefs"
	"github.com/interpretive-systems/riskscan/internal/theme"
	"github.com/interpretive-systems/riskscan/internal/tui/components"
	"github.com/interpretive-systems/riskscan/internal/tui/screens"
	"github.com/interpretive-systems/riskscan/internal/wizard"
)

// Options wire a Program to its data and collaborators.
type Options struct {
	Catalog *catalog.Catalog
	Theme   theme.Theme
	Prefs   *prefs.Store
	Log     *slog.Logger
	DocType wizard.DocumentType
	Start   Start
}

// Start preloads the session, e.g. from command line arguments.
type Start struct {
	Scan  bool // open on the Scan step
	URL   string
	Files []wizard.SelectedFile
}

func (st Start) apply(s *wizard.Session) {
	switch {
	case len(st.Files) > 0:
		refs := make([]wizard.FileRef, 0, len(st.Files))
		for _, f := range st.Files {
			refs = append(refs, f.Ref())
		}
		s.Upload.SwitchTab(wizard.TabFile)
		s.Upload.HandleFileChange(refs)
	case st.URL != "":
		s.Upload.HandleURLChange(st.URL)
	}
	if st.Scan {
		s.Nav.StartScan()
	}
}

// Program is the Bubble Tea model for the wizard.
type Program struct {
	session  *wizard.Session
	screens  screens.Set
	current  wizard.Screen
	layout   *Layout
	keys     *KeyHandler
	theme    theme.Theme
	prefs    *prefs.Store
	log      *slog.Logger
	consent  *components.ConsentBanner
	status   *components.StatusBar
	showHelp bool
}

// New builds a Program over a fresh session.
func New(opts Options) (*Program, error) {
	if opts.Log == nil {
		opts.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	cards, err := components.NewRiskCards(opts.Catalog, opts.Theme)
	if err != nil {
		return nil, err
	}
	p := &Program{
		session: wizard.NewSession(opts.Catalog, opts.DocType),
		screens: screens.NewSet(screens.Deps{Theme: opts.Theme, Log: opts.Log, Cards: cards}),
		layout:  NewLayout(),
		keys:    NewKeyHandler(),
		theme:   opts.Theme,
		prefs:   opts.Prefs,
		log:     opts.Log,
		consent: components.NewConsentBanner(),
		status:  components.NewStatusBar(),
	}
	opts.Start.apply(p.session)
	p.current = p.session.Screen()
	p.refreshStatus()
	return p, nil
}

// Run loads everything cfg points at and runs the program until the user
// quits.
func Run(cfg *config.Config, start Start) error {
	log, closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	cat, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return err
	}
	docType, ok := wizard.ParseDocumentType(cfg.DocType)
	if !ok {
		return fmt.Errorf("unknown document type %q", cfg.DocType)
	}

	p, err := New(Options{
		Catalog: cat,
		Theme:   theme.Load(cfg.Home, cfg.Theme),
		Prefs:   prefs.Open(cfg.Home),
		Log:     log,
		DocType: docType,
		Start:   start,
	})
	if err != nil {
		return err
	}
	log.Info("starting", "session", p.session.ID, "home", cfg.Home, "findings", len(cat.Findings()))

	if _, err := tea.NewProgram(p, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}

// setupLogging logs to cfg.LogFile, or nowhere when it is empty. The
// terminal belongs to the UI.
func setupLogging(cfg *config.Config) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := tea.LogToFile(cfg.LogFile, "riskscan")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel})
	return slog.New(h), func() { _ = f.Close() }, nil
}

// Session exposes the wizard state.
func (p *Program) Session() *wizard.Session {
	return p.session
}

func (p *Program) Init() tea.Cmd {
	cmds := []tea.Cmd{p.screen().Enter(p.session)}
	if p.prefs != nil {
		if _, set := p.prefs.Consent(); !set {
			cmds = append(cmds, scheduleConsent())
		}
	}
	return tea.Batch(cmds...)
}

func (p *Program) screen() screens.Screen {
	return p.screens[p.current]
}

func (p *Program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.layout.SetSize(msg.Width, msg.Height)
		return p, nil

	case consentDueMsg:
		if p.prefs == nil {
			return p, nil
		}
		if _, set := p.prefs.Consent(); !set {
			p.consent.Show()
		}
		return p, nil

	case consentSavedMsg:
		if msg.err != nil {
			p.log.Error("save consent", "err", msg.err)
			p.status.SetMessage("could not save privacy choice")
			return p, nil
		}
		p.log.Info("consent recorded", "accepted", msg.accepted)
		return p, nil

	case screens.FilesSelectedMsg:
		screens.ApplyFiles(p.session, msg)
		for _, err := range msg.Skipped {
			p.log.Warn("file skipped", "err", err)
		}
		switch {
		case len(msg.Skipped) > 0:
			p.status.SetMessage(fmt.Sprintf("%d selected, %d skipped", len(msg.Files), len(msg.Skipped)))
		default:
			p.status.SetMessage(fmt.Sprintf("%d selected", len(msg.Files)))
		}
		return p, p.sync()

	case screens.PhotoDecodedMsg:
		if msg.OK {
			p.session.Profile.SetPhoto(msg.Photo)
			p.status.SetMessage("photo updated")
		}
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return p, p.screen().Update(p.session, msg)
}

func (p *Program) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return p, tea.Quit
	}
	if p.showHelp {
		switch key {
		case "q":
			return p, tea.Quit
		case "?", "esc":
			p.showHelp = false
		}
		return p, nil
	}

	scr := p.screen()
	if !scr.Capturing() {
		if p.consent.Visible() {
			switch key {
			case "y", "n":
				p.consent.Hide()
				if p.prefs == nil {
					return p, nil
				}
				return p, saveConsent(p.prefs, key == "y")
			}
		}
		switch p.keys.Handle(msg) {
		case ActionQuit:
			return p, tea.Quit
		case ActionToggleHelp:
			p.showHelp = true
			return p, nil
		case ActionToggleProfile:
			p.session.ToggleProfile()
			return p, p.sync()
		case ActionHome:
			p.session.GoHome()
			return p, p.sync()
		}
	}

	action, cmd := scr.HandleKey(p.session, msg)
	switch action {
	case screens.ActionNext:
		p.session.Nav.Next()
	case screens.ActionBack:
		p.session.GoBack()
	case screens.ActionStartScan:
		p.session.Nav.StartScan()
	case screens.ActionReset:
		p.session.Reset()
		p.status.SetMessage("")
		p.log.Info("session reset", "session", p.session.ID)
	case screens.ActionClose:
		if p.session.Nav.ShowingProfile() {
			p.session.ToggleProfile()
		}
	}
	return p, tea.Batch(cmd, p.sync())
}

// sync enters the composed screen when it changed and refreshes the status
// bar.
func (p *Program) sync() tea.Cmd {
	var cmd tea.Cmd
	if next := p.session.Screen(); next != p.current {
		p.log.Debug("screen changed", "from", p.current, "to", next)
		p.current = next
		cmd = p.screen().Enter(p.session)
	}
	p.refreshStatus()
	return cmd
}

func (p *Program) refreshStatus() {
	p.status.SetSession(p.session.ID)
	p.status.SetDocType(p.session.DocType.Selected().Label())
	p.status.SetHints(p.screen().Hints(p.session))
}

func (p *Program) View() string {
	if !p.layout.Ready() {
		return "Loading..."
	}
	width := p.layout.Width()
	scr := p.screen()
	p.status.SetHints(scr.Hints(p.session))

	var overlay []string
	overlay = append(overlay, p.helpOverlayLines(width)...)
	overlay = append(overlay, p.consent.Render(p.theme, width)...)
	bodyH := p.layout.ContentHeight(len(overlay))

	top := components.Header(scr.Title(), p.controls(), width)
	body := scr.Render(p.session, width, bodyH)
	return p.layout.RenderFrame(top, body, bodyH, overlay, p.status.Render(width), p.theme)
}

// controls are the header shortcuts for the current navigation state.
func (p *Program) controls() []string {
	var out []string
	nav := p.session.Nav
	if nav.ShowScanButton() {
		out = append(out, "s: scan")
	}
	if nav.ShowBack() && !nav.ShowingProfile() {
		out = append(out, "b: back")
	}
	if nav.ShowingProfile() {
		out = append(out, "p: close profile")
	} else {
		out = append(out, "p: profile")
	}
	return append(out, "q: quit")
}

func (p *Program) helpOverlayLines(width int) []string {
	if !p.showHelp {
		return nil
	}
	lines := []string{
		p.theme.DividerText(strings.Repeat("─", width)),
		lipgloss.NewStyle().Bold(true).Render("Help: press '?' or Esc to close"),
	}
	lines = append(lines, helpKeys...)
	return append(lines, "", p.theme.Muted(p.screen().Hints(p.session)))
}
