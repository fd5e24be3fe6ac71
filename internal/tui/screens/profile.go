package screens

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/interpretive-systems/riskscan/internal/wizard"
)

type profileSlot int

const (
	slotFirstName profileSlot = iota
	slotLastName
	slotUserType
	slotPhoto
	slotCount
)

// Profile is the account overlay. Field edits apply live while editing.
type Profile struct {
	deps        Deps
	first       textinput.Model
	last        textinput.Model
	photo       textinput.Model
	focus       profileSlot
	photoActive bool
	editing     bool // mirrors the session profile for Capturing
}

// NewProfile creates the profile screen.
func NewProfile(d Deps) *Profile {
	mk := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholder
		return ti
	}
	return &Profile{
		deps:  d,
		first: mk("First name"),
		last:  mk("Last name"),
		photo: mk("path/to/photo.png"),
	}
}

func (p *Profile) Enter(s *wizard.Session) tea.Cmd {
	p.syncInputs(s)
	p.photoActive = false
	p.editing = s.Profile.Editing()
	if p.editing {
		return p.setFocus(p.focus)
	}
	p.blurAll()
	return nil
}

func (p *Profile) syncInputs(s *wizard.Session) {
	data := s.Profile.Data()
	p.first.SetValue(data.FirstName)
	p.first.CursorEnd()
	p.last.SetValue(data.LastName)
	p.last.CursorEnd()
}

func (p *Profile) blurAll() {
	p.first.Blur()
	p.last.Blur()
	p.photo.Blur()
}

func (p *Profile) setFocus(slot profileSlot) tea.Cmd {
	p.focus = slot
	p.blurAll()
	switch slot {
	case slotFirstName:
		return p.first.Focus()
	case slotLastName:
		return p.last.Focus()
	case slotPhoto:
		return p.photo.Focus()
	}
	return nil
}

func (p *Profile) HandleKey(s *wizard.Session, msg tea.KeyMsg) (Action, tea.Cmd) {
	switch {
	case s.Profile.Editing():
		return ActionContinue, p.handleEditing(s, msg)
	case p.photoActive:
		return ActionContinue, p.handlePhotoOnly(s, msg)
	}
	switch msg.String() {
	case "e":
		s.Profile.StartEditing()
		p.editing = true
		p.syncInputs(s)
		return ActionContinue, p.setFocus(slotFirstName)
	case "u":
		p.photoActive = true
		return ActionContinue, p.setFocus(slotPhoto)
	case "esc", "b":
		return ActionClose, nil
	}
	return ActionContinue, nil
}

func (p *Profile) handleEditing(s *wizard.Session, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+s":
		s.Profile.SaveProfile()
		p.editing = false
		p.blurAll()
		p.deps.Log.Info("profile saved", "user_type", s.Profile.Data().UserType)
		return nil
	case "esc":
		s.Profile.CancelEditing()
		p.editing = false
		p.blurAll()
		return nil
	case "tab", "down":
		return p.setFocus((p.focus + 1) % slotCount)
	case "shift+tab", "up":
		return p.setFocus((p.focus + slotCount - 1) % slotCount)
	case "enter":
		if p.focus == slotPhoto {
			return p.uploadPhoto(s)
		}
		return p.setFocus((p.focus + 1) % slotCount)
	}

	switch p.focus {
	case slotUserType:
		switch msg.String() {
		case "right", "l", " ":
			p.cycleUserType(s, 1)
		case "left", "h":
			p.cycleUserType(s, -1)
		}
		return nil
	case slotFirstName:
		var cmd tea.Cmd
		p.first, cmd = p.first.Update(msg)
		s.Profile.UpdateProfile(wizard.FieldFirstName, p.first.Value())
		return cmd
	case slotLastName:
		var cmd tea.Cmd
		p.last, cmd = p.last.Update(msg)
		s.Profile.UpdateProfile(wizard.FieldLastName, p.last.Value())
		return cmd
	case slotPhoto:
		var cmd tea.Cmd
		p.photo, cmd = p.photo.Update(msg)
		return cmd
	}
	return nil
}

func (p *Profile) handlePhotoOnly(s *wizard.Session, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.photoActive = false
		p.blurAll()
		return nil
	case "enter":
		p.photoActive = false
		p.blurAll()
		return p.uploadPhoto(s)
	}
	var cmd tea.Cmd
	p.photo, cmd = p.photo.Update(msg)
	return cmd
}

func (p *Profile) cycleUserType(s *wizard.Session, delta int) {
	types := wizard.UserTypes()
	i := max(slices.Index(types, s.Profile.Data().UserType), 0)
	next := types[(i+delta+len(types))%len(types)]
	s.Profile.UpdateProfile(wizard.FieldUserType, next.String())
}

// uploadPhoto stats the typed path and starts decoding when it is an image.
// Anything else is ignored.
func (p *Profile) uploadPhoto(s *wizard.Session) tea.Cmd {
	path := p.photo.Value()
	if path == "" {
		return nil
	}
	f, err := wizard.StatFile(path)
	if err != nil {
		p.deps.Log.Warn("photo not readable", "path", path, "err", err)
		return nil
	}
	decode, ok := s.Profile.HandlePhotoUpload(f)
	if !ok {
		p.deps.Log.Debug("photo ignored", "path", path, "media_type", f.MediaType)
		return nil
	}
	p.photo.SetValue("")
	return decodePhoto(decode)
}

func (p *Profile) Update(s *wizard.Session, msg tea.Msg) tea.Cmd {
	if !s.Profile.Editing() && !p.photoActive {
		return nil
	}
	var c1, c2, c3 tea.Cmd
	p.first, c1 = p.first.Update(msg)
	p.last, c2 = p.last.Update(msg)
	p.photo, c3 = p.photo.Update(msg)
	return tea.Batch(c1, c2, c3)
}

func (p *Profile) Render(s *wizard.Session, width, height int) []string {
	th := p.deps.Theme
	data := s.Profile.Data()
	editing := s.Profile.Editing()

	avatar := th.Accent("(" + s.Profile.Initials() + ")")
	if ph, ok := s.Profile.Photo(); ok {
		avatar = th.Accent(photoSummary(ph))
	}

	mode := th.Muted("viewing")
	if editing {
		mode = th.Accent("editing")
	}
	lines := []string{
		"",
		lipgloss.NewStyle().Bold(true).Render("Profile") + "  " + mode,
		avatar + "  " + data.FirstName + " " + data.LastName,
		"",
	}

	row := func(slot profileSlot, label, value string) string {
		marker := "  "
		if editing && p.focus == slot {
			marker = th.Accent("> ")
		}
		return marker + fmt.Sprintf("%-14s", label) + value
	}

	first, last := data.FirstName, data.LastName
	if editing {
		first, last = p.first.View(), p.last.View()
	}
	userType := data.UserType.Label()
	if editing {
		userType = "< " + userType + " >"
	}
	lines = append(lines,
		row(slotFirstName, "First name", first),
		row(slotLastName, "Last name", last),
		"  "+fmt.Sprintf("%-14s", "Email")+data.Email+th.Muted("  (cannot be changed)"),
		row(slotUserType, "Account type", userType),
	)
	if editing || p.photoActive {
		lines = append(lines, row(slotPhoto, "Photo", p.photo.View()))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return lines
}

func photoSummary(ph wizard.Photo) string {
	size := humanize.IBytes(uint64(len(ph.DataURL)))
	if ph.Width > 0 && ph.Height > 0 {
		return fmt.Sprintf("[%s %dx%d, %s]", ph.MediaType, ph.Width, ph.Height, size)
	}
	return fmt.Sprintf("[%s, %s]", ph.MediaType, size)
}

func (p *Profile) Capturing() bool {
	return p.editing || p.photoActive
}

func (p *Profile) Title() string { return "Profile" }

func (p *Profile) Hints(s *wizard.Session) string {
	switch {
	case s.Profile.Editing():
		return "tab: next field  ←/→: account type  ctrl+s: save  esc: cancel"
	case p.photoActive:
		return "enter: upload photo  esc: cancel"
	}
	return "e: edit  u: photo  esc: close"
}
