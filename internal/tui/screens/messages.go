package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/interpretive-systems/riskscan/internal/wizard"
)

// FilesSelectedMsg carries a completed file selection.
type FilesSelectedMsg struct {
	Files   []wizard.SelectedFile
	Skipped []error
}

// PhotoDecodedMsg carries a finished photo decode.
type PhotoDecodedMsg struct {
	Photo wizard.Photo
	OK    bool
}

// selectFiles stats every path off the update loop. Paths that cannot be
// read are skipped and reported.
func selectFiles(paths []string) tea.Cmd {
	return func() tea.Msg {
		var msg FilesSelectedMsg
		for _, p := range paths {
			f, err := wizard.StatFile(p)
			if err != nil {
				msg.Skipped = append(msg.Skipped, err)
				continue
			}
			msg.Files = append(msg.Files, f)
		}
		return msg
	}
}

// decodePhoto runs a decoder returned by Profile.HandlePhotoUpload.
func decodePhoto(decode func() (wizard.Photo, bool)) tea.Cmd {
	return func() tea.Msg {
		ph, ok := decode()
		return PhotoDecodedMsg{Photo: ph, OK: ok}
	}
}

// ApplyFiles stores a file selection in the session.
func ApplyFiles(s *wizard.Session, msg FilesSelectedMsg) {
	refs := make([]wizard.FileRef, 0, len(msg.Files))
	for _, f := range msg.Files {
		refs = append(refs, f.Ref())
	}
	s.Upload.HandleFileChange(refs)
}
