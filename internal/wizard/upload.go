package wizard

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// Tab is the active input mode on the upload screens.
type Tab int

const (
	TabURL Tab = iota
	TabFile
)

func (t Tab) String() string {
	if t == TabFile {
		return "upload"
	}
	return "url"
}

// ParseTab accepts "url", "upload" and "file".
func ParseTab(s string) (Tab, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "url":
		return TabURL, true
	case "upload", "file":
		return TabFile, true
	}
	return TabURL, false
}

// FileRef is a chosen file as the upload list sees it.
type FileRef struct {
	Name      string
	SizeBytes int64
}

// UploadIntake holds the URL text and the chosen files. Switching tabs keeps
// the content of both.
type UploadIntake struct {
	activeTab Tab
	url       string
	files     []FileRef
}

// NewUploadIntake returns an empty intake on the URL tab.
func NewUploadIntake() *UploadIntake {
	return &UploadIntake{}
}

// ActiveTab is the tab whose input is shown.
func (u *UploadIntake) ActiveTab() Tab { return u.activeTab }

// URL is the text last typed into the URL field.
func (u *UploadIntake) URL() string { return u.url }

// Files returns a copy of the chosen files.
func (u *UploadIntake) Files() []FileRef {
	return append([]FileRef(nil), u.files...)
}

// SwitchTab changes the active tab.
func (u *UploadIntake) SwitchTab(tab Tab) {
	u.activeTab = tab
}

// HandleURLChange stores text verbatim.
func (u *UploadIntake) HandleURLChange(text string) {
	u.url = text
}

// HandleFileChange replaces the whole selection.
func (u *UploadIntake) HandleFileChange(files []FileRef) {
	u.files = append([]FileRef(nil), files...)
}

// Reset clears files and URL and returns to the URL tab.
func (u *UploadIntake) Reset() {
	u.files = nil
	u.url = ""
	u.activeTab = TabURL
}

// HasContent reports whether there is anything to scan.
func (u *UploadIntake) HasContent() bool {
	return len(u.files) > 0 || strings.TrimSpace(u.url) != ""
}

// SummaryRow is one line of the "selected files or URL" list.
type SummaryRow struct {
	Label  string
	Detail string
	IsURL  bool
}

// Summary lists every file and, while the URL tab is active, the URL.
func (u *UploadIntake) Summary() []SummaryRow {
	rows := make([]SummaryRow, 0, len(u.files)+1)
	for _, f := range u.files {
		size := f.SizeBytes
		if size < 0 {
			size = 0
		}
		rows = append(rows, SummaryRow{Label: f.Name, Detail: humanize.IBytes(uint64(size))})
	}
	if u.url != "" && u.activeTab == TabURL {
		rows = append(rows, SummaryRow{Label: u.url, Detail: "URL", IsURL: true})
	}
	return rows
}
