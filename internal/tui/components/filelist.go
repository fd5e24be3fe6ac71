package components

import (
	"fmt"

	"github.com/interpretive-systems/riskscan/internal/theme"
	tuiansi "github.com/interpretive-systems/riskscan/internal/tui/ansi"
	"github.com/interpretive-systems/riskscan/internal/wizard"
)

// FileList renders the "selected files or URL" box.
type FileList struct {
	rows   []wizard.SummaryRow
	offset int
}

// NewFileList creates a new file list.
func NewFileList() *FileList {
	return &FileList{}
}

// SetRows updates the list; the scroll offset is clamped.
func (f *FileList) SetRows(rows []wizard.SummaryRow) {
	f.rows = rows
	if f.offset >= len(rows) {
		f.offset = len(rows) - 1
	}
	if f.offset < 0 {
		f.offset = 0
	}
}

// Len returns the number of rows.
func (f *FileList) Len() int {
	return len(f.rows)
}

// Scroll moves the first visible row by delta.
func (f *FileList) Scroll(delta, visibleCount int) {
	maxStart := len(f.rows) - visibleCount
	if maxStart < 0 {
		maxStart = 0
	}
	f.offset += delta
	if f.offset > maxStart {
		f.offset = maxStart
	}
	if f.offset < 0 {
		f.offset = 0
	}
}

// Render renders at most height lines. Nothing is drawn for an empty list.
func (f *FileList) Render(th theme.Theme, width, height int) []string {
	if len(f.rows) == 0 || height <= 0 {
		return nil
	}
	lines := make([]string, 0, height)
	lines = append(lines, th.Accent("Selected files or URL"))
	body := height - 1
	if body <= 0 {
		return lines
	}

	start := f.offset
	end := start + body
	more := 0
	if end < len(f.rows) {
		// leave room for the "more" line
		end--
		more = len(f.rows) - end
	} else {
		end = len(f.rows)
	}
	for i := start; i < end; i++ {
		lines = append(lines, f.renderRow(th, f.rows[i], width))
	}
	if more > 0 {
		lines = append(lines, th.Muted(fmt.Sprintf("  … %d more", more)))
	}
	return lines
}

func (f *FileList) renderRow(th theme.Theme, r wizard.SummaryRow, width int) string {
	icon := "•"
	if r.IsURL {
		icon = "@"
	}
	detail := th.Muted(r.Detail)
	labelW := width - 4 - tuiansi.VisualWidth(detail) - 1
	if labelW < 1 {
		labelW = 1
	}
	return "  " + icon + " " + tuiansi.PadExact(r.Label, labelW) + " " + detail
}
