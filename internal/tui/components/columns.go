package components

import (
	"strings"

	tuiansi "github.com/interpretive-systems/riskscan/internal/tui/ansi"
)

// Columns joins two line slices side by side with sep between them. The
// result has height lines; short columns are padded with blanks.
func Columns(left, right []string, leftW, rightW, height int, sep string) []string {
	out := make([]string, 0, height)
	for i := 0; i < height; i++ {
		var l, r string
		if i < len(left) {
			l = tuiansi.PadExact(left[i], leftW)
		} else {
			l = strings.Repeat(" ", leftW)
		}
		if i < len(right) {
			r = right[i]
		}
		out = append(out, l+sep+tuiansi.PadExact(r, rightW))
	}
	return out
}
