package wizard

// Screen is the one view the presentation layer draws.
type Screen int

const (
	ScreenLanding Screen = iota
	ScreenScan
	ScreenDocumentType
	ScreenResults
	ScreenProfile
)

func (s Screen) String() string {
	switch s {
	case ScreenLanding:
		return "landing"
	case ScreenScan:
		return "scan"
	case ScreenDocumentType:
		return "document-type"
	case ScreenResults:
		return "results"
	case ScreenProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// Compose picks the visible screen. The profile overlay hides every stepped
// screen; the about overlay is drawn inside Landing.
func Compose(nav *Navigation) Screen {
	if nav.ShowingProfile() {
		return ScreenProfile
	}
	switch nav.Step() {
	case StepScan:
		return ScreenScan
	case StepDocumentType:
		return ScreenDocumentType
	case StepResults:
		return ScreenResults
	default:
		return ScreenLanding
	}
}
