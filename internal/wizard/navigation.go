// Package wizard holds the scanner's UI state: the navigation controller,
// one state block per concern, and the composer that picks the visible
// screen. Nothing here knows how the state is drawn.
package wizard

// Step is a position in the linear wizard.
type Step int

const (
	StepLanding Step = iota + 1
	StepScan
	StepDocumentType
	StepResults
)

func (s Step) String() string {
	switch s {
	case StepLanding:
		return "landing"
	case StepScan:
		return "scan"
	case StepDocumentType:
		return "document-type"
	case StepResults:
		return "results"
	default:
		return "unknown"
	}
}

// Navigation tracks the current step and the overlay flags.
type Navigation struct {
	step        Step
	showProfile bool
	showAbout   bool
}

// NewNavigation starts at the landing step with no overlay.
func NewNavigation() *Navigation {
	return &Navigation{step: StepLanding}
}

// Step returns the current step.
func (n *Navigation) Step() Step { return n.step }

// ShowingProfile reports whether the profile overlay is open.
func (n *Navigation) ShowingProfile() bool { return n.showProfile }

// ShowingAbout reports whether the about overlay is open.
func (n *Navigation) ShowingAbout() bool { return n.showAbout }

// GoToStep jumps to step and closes both overlays.
func (n *Navigation) GoToStep(step Step) {
	n.step = step
	n.showProfile = false
	n.showAbout = false
}

// GoBack moves one step towards Landing. Overlays are left alone.
func (n *Navigation) GoBack() {
	if n.step > StepLanding {
		n.step--
	}
}

// GoToHome returns to Landing with no overlay.
func (n *Navigation) GoToHome() {
	n.GoToStep(StepLanding)
}

// ToggleProfile flips the profile overlay. The about overlay always closes.
func (n *Navigation) ToggleProfile() {
	n.showProfile = !n.showProfile
	n.showAbout = false
}

// ToggleAbout flips the about overlay. The profile overlay always closes.
func (n *Navigation) ToggleAbout() {
	n.showAbout = !n.showAbout
	n.showProfile = false
}

// StartScan opens the scan step.
func (n *Navigation) StartScan() {
	n.GoToStep(StepScan)
}

// Next advances Scan to DocumentType and DocumentType to Results. Other steps
// have no forward transition.
func (n *Navigation) Next() {
	switch n.step {
	case StepScan:
		n.GoToStep(StepDocumentType)
	case StepDocumentType:
		n.GoToStep(StepResults)
	}
}

// Reset is GoToHome; callers reset the other blocks in the same transaction.
func (n *Navigation) Reset() {
	n.GoToHome()
}

// ShowBack reports whether a back control applies.
func (n *Navigation) ShowBack() bool {
	return n.step > StepLanding
}

// ShowScanButton reports whether the header offers to start a scan.
func (n *Navigation) ShowScanButton() bool {
	return n.step == StepLanding && !n.showProfile
}
