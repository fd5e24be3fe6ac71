package tui

// consentDueMsg asks the program to show the consent banner.
type consentDueMsg struct{}

// consentSavedMsg reports the result of persisting a consent answer.
type consentSavedMsg struct {
	accepted bool
	err      error
}
