package wizard

import (
	"github.com/google/uuid"

	"github.com/interpretive-systems/riskscan/internal/catalog"
)

// Session owns every state block for one running app.
type Session struct {
	ID      string
	Nav     *Navigation
	Upload  *UploadIntake
	DocType *DocumentTypeSelector
	Profile *Profile
	Risks   *RiskBrowser
}

// NewSession builds fresh state over cat.
func NewSession(cat *catalog.Catalog, initialDocType DocumentType) *Session {
	return &Session{
		ID:      uuid.NewString(),
		Nav:     NewNavigation(),
		Upload:  NewUploadIntake(),
		DocType: NewDocumentTypeSelector(initialDocType),
		Profile: NewProfile(),
		Risks:   NewRiskBrowser(cat),
	}
}

// Screen is Compose over the session's navigation.
func (s *Session) Screen() Screen {
	return Compose(s.Nav)
}

// Reset starts over: navigation, upload, document type and risk browser go
// back to their defaults together and a new session id is issued. The
// profile is kept.
func (s *Session) Reset() {
	s.Nav.Reset()
	s.Upload.Reset()
	s.DocType.Reset()
	s.Risks.Reset()
	s.ID = uuid.NewString()
}

// GoHome returns to Landing and closes any open dropdown.
func (s *Session) GoHome() {
	s.Nav.GoToHome()
	s.DocType.CloseDropdown()
}

// ToggleProfile opens or closes the profile and closes any open dropdown.
func (s *Session) ToggleProfile() {
	s.DocType.CloseDropdown()
	s.Nav.ToggleProfile()
}

// GoBack steps back and closes any open dropdown.
func (s *Session) GoBack() {
	s.DocType.CloseDropdown()
	s.Nav.GoBack()
}
