package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interpretive-systems/riskscan/internal/catalog"
)

func TestSession_HappyPath(t *testing.T) {
	s := NewSession(catalog.Default(), DocContract)
	require.Equal(t, StepLanding, s.Nav.Step())

	tab, ok := ParseTab("upload")
	require.True(t, ok)
	s.Upload.SwitchTab(tab)
	s.Upload.HandleFileChange([]FileRef{{Name: "contract.pdf", SizeBytes: 2048}})
	assert.True(t, s.Upload.HasContent())

	s.Nav.GoToStep(StepScan)
	s.Nav.GoToStep(StepDocumentType)
	s.Nav.GoToStep(StepResults)
	assert.Equal(t, ScreenResults, s.Screen())

	s.Risks.SelectCategory("Hidden Financial Risk")
	s.Risks.ToggleRisk(1)
	id, ok := s.Risks.Expanded()
	assert.True(t, ok)
	assert.Equal(t, 1, id)
	assert.Equal(t, 3, s.Risks.TotalRisks())
}

func TestSession_Reset(t *testing.T) {
	s := NewSession(catalog.Default(), DocProposal)
	firstID := s.ID

	s.Nav.GoToStep(StepResults)
	s.Upload.HandleURLChange("https://example.com")
	s.DocType.SelectType(DocPolicy)
	s.DocType.ToggleDropdown()
	s.Risks.SelectCategory("Legal Protection Gaps")
	s.Risks.ToggleRisk(5)
	s.Profile.StartEditing()
	s.Profile.UpdateProfile(FieldFirstName, "Kept")

	s.Reset()

	assert.Equal(t, StepLanding, s.Nav.Step())
	assert.Equal(t, "", s.Upload.URL())
	assert.Equal(t, TabURL, s.Upload.ActiveTab())
	assert.Equal(t, DocProposal, s.DocType.Selected())
	assert.False(t, s.DocType.DropdownOpen())
	assert.Equal(t, CategoryAll, s.Risks.SelectedCategory())
	_, ok := s.Risks.Expanded()
	assert.False(t, ok)
	assert.Equal(t, "Kept", s.Profile.Data().FirstName)
	assert.NotEqual(t, firstID, s.ID)
}

func TestSession_ToggleProfileClosesDropdown(t *testing.T) {
	s := NewSession(catalog.Default(), DocContract)
	s.Nav.GoToStep(StepDocumentType)
	s.DocType.ToggleDropdown()

	s.ToggleProfile()
	assert.Equal(t, ScreenProfile, s.Screen())
	assert.False(t, s.DocType.DropdownOpen())

	s.ToggleProfile()
	assert.Equal(t, ScreenDocumentType, s.Screen())
	assert.False(t, s.DocType.DropdownOpen())
}

func TestSession_GoBackClosesDropdown(t *testing.T) {
	s := NewSession(catalog.Default(), DocContract)
	s.Nav.GoToStep(StepDocumentType)
	s.DocType.ToggleDropdown()
	s.GoBack()
	assert.Equal(t, StepScan, s.Nav.Step())
	assert.False(t, s.DocType.DropdownOpen())

	s.DocType.ToggleDropdown()
	s.GoHome()
	assert.Equal(t, StepLanding, s.Nav.Step())
	assert.False(t, s.DocType.DropdownOpen())
}
