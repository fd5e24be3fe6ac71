package wizard

import "strings"

// DocumentType is the kind of document being scanned.
type DocumentType string

const (
	DocContract    DocumentType = "contract"
	DocAgreement   DocumentType = "agreement"
	DocPolicy      DocumentType = "policy"
	DocProposal    DocumentType = "proposal"
	DocScholarship DocumentType = "scholarship"
)

// DocumentTypes lists the selectable types in display order.
func DocumentTypes() []DocumentType {
	return []DocumentType{DocContract, DocAgreement, DocPolicy, DocProposal, DocScholarship}
}

// ParseDocumentType matches a key or label case-insensitively.
func ParseDocumentType(s string) (DocumentType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range DocumentTypes() {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

func (t DocumentType) String() string { return string(t) }

// Label is the display form, e.g. "Contract".
func (t DocumentType) Label() string { return label(string(t)) }

// DocumentTypeSelector holds the chosen type and the dropdown state.
type DocumentTypeSelector struct {
	initial      DocumentType
	selected     DocumentType
	dropdownOpen bool
}

// NewDocumentTypeSelector starts with initial selected. An unknown initial
// falls back to contract.
func NewDocumentTypeSelector(initial DocumentType) *DocumentTypeSelector {
	if _, ok := ParseDocumentType(string(initial)); !ok {
		initial = DocContract
	}
	return &DocumentTypeSelector{initial: initial, selected: initial}
}

// Selected is the current document type.
func (d *DocumentTypeSelector) Selected() DocumentType { return d.selected }

// DropdownOpen reports whether the type list is expanded.
func (d *DocumentTypeSelector) DropdownOpen() bool { return d.dropdownOpen }

// SelectType picks t and closes the dropdown.
func (d *DocumentTypeSelector) SelectType(t DocumentType) {
	d.selected = t
	d.dropdownOpen = false
}

// ToggleDropdown opens or closes the type list.
func (d *DocumentTypeSelector) ToggleDropdown() {
	d.dropdownOpen = !d.dropdownOpen
}

// CloseDropdown is what the boundary calls on "click outside".
func (d *DocumentTypeSelector) CloseDropdown() {
	d.dropdownOpen = false
}

// Reset restores the initial type and closes the dropdown.
func (d *DocumentTypeSelector) Reset() {
	d.selected = d.initial
	d.dropdownOpen = false
}
