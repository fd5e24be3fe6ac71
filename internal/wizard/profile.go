package wizard

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// UserType classifies the account holder.
type UserType string

const (
	UserFreelancer UserType = "freelancer"
	UserBusiness   UserType = "business"
	UserIndividual UserType = "individual"
	UserEnterprise UserType = "enterprise"
)

// UserTypes lists the selectable user types in display order.
func UserTypes() []UserType {
	return []UserType{UserFreelancer, UserBusiness, UserIndividual, UserEnterprise}
}

// ParseUserType matches a key or label case-insensitively.
func ParseUserType(s string) (UserType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, u := range UserTypes() {
		if string(u) == s {
			return u, true
		}
	}
	return "", false
}

func (u UserType) String() string { return string(u) }

// Label is the display name, e.g. "Freelancer".
func (u UserType) Label() string { return label(string(u)) }

// ProfileField names an editable profile field.
type ProfileField int

const (
	FieldFirstName ProfileField = iota
	FieldLastName
	FieldEmail
	FieldUserType
)

func (f ProfileField) String() string {
	switch f {
	case FieldFirstName:
		return "firstName"
	case FieldLastName:
		return "lastName"
	case FieldEmail:
		return "email"
	case FieldUserType:
		return "userType"
	default:
		return "unknown"
	}
}

// ProfileData is the account information shown on the profile screen.
type ProfileData struct {
	FirstName string
	LastName  string
	Email     string
	UserType  UserType
}

// DefaultProfileData is the seed every new profile starts from.
func DefaultProfileData() ProfileData {
	return ProfileData{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		UserType:  UserFreelancer,
	}
}

// Photo is a decoded profile picture.
type Photo struct {
	DataURL   string
	MediaType string
	Width     int
	Height    int
}

// Profile holds the profile fields, the photo and the edit flag.
//
// Edits apply to the live data immediately; CancelEditing only leaves edit
// mode and does not restore earlier values.
type Profile struct {
	data    ProfileData
	photo   *Photo
	editing bool
}

// NewProfile seeds a profile with DefaultProfileData.
func NewProfile() *Profile {
	return &Profile{data: DefaultProfileData()}
}

// Data returns the current field values.
func (p *Profile) Data() ProfileData { return p.data }

// Editing reports whether the profile is in edit mode.
func (p *Profile) Editing() bool { return p.editing }

// Photo returns the current photo, if any.
func (p *Profile) Photo() (Photo, bool) {
	if p.photo == nil {
		return Photo{}, false
	}
	return *p.photo, true
}

// UpdateProfile sets one field while editing. Email is immutable and unknown
// user types are ignored. It reports whether anything changed.
func (p *Profile) UpdateProfile(field ProfileField, value string) bool {
	if !p.editing {
		return false
	}
	switch field {
	case FieldFirstName:
		p.data.FirstName = value
	case FieldLastName:
		p.data.LastName = value
	case FieldUserType:
		u, ok := ParseUserType(value)
		if !ok {
			return false
		}
		p.data.UserType = u
	default:
		return false
	}
	return true
}

// StartEditing enters edit mode.
func (p *Profile) StartEditing() { p.editing = true }

// CancelEditing leaves edit mode without restoring earlier values.
func (p *Profile) CancelEditing() { p.editing = false }

// SaveProfile leaves edit mode. There is no backend to persist to.
func (p *Profile) SaveProfile() { p.editing = false }

// MaxPhotoBytes caps the size of a profile photo.
const MaxPhotoBytes = 10 << 20

// HandlePhotoUpload returns a decoder for f when its declared media type is
// an image no larger than MaxPhotoBytes. The decoder may run on any
// goroutine; its result is applied with SetPhoto. Other input returns false
// and changes nothing.
func (p *Profile) HandlePhotoUpload(f SelectedFile) (func() (Photo, bool), bool) {
	if !f.IsImage() || f.SizeBytes > MaxPhotoBytes {
		return nil, false
	}
	return func() (Photo, bool) {
		b, err := readLimited(f.Path, MaxPhotoBytes)
		if err != nil {
			return Photo{}, false
		}
		return DecodePhoto(f.MediaType, b), true
	}, true
}

// readLimited fails when the file has grown past limit since it was stat'ed.
func readLimited(path string, limit int64) ([]byte, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	b, err := io.ReadAll(io.LimitReader(fh, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, fmt.Errorf("%s: larger than %d bytes", path, limit)
	}
	return b, nil
}

// SetPhoto stores a decoded photo. The last call wins.
func (p *Profile) SetPhoto(ph Photo) {
	p.photo = &ph
}

// DecodePhoto turns raw bytes into a data URL. Dimensions are filled in when
// the format is one the image package can read.
func DecodePhoto(mediaType string, raw []byte) Photo {
	ph := Photo{
		MediaType: mediaType,
		DataURL:   "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(raw),
	}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(raw)); err == nil {
		ph.Width = cfg.Width
		ph.Height = cfg.Height
	}
	return ph
}

// Initials stands in for a missing photo.
func (p *Profile) Initials() string {
	return firstRune(p.data.FirstName) + firstRune(p.data.LastName)
}

func firstRune(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}
