package wizard

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Defaults(t *testing.T) {
	p := NewProfile()
	assert.Equal(t, DefaultProfileData(), p.Data())
	assert.False(t, p.Editing())
	assert.Equal(t, "JD", p.Initials())
	_, ok := p.Photo()
	assert.False(t, ok)
}

func TestUpdateProfile(t *testing.T) {
	p := NewProfile()
	assert.False(t, p.UpdateProfile(FieldFirstName, "Jane"), "ignored outside edit mode")

	p.StartEditing()
	assert.True(t, p.UpdateProfile(FieldFirstName, "Jane"))
	assert.True(t, p.UpdateProfile(FieldLastName, "Roe"))
	assert.True(t, p.UpdateProfile(FieldUserType, "Business"))
	assert.False(t, p.UpdateProfile(FieldUserType, "robot"))
	assert.False(t, p.UpdateProfile(FieldEmail, "other@example.com"))

	d := p.Data()
	assert.Equal(t, "Jane", d.FirstName)
	assert.Equal(t, "Roe", d.LastName)
	assert.Equal(t, UserBusiness, d.UserType)
	assert.Equal(t, "john.doe@example.com", d.Email)

	p.SaveProfile()
	assert.False(t, p.Editing())
	assert.Equal(t, "Jane", p.Data().FirstName)
}

// Cancelling leaves edit mode but keeps edits already applied. If cancel
// ever starts restoring saved values this test has to change with it.
func TestCancelEditing_KeepsLiveEdits(t *testing.T) {
	p := NewProfile()
	p.StartEditing()
	p.UpdateProfile(FieldFirstName, "Temp")
	p.CancelEditing()

	assert.False(t, p.Editing())
	assert.Equal(t, "Temp", p.Data().FirstName)
}

func writePNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(dir, "me.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestHandlePhotoUpload_Image(t *testing.T) {
	path := writePNG(t, t.TempDir())
	f, err := StatFile(path)
	require.NoError(t, err)
	assert.Equal(t, "image/png", f.MediaType)

	p := NewProfile()
	decode, ok := p.HandlePhotoUpload(f)
	require.True(t, ok)
	_, has := p.Photo()
	assert.False(t, has, "nothing is stored until the decode result is applied")

	ph, ok := decode()
	require.True(t, ok)
	p.SetPhoto(ph)

	got, has := p.Photo()
	require.True(t, has)
	assert.True(t, strings.HasPrefix(got.DataURL, "data:image/png;base64,"))
	assert.Equal(t, 3, got.Width)
	assert.Equal(t, 2, got.Height)
}

func TestHandlePhotoUpload_NonImageIsNoop(t *testing.T) {
	p := NewProfile()
	decode, ok := p.HandlePhotoUpload(SelectedFile{Name: "notes.txt", MediaType: "text/plain"})
	assert.False(t, ok)
	assert.Nil(t, decode)
	_, has := p.Photo()
	assert.False(t, has)
}

func TestHandlePhotoUpload_TooLarge(t *testing.T) {
	p := NewProfile()
	decode, ok := p.HandlePhotoUpload(SelectedFile{Name: "huge.png", MediaType: "image/png", SizeBytes: MaxPhotoBytes + 1})
	assert.False(t, ok)
	assert.Nil(t, decode)
}

func TestReadLimited(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grown.png")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o644))

	b, err := readLimited(path, 10)
	require.NoError(t, err)
	assert.Len(t, b, 10)

	_, err = readLimited(path, 9)
	assert.Error(t, err)
}

func TestSetPhoto_LastWriteWins(t *testing.T) {
	p := NewProfile()
	p.SetPhoto(DecodePhoto("image/png", []byte("first")))
	p.SetPhoto(DecodePhoto("image/gif", []byte("second")))
	got, _ := p.Photo()
	assert.Equal(t, "image/gif", got.MediaType)
	assert.Zero(t, got.Width, "undecodable bytes leave dimensions empty")
}

func TestInitials_Unicode(t *testing.T) {
	p := NewProfile()
	p.StartEditing()
	p.UpdateProfile(FieldFirstName, "Émile")
	p.UpdateProfile(FieldLastName, "")
	assert.Equal(t, "É", p.Initials())
}
