package wizard

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// SelectedFile is what the host's file picker hands over.
type SelectedFile struct {
	Name      string
	SizeBytes int64
	MediaType string
	Path      string
}

// Ref drops everything the upload list does not show.
func (f SelectedFile) Ref() FileRef {
	return FileRef{Name: f.Name, SizeBytes: f.SizeBytes}
}

// IsImage reports whether the declared media type is an image type.
func (f SelectedFile) IsImage() bool {
	return strings.HasPrefix(strings.ToLower(f.MediaType), "image/")
}

// StatFile builds a SelectedFile for path. The media type comes from the
// extension, falling back to sniffing the first 512 bytes.
func StatFile(path string) (SelectedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return SelectedFile{}, fmt.Errorf("stat %q: %w", path, err)
	}
	if info.IsDir() {
		return SelectedFile{}, fmt.Errorf("stat %q: is a directory", path)
	}
	mt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mt == "" {
		mt = sniff(path)
	}
	return SelectedFile{
		Name:      filepath.Base(path),
		SizeBytes: info.Size(),
		MediaType: mt,
		Path:      path,
	}, nil
}

// SplitPaths splits comma separated input into trimmed non-empty paths.
func SplitPaths(input string) []string {
	var out []string
	for _, p := range strings.Split(input, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func sniff(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return "application/octet-stream"
	}
	defer f.Close()
	buf := make([]byte, 512)
	n, _ := f.Read(buf)
	return http.DetectContentType(buf[:n])
}
