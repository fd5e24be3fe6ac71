package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotSet is returned by Get for a key that was never written.
var ErrNotSet = errors.New("preference not set")

const (
	fileName = "prefs.yaml"

	// KeyCookieConsent records the consent banner answer.
	KeyCookieConsent = "cookieConsent"
)

// Store persists string preferences in a YAML file under dir.
type Store struct {
	dir string
}

// Open returns a store rooted at dir. The directory is created on first write.
func Open(dir string) *Store {
	return &Store{dir: dir}
}

// Path is the backing file.
func (s *Store) Path() string {
	return filepath.Join(s.dir, fileName)
}

// Get reads key. A missing file or key yields ErrNotSet.
func (s *Store) Get(key string) (string, error) {
	m, err := s.load()
	if err != nil {
		return "", err
	}
	v, ok := m[key]
	if !ok {
		return "", ErrNotSet
	}
	return v, nil
}

// Set writes key, keeping other keys.
func (s *Store) Set(key, value string) error {
	m, err := s.load()
	if err != nil {
		return err
	}
	m[key] = value
	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	tmp := s.Path() + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp, s.Path()); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// Consent reports the stored consent answer. set is false when the user has
// never answered, which is when the banner should be shown.
func (s *Store) Consent() (accepted, set bool) {
	v, err := s.Get(KeyCookieConsent)
	if err != nil {
		return false, false
	}
	return parseBool(v), true
}

// SaveConsent persists the consent answer.
func (s *Store) SaveConsent(accepted bool) error {
	return s.Set(KeyCookieConsent, boolStr(accepted))
}

func (s *Store) load() (map[string]string, error) {
	m := map[string]string{}
	b, err := os.ReadFile(s.Path())
	if errors.Is(err, os.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prefs: %w", err)
	}
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse prefs %s: %w", s.Path(), err)
	}
	if m == nil {
		m = map[string]string{}
	}
	return m, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func boolStr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
