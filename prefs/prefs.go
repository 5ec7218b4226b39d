// Package prefs models the two persisted visitor preferences, theme and
// language, and the key-value store they live in.
package prefs

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/liangshaojie/portfolio/i18n"
)

// Theme is the colour scheme preference.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Storage keys.
const (
	KeyTheme    = "theme"
	KeyLanguage = "language"
)

var (
	// ErrNotFound is returned by Store.Get for keys that hold no value.
	ErrNotFound = errors.New("preference not found")
	// ErrUnknownKey is returned for keys other than KeyTheme and KeyLanguage.
	ErrUnknownKey = errors.New("unknown preference key")
)

// Store is a string key-value store for preferences.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// ValidKey reports whether key is one of the persisted preferences.
func ValidKey(key string) bool {
	return key == KeyTheme || key == KeyLanguage
}

// ParseTheme accepts "light" or "dark".
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), true
	default:
		return "", false
	}
}

// ThemeFor returns the stored value for a dark-mode flag.
func ThemeFor(dark bool) Theme {
	if dark {
		return Dark
	}
	return Light
}

// Stored holds the recognized values read from a Store. Empty fields mean the
// key was absent or held an unrecognized value.
type Stored struct {
	Theme    Theme
	Language i18n.Lang
}

// Read loads both preferences. Unrecognized values are dropped. The error
// reports backend failures only; whatever could be read is still returned.
func Read(s Store) (Stored, error) {
	var (
		out      Stored
		firstErr error
	)

	if v, err := s.Get(KeyTheme); err == nil {
		out.Theme, _ = ParseTheme(v)
	} else if !errors.Is(err, ErrNotFound) {
		firstErr = errors.Wrap(err, "reading theme")
	}

	if v, err := s.Get(KeyLanguage); err == nil {
		out.Language, _ = i18n.ParseLang(v)
	} else if !errors.Is(err, ErrNotFound) && firstErr == nil {
		firstErr = errors.Wrap(err, "reading language")
	}

	return out, firstErr
}

// MemoryStore keeps preferences in a map.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, error) {
	if !ValidKey(key) {
		return "", errors.Wrap(ErrUnknownKey, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryStore) Set(key, value string) error {
	if !ValidKey(key) {
		return errors.Wrap(ErrUnknownKey, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}
