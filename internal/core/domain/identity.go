package domain

import (
	"path/filepath"
	"strings"
	"unique"
)

// Key is a case-insensitive, interned identity used for paths and package ids.
// Two keys built from strings that differ only in letter case compare equal.
type Key struct {
	h unique.Handle[string]
}

// NewKey creates a Key from an arbitrary string, folding its case.
func NewKey(s string) Key {
	return Key{h: unique.Make(strings.ToLower(strings.TrimSpace(s)))}
}

// PathKey creates a Key from a filesystem path.
// Separators are normalised so that `a\b` and `a/b` share a key.
func PathKey(path string) Key {
	p := strings.ReplaceAll(path, `\`, "/")
	return NewKey(filepath.ToSlash(filepath.Clean(filepath.FromSlash(p))))
}

// String returns the folded value of the key.
func (k Key) String() string {
	var zero unique.Handle[string]
	if k.h == zero {
		return ""
	}
	return k.h.Value()
}

// IsZero reports whether the key was never initialised.
func (k Key) IsZero() bool {
	var zero unique.Handle[string]
	return k.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
