// Package contacts stores the named contact directory and resolves which
// contact a session should use.
package contacts

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Entry is one named contact.
type Entry struct {
	Identifier  string `toml:"identifier"`
	DisplayName string `toml:"display_name,omitempty"`
}

// Directory is the persisted contact configuration. Empty strings mean
// unset for the optional fields.
type Directory struct {
	DefaultContact     string           `toml:"default_contact,omitempty"`
	DefaultDisplayName string           `toml:"default_display_name,omitempty"`
	Contacts           map[string]Entry `toml:"contacts"`
}

// Named pairs a directory key with its entry for listing.
type Named struct {
	Name string
	Entry
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{Contacts: make(map[string]Entry)}
}

// Load reads the directory from path. A missing file yields an empty
// default directory. A malformed file yields an error carrying the path
// and the raw contents so the operator can repair it by hand.
func Load(path string) (*Directory, error) {
	var d Directory
	if _, err := toml.DecodeFile(path, &d); err != nil {
		if os.IsNotExist(err) {
			return NewDirectory(), nil
		}
		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			raw = []byte("could not read file")
		}
		return nil, fmt.Errorf("load contacts from %s: %w\nfile contents:\n%s", path, err, raw)
	}
	if d.Contacts == nil {
		d.Contacts = make(map[string]Entry)
	}
	return &d, nil
}

// Save writes the directory to path, creating parent dirs as needed.
func Save(path string, d *Directory) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(d)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}

// Add inserts or replaces a named contact. The identifier is stored as
// given; callers canonicalize first.
func (d *Directory) Add(name, identifier, displayName string) {
	d.Contacts[name] = Entry{Identifier: identifier, DisplayName: displayName}
}

// Remove deletes a named contact, matching case-insensitively before
// falling back to the exact key. It reports the key actually removed.
func (d *Directory) Remove(name string) (string, bool) {
	if key, _, ok := d.lookupFold(name); ok {
		delete(d.Contacts, key)
		return key, true
	}
	if _, ok := d.Contacts[name]; ok {
		delete(d.Contacts, name)
		return name, true
	}
	return "", false
}

// Lookup finds a contact by name, case-insensitively first with a
// case-sensitive fallback. It returns the directory key that matched.
// When several keys differ only by case the winner follows map iteration
// order.
func (d *Directory) Lookup(name string) (string, Entry, bool) {
	if key, entry, ok := d.lookupFold(name); ok {
		return key, entry, ok
	}
	if entry, ok := d.Contacts[name]; ok {
		return name, entry, true
	}
	return "", Entry{}, false
}

func (d *Directory) lookupFold(name string) (string, Entry, bool) {
	for key, entry := range d.Contacts {
		if strings.EqualFold(key, name) {
			return key, entry, true
		}
	}
	return "", Entry{}, false
}

// List returns the contacts sorted by name so repeated renders are stable.
func (d *Directory) List() []Named {
	names := slices.Sorted(maps.Keys(d.Contacts))
	out := make([]Named, 0, len(names))
	for _, name := range names {
		out = append(out, Named{Name: name, Entry: d.Contacts[name]})
	}
	return out
}

// Count returns the number of named contacts.
func (d *Directory) Count() int {
	return len(d.Contacts)
}
