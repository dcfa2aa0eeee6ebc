package contacts

import (
	"errors"
	"fmt"

	"github.com/imsgtui/imsg/internal/phone"
)

// ErrNoContact means no override, name, or default contact was available.
var ErrNoContact = errors.New("no contact specified")

// Source records where a resolved contact came from.
type Source int

const (
	// SourceOverride is an explicit identifier from the command line.
	SourceOverride Source = iota
	// SourceNamed is a directory entry matched by name.
	SourceNamed
	// SourceDefault is the directory's default contact.
	SourceDefault
)

// String names the source for logs and notes.
func (s Source) String() string {
	switch s {
	case SourceOverride:
		return "override"
	case SourceNamed:
		return "named"
	case SourceDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Resolved is the outcome of contact resolution.
type Resolved struct {
	Identifier  string
	DisplayName string
	// MatchedName is the directory key that satisfied a named lookup,
	// which may differ from the requested name by case.
	MatchedName string
	Source      Source
}

// Resolve picks the contact for a session. Precedence: explicit override,
// then named directory entry, then the directory default. An override is
// canonicalized and never picks up a stored display name, even when the
// identifier matches a directory entry; its display form comes from the
// number itself.
func Resolve(d *Directory, override, name string) (*Resolved, error) {
	if override != "" {
		id := phone.Normalize(override)
		return &Resolved{
			Identifier:  id,
			DisplayName: phone.DisplayNumber(id),
			Source:      SourceOverride,
		}, nil
	}
	if name != "" {
		key, entry, ok := d.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("contact %q not found in configuration", name)
		}
		display := entry.DisplayName
		if display == "" {
			display = phone.DisplayNumber(entry.Identifier)
		}
		return &Resolved{
			Identifier:  entry.Identifier,
			DisplayName: display,
			MatchedName: key,
			Source:      SourceNamed,
		}, nil
	}
	if d.DefaultContact != "" {
		display := d.DefaultDisplayName
		if display == "" {
			display = phone.DisplayNumber(d.DefaultContact)
		}
		return &Resolved{
			Identifier:  d.DefaultContact,
			DisplayName: display,
			Source:      SourceDefault,
		}, nil
	}
	return nil, ErrNoContact
}
