package contacts

import (
	"errors"
	"strings"
	"testing"
)

func testDirectory(t *testing.T) *Directory {
	t.Helper()
	d := NewDirectory()
	d.Add("mom", "+15551234567", "Mom")
	return d
}

func TestResolveOverride(t *testing.T) {
	r, err := Resolve(testDirectory(t), "5559876543", "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if r.Identifier != "+15559876543" {
		t.Errorf("Identifier = %q, want %q", r.Identifier, "+15559876543")
	}
	if r.DisplayName != "5559876543" {
		t.Errorf("DisplayName = %q, want %q", r.DisplayName, "5559876543")
	}
	if r.Source != SourceOverride {
		t.Errorf("Source = %v, want SourceOverride", r.Source)
	}
}

func TestResolveOverrideIgnoresStoredDisplayName(t *testing.T) {
	// An override that happens to match a directory entry must still show
	// the number, not the stored display name.
	r, err := Resolve(testDirectory(t), "+15551234567", "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if r.DisplayName != "5551234567" {
		t.Errorf("DisplayName = %q, want %q", r.DisplayName, "5551234567")
	}
}

func TestResolveOverrideBeatsName(t *testing.T) {
	r, err := Resolve(testDirectory(t), "+15550000000", "mom")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if r.Identifier != "+15550000000" || r.Source != SourceOverride {
		t.Errorf("got %q from %v, want override identifier", r.Identifier, r.Source)
	}
}

func TestResolveNamed(t *testing.T) {
	for _, name := range []string{"mom", "Mom", "MOM"} {
		t.Run(name, func(t *testing.T) {
			r, err := Resolve(testDirectory(t), "", name)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if r.Identifier != "+15551234567" {
				t.Errorf("Identifier = %q, want %q", r.Identifier, "+15551234567")
			}
			if r.DisplayName != "Mom" {
				t.Errorf("DisplayName = %q, want %q", r.DisplayName, "Mom")
			}
			if r.MatchedName != "mom" {
				t.Errorf("MatchedName = %q, want %q", r.MatchedName, "mom")
			}
			if r.Source != SourceNamed {
				t.Errorf("Source = %v, want SourceNamed", r.Source)
			}
		})
	}
}

func TestResolveNamedWithoutDisplayName(t *testing.T) {
	d := NewDirectory()
	d.Add("work", "+15551112222", "")

	r, err := Resolve(d, "", "work")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if r.DisplayName != "5551112222" {
		t.Errorf("DisplayName = %q, want display form of the number", r.DisplayName)
	}
}

func TestResolveNamedMissing(t *testing.T) {
	_, err := Resolve(testDirectory(t), "", "dad")
	if err == nil {
		t.Fatal("Resolve() expected error for unknown name")
	}
	if !strings.Contains(err.Error(), "dad") {
		t.Errorf("error %q does not name the missing contact", err)
	}
	if errors.Is(err, ErrNoContact) {
		t.Error("unknown name must not report ErrNoContact")
	}
}

func TestResolveDefault(t *testing.T) {
	d := testDirectory(t)
	d.DefaultContact = "+15553334444"

	r, err := Resolve(d, "", "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if r.Identifier != "+15553334444" {
		t.Errorf("Identifier = %q, want %q", r.Identifier, "+15553334444")
	}
	if r.DisplayName != "5553334444" {
		t.Errorf("DisplayName = %q, want display form of the number", r.DisplayName)
	}
	if r.Source != SourceDefault {
		t.Errorf("Source = %v, want SourceDefault", r.Source)
	}

	d.DefaultDisplayName = "Partner"
	r, err = Resolve(d, "", "")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if r.DisplayName != "Partner" {
		t.Errorf("DisplayName = %q, want %q", r.DisplayName, "Partner")
	}
}

func TestResolveNoContact(t *testing.T) {
	_, err := Resolve(NewDirectory(), "", "")
	if !errors.Is(err, ErrNoContact) {
		t.Errorf("Resolve() error = %v, want ErrNoContact", err)
	}
}
