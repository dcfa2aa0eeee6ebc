package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/imsgtui/imsg/internal/contacts"
)

func typeSetup(v *Setup, text string) {
	for _, r := range text {
		v.HandleKey(keyEvent(tcell.KeyRune, r), 80, 24)
	}
}

func TestSetupTabSwitchesFields(t *testing.T) {
	v := NewSetup(contacts.NewDirectory())

	typeSetup(v, "555")
	v.HandleKey(keyEvent(tcell.KeyTab, '\t'), 80, 24)
	typeSetup(v, "Mom")
	if v.contactInput != "555" {
		t.Errorf("contactInput = %q, want %q", v.contactInput, "555")
	}
	if v.nameInput != "Mom" {
		t.Errorf("nameInput = %q, want %q", v.nameInput, "Mom")
	}

	// Tab cycles back to the contact field.
	v.HandleKey(keyEvent(tcell.KeyTab, '\t'), 80, 24)
	typeSetup(v, "1")
	if v.contactInput != "5551" {
		t.Errorf("contactInput = %q, want %q", v.contactInput, "5551")
	}
}

func TestSetupBackspaceEditsActiveField(t *testing.T) {
	v := NewSetup(contacts.NewDirectory())

	typeSetup(v, "5551")
	v.HandleKey(keyEvent(tcell.KeyBackspace2, 0), 80, 24)
	if v.contactInput != "555" {
		t.Errorf("contactInput = %q, want %q", v.contactInput, "555")
	}

	v.HandleKey(keyEvent(tcell.KeyTab, '\t'), 80, 24)
	v.HandleKey(keyEvent(tcell.KeyBackspace, 0), 80, 24)
	if v.contactInput != "555" {
		t.Errorf("contactInput = %q, backspace leaked across fields", v.contactInput)
	}
	if v.nameInput != "" {
		t.Errorf("nameInput = %q, want empty", v.nameInput)
	}
}

func TestSetupEnterRequiresContact(t *testing.T) {
	dir := contacts.NewDirectory()
	v := NewSetup(dir)

	if got := v.HandleKey(keyEvent(tcell.KeyEnter, '\r'), 80, 24); got != Continue {
		t.Errorf("HandleKey(Enter) = %v, want Continue with empty contact", got)
	}
	if dir.DefaultContact != "" {
		t.Errorf("DefaultContact = %q, want unset", dir.DefaultContact)
	}

	// Only the display name is filled in; still no commit.
	v.HandleKey(keyEvent(tcell.KeyTab, '\t'), 80, 24)
	typeSetup(v, "Mom")
	if got := v.HandleKey(keyEvent(tcell.KeyEnter, '\r'), 80, 24); got != Continue {
		t.Errorf("HandleKey(Enter) = %v, want Continue without a contact", got)
	}
	if dir.DefaultContact != "" {
		t.Errorf("DefaultContact = %q, want unset", dir.DefaultContact)
	}
}

func TestSetupCommitNormalizesContact(t *testing.T) {
	dir := contacts.NewDirectory()
	dir.Add("Dad", "+15557654321", "")
	v := NewSetup(dir)

	typeSetup(v, "5551234567")
	v.HandleKey(keyEvent(tcell.KeyTab, '\t'), 80, 24)
	typeSetup(v, "Mom")
	if got := v.HandleKey(keyEvent(tcell.KeyEnter, '\r'), 80, 24); got != Quit {
		t.Errorf("HandleKey(Enter) = %v, want Quit on commit", got)
	}

	if dir.DefaultContact != "+15551234567" {
		t.Errorf("DefaultContact = %q, want %q", dir.DefaultContact, "+15551234567")
	}
	if dir.DefaultDisplayName != "Mom" {
		t.Errorf("DefaultDisplayName = %q, want %q", dir.DefaultDisplayName, "Mom")
	}
	// Committing the default must not disturb named contacts.
	if _, _, ok := dir.Lookup("Dad"); !ok {
		t.Error("named contact lost during setup commit")
	}
}

func TestSetupCommitWithoutDisplayName(t *testing.T) {
	dir := contacts.NewDirectory()
	v := NewSetup(dir)

	typeSetup(v, "mom@example.com")
	if got := v.HandleKey(keyEvent(tcell.KeyEnter, '\r'), 80, 24); got != Quit {
		t.Errorf("HandleKey(Enter) = %v, want Quit", got)
	}
	if dir.DefaultContact != "mom@example.com" {
		t.Errorf("DefaultContact = %q, want the email unchanged", dir.DefaultContact)
	}
	if dir.DefaultDisplayName != "" {
		t.Errorf("DefaultDisplayName = %q, want empty", dir.DefaultDisplayName)
	}
}

func TestSetupEscapeLeavesDirectoryUntouched(t *testing.T) {
	dir := contacts.NewDirectory()
	v := NewSetup(dir)

	typeSetup(v, "5551234567")
	if got := v.HandleKey(keyEvent(tcell.KeyEscape, 0), 80, 24); got != Quit {
		t.Errorf("HandleKey(Esc) = %v, want Quit", got)
	}
	if dir.DefaultContact != "" {
		t.Errorf("DefaultContact = %q, want unset after cancel", dir.DefaultContact)
	}
}
