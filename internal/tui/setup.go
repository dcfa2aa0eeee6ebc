package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/imsgtui/imsg/internal/contacts"
	"github.com/imsgtui/imsg/internal/phone"
)

// setupField identifies which setup input has focus.
type setupField int

const (
	fieldContact setupField = iota
	fieldDisplayName
)

const setupTickRate = 100 * time.Millisecond

// cursorGlyph trails the active field's text in place of the hidden
// terminal cursor.
const cursorGlyph = "▎"

// Setup captures a default contact and optional display name on first
// run. Enter with a non-empty contact commits onto the wrapped
// directory; Esc leaves it untouched.
type Setup struct {
	dir          *contacts.Directory
	contactInput string
	nameInput    string
	active       setupField
	theme        *Theme
}

// NewSetup wraps dir for first-run capture.
func NewSetup(dir *contacts.Directory) *Setup {
	return &Setup{dir: dir, theme: DefaultTheme()}
}

// TickRate implements View.
func (v *Setup) TickRate() time.Duration { return setupTickRate }

// Tick implements View.
func (v *Setup) Tick(width, height int) {}

// HandleKey implements View.
func (v *Setup) HandleKey(ev *tcell.EventKey, width, height int) Outcome {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit
	case tcell.KeyTab:
		if v.active == fieldContact {
			v.active = fieldDisplayName
		} else {
			v.active = fieldContact
		}
	case tcell.KeyRune:
		if v.active == fieldContact {
			v.contactInput += string(ev.Rune())
		} else {
			v.nameInput += string(ev.Rune())
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if v.active == fieldContact {
			v.contactInput = trimLastRune(v.contactInput)
		} else {
			v.nameInput = trimLastRune(v.nameInput)
		}
	case tcell.KeyEnter:
		// Committing requires a contact; Enter is otherwise inert.
		if v.contactInput != "" {
			v.dir.DefaultContact = phone.Normalize(v.contactInput)
			if v.nameInput != "" {
				v.dir.DefaultDisplayName = v.nameInput
			}
			return Quit
		}
	}
	return Continue
}

// Draw implements View.
func (v *Setup) Draw(s tcell.Screen) {
	w, _ := s.Size()
	left, right := 2, w-2

	drawBox(s, left, 2, right-left, 3, v.theme.Border)
	drawTextCentered(s, left+1, right-1, 3, v.theme.Title, "imsg")

	v.drawField(s, left, right, 6, "Enter default contact number/email (required)",
		v.contactInput, v.active == fieldContact)
	v.drawField(s, left, right, 10, "Enter default contact display name (optional)",
		v.nameInput, v.active == fieldDisplayName)

	legendTop := 14
	drawBox(s, left, legendTop, right-left, 3, v.theme.Border)
	legend := []struct {
		text  string
		style tcell.Style
	}{
		{"Tab", v.theme.Accent},
		{": Switch fields | ", v.theme.Base},
		{"Enter", v.theme.Confirm},
		{": Save | ", v.theme.Base},
		{"Esc", v.theme.Cancel},
		{": Cancel", v.theme.Base},
	}
	total := 0
	for _, seg := range legend {
		total += runewidth.StringWidth(seg.text)
	}
	x := left + 1 + max(0, (right-left-2-total)/2)
	for _, seg := range legend {
		x = drawText(s, x, legendTop+1, right-1, seg.style, seg.text)
	}
}

// drawField renders one bordered input row. The active field gets the
// accent border and the trailing cursor glyph.
func (v *Setup) drawField(s tcell.Screen, left, right, top int, title, value string, active bool) {
	style := v.theme.Inactive
	if active {
		style = v.theme.Active
	}
	drawBox(s, left, top, right-left, 3, style)
	drawBoxTitle(s, left, top, right-left, style, title)
	text := value
	if active {
		text += cursorGlyph
	}
	drawText(s, left+1, top+1, right-1, v.theme.Base, text)
}

// RunSetup runs first-run capture over dir. The caller decides whether a
// still-unset default contact means setup was cancelled.
func RunSetup(dir *contacts.Directory) error {
	view := NewSetup(dir)
	return RunScoped(func(s *Session) error { return s.Run(view) })
}
