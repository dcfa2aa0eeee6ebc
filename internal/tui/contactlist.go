package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/imsgtui/imsg/internal/contacts"
)

const contactListTickRate = 50 * time.Millisecond

// ContactList is the read-only directory browser with single-row
// selection.
type ContactList struct {
	defaultLine string
	rows        []string
	selected    int
	theme       *Theme
}

// NewContactList snapshots the directory for browsing. The snapshot is
// name-sorted and never written back.
func NewContactList(dir *contacts.Directory) *ContactList {
	v := &ContactList{defaultLine: "None", theme: DefaultTheme()}
	if dir.DefaultContact != "" {
		v.defaultLine = dir.DefaultContact
		if dir.DefaultDisplayName != "" {
			v.defaultLine = fmt.Sprintf("%s (%s)", dir.DefaultDisplayName, dir.DefaultContact)
		}
	}
	for _, n := range dir.List() {
		display := n.Identifier
		if n.DisplayName != "" {
			display = fmt.Sprintf("%s (%s)", n.DisplayName, n.Identifier)
		}
		v.rows = append(v.rows, fmt.Sprintf("%s: %s", n.Name, display))
	}
	return v
}

// TickRate implements View.
func (v *ContactList) TickRate() time.Duration { return contactListTickRate }

// Tick implements View.
func (v *ContactList) Tick(width, height int) {}

// HandleKey implements View. Selection stays within
// [0, max(0, count-1)]; Down on an empty list is inert.
func (v *ContactList) HandleKey(ev *tcell.EventKey, width, height int) Outcome {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Quit
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return Quit
		}
	case tcell.KeyUp:
		if v.selected > 0 {
			v.selected--
		}
	case tcell.KeyDown:
		if v.selected < len(v.rows)-1 {
			v.selected++
		}
	}
	return Continue
}

// Draw implements View.
func (v *ContactList) Draw(s tcell.Screen) {
	w, h := s.Size()

	drawBox(s, 0, 0, w, 3, v.theme.Border)
	drawTextCentered(s, 1, w-1, 1, v.theme.Title, "Contacts")

	drawBox(s, 0, 3, w, 3, v.theme.Border)
	drawBoxTitle(s, 0, 3, w, v.theme.Base, "Default Contact")
	drawText(s, 1, 4, w-1, v.theme.Base, v.defaultLine)

	listTop := 6
	drawBox(s, 0, listTop, w, h-listTop, v.theme.Border)
	drawBoxTitle(s, 0, listTop, w, v.theme.Base, "Named Contacts")
	for i, row := range v.rows {
		y := listTop + 1 + i
		if y >= h-1 {
			break
		}
		if i == v.selected {
			drawText(s, 1, y, w-1, v.theme.Selected, "> "+row)
		} else {
			drawText(s, 1, y, w-1, v.theme.Base, "  "+row)
		}
	}
}

// RunContacts browses the directory until the operator quits.
func RunContacts(dir *contacts.Directory) error {
	view := NewContactList(dir)
	return RunScoped(func(s *Session) error { return s.Run(view) })
}
