package tui

import (
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Outcome tells the event loop whether a view wants to keep running.
type Outcome int

const (
	// Continue keeps the loop going.
	Continue Outcome = iota
	// Quit ends the view's session.
	Quit
)

// View is one interactive screen driven by the session's event loop. The
// loop calls Tick once per iteration before drawing, then polls input for
// the remainder of the view's tick budget.
type View interface {
	// TickRate is the redraw cadence ceiling and maximum input poll wait.
	TickRate() time.Duration
	// Tick runs per-iteration state fixups with the current terminal size.
	Tick(width, height int)
	// HandleKey processes one key event.
	HandleKey(ev *tcell.EventKey, width, height int) Outcome
	// Draw renders the view.
	Draw(s tcell.Screen)
}

// trimLastRune drops the final rune from an input buffer.
func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
