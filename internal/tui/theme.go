package tui

import "github.com/gdamore/tcell/v2"

// Theme holds the style palette for the views.
type Theme struct {
	Base     tcell.Style
	Title    tcell.Style
	Border   tcell.Style
	Incoming tcell.Style
	Outgoing tcell.Style
	Selected tcell.Style
	Active   tcell.Style
	Inactive tcell.Style
	Flash    tcell.Style
	Accent   tcell.Style
	Confirm  tcell.Style
	Cancel   tcell.Style
}

// DefaultTheme returns the iMessage-leaning palette: blue for outgoing,
// green for incoming.
func DefaultTheme() *Theme {
	base := tcell.StyleDefault
	return &Theme{
		Base:     base,
		Title:    base.Foreground(tcell.ColorWhite),
		Border:   base,
		Incoming: base.Foreground(tcell.ColorGreen),
		Outgoing: base.Foreground(tcell.ColorBlue),
		Selected: base.Bold(true),
		Active:   base.Foreground(tcell.ColorBlue),
		Inactive: base.Foreground(tcell.ColorGray),
		Flash:    base.Foreground(tcell.ColorRed),
		Accent:   base.Foreground(tcell.ColorBlue).Bold(true),
		Confirm:  base.Foreground(tcell.ColorGreen).Bold(true),
		Cancel:   base.Foreground(tcell.ColorRed).Bold(true),
	}
}
