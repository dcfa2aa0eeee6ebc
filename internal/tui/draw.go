package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes text starting at (x, y), clipping at maxX (exclusive).
// It returns the column after the last cell written.
func drawText(s tcell.Screen, x, y, maxX int, style tcell.Style, text string) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// drawTextRight writes text right-aligned so its last cell lands at
// maxX-1, truncating to fit between minX and maxX.
func drawTextRight(s tcell.Screen, minX, maxX, y int, style tcell.Style, text string) {
	text = runewidth.Truncate(text, maxX-minX, "")
	drawText(s, maxX-runewidth.StringWidth(text), y, maxX, style, text)
}

// drawTextCentered writes text centered between minX and maxX.
func drawTextCentered(s tcell.Screen, minX, maxX, y int, style tcell.Style, text string) {
	text = runewidth.Truncate(text, maxX-minX, "")
	drawText(s, minX+(maxX-minX-runewidth.StringWidth(text))/2, y, maxX, style, text)
}

// drawBox draws a single-line border around [x, x+w) x [y, y+h).
func drawBox(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	for cx := x + 1; cx < x+w-1; cx++ {
		s.SetContent(cx, y, tcell.RuneHLine, nil, style)
		s.SetContent(cx, y+h-1, tcell.RuneHLine, nil, style)
	}
	for cy := y + 1; cy < y+h-1; cy++ {
		s.SetContent(x, cy, tcell.RuneVLine, nil, style)
		s.SetContent(x+w-1, cy, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x, y, tcell.RuneULCorner, nil, style)
	s.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	s.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	s.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)
}

// drawBoxTitle overlays a title on a box's top border, starting just
// after the corner.
func drawBoxTitle(s tcell.Screen, x, y, w int, style tcell.Style, title string) {
	if w < 4 {
		return
	}
	drawText(s, x+1, y, x+w-1, style, title)
}
