package app

import (
	"unicode"

	"example.com/kat/pkg/editor"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// paint clears the screen and writes f row by row, then places the cursor.
// The caller shows the result.
func (r *Runner) paint(f editor.Frame) {
	s := r.Screen
	s.SetStyle(r.Theme.TextStyle())
	s.Clear()

	if f.TooSmall {
		for _, l := range f.Lines {
			drawText(s, 0, l.Row, l.Text, r.Theme.MessageStyle(), r.Theme.MessageStyle(), 0)
		}
		s.HideCursor()
		return
	}

	for _, l := range f.Lines {
		drawText(s, 0, l.Row, l.Text, r.Theme.GutterStyle(), r.Theme.TextStyle(), f.Gutter)
	}
	if !f.ShowCursor {
		s.HideCursor()
		return
	}
	x := f.Cursor.Col
	for _, l := range f.Lines {
		if l.Row == f.Cursor.Row {
			x = cellColumn(l.Text, f.Cursor.Col)
			break
		}
	}
	s.ShowCursor(x, f.Cursor.Row)
}

// drawText writes text starting at (x, y). The first split runes use
// lead, the rest use style. Each rune advances by its display width.
func drawText(s tcell.Screen, x, y int, text string, lead, style tcell.Style, split int) {
	w, _ := s.Size()
	i := 0
	for _, ch := range text {
		if x >= w {
			return
		}
		st := style
		if i < split {
			st = lead
		}
		s.SetContent(x, y, cellRune(ch), nil, st)
		x += cellWidth(ch)
		i++
	}
}

// cellColumn converts a rune column of text into a screen cell column.
func cellColumn(text string, col int) int {
	runes := []rune(text)
	n := min(col, len(runes))
	x := col - n
	for _, ch := range runes[:n] {
		x += cellWidth(ch)
	}
	return x
}

// cellRune is what a terminal cell shows for ch. Control runes such as tabs
// would move the terminal's own cursor, so they are shown as blanks.
func cellRune(ch rune) rune {
	if unicode.IsControl(ch) {
		return ' '
	}
	return ch
}

func cellWidth(ch rune) int {
	return max(runewidth.RuneWidth(ch), 1)
}
