package editor

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// DrawLine is one terminal row of output.
type DrawLine struct {
	Row  int
	Text string
}

// Frame is everything needed to paint one screen: clear, write Lines in
// order, then place the cursor if ShowCursor is set.
//
// Columns are counted in runes. On a line with double-width runes left of
// the cursor, Cursor.Col is smaller than the cell the caret belongs in;
// painters convert it using the runes of the cursor's line.
type Frame struct {
	TooSmall   bool
	Lines      []DrawLine
	Cursor     Point
	ShowCursor bool
	// Gutter is the number of leading runes of each line that belong to the
	// line number column.
	Gutter int
}

// Render projects the visible part of the buffer into a Frame.
func (e *Editor) Render() Frame {
	if e.view.TooSmall() {
		return Frame{
			TooSmall: true,
			Lines:    []DrawLine{{Row: 0, Text: TooSmallMessage}},
		}
	}

	rect := e.view.Rect()
	gutter := e.view.GutterWidth()
	textWidth := rect.Width - gutter
	lines := make([]DrawLine, 0, rect.Height)
	for i := 0; i < rect.Height; i++ {
		row := rect.Pos.Row + i
		runes, err := e.buf.LineRunes(row)
		if err != nil {
			break
		}
		start := rect.Pos.Col
		end := min(start+textWidth, len(runes))
		segment := ""
		if start < end {
			segment = runewidth.Truncate(string(runes[start:end]), textWidth, "")
		}
		lines = append(lines, DrawLine{
			Row:  i,
			Text: fmt.Sprintf("%*d%s%s", e.view.NumberWidth(), row+1, GutterSeparator, segment),
		})
	}

	return Frame{
		Lines:      lines,
		Cursor:     e.view.ScreenPosition(e.cursor.Position()),
		ShowCursor: true,
		Gutter:     gutter,
	}
}
