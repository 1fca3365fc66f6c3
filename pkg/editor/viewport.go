package editor

import (
	"strconv"

	"example.com/kat/pkg/buffer"
)

// Viewport tracks which part of the buffer is visible. Pos is the buffer
// coordinate shown at the top-left text cell; Width and Height are the
// terminal size in cells, gutter included.
type Viewport struct {
	rect Rect
	opts Options
	// numberWidth is the width line numbers are padded to; it grows past
	// Options.LineNumberWidth when the buffer has more lines than fit.
	numberWidth int
}

func newViewport(opts Options) *Viewport {
	return &Viewport{opts: opts, numberWidth: opts.LineNumberWidth}
}

// SetLineCount widens the gutter so that every row number of a buffer with
// n lines fits.
func (v *Viewport) SetLineCount(n int) {
	v.numberWidth = max(v.opts.LineNumberWidth, len(strconv.Itoa(n)))
}

// NumberWidth is the width line numbers are right-aligned to.
func (v *Viewport) NumberWidth() int { return v.numberWidth }

// GutterWidth is the number of cells left of the first text column.
func (v *Viewport) GutterWidth() int {
	return v.numberWidth + len(GutterSeparator)
}

// MinSize returns the smallest terminal the editor renders text into.
func (v *Viewport) MinSize() (width, height int) {
	return v.GutterWidth() + 2*v.opts.Margin + 1, 2*v.opts.Margin + 1
}

func (v *Viewport) Rect() Rect { return v.rect }

// Resize sets the visible size from the terminal dimensions.
func (v *Viewport) Resize(width, height int) {
	v.rect.Width = width
	v.rect.Height = height
}

// TooSmall reports whether the current size is below MinSize.
func (v *Viewport) TooSmall() bool {
	w, h := v.MinSize()
	return v.rect.Width < w || v.rect.Height < h
}

// ScreenPosition projects a buffer position onto the terminal.
func (v *Viewport) ScreenPosition(cursor Point) Point {
	return Point{
		Row: cursor.Row - v.rect.Pos.Row,
		Col: cursor.Col - v.rect.Pos.Col + v.GutterWidth(),
	}
}

func (v *Viewport) ScrollUp() bool {
	if v.rect.Pos.Row <= 0 {
		return false
	}
	v.rect.Pos.Row--
	return true
}

// ScrollDown moves down one row. The last buffer line always stays visible.
func (v *Viewport) ScrollDown(lineCount int) bool {
	if v.rect.Pos.Row >= lineCount-1 {
		return false
	}
	v.rect.Pos.Row++
	return true
}

func (v *Viewport) ScrollLeft() bool {
	if v.rect.Pos.Col <= 0 {
		return false
	}
	v.rect.Pos.Col--
	return true
}

// ScrollRight moves right one column, as long as the text area still ends
// within a margin past the end of a line of length lineLen.
func (v *Viewport) ScrollRight(lineLen int) bool {
	textWidth := v.rect.Width - v.GutterWidth()
	// The extra margin lets a caret at the line end reach the band;
	// stopping at lineLen would leave it pinned against the right edge.
	if v.rect.Pos.Col+textWidth > lineLen+v.opts.Margin {
		return false
	}
	v.rect.Pos.Col++
	return true
}

// Rescroll scrolls until the cursor sits inside the margin band on both
// axes, or until the buffer edge stops the scroll. The cursor must already
// be clamped.
func (v *Viewport) Rescroll(cursor Point, buf *buffer.TextBuffer) {
	lineLen, err := buf.LineLen(cursor.Row)
	if err != nil {
		return
	}
	m := v.opts.Margin
	gutter := v.GutterWidth()

	// Every productive step moves the offset one cell closer to a position
	// bounded by these dimensions, so the loop cannot run longer.
	limit := buf.LineCount() + lineLen + v.rect.Pos.Row + v.rect.Pos.Col + v.rect.Width + v.rect.Height + 1
	for i := 0; i < limit; i++ {
		s := v.ScreenPosition(cursor)
		moved := false

		switch {
		case s.Row >= v.rect.Height-m:
			moved = v.ScrollDown(buf.LineCount()) || moved
		case s.Row < m:
			moved = v.ScrollUp() || moved
		}

		switch {
		case s.Col >= v.rect.Width-m:
			moved = v.ScrollRight(lineLen) || moved
		case s.Col < gutter+m:
			moved = v.ScrollLeft() || moved
		}

		if !moved {
			return
		}
	}
}
