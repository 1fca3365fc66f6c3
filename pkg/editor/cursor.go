package editor

import (
	"fmt"

	"example.com/kat/pkg/buffer"
)

// Cursor is a logical (row, col) position over a TextBuffer plus the
// modifiers of the key event being handled.
//
// Movement never fails loudly: reaching a buffer edge is reported as false
// so callers can chain a fallback. Positions are only guaranteed valid after
// Clamp, which the editor runs once per key-event cycle.
type Cursor struct {
	pos  Point
	mods ModMask
	buf  *buffer.TextBuffer
}

func newCursor(buf *buffer.TextBuffer) *Cursor {
	return &Cursor{buf: buf}
}

func (c *Cursor) Position() Point { return c.pos }

func (c *Cursor) SetPosition(p Point) { c.pos = p }

// SetModifiers records the modifiers of the current key event.
func (c *Cursor) SetModifiers(m ModMask) { c.mods = m }

// lineLen returns the length of row. Callers only pass rows they have
// bounds-checked, so a failure here is an invariant violation.
func (c *Cursor) lineLen(row int) int {
	n, err := c.buf.LineLen(row)
	if err != nil {
		panic(fmt.Errorf("cursor at %v: %w", c.pos, err))
	}
	return n
}

func (c *Cursor) MoveUp() bool {
	if c.pos.Row <= 0 {
		return false
	}
	c.pos.Row--
	return true
}

func (c *Cursor) MoveDown() bool {
	if c.pos.Row >= c.buf.LineCount()-1 {
		return false
	}
	c.pos.Row++
	return true
}

// MoveForwardOnce steps one rune right, wrapping to the start of the next
// line at the end of a line.
func (c *Cursor) MoveForwardOnce() bool {
	if c.pos.Col < c.lineLen(c.pos.Row) {
		c.pos.Col++
		return true
	}
	if c.MoveDown() {
		c.pos.Col = 0
		return true
	}
	return false
}

// MoveBackwardOnce steps one rune left, wrapping to the end of the previous
// line at the start of a line.
func (c *Cursor) MoveBackwardOnce() bool {
	if c.pos.Col > 0 {
		c.pos.Col--
		return true
	}
	if c.MoveUp() {
		c.pos.Col = c.lineLen(c.pos.Row)
		return true
	}
	return false
}

// MoveForward steps right once; with Ctrl held it keeps stepping while the
// cursor sits between two word runes.
func (c *Cursor) MoveForward() bool {
	return c.repeat(c.MoveForwardOnce)
}

// MoveBackward is the leftward counterpart of MoveForward.
func (c *Cursor) MoveBackward() bool {
	return c.repeat(c.MoveBackwardOnce)
}

func (c *Cursor) repeat(step func() bool) bool {
	if !step() {
		return false
	}
	if c.mods&ModCtrl == 0 {
		return true
	}
	for c.insideWord() && step() {
	}
	return true
}

func (c *Cursor) insideWord() bool {
	left, right := c.buf.WordAround(c.pos.Row, c.pos.Col)
	return buffer.IsWordRune(left) && buffer.IsWordRune(right)
}

func (c *Cursor) MoveToStartOfLine() { c.pos.Col = 0 }

func (c *Cursor) MoveToEndOfLine() { c.pos.Col = c.lineLen(c.pos.Row) }

// Clamp forces the position back inside the buffer.
func (c *Cursor) Clamp() {
	c.pos.Row = clampInt(c.pos.Row, 0, c.buf.LineCount()-1)
	c.pos.Col = clampInt(c.pos.Col, 0, c.lineLen(c.pos.Row))
}
