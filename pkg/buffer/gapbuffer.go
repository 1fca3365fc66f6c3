package buffer

import "fmt"

// GapBuffer stores the runes of a single line with a gap between gapStart
// and gapEnd. Edits near the previous edit point only move a few runes,
// which is the common case while typing.
type GapBuffer struct {
	buf      []rune
	gapStart int
	gapEnd   int
}

// NewGapBuffer creates an empty GapBuffer with an initial capacity.
func NewGapBuffer(cap int) *GapBuffer {
	if cap < 1 {
		cap = 16
	}
	return &GapBuffer{buf: make([]rune, cap), gapStart: 0, gapEnd: cap}
}

// NewGapBufferFromString initializes a GapBuffer with the provided text.
func NewGapBufferFromString(s string) *GapBuffer {
	return NewGapBufferFromRunes([]rune(s))
}

// NewGapBufferFromRunes initializes a GapBuffer holding a copy of runes.
func NewGapBufferFromRunes(runes []rune) *GapBuffer {
	g := NewGapBuffer(len(runes) + 16)
	copy(g.buf, runes)
	g.gapStart = len(runes)
	return g
}

func (g *GapBuffer) ensureGap(n int) {
	gap := g.gapEnd - g.gapStart
	if gap >= n {
		return
	}
	newCap := len(g.buf)*2 + (n - gap)
	newBuf := make([]rune, newCap)
	copy(newBuf, g.buf[:g.gapStart])
	suffixLen := len(g.buf) - g.gapEnd
	copy(newBuf[newCap-suffixLen:], g.buf[g.gapEnd:])
	g.gapEnd = newCap - suffixLen
	g.buf = newBuf
}

// moveGap moves the gap so that gapStart == pos.
func (g *GapBuffer) moveGap(pos int) {
	switch {
	case pos < g.gapStart:
		d := g.gapStart - pos
		copy(g.buf[g.gapEnd-d:g.gapEnd], g.buf[pos:g.gapStart])
		g.gapStart -= d
		g.gapEnd -= d
	case pos > g.gapStart:
		d := pos - g.gapStart
		copy(g.buf[g.gapStart:g.gapStart+d], g.buf[g.gapEnd:g.gapEnd+d])
		g.gapStart += d
		g.gapEnd += d
	}
}

// Insert inserts runes at position pos (0..Len()).
func (g *GapBuffer) Insert(pos int, s []rune) error {
	if pos < 0 || pos > g.Len() {
		return fmt.Errorf("insert at %d of %d: %w", pos, g.Len(), ErrColumnOutOfRange)
	}
	g.moveGap(pos)
	g.ensureGap(len(s))
	copy(g.buf[g.gapStart:], s)
	g.gapStart += len(s)
	return nil
}

// Delete removes runes in [start,end).
func (g *GapBuffer) Delete(start, end int) error {
	if start < 0 || end < start || end > g.Len() {
		return fmt.Errorf("delete [%d,%d) of %d: %w", start, end, g.Len(), ErrColumnOutOfRange)
	}
	g.moveGap(start)
	g.gapEnd += end - start
	return nil
}

// Slice returns a copy of the runes in [start,end). Bounds are clamped.
func (g *GapBuffer) Slice(start, end int) []rune {
	if start < 0 {
		start = 0
	}
	if end > g.Len() {
		end = g.Len()
	}
	if start >= end {
		return []rune{}
	}
	out := make([]rune, 0, end-start)
	if start < g.gapStart {
		out = append(out, g.buf[start:min(end, g.gapStart)]...)
	}
	if end > g.gapStart {
		from := max(start, g.gapStart) - g.gapStart + g.gapEnd
		to := end - g.gapStart + g.gapEnd
		out = append(out, g.buf[from:to]...)
	}
	return out
}

// Runes returns a copy of the whole content.
func (g *GapBuffer) Runes() []rune {
	return g.Slice(0, g.Len())
}

// Len returns the logical length (excluding gap).
func (g *GapBuffer) Len() int {
	return len(g.buf) - (g.gapEnd - g.gapStart)
}

// RuneAt returns the rune at index i. If i is out of bounds, it returns 0.
func (g *GapBuffer) RuneAt(i int) rune {
	if i < 0 || i >= g.Len() {
		return 0
	}
	if i < g.gapStart {
		return g.buf[i]
	}
	return g.buf[g.gapEnd+(i-g.gapStart)]
}

func (g *GapBuffer) String() string {
	return string(g.Runes())
}
