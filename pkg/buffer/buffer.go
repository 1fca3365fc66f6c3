package buffer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfRange is the parent of every index error returned by this package.
// Callers that validate positions before mutating never see it; when they do,
// a clamp was skipped somewhere.
var ErrOutOfRange = errors.New("position out of range")

var (
	ErrLineNotFound     = fmt.Errorf("line not found: %w", ErrOutOfRange)
	ErrColumnOutOfRange = fmt.Errorf("column out of range: %w", ErrOutOfRange)
	ErrColumnZero       = fmt.Errorf("no character before column 0: %w", ErrOutOfRange)
)

// TextBuffer is an ordered sequence of lines. It always holds at least one
// line; an empty document is a single empty line.
//
// Columns are rune offsets.
type TextBuffer struct {
	lines []*GapBuffer
}

// New creates a TextBuffer seeded with text.
func New(text string) *TextBuffer {
	b := &TextBuffer{}
	b.Load(text)
	return b
}

// Load replaces the content with text, split on line feeds. CRLF line
// endings are normalized to LF.
func (b *TextBuffer) Load(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	lines := make([]*GapBuffer, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, NewGapBufferFromString(p))
	}
	b.lines = lines
}

// LineCount returns the number of lines (always >= 1).
func (b *TextBuffer) LineCount() int {
	return len(b.lines)
}

func (b *TextBuffer) line(row int) (*GapBuffer, error) {
	if row < 0 || row >= len(b.lines) {
		return nil, fmt.Errorf("row %d of %d: %w", row, len(b.lines), ErrLineNotFound)
	}
	return b.lines[row], nil
}

// Line returns the text of line row.
func (b *TextBuffer) Line(row int) (string, error) {
	l, err := b.line(row)
	if err != nil {
		return "", err
	}
	return l.String(), nil
}

// LineRunes returns a copy of line row as runes.
func (b *TextBuffer) LineRunes(row int) ([]rune, error) {
	l, err := b.line(row)
	if err != nil {
		return nil, err
	}
	return l.Runes(), nil
}

// LineLen returns the rune length of line row.
func (b *TextBuffer) LineLen(row int) (int, error) {
	l, err := b.line(row)
	if err != nil {
		return 0, err
	}
	return l.Len(), nil
}

// RuneAt returns the rune at (row, col). ok is false outside the buffer.
func (b *TextBuffer) RuneAt(row, col int) (r rune, ok bool) {
	l, err := b.line(row)
	if err != nil || col < 0 || col >= l.Len() {
		return 0, false
	}
	return l.RuneAt(col), true
}

// SetLine replaces the content of line row.
func (b *TextBuffer) SetLine(row int, text string) error {
	if _, err := b.line(row); err != nil {
		return err
	}
	b.lines[row] = NewGapBufferFromString(text)
	return nil
}

// InsertChar inserts ch at column col of line row.
func (b *TextBuffer) InsertChar(row, col int, ch rune) error {
	l, err := b.line(row)
	if err != nil {
		return err
	}
	if err := l.Insert(col, []rune{ch}); err != nil {
		return fmt.Errorf("insert %q at (%d,%d): %w", ch, row, col, err)
	}
	return nil
}

// SplitLine truncates line row at col and inserts the remainder as a new
// line at row+1.
func (b *TextBuffer) SplitLine(row, col int) error {
	l, err := b.line(row)
	if err != nil {
		return err
	}
	if col < 0 || col > l.Len() {
		return fmt.Errorf("split (%d,%d) of %d: %w", row, col, l.Len(), ErrColumnOutOfRange)
	}
	tail := NewGapBufferFromRunes(l.Slice(col, l.Len()))
	if err := l.Delete(col, l.Len()); err != nil {
		return err
	}
	// row+1 == len(b.lines) appends after the last line.
	b.lines = append(b.lines, nil)
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = tail
	return nil
}

// MergeWithNext appends line row+1 to line row and removes it.
func (b *TextBuffer) MergeWithNext(row int) error {
	l, err := b.line(row)
	if err != nil {
		return err
	}
	next, err := b.line(row + 1)
	if err != nil {
		return fmt.Errorf("merge below row %d: %w", row, err)
	}
	if err := l.Insert(l.Len(), next.Runes()); err != nil {
		return err
	}
	b.lines = append(b.lines[:row+1], b.lines[row+2:]...)
	return nil
}

// RemoveChar deletes the rune before col (at col-1) on line row.
func (b *TextBuffer) RemoveChar(row, col int) error {
	l, err := b.line(row)
	if err != nil {
		return err
	}
	if col == 0 {
		return fmt.Errorf("remove at (%d,0): %w", row, ErrColumnZero)
	}
	if err := l.Delete(col-1, col); err != nil {
		return fmt.Errorf("remove at (%d,%d): %w", row, col, err)
	}
	return nil
}

// Lines returns a copy of every line.
func (b *TextBuffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = l.String()
	}
	return out
}

// String returns the document joined with line feeds.
func (b *TextBuffer) String() string {
	return strings.Join(b.Lines(), "\n")
}
