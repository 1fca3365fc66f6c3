package editor

import "fmt"

// Point is a (row, col) pair. It is signed because intermediate positions
// may be negative or past the buffer until the next clamp.
type Point struct {
	Row int
	Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Rect is the viewport: a scroll offset in buffer space and a size in
// terminal cells.
type Rect struct {
	Pos    Point
	Width  int
	Height int
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
