package buffer

// IsWordRune reports whether r is considered part of a word.
// Words consist of ASCII letters, digits, or underscore characters; the zero
// rune used for positions outside the buffer is never a word rune.
func IsWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	default:
		return r == '_'
	}
}

// WordAround returns the runes immediately left and right of (row, col).
// Positions outside the line yield 0.
func (b *TextBuffer) WordAround(row, col int) (left, right rune) {
	left, _ = b.RuneAt(row, col-1)
	right, _ = b.RuneAt(row, col)
	return left, right
}
