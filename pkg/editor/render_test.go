package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_TooSmall(t *testing.T) {
	for _, size := range [][2]int{{11, 24}, {80, 4}, {0, 0}} {
		e := New(strings.Repeat("a very long line of text\n", 5000), DefaultOptions())
		e.Update(size[0], size[1])
		f := e.Render()
		assert.Equal(t, Frame{
			TooSmall: true,
			Lines:    []DrawLine{{Row: 0, Text: TooSmallMessage}},
		}, f, "size %v", size)
	}
}

func TestRender_GutterAndText(t *testing.T) {
	e := New("abc\n\ndef", DefaultOptions())
	e.SetCursor(Point{Row: 2, Col: 1})
	e.Update(20, 10)
	f := e.Render()

	assert.False(t, f.TooSmall)
	assert.Equal(t, []DrawLine{
		{Row: 0, Text: "    1  abc"},
		{Row: 1, Text: "    2  "},
		{Row: 2, Text: "    3  def"},
	}, f.Lines)
	assert.True(t, f.ShowCursor)
	assert.Equal(t, Point{Row: 2, Col: 8}, f.Cursor)
}

func TestRender_GutterWidensForLongLineNumbers(t *testing.T) {
	e := New(strings.Repeat("abc\n", 11)+"abc", Options{LineNumberWidth: 1, Margin: 2})
	e.SetCursor(Point{Row: 9, Col: 0})
	e.Update(40, 20)
	require.Equal(t, 4, e.GutterWidth())

	f := e.Render()
	require.Len(t, f.Lines, 12)
	assert.Equal(t, 4, f.Gutter)
	assert.Equal(t, " 1  abc", f.Lines[0].Text)
	assert.Equal(t, "10  abc", f.Lines[9].Text)
	assert.Equal(t, "12  abc", f.Lines[11].Text)
	assert.Equal(t, Point{Row: 9, Col: 4}, f.Cursor)

	// narrows again once the numbers fit
	e.Buffer().Load("abc")
	e.Update(40, 20)
	f = e.Render()
	assert.Equal(t, 3, f.Gutter)
	assert.Equal(t, "1  abc", f.Lines[0].Text)
	assert.Equal(t, Point{Row: 0, Col: 3}, f.Cursor)
}

func TestRender_ClipsToTextWidth(t *testing.T) {
	e := New("0123456789abcdef\nxy", DefaultOptions())
	e.Update(12, 5)
	f := e.Render()
	require.Len(t, f.Lines, 2)
	assert.Equal(t, "    1  01234", f.Lines[0].Text)
	assert.Equal(t, "    2  xy", f.Lines[1].Text)
}

func TestRender_HorizontalScroll(t *testing.T) {
	e := New("0123456789abcdefghij\nxy", DefaultOptions())
	e.SetCursor(Point{Row: 0, Col: 20})
	e.Update(20, 5)
	require.Equal(t, 10, e.Viewport().Pos.Col)

	f := e.Render()
	require.Len(t, f.Lines, 2)
	assert.Equal(t, "    1  abcdefghij", f.Lines[0].Text)
	assert.Equal(t, "    2  ", f.Lines[1].Text, "segment past the end of a short line is empty")
	assert.Equal(t, Point{Row: 0, Col: 17}, f.Cursor)
}

func TestRender_VerticalScrollNumbersRows(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 30; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("r")
	}
	e := New(sb.String(), DefaultOptions())
	e.SetCursor(Point{Row: 29})
	e.Update(20, 6)
	f := e.Render()

	rect := e.Viewport()
	require.NotEmpty(t, f.Lines)
	assert.Equal(t, rect.Pos.Row+1, atoiGutter(t, f.Lines[0].Text))
	assert.Equal(t, "   30  r", f.Lines[len(f.Lines)-1].Text)
	assert.LessOrEqual(t, len(f.Lines), rect.Height)
}

func TestRender_WideRunesFitTextArea(t *testing.T) {
	e := New("世界世界", DefaultOptions())
	e.Update(12, 5)
	f := e.Render()
	require.Len(t, f.Lines, 1)
	assert.Equal(t, "    1  世界", f.Lines[0].Text)
}

func atoiGutter(t *testing.T, s string) int {
	t.Helper()
	n := 0
	for _, r := range strings.TrimSpace(s[:5]) {
		n = n*10 + int(r-'0')
	}
	return n
}
