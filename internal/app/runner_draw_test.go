package app

import (
	"testing"

	"example.com/kat/pkg/config"
	"example.com/kat/pkg/editor"
	"github.com/gdamore/tcell/v2"
)

func newDrawRunner(t *testing.T, text string, w, h int) (*Runner, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("initializing simulation screen failed: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)

	r := New(editor.DefaultOptions())
	r.Editor = editor.New(text, editor.DefaultOptions())
	r.Screen = s
	return r, s
}

func TestPaint_GutterAndTextStyles(t *testing.T) {
	r, s := newDrawRunner(t, "abc\ndef", 40, 10)
	r.Theme = config.BuiltinThemes["light"]
	r.Editor.SetCursor(editor.Point{Row: 1, Col: 2})
	r.refresh()

	want := "    1  abc"
	for x, ch := range want {
		cr, _, style, _ := s.GetContent(x, 0)
		if cr != ch && !(ch == ' ' && cr == 0) {
			t.Fatalf("expected rune %q at (%d,0) got %q", ch, x, cr)
		}
		exp := r.Theme.GutterStyle()
		if x >= 7 {
			exp = r.Theme.TextStyle()
		}
		if cr != ' ' && style != exp {
			t.Fatalf("unexpected style at (%d,0): %v", x, style)
		}
	}
	if cr, _, _, _ := s.GetContent(4, 1); cr != '2' {
		t.Fatalf("expected line number 2 at (4,1), got %q", cr)
	}

	x, y, visible := s.GetCursor()
	if !visible || x != 9 || y != 1 {
		t.Fatalf("expected visible cursor at (9,1), got (%d,%d) visible=%v", x, y, visible)
	}
}

func TestPaint_TooSmallShowsMessageOnly(t *testing.T) {
	r, s := newDrawRunner(t, "abc\ndef", 10, 4)
	r.refresh()

	for x, ch := range "Terminal t" {
		cr, _, style, _ := s.GetContent(x, 0)
		if cr != ch {
			t.Fatalf("expected rune %q at (%d,0) got %q", ch, x, cr)
		}
		if style != r.Theme.MessageStyle() {
			t.Fatalf("expected message style at (%d,0)", x)
		}
	}
	for y := 1; y < 4; y++ {
		for x := 0; x < 10; x++ {
			if cr, _, _, _ := s.GetContent(x, y); cr != ' ' && cr != 0 {
				t.Fatalf("expected blank cell at (%d,%d), got %q", x, y, cr)
			}
		}
	}
	if _, _, visible := s.GetCursor(); visible {
		t.Fatalf("cursor should be hidden while the terminal is too small")
	}
}

func TestPaint_WideRunesAdvanceByWidth(t *testing.T) {
	r, s := newDrawRunner(t, "世界x", 40, 10)
	r.refresh()

	for _, c := range []struct {
		x  int
		ch rune
	}{{7, '世'}, {9, '界'}, {11, 'x'}} {
		if cr, _, _, _ := s.GetContent(c.x, 0); cr != c.ch {
			t.Fatalf("expected %q at (%d,0), got %q", c.ch, c.x, cr)
		}
	}
}

func TestPaint_CursorAfterWideRunes(t *testing.T) {
	r, s := newDrawRunner(t, "世界x", 40, 10)
	r.Editor.SetCursor(editor.Point{Row: 0, Col: 2})
	r.refresh()

	x, y, visible := s.GetCursor()
	if !visible || x != 11 || y != 0 {
		t.Fatalf("expected cursor on 'x' at (11,0), got (%d,%d) visible=%v", x, y, visible)
	}
}

func TestPaint_TabIsBlank(t *testing.T) {
	r, s := newDrawRunner(t, "a\tb", 40, 10)
	r.Editor.SetCursor(editor.Point{Row: 0, Col: 3})
	r.refresh()

	for _, c := range []struct {
		x  int
		ch rune
	}{{7, 'a'}, {8, ' '}, {9, 'b'}} {
		if cr, _, _, _ := s.GetContent(c.x, 0); cr != c.ch {
			t.Fatalf("expected %q at (%d,0), got %q", c.ch, c.x, cr)
		}
	}
	if x, _, _ := s.GetCursor(); x != 10 {
		t.Fatalf("expected cursor at column 10, got %d", x)
	}
}

func TestPaint_ClearsPreviousFrame(t *testing.T) {
	r, s := newDrawRunner(t, "abcdef", 40, 10)
	r.refresh()
	r.Editor.Buffer().Load("x")
	r.refresh()

	if cr, _, _, _ := s.GetContent(8, 0); cr != ' ' && cr != 0 {
		t.Fatalf("stale rune %q left at (8,0)", cr)
	}
}
