package editor

import (
	"fmt"

	"example.com/kat/pkg/buffer"
)

// Key is the category of a key event.
type Key int

const (
	KeyRune Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyBackspace
	KeyEscape
)

var keyNames = map[Key]string{
	KeyRune:      "Rune",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyEnter:     "Enter",
	KeyBackspace: "Backspace",
	KeyEscape:    "Escape",
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ModMask is the set of active modifiers. Only Ctrl is consulted.
type ModMask uint8

const (
	ModNone ModMask = 0
	ModCtrl ModMask = 1
)

// KeyEvent is a decoded key press. Rune is only meaningful for KeyRune.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  ModMask
}

func (ev KeyEvent) String() string {
	s := ev.Key.String()
	if ev.Key == KeyRune {
		s = fmt.Sprintf("%q", ev.Rune)
	}
	if ev.Mod&ModCtrl != 0 {
		s = "Ctrl+" + s
	}
	return s
}

// ProcessKeyEvent applies one key event to the buffer and cursor. The cursor
// is not clamped here; Update does that once per cycle.
//
// While the terminal is too small every key except Escape is ignored.
// A returned error means a buffer index was out of range, which is a bug in
// the caller's bookkeeping rather than a user mistake.
func (e *Editor) ProcessKeyEvent(ev KeyEvent) error {
	if ev.Key == KeyEscape {
		e.shouldExit = true
		return nil
	}
	if e.view.TooSmall() {
		return nil
	}

	if err := e.checkCursor(); err != nil {
		return fmt.Errorf("%s at %v: %w", ev, e.cursor.Position(), err)
	}

	e.cursor.SetModifiers(ev.Mod)
	var err error
	switch ev.Key {
	case KeyLeft:
		e.cursor.MoveBackward()
	case KeyRight:
		e.cursor.MoveForward()
	case KeyUp:
		e.cursor.MoveUp()
	case KeyDown:
		e.cursor.MoveDown()
	case KeyHome:
		e.cursor.MoveToStartOfLine()
	case KeyEnd:
		e.cursor.MoveToEndOfLine()
	case KeyEnter:
		err = e.enter()
	case KeyBackspace:
		if ev.Mod&ModCtrl != 0 {
			err = e.deleteWordBackward()
		} else {
			err = e.backspace()
		}
	case KeyRune:
		err = e.insert(ev.Rune)
	}
	if err != nil {
		return fmt.Errorf("%s at %v: %w", ev, e.cursor.Position(), err)
	}
	return nil
}

// checkCursor reports a cursor that lies outside the buffer.
func (e *Editor) checkCursor() error {
	p := e.cursor.Position()
	n, err := e.buf.LineLen(p.Row)
	if err != nil {
		return err
	}
	if p.Col < 0 || p.Col > n {
		return fmt.Errorf("column %d of %d: %w", p.Col, n, buffer.ErrColumnOutOfRange)
	}
	return nil
}

func (e *Editor) enter() error {
	p := e.cursor.Position()
	if err := e.buf.SplitLine(p.Row, p.Col); err != nil {
		return err
	}
	e.dirty = true
	e.cursor.MoveDown()
	e.cursor.MoveToStartOfLine()
	return nil
}

// backspace removes the rune before the cursor. At the start of a line it
// joins the line onto the previous one instead; the cursor moves first so
// the merge targets the row it lands on.
func (e *Editor) backspace() error {
	p := e.cursor.Position()
	if p.Col == 0 {
		if p.Row == 0 {
			return nil
		}
		e.cursor.MoveBackwardOnce()
		if err := e.buf.MergeWithNext(e.cursor.Position().Row); err != nil {
			return err
		}
		e.dirty = true
		return nil
	}
	if err := e.buf.RemoveChar(p.Row, p.Col); err != nil {
		return err
	}
	e.dirty = true
	e.cursor.MoveBackwardOnce()
	return nil
}

// deleteWordBackward backspaces once, then keeps going while the rune left
// of the cursor is a word rune. A backspace that joined two lines is not
// continued into the previous line's last word.
func (e *Editor) deleteWordBackward() error {
	joined := e.cursor.Position().Col == 0
	if err := e.backspace(); err != nil || joined {
		return err
	}
	for {
		p := e.cursor.Position()
		left, _ := e.buf.RuneAt(p.Row, p.Col-1)
		if !buffer.IsWordRune(left) {
			return nil
		}
		if err := e.backspace(); err != nil {
			return err
		}
	}
}

func (e *Editor) insert(ch rune) error {
	p := e.cursor.Position()
	if err := e.buf.InsertChar(p.Row, p.Col, ch); err != nil {
		return err
	}
	e.dirty = true
	e.cursor.MoveForwardOnce()
	return nil
}
