package app

import (
	"example.com/kat/pkg/editor"
	"github.com/gdamore/tcell/v2"
)

// handleKeyEvent checks the configured bindings first, then hands the key
// to the editor. Keys the editor has no use for are dropped.
func (r *Runner) handleKeyEvent(ev *tcell.EventKey) error {
	r.logger().Event("key", map[string]any{
		"key":       int(ev.Key()),
		"rune":      string(ev.Rune()),
		"modifiers": int(ev.Modifiers()),
	})

	if kb, ok := r.Keymap["save"]; ok && kb.Matches(ev) {
		r.logger().Event("action", map[string]any{"name": "save"})
		// A failed save is logged and the session continues.
		_ = r.Save()
		return nil
	}
	if kb, ok := r.Keymap["quit"]; ok && kb.Matches(ev) {
		return r.Editor.ProcessKeyEvent(editor.KeyEvent{Key: editor.KeyEscape})
	}

	kev, ok := toKeyEvent(ev)
	if !ok {
		return nil
	}
	return r.Editor.ProcessKeyEvent(kev)
}

// toKeyEvent translates a tcell key into the editor's vocabulary.
//
// Terminals send DEL (KeyBackspace2) for Backspace and BS (KeyBackspace,
// the same code as Ctrl+H) for Ctrl+Backspace, so BS always carries Ctrl.
func toKeyEvent(ev *tcell.EventKey) (editor.KeyEvent, bool) {
	mod := editor.ModNone
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mod = editor.ModCtrl
	}
	var k editor.Key
	switch ev.Key() {
	case tcell.KeyLeft:
		k = editor.KeyLeft
	case tcell.KeyRight:
		k = editor.KeyRight
	case tcell.KeyUp:
		k = editor.KeyUp
	case tcell.KeyDown:
		k = editor.KeyDown
	case tcell.KeyHome:
		k = editor.KeyHome
	case tcell.KeyEnd:
		k = editor.KeyEnd
	case tcell.KeyEnter:
		k = editor.KeyEnter
	case tcell.KeyEscape:
		k = editor.KeyEscape
	case tcell.KeyBackspace2:
		k = editor.KeyBackspace
	case tcell.KeyBackspace:
		return editor.KeyEvent{Key: editor.KeyBackspace, Mod: editor.ModCtrl}, true
	case tcell.KeyTab:
		return editor.KeyEvent{Key: editor.KeyRune, Rune: '\t'}, true
	case tcell.KeyRune:
		if mod == editor.ModCtrl {
			// Unbound Ctrl+letter, not text.
			return editor.KeyEvent{}, false
		}
		return editor.KeyEvent{Key: editor.KeyRune, Rune: ev.Rune()}, true
	default:
		return editor.KeyEvent{}, false
	}
	return editor.KeyEvent{Key: k, Mod: mod}, true
}
