package editor

import "example.com/kat/pkg/buffer"

// Editor owns a document, the cursor over it, and the viewport showing it.
// The host drives it with one cycle per input poll:
//
//	ProcessKeyEvent (when a key arrived) -> Update -> Render
type Editor struct {
	opts   Options
	buf    *buffer.TextBuffer
	cursor *Cursor
	view   *Viewport

	shouldExit bool
	dirty      bool
}

// New creates an editor over text.
func New(text string, opts Options) *Editor {
	return NewWithBuffer(buffer.New(text), opts)
}

// NewWithBuffer creates an editor over an existing buffer. The editor takes
// ownership of buf.
func NewWithBuffer(buf *buffer.TextBuffer, opts Options) *Editor {
	opts = opts.withDefaults()
	return &Editor{
		opts:   opts,
		buf:    buf,
		cursor: newCursor(buf),
		view:   newViewport(opts),
	}
}

func (e *Editor) Options() Options { return e.opts }

// Buffer gives read access to the document. Mutating it directly bypasses
// cursor bookkeeping.
func (e *Editor) Buffer() *buffer.TextBuffer { return e.buf }

func (e *Editor) Cursor() Point { return e.cursor.Position() }

// SetCursor moves the cursor; it is clamped by the next Update.
func (e *Editor) SetCursor(p Point) { e.cursor.SetPosition(p) }

func (e *Editor) Viewport() Rect { return e.view.Rect() }

func (e *Editor) ShouldExit() bool { return e.shouldExit }

// Dirty reports whether the document changed since creation or MarkClean.
func (e *Editor) Dirty() bool { return e.dirty }

func (e *Editor) MarkClean() { e.dirty = false }

func (e *Editor) TooSmall() bool { return e.view.TooSmall() }

// GutterWidth is the gutter of the last Update, widened for long buffers.
func (e *Editor) GutterWidth() int { return e.view.GutterWidth() }

// Update ends a cycle: it adopts the terminal size, clamps the cursor and
// scrolls the viewport to keep the cursor inside the margin band.
func (e *Editor) Update(width, height int) {
	e.view.Resize(width, height)
	e.view.SetLineCount(e.buf.LineCount())
	e.cursor.Clamp()
	if e.view.TooSmall() {
		return
	}
	e.view.Rescroll(e.cursor.Position(), e.buf)
}
