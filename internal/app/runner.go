package app

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"example.com/kat/pkg/buffer"
	"example.com/kat/pkg/config"
	"example.com/kat/pkg/editor"
	"example.com/kat/pkg/logs"
	"github.com/gdamore/tcell/v2"
)

// DefaultPollInterval bounds how long the loop waits for input before
// redrawing anyway.
const DefaultPollInterval = 10 * time.Millisecond

// Runner owns the terminal lifecycle and the event loop around an Editor.
type Runner struct {
	Screen       tcell.Screen
	FilePath     string
	Editor       *editor.Editor
	Logger       *logs.Logger
	Keymap       map[string]config.Keybinding
	Theme        config.Theme
	PollInterval time.Duration
	// EventCh carries terminal events into the loop. When nil, Run creates
	// it and feeds it from Screen.ChannelEvents.
	EventCh chan tcell.Event

	lastW, lastH int
}

// New creates a Runner over an empty document with the stock keymap and
// theme.
func New(opts editor.Options) *Runner {
	keymap, _ := config.Default().Keybindings()
	return &Runner{
		Editor:       editor.New("", opts),
		Keymap:       keymap,
		Theme:        config.DefaultTheme(),
		PollInterval: DefaultPollInterval,
	}
}

// NewFromConfig creates a Runner laid out, bound and colored per cfg.
func NewFromConfig(cfg *config.Config, logger *logs.Logger) (*Runner, error) {
	keymap, err := cfg.Keybindings()
	if err != nil {
		return nil, err
	}
	r := New(editor.Options{
		LineNumberWidth: cfg.Editor.LineNumberWidth,
		Margin:          cfg.Editor.Margin,
	})
	r.Keymap = keymap
	r.Theme = cfg.ResolveTheme()
	r.PollInterval = cfg.Editor.PollInterval
	r.Logger = logger
	return r, nil
}

// LoadFile loads path into a fresh editor. A file that does not exist yet
// yields an empty document bound to path so that saving creates it.
func (r *Runner) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	r.logger().Event("open.attempt", map[string]any{"file": path})
	buf, err := buffer.LoadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		buf = buffer.New("")
		r.logger().Event("open.new", map[string]any{"file": path})
	case err != nil:
		r.logger().Event("open.error", map[string]any{"file": path, "error": err.Error()})
		return fmt.Errorf("open %s: %w", path, err)
	default:
		r.logger().Event("open.success", map[string]any{"file": path, "lines": buf.LineCount()})
	}
	r.FilePath = path
	r.Editor = editor.NewWithBuffer(buf, r.Editor.Options())
	return nil
}

// InitScreen initializes a tcell screen if one is not already set.
func (r *Runner) InitScreen() error {
	if r.Screen != nil {
		return nil
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	s.SetStyle(r.Theme.TextStyle())
	s.Clear()
	r.Screen = s
	return nil
}

// Fini finalizes the screen if initialized.
func (r *Runner) Fini() {
	if r.Screen != nil {
		r.Screen.Fini()
		r.Screen = nil
	}
}

// Run starts the event loop. It initializes the screen if needed and
// returns when the editor asks to exit, when the event source closes, or
// with the first error the editor reports.
func (r *Runner) Run() error {
	if r.Screen == nil {
		if err := r.InitScreen(); err != nil {
			return err
		}
		defer r.Fini()
	}
	if r.Logger == nil {
		r.Logger = logs.NewFromEnv()
	}
	if r.PollInterval <= 0 {
		r.PollInterval = DefaultPollInterval
	}

	r.Logger.Event("run.start", map[string]any{"file": r.FilePath})
	defer r.Logger.Event("run.end", map[string]any{"file": r.FilePath})

	if r.EventCh == nil {
		ch := make(chan tcell.Event, 64)
		quit := make(chan struct{})
		go r.Screen.ChannelEvents(ch, quit)
		defer func() {
			close(quit)
			r.EventCh = nil
		}()
		r.EventCh = ch
	}

	r.refresh()
	for {
		select {
		case ev, ok := <-r.EventCh:
			if !ok {
				return nil
			}
			if err := r.handleEvent(ev); err != nil {
				r.Logger.Error("editor error", "error", err.Error(), "cursor", r.Editor.Cursor().String())
				return err
			}
		case <-time.After(r.PollInterval):
		}
		r.refresh()
		if r.Editor.ShouldExit() {
			r.Logger.Event("action", map[string]any{"name": "quit", "dirty": r.Editor.Dirty()})
			return nil
		}
	}
}

func (r *Runner) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.handleKeyEvent(ev)
	case *tcell.EventResize:
		r.Screen.Sync()
	}
	return nil
}

// refresh runs one update/render/paint cycle at the current terminal size.
func (r *Runner) refresh() {
	w, h := r.Screen.Size()
	if w != r.lastW || h != r.lastH {
		r.lastW, r.lastH = w, h
		r.logger().Event("resize", map[string]any{"width": w, "height": h})
	}
	r.Editor.Update(w, h)
	r.paint(r.Editor.Render())
	r.Screen.Show()
}

func (r *Runner) logger() *logs.Logger {
	if r.Logger == nil {
		r.Logger = logs.Discard()
	}
	return r.Logger
}
