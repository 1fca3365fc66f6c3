package logs

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects where and how much the editor logs.
type Options struct {
	Enabled bool
	// File defaults to DefaultPath() when empty.
	File string
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
}

// Logger writes JSON lines with a timestamp, a level and event fields.
// A disabled Logger discards everything, so callers never need nil checks
// beyond the pointer itself.
type Logger struct {
	log     *slog.Logger
	w       *lumberjack.Logger
	enabled bool
}

// DefaultPath returns ~/.config/kat/kat.log, or a file in the temp dir when
// the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "kat.log")
	}
	return filepath.Join(home, ".config", "kat", "kat.log")
}

// WithEnv applies KAT_LOG and KAT_LOG_FILE on top of o. KAT_LOG enables
// logging when set to anything but "", "0" or "false"; KAT_LOG_FILE enables
// it and sets the file.
func (o Options) WithEnv() Options {
	if v := os.Getenv("KAT_LOG"); v != "" && v != "0" && v != "false" {
		o.Enabled = true
	}
	if lf := os.Getenv("KAT_LOG_FILE"); lf != "" {
		o.Enabled = true
		o.File = lf
	}
	return o
}

// New returns a logger for opts. Rotation keeps a few compressed backups.
func New(opts Options) *Logger {
	if !opts.Enabled {
		return Discard()
	}
	path := opts.File
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		// Nowhere to write; run without logs rather than refuse to edit.
		return Discard()
	}
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     7, // days
		Compress:   true,
	}
	l := NewWithWriter(w, ParseLevel(opts.Level))
	l.w = w
	return l
}

// NewFromEnv is New with only the environment as configuration.
func NewFromEnv() *Logger {
	return New(Options{}.WithEnv())
}

// NewWithWriter logs JSON to w at level and above.
func NewWithWriter(w io.Writer, level slog.Level) *Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{log: slog.New(h), enabled: true}
}

// Discard returns a disabled logger.
func Discard() *Logger {
	return &Logger{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) Enabled() bool { return l.enabled }

// Slog exposes the underlying structured logger.
func (l *Logger) Slog() *slog.Logger { return l.log }

// Close flushes and closes the log file, if any.
func (l *Logger) Close() {
	if l.w != nil {
		_ = l.w.Close()
	}
}

// Event writes an info record named event with fields as attributes.
// Common fields: key, rune, modifiers, action, cursor, lines, file.
func (l *Logger) Event(event string, fields map[string]any) {
	if !l.enabled {
		return
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	l.log.Info(event, args...)
}

func (l *Logger) Debug(msg string, args ...any) { l.log.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.log.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.log.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.log.Error(msg, args...) }
