package config

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the colors the painter uses.
type Theme struct {
	Background tcell.Color
	// Text is the foreground of buffer text.
	Text tcell.Color
	// Gutter colors the line numbers and separator.
	Gutter tcell.Color
	// Message colors the "Terminal too small" notice.
	Message tcell.Color
}

// DefaultTheme is the dark preset.
func DefaultTheme() Theme {
	return BuiltinThemes["dark"]
}

// TerminalTheme follows the terminal's own palette instead of fixed colors.
func TerminalTheme() Theme {
	return Theme{
		Background: tcell.ColorDefault,
		Text:       tcell.ColorDefault,
		Gutter:     tcell.ColorGray,
		Message:    tcell.ColorYellow,
	}
}

// BuiltinThemes exposes the presets by name.
var BuiltinThemes = map[string]Theme{
	"dark": {
		Background: tcell.ColorBlack,
		Text:       tcell.ColorWhite,
		Gutter:     tcell.ColorGray,
		Message:    tcell.ColorYellow,
	},
	"light": {
		Background: tcell.ColorWhite,
		Text:       tcell.ColorBlack,
		Gutter:     tcell.ColorDarkGray,
		Message:    tcell.ColorRed,
	},
	"terminal": TerminalTheme(),
}

// TextStyle is the style for buffer text.
func (t Theme) TextStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.Background).Foreground(t.Text)
}

// GutterStyle is the style for the line number column.
func (t Theme) GutterStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.Background).Foreground(t.Gutter)
}

// MessageStyle is the style for the too-small notice.
func (t Theme) MessageStyle() tcell.Style {
	return tcell.StyleDefault.Background(t.Background).Foreground(t.Message).Bold(true)
}

// ParseColor returns a tcell.Color from a name or hex like "#aabbcc".
// If parsing fails, it returns the provided fallback.
func ParseColor(s string, fallback tcell.Color) tcell.Color {
	if s == "" {
		return fallback
	}
	// tcell.GetColor supports W3C names or #RRGGBB (case-insensitive)
	c := tcell.GetColor(strings.ToLower(s))
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

// validColor reports whether ParseColor would accept s.
func validColor(s string) bool {
	return s == "" || tcell.GetColor(strings.ToLower(s)) != tcell.ColorDefault
}
