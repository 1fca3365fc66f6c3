package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds user configuration values.
type Config struct {
	Editor EditorConfig `mapstructure:"editor" yaml:"editor"`
	Keymap KeymapConfig `mapstructure:"keymap" yaml:"keymap"`
	Theme  string       `mapstructure:"theme" yaml:"theme"`
	Colors ColorsConfig `mapstructure:"colors" yaml:"colors"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

// EditorConfig sizes the layout and paces the event loop.
type EditorConfig struct {
	Margin          int           `mapstructure:"margin" yaml:"margin"`
	LineNumberWidth int           `mapstructure:"line_number_width" yaml:"line_number_width"`
	PollInterval    time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`
}

// KeymapConfig binds commands to keys. An empty binding disables the command.
type KeymapConfig struct {
	Save string `mapstructure:"save" yaml:"save"`
	Quit string `mapstructure:"quit" yaml:"quit"`
}

// ColorsConfig overrides individual theme colors with names or #rrggbb.
type ColorsConfig struct {
	Text    string `mapstructure:"text" yaml:"text,omitempty"`
	Gutter  string `mapstructure:"gutter" yaml:"gutter,omitempty"`
	Message string `mapstructure:"message" yaml:"message,omitempty"`
}

// LogConfig mirrors logs.Options.
type LogConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	File    string `mapstructure:"file" yaml:"file,omitempty"`
	Level   string `mapstructure:"level" yaml:"level"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			Margin:          2,
			LineNumberWidth: 5,
			PollInterval:    10 * time.Millisecond,
		},
		Keymap: KeymapConfig{Save: "Ctrl+S", Quit: "Ctrl+Q"},
		Theme:  "dark",
		Log:    LogConfig{Level: "info"},
	}
}

func applyDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("editor.margin", d.Editor.Margin)
	v.SetDefault("editor.line_number_width", d.Editor.LineNumberWidth)
	v.SetDefault("editor.poll_interval", d.Editor.PollInterval.String())
	v.SetDefault("keymap.save", d.Keymap.Save)
	v.SetDefault("keymap.quit", d.Keymap.Quit)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("colors.text", "")
	v.SetDefault("colors.gutter", "")
	v.SetDefault("colors.message", "")
	v.SetDefault("log.enabled", d.Log.Enabled)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
}

// Load reads configuration from path, or from config.yaml in
// $HOME/.config/kat and the working directory when path is empty. A missing
// default file yields defaults; a missing explicit file is an error.
// KAT_* environment variables override both, e.g. KAT_EDITOR_MARGIN.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.config/kat")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("KAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges, names and keybinding syntax.
func Validate(cfg *Config) error {
	if cfg.Editor.Margin < 0 {
		return fmt.Errorf("editor.margin must be >= 0, got %d", cfg.Editor.Margin)
	}
	if cfg.Editor.LineNumberWidth < 1 || cfg.Editor.LineNumberWidth > 12 {
		return fmt.Errorf("editor.line_number_width must be between 1 and 12, got %d", cfg.Editor.LineNumberWidth)
	}
	if cfg.Editor.PollInterval < time.Millisecond || cfg.Editor.PollInterval > time.Second {
		return fmt.Errorf("editor.poll_interval must be between 1ms and 1s, got %v", cfg.Editor.PollInterval)
	}
	if _, ok := BuiltinThemes[cfg.Theme]; !ok {
		return fmt.Errorf("theme must be one of: %v, got %s", themeNames(), cfg.Theme)
	}
	for name, c := range map[string]string{
		"colors.text":    cfg.Colors.Text,
		"colors.gutter":  cfg.Colors.Gutter,
		"colors.message": cfg.Colors.Message,
	} {
		if !validColor(c) {
			return fmt.Errorf("%s: unknown color %q", name, c)
		}
	}
	if _, err := cfg.Keybindings(); err != nil {
		return err
	}
	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %s", cfg.Log.Level)
	}
	return nil
}

// Keybindings parses the keymap. Unbound commands are omitted.
func (c *Config) Keybindings() (map[string]Keybinding, error) {
	out := make(map[string]Keybinding)
	for name, s := range map[string]string{"save": c.Keymap.Save, "quit": c.Keymap.Quit} {
		if strings.TrimSpace(s) == "" {
			continue
		}
		kb, err := ParseKeybinding(s)
		if err != nil {
			return nil, fmt.Errorf("keymap.%s: %w", name, err)
		}
		out[name] = kb
	}
	return out, nil
}

// ResolveTheme returns the named preset with color overrides applied.
func (c *Config) ResolveTheme() Theme {
	t, ok := BuiltinThemes[c.Theme]
	if !ok {
		t = DefaultTheme()
	}
	t.Text = ParseColor(c.Colors.Text, t.Text)
	t.Gutter = ParseColor(c.Colors.Gutter, t.Gutter)
	t.Message = ParseColor(c.Colors.Message, t.Message)
	return t
}

// MarshalYAML writes the poll interval as a duration string.
func (e EditorConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Margin          int    `yaml:"margin"`
		LineNumberWidth int    `yaml:"line_number_width"`
		PollInterval    string `yaml:"poll_interval"`
	}{e.Margin, e.LineNumberWidth, e.PollInterval.String()}, nil
}

// Dump renders cfg as YAML in the same shape Load reads.
func Dump(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func themeNames() []string {
	return []string{"dark", "light", "terminal"}
}

// Keybinding represents a single key combination.
type Keybinding struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// ErrInvalidKeybinding is returned for unparseable key descriptions.
var ErrInvalidKeybinding = errors.New("invalid keybinding")

// reserved letters whose Ctrl form terminals report as an editing key.
var reserved = map[rune]string{
	'h': "Backspace",
	'i': "Tab",
	'm': "Enter",
}

// ParseKeybinding converts a textual key description like "Ctrl+S" or "Esc"
// into a Keybinding.
func ParseKeybinding(s string) (Keybinding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "esc", "escape":
		return Keybinding{Key: tcell.KeyEscape}, nil
	}
	parts := strings.Split(s, "+")
	if len(parts) != 2 {
		return Keybinding{}, fmt.Errorf("%w: %s", ErrInvalidKeybinding, s)
	}
	if !strings.EqualFold(strings.TrimSpace(parts[0]), "ctrl") {
		return Keybinding{}, fmt.Errorf("%w: bad modifier in %s", ErrInvalidKeybinding, s)
	}
	r := []rune(strings.ToLower(strings.TrimSpace(parts[1])))
	if len(r) != 1 || r[0] < 'a' || r[0] > 'z' {
		return Keybinding{}, fmt.Errorf("%w: bad key in %s", ErrInvalidKeybinding, s)
	}
	if k, ok := reserved[r[0]]; ok {
		return Keybinding{}, fmt.Errorf("%w: %s is indistinguishable from %s", ErrInvalidKeybinding, s, k)
	}
	return Keybinding{Key: tcell.KeyRune, Rune: r[0], Mod: tcell.ModCtrl}, nil
}

var ctrlMap = map[rune]tcell.Key{
	'a': tcell.KeyCtrlA,
	'b': tcell.KeyCtrlB,
	'c': tcell.KeyCtrlC,
	'd': tcell.KeyCtrlD,
	'e': tcell.KeyCtrlE,
	'f': tcell.KeyCtrlF,
	'g': tcell.KeyCtrlG,
	'j': tcell.KeyCtrlJ,
	'k': tcell.KeyCtrlK,
	'l': tcell.KeyCtrlL,
	'n': tcell.KeyCtrlN,
	'o': tcell.KeyCtrlO,
	'p': tcell.KeyCtrlP,
	'q': tcell.KeyCtrlQ,
	'r': tcell.KeyCtrlR,
	's': tcell.KeyCtrlS,
	't': tcell.KeyCtrlT,
	'u': tcell.KeyCtrlU,
	'v': tcell.KeyCtrlV,
	'w': tcell.KeyCtrlW,
	'x': tcell.KeyCtrlX,
	'y': tcell.KeyCtrlY,
	'z': tcell.KeyCtrlZ,
}

// Matches returns true if the binding matches the provided event.
func (k Keybinding) Matches(ev *tcell.EventKey) bool {
	if k.Key != tcell.KeyRune {
		return k.Key == ev.Key()
	}
	if k.Rune == ev.Rune() && k.Mod == ev.Modifiers() && ev.Key() == tcell.KeyRune {
		return true
	}
	if k.Mod == tcell.ModCtrl {
		if ctrlKey, ok := ctrlMap[k.Rune]; ok && ev.Key() == ctrlKey {
			return true
		}
	}
	return false
}

func (k Keybinding) String() string {
	if k.Key == tcell.KeyEscape {
		return "Esc"
	}
	return "Ctrl+" + strings.ToUpper(string(k.Rune))
}
