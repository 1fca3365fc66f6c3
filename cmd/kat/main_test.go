package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, opts *rootOptions, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(opts)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPrintConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("editor:\n  margin: 1\ntheme: light\n"), 0644))

	out, err := execute(t, &rootOptions{}, "--config", cfgPath, "--debug", "--print-config")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "light", got["theme"])
	assert.Equal(t, 1, got["editor"].(map[string]any)["margin"])
	assert.Equal(t, "debug", got["log"].(map[string]any)["level"])
}

func TestVersionFlag(t *testing.T) {
	out, err := execute(t, &rootOptions{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}

func TestBadConfigFails(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("theme: neon\n"), 0644))
	_, err := execute(t, &rootOptions{}, "--config", cfgPath, "--print-config")
	assert.Error(t, err)
}

func TestTooManyArgs(t *testing.T) {
	_, err := execute(t, &rootOptions{}, "a.txt", "b.txt")
	assert.Error(t, err)
}

func TestUnreadableFileFails(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, nil, 0644))
	_, err := execute(t, &rootOptions{}, "--config", cfgPath, t.TempDir())
	assert.Error(t, err)
}

func TestEditAndSaveNewFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, nil, 0644))
	path := filepath.Join(dir, "new.txt")

	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(80, 24)

	done := make(chan error, 1)
	go func() {
		_, err := execute(t, &rootOptions{screen: s}, "--config", cfgPath, path)
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, s.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone)))
	require.NoError(t, s.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModNone)))
	require.NoError(t, s.PostEvent(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)))
	require.NoError(t, s.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for editor to exit")
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(data))
}
