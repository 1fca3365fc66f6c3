package main

import (
	"fmt"
	"os"

	"example.com/kat/internal/app"
	"example.com/kat/pkg/config"
	"example.com/kat/pkg/logs"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

// Version info (set by ldflags)
var version = "dev"

type rootOptions struct {
	configPath  string
	debug       bool
	logFile     string
	printConfig bool

	// screen replaces the terminal in tests.
	screen tcell.Screen
}

func main() {
	if err := newRootCmd(&rootOptions{}).Execute(); err != nil {
		// Error already printed by cobra
		os.Exit(1)
	}
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kat [file]",
		Short: "A small terminal text editor",
		Long: `kat edits one text file in the terminal.

Arrows move the cursor (Ctrl jumps by word), Home/End go to the line ends,
Backspace and Ctrl+Backspace delete, Ctrl+S saves and Escape exits.
A file that does not exist yet is created on the first save.`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd, opts, path)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file path (default ~/.config/kat/config.yaml)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file (implies logging)")
	cmd.Flags().BoolVar(&opts.printConfig, "print-config", false, "print the effective configuration and exit")
	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions, path string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.debug {
		cfg.Log.Enabled = true
		cfg.Log.Level = "debug"
	}
	if opts.logFile != "" {
		cfg.Log.Enabled = true
		cfg.Log.File = opts.logFile
	}

	if opts.printConfig {
		out, err := config.Dump(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}

	logger := logs.New(logs.Options{
		Enabled: cfg.Log.Enabled,
		File:    cfg.Log.File,
		Level:   cfg.Log.Level,
	}.WithEnv())
	defer logger.Close()
	logger.Debug("kat starting", "version", version, "config", opts.configPath, "file", path)

	r, err := app.NewFromConfig(cfg, logger)
	if err != nil {
		return err
	}
	if err := r.LoadFile(path); err != nil {
		return err
	}
	r.Screen = opts.screen
	return r.Run()
}
