package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/d2verb/mcpi/internal/config"
	"github.com/d2verb/mcpi/internal/ui"
)

type ConfigCmd struct {
	Show ConfigShowCmd `cmd:"" default:"1" help:"Show the effective configuration"`
	Init ConfigInitCmd `cmd:"" help:"Write a config file with the defaults"`
	Edit ConfigEditCmd `cmd:"" help:"Open the config file in $EDITOR"`
}

type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(g *Globals) error {
	cfg, paths, err := loadConfig(g)
	if err != nil {
		return err
	}
	lc, err := cfg.LogFile(paths)
	if err != nil {
		return err
	}
	ui.PrintConfig(ui.ConfigDetails{
		Path:           configPath(g, paths),
		Address:        cfg.Address(),
		Player:         cfg.Player,
		ConnectTimeout: time.Duration(cfg.ConnectTimeout).String(),
		ReadTimeout:    time.Duration(cfg.ReadTimeout).String(),
		LogPath:        lc.Path,
		Debug:          cfg.Debug,
	})
	return nil
}

type ConfigInitCmd struct {
	Force bool `help:"Overwrite an existing config file"`
}

func (c *ConfigInitCmd) Run(g *Globals) error {
	paths, err := getPaths()
	if err != nil {
		return err
	}
	path := configPath(g, paths)

	if _, err := os.Stat(path); err == nil && !c.Force {
		return fmt.Errorf("config file already exists: %s\nHint: use --force to overwrite", path)
	}
	if err := paths.EnsureDirectories(); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	if err := config.Default().Save(path); err != nil {
		return err
	}
	ui.PrintSuccess(fmt.Sprintf("Wrote %s", path))
	return nil
}

type ConfigEditCmd struct{}

func (c *ConfigEditCmd) Run(g *Globals) error {
	paths, err := getPaths()
	if err != nil {
		return err
	}
	path := configPath(g, paths)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := config.Default().Save(path); err != nil {
			return err
		}
	}

	ed, err := findEditor(lookupEnv, exec.LookPath)
	if err != nil {
		return err
	}
	if err := runEditor(ed, path); err != nil {
		return err
	}

	// Report mistakes right away rather than on the next game command.
	if _, _, err := loadConfig(g); err != nil {
		return err
	}
	ui.PrintSuccess(fmt.Sprintf("Saved %s", path))
	return nil
}

var fallbackEditors = []string{"nvim", "vim", "vi", "nano"}

// findEditor returns $EDITOR, or the first fallback editor found in PATH.
func findEditor(lookup func(string) (string, bool), lookPath func(string) (string, error)) (string, error) {
	if ed, ok := lookup("EDITOR"); ok && strings.TrimSpace(ed) != "" {
		return ed, nil
	}
	for _, ed := range fallbackEditors {
		if path, err := lookPath(ed); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no editor found: set $EDITOR environment variable")
}

// runEditor opens path in editor, which may carry flags like "code --wait".
func runEditor(editor, path string) error {
	args := strings.Fields(editor)
	if len(args) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run editor %s: %w", editor, err)
	}
	return nil
}
