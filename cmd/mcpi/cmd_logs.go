package main

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

type LogsCmd struct {
	Follow bool `short:"f" help:"Follow log output in real-time (tail -f)"`
}

func (c *LogsCmd) Run(g *Globals) error {
	path, err := logPath(g)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("log file not found: %s\nHint: run any game command first, e.g. 'mcpi players'", path)
	}

	args := []string{"tail"}
	if c.Follow {
		args = append(args, "-f")
	}
	args = append(args, path)

	tailPath, err := exec.LookPath("tail")
	if err != nil {
		return fmt.Errorf("tail command not found in PATH (install coreutils or similar)")
	}

	// Replace current process with tail
	return syscall.Exec(tailPath, args, os.Environ())
}

// logPath returns the log file the configuration writes to.
func logPath(g *Globals) (string, error) {
	cfg, paths, err := loadConfig(g)
	if err != nil {
		return "", err
	}
	lc, err := cfg.LogFile(paths)
	if err != nil {
		return "", err
	}
	return lc.Path, nil
}
