package main

import (
	"fmt"

	"github.com/d2verb/mcpi/internal/ui"
)

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Fprintf(ui.Output, "mcpi version %s (%s)\n", version, commit)
	return nil
}
