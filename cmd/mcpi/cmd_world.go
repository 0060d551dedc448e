package main

import (
	"fmt"
	"strings"

	"github.com/d2verb/mcpi/internal/minecraft"
	"github.com/d2verb/mcpi/internal/ui"
	"github.com/d2verb/mcpi/internal/vec3"
)

type HeightCmd struct {
	X int `arg:"" optional:"" help:"X coordinate"`
	Z int `arg:"" optional:"" help:"Z coordinate"`

	Here bool `help:"Use the column the player stands in"`
}

func (c *HeightCmd) Run(g *Globals) error {
	return withGame(g, func(mc *minecraft.Minecraft) error {
		x, z := c.X, c.Z
		if c.Here {
			pos, err := mc.Player.Pos()
			if err != nil {
				return err
			}
			tile := vec3.ToInt(pos)
			x, z = tile.X, tile.Z
		}
		h, err := mc.GetHeight(x, z)
		if err != nil {
			return err
		}
		ui.PrintValue("Height", h)
		return nil
	})
}

type CheckpointCmd struct {
	Save    CheckpointSaveCmd    `cmd:"" help:"Save a checkpoint of the world"`
	Restore CheckpointRestoreCmd `cmd:"" help:"Restore the saved checkpoint"`
}

type CheckpointSaveCmd struct{}

func (c *CheckpointSaveCmd) Run(g *Globals) error {
	return withGame(g, func(mc *minecraft.Minecraft) error {
		if err := mc.SaveCheckpoint(); err != nil {
			return err
		}
		ui.PrintSuccess("Checkpoint saved.")
		return nil
	})
}

type CheckpointRestoreCmd struct {
	Yes bool `short:"y" help:"Skip confirmation prompt"`
}

func (c *CheckpointRestoreCmd) Run(g *Globals) error {
	if !c.Yes && !promptConfirm("Restore the world to the last checkpoint?") {
		fmt.Fprintln(ui.Output, "Cancelled.")
		return nil
	}
	return withGame(g, func(mc *minecraft.Minecraft) error {
		if err := mc.RestoreCheckpoint(); err != nil {
			return err
		}
		ui.PrintSuccess("Checkpoint restored.")
		return nil
	})
}

type CommandCmd struct {
	AsPlayer bool     `help:"Run as the player instead of the server console"`
	Line     []string `arg:"" help:"Command line to run"`
}

func (c *CommandCmd) Run(g *Globals) error {
	line := strings.Join(c.Line, " ")
	return withGame(g, func(mc *minecraft.Minecraft) error {
		var (
			ok  bool
			err error
		)
		if c.AsPlayer {
			ok, err = mc.Player.PerformCommand(line)
		} else {
			ok, err = mc.PerformCommand(line)
		}
		if err != nil {
			return err
		}
		if !ok {
			ui.PrintWarning(fmt.Sprintf("Command '%s' did not succeed.", line))
			return nil
		}
		ui.PrintSuccess("Command succeeded.")
		return nil
	})
}
