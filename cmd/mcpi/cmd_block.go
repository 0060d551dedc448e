package main

import (
	"github.com/d2verb/mcpi/internal/minecraft"
	"github.com/d2verb/mcpi/internal/ui"
	"github.com/d2verb/mcpi/internal/vec3"
)

type BlockCmd struct {
	Get      BlockGetCmd      `cmd:"" help:"Show the block at x y z"`
	Set      BlockSetCmd      `cmd:"" help:"Place a block at x y z"`
	Fill     BlockFillCmd     `cmd:"" help:"Fill a cuboid with a block"`
	Passable BlockPassableCmd `cmd:"" help:"Check whether the block at x y z can be walked through"`
	Power    BlockPowerCmd    `cmd:"" help:"Set the power state of the block at x y z"`
}

// Coords is a block position given as three arguments.
type Coords struct {
	X int `arg:"" help:"X coordinate"`
	Y int `arg:"" help:"Y coordinate"`
	Z int `arg:"" help:"Z coordinate"`
}

func (c Coords) Vec() vec3.Vec3[int] {
	return vec3.Of(c.X, c.Y, c.Z)
}

type BlockGetCmd struct {
	Coords
	Data bool `help:"Include block data"`
}

func (c *BlockGetCmd) Run(g *Globals) error {
	return withGame(g, func(mc *minecraft.Minecraft) error {
		if c.Data {
			fields, err := mc.GetBlockWithData(c.Vec())
			if err != nil {
				return err
			}
			ui.PrintList("Block", "No block data.", fields)
			return nil
		}
		block, err := mc.GetBlock(c.Vec())
		if err != nil {
			return err
		}
		ui.PrintValue("Block", ui.FormatReply(block))
		return nil
	})
}

type BlockSetCmd struct {
	Coords
	Block string   `arg:"" help:"Block type or id"`
	Data  []string `arg:"" optional:"" help:"Extra block data values"`
}

func (c *BlockSetCmd) Run(g *Globals) error {
	return withGame(g, func(mc *minecraft.Minecraft) error {
		if err := mc.SetBlock(c.Vec(), c.Block, c.Data); err != nil {
			return err
		}
		ui.PrintSuccess("Block placed.")
		return nil
	})
}

type BlockFillCmd struct {
	X1    int      `arg:"" help:"First corner X"`
	Y1    int      `arg:"" help:"First corner Y"`
	Z1    int      `arg:"" help:"First corner Z"`
	X2    int      `arg:"" help:"Second corner X"`
	Y2    int      `arg:"" help:"Second corner Y"`
	Z2    int      `arg:"" help:"Second corner Z"`
	Block string   `arg:"" help:"Block type or id"`
	Data  []string `arg:"" optional:"" help:"Extra block data values"`
}

func (c *BlockFillCmd) Run(g *Globals) error {
	from := vec3.Of(c.X1, c.Y1, c.Z1)
	to := vec3.Of(c.X2, c.Y2, c.Z2)
	return withGame(g, func(mc *minecraft.Minecraft) error {
		if err := mc.SetBlocks(from, to, c.Block, c.Data); err != nil {
			return err
		}
		ui.PrintSuccess("Cuboid filled.")
		return nil
	})
}

type BlockPassableCmd struct {
	Coords
}

func (c *BlockPassableCmd) Run(g *Globals) error {
	return withGame(g, func(mc *minecraft.Minecraft) error {
		ok, err := mc.IsBlockPassable(c.Vec())
		if err != nil {
			return err
		}
		ui.PrintBool("Passable", ok)
		return nil
	})
}

type BlockPowerCmd struct {
	Coords
	State string `arg:"" optional:"" enum:"on,off,toggle" default:"toggle" help:"on, off or toggle"`
}

func (c *BlockPowerCmd) Run(g *Globals) error {
	state := map[string]minecraft.PoweredState{
		"on":     minecraft.PoweredOn,
		"off":    minecraft.PoweredOff,
		"toggle": minecraft.PoweredToggle,
	}[c.State]
	return withGame(g, func(mc *minecraft.Minecraft) error {
		if err := mc.SetPowered(c.Vec(), state); err != nil {
			return err
		}
		ui.PrintSuccess("Power state set.")
		return nil
	})
}
