package main

import (
	"fmt"

	"github.com/d2verb/mcpi/internal/minecraft"
	"github.com/d2verb/mcpi/internal/ui"
	"github.com/d2verb/mcpi/internal/vec3"
)

type PlayersCmd struct{}

func (c *PlayersCmd) Run(g *Globals) error {
	return withGame(g, func(mc *minecraft.Minecraft) error {
		players, err := mc.GetPlayers()
		if err != nil {
			return err
		}
		infos := make([]ui.PlayerInfo, len(players))
		for i, p := range players {
			infos[i] = ui.PlayerInfo{Name: p.Name, EntityID: p.EntityID}
		}
		ui.PrintPlayerList(infos)
		return nil
	})
}

type PosCmd struct {
	Tile bool `short:"t" help:"Show the tile the player stands on instead of the exact position"`
}

func (c *PosCmd) Run(g *Globals) error {
	return withGame(g, func(mc *minecraft.Minecraft) error {
		if c.Tile {
			p, err := mc.Player.TilePos()
			if err != nil {
				return err
			}
			ui.PrintVec("Tile", p.X, p.Y, p.Z)
			return nil
		}
		p, err := mc.Player.Pos()
		if err != nil {
			return err
		}
		ui.PrintVec("Position", p.X, p.Y, p.Z)
		return nil
	})
}

type TpCmd struct {
	X float64 `arg:"" help:"X coordinate"`
	Y float64 `arg:"" help:"Y coordinate"`
	Z float64 `arg:"" help:"Z coordinate"`
}

func (c *TpCmd) Run(g *Globals) error {
	return withGame(g, func(mc *minecraft.Minecraft) error {
		if err := mc.Player.SetPos(vec3.Of(c.X, c.Y, c.Z)); err != nil {
			return err
		}
		ui.PrintSuccess(fmt.Sprintf("Teleported to %v.", vec3.Of(c.X, c.Y, c.Z)))
		return nil
	})
}

type EntitiesCmd struct {
	X float64 `arg:"" optional:"" help:"X coordinate (default: player position)"`
	Y float64 `arg:"" optional:"" help:"Y coordinate"`
	Z float64 `arg:"" optional:"" help:"Z coordinate"`

	Here bool `help:"Search around the player instead of the given position"`
}

func (c *EntitiesCmd) Run(g *Globals) error {
	return withGame(g, func(mc *minecraft.Minecraft) error {
		pos := vec3.Of(c.X, c.Y, c.Z)
		if c.Here {
			p, err := mc.Player.Pos()
			if err != nil {
				return err
			}
			pos = p
		}
		entities, err := mc.GetNearbyEntities(pos)
		if err != nil {
			return err
		}
		items := make([]string, len(entities))
		for i, e := range entities {
			items[i] = e.String()
		}
		ui.PrintList("Entities", "No entities nearby.", items)
		return nil
	})
}

type SettingCmd struct {
	Key     string `arg:"" enum:"world_immutable,nametags_visible" help:"Setting name (world_immutable, nametags_visible)"`
	Enabled bool   `arg:"" help:"true or false"`
}

func (c *SettingCmd) Run(g *Globals) error {
	return withGame(g, func(mc *minecraft.Minecraft) error {
		if err := mc.Setting(c.Key, c.Enabled); err != nil {
			return err
		}
		ui.PrintSuccess(fmt.Sprintf("Set %s to %t.", c.Key, c.Enabled))
		return nil
	})
}
