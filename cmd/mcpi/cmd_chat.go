package main

import (
	"strings"

	"github.com/d2verb/mcpi/internal/minecraft"
	"github.com/d2verb/mcpi/internal/ui"
)

type ChatCmd struct {
	Message []string `arg:"" help:"Message to post"`
}

func (c *ChatCmd) Run(g *Globals) error {
	msg := strings.Join(c.Message, " ")
	return withGame(g, func(mc *minecraft.Minecraft) error {
		if err := mc.PostToChat(msg); err != nil {
			return err
		}
		ui.PrintSuccess("Posted to chat.")
		return nil
	})
}
