package main

import (
	"fmt"

	"github.com/d2verb/mcpi/internal/minecraft"
	"github.com/d2verb/mcpi/internal/protocol"
	"github.com/d2verb/mcpi/internal/ui"
)

type SendCmd struct {
	Command string   `arg:"" predictor:"command" help:"Command name, e.g. world.getBlock"`
	Args    []string `arg:"" optional:"" help:"Arguments, sent as given"`

	As      string `enum:"raw,bool,list,int,float,vec3,ivec3" default:"raw" predictor:"decode" help:"Decode the reply as raw, bool, list, int, float, vec3 or ivec3"`
	Sep     string `default:"|" help:"List separator for --as=list"`
	NoReply bool   `help:"Send without waiting for a reply"`
}

func (c *SendCmd) Run(g *Globals) error {
	return withGame(g, func(mc *minecraft.Minecraft) error {
		args := stringArgs(c.Args)
		if c.NoReply {
			if err := mc.Conn().Send(c.Command, args...); err != nil {
				return err
			}
			ui.PrintSuccess(fmt.Sprintf("Sent %s", mc.Conn().LastSent()))
			return nil
		}
		raw, err := mc.Conn().SendReceive(c.Command, args...)
		if err != nil {
			return err
		}
		return printDecoded(raw, c.As, c.Sep)
	})
}

func stringArgs(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

// printDecoded prints raw interpreted according to mode.
func printDecoded(raw, mode, sep string) error {
	switch mode {
	case "", "raw":
		ui.PrintReply(raw)
	case "bool":
		ui.PrintBool("Reply", protocol.ParseBool(raw))
	case "list":
		ui.PrintList("Reply", "(empty list)", protocol.SplitList(raw, sep))
	case "int":
		v, ok := protocol.ParseScalar(raw, protocol.ParseInt)
		if !ok {
			return notDecodable(raw, mode)
		}
		ui.PrintValue("Reply", v)
	case "float":
		v, ok := protocol.ParseScalar(raw, protocol.ParseFloat)
		if !ok {
			return notDecodable(raw, mode)
		}
		ui.PrintValue("Reply", v)
	case "vec3":
		v, ok := protocol.ParseVec3(raw, protocol.ParseFloat)
		if !ok {
			return notDecodable(raw, mode)
		}
		ui.PrintVec("Reply", v.X, v.Y, v.Z)
	case "ivec3":
		v, ok := protocol.ParseVec3(raw, protocol.ParseInt)
		if !ok {
			return notDecodable(raw, mode)
		}
		ui.PrintVec("Reply", v.X, v.Y, v.Z)
	default:
		return fmt.Errorf("unknown decode mode %q", mode)
	}
	return nil
}

func notDecodable(raw, mode string) error {
	return fmt.Errorf("reply %q is not a valid %s: %w", raw, mode, minecraft.ErrNoValue)
}
