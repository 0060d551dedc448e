package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/d2verb/mcpi/internal/minecraft"
	"github.com/d2verb/mcpi/internal/ui"
)

type EventsCmd struct {
	Clear    bool          `help:"Discard pending events instead of printing them"`
	Follow   bool          `short:"f" help:"Keep polling until interrupted"`
	Interval time.Duration `default:"1s" help:"Poll interval with --follow"`
}

func (c *EventsCmd) Run(g *Globals) error {
	return withGame(g, func(mc *minecraft.Minecraft) error {
		if c.Clear {
			if err := mc.Events.ClearAll(); err != nil {
				return err
			}
			ui.PrintSuccess("Events cleared.")
			return nil
		}
		if !c.Follow {
			events, err := pollEvents(mc.Events)
			if err != nil {
				return err
			}
			ui.PrintEvents(events)
			return nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return followEvents(ctx, mc.Events, c.Interval)
	})
}

// pollEvents drains the three event queues in block, chat, projectile order.
func pollEvents(ev *minecraft.Events) ([]ui.EventInfo, error) {
	var events []ui.EventInfo

	blocks, err := ev.PollBlockHits()
	if err != nil {
		return nil, err
	}
	for _, e := range blocks {
		events = append(events, ui.EventInfo{Kind: "block", Detail: e.String()})
	}

	chats, err := ev.PollChatPosts()
	if err != nil {
		return nil, err
	}
	for _, e := range chats {
		events = append(events, ui.EventInfo{Kind: "chat", Detail: e.String()})
	}

	projectiles, err := ev.PollProjectileHits()
	if err != nil {
		return nil, err
	}
	for _, e := range projectiles {
		events = append(events, ui.EventInfo{Kind: "projectile", Detail: e.String()})
	}
	return events, nil
}

// followEvents polls every interval and prints new events until ctx is done.
func followEvents(ctx context.Context, ev *minecraft.Events, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ui.PrintInfo("Waiting for events (Ctrl-C to stop)...")
	for {
		events, err := pollEvents(ev)
		if err != nil {
			return err
		}
		if len(events) > 0 {
			ui.PrintEvents(events)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
