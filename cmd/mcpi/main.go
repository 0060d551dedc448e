package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"
)

var (
	version = "dev"
	commit  = "none"
)

// Globals are flags shared by every command.
type Globals struct {
	Config string `help:"Config file (default ~/.mcpi/config.yaml)" type:"path" placeholder:"PATH"`
	Host   string `short:"H" help:"Game host, overrides config and JRP_API_HOST"`
	Port   int    `short:"p" help:"Game port, overrides config and JRP_API_PORT"`
	Player string `help:"Player to act as"`
	Debug  bool   `help:"Log every exchange, including drained data, to stderr"`
	Stats  bool   `help:"Print transport metrics after the command"`
}

type CLI struct {
	Globals

	Chat       ChatCmd       `cmd:"" help:"Post a message to the game chat"`
	Block      BlockCmd      `cmd:"" help:"Read and place blocks"`
	Height     HeightCmd     `cmd:"" help:"Show the height of the world at x z"`
	Players    PlayersCmd    `cmd:"" help:"List connected players"`
	Pos        PosCmd        `cmd:"" help:"Show the player's position"`
	Tp         TpCmd         `cmd:"" help:"Teleport the player"`
	Entities   EntitiesCmd   `cmd:"" help:"List entities near a position"`
	Events     EventsCmd     `cmd:"" help:"Poll block hits, chat posts and projectile hits"`
	Setting    SettingCmd    `cmd:"" help:"Turn a world setting on or off"`
	Checkpoint CheckpointCmd `cmd:"" help:"Save or restore the world checkpoint"`
	Command    CommandCmd    `cmd:"" name:"command" help:"Run a server console command"`
	Send       SendCmd       `cmd:"" help:"Send a raw protocol command"`
	Shell      ShellCmd      `cmd:"" help:"Send commands read line by line from stdin"`
	Settings   ConfigCmd     `cmd:"" name:"config" help:"Show or create the config file"`
	Logs       LogsCmd       `cmd:"" help:"Show the client log"`

	Version            VersionCmd                   `cmd:"" help:"Show version"`
	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

func main() {
	var cli CLI
	parser := kong.Must(&cli,
		kong.Name("mcpi"),
		kong.Description("Remote control for a running game over its text socket API"),
		kong.UsageOnError(),
	)

	kongplete.Complete(parser,
		kongplete.WithPredictor("command", newCommandPredictor()),
		kongplete.WithPredictor("decode", newDecodePredictor()),
	)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(&cli.Globals); err != nil {
		os.Exit(report(err))
	}
}

// report prints err and returns the process exit code.
func report(err error) int {
	err = mapError(err)

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintln(os.Stderr, exitErr.Message)
		}
		return exitErr.Code
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return exitError
}
