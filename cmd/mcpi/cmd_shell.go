package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/d2verb/mcpi/internal/connection"
	"github.com/d2verb/mcpi/internal/minecraft"
	"github.com/d2verb/mcpi/internal/ui"
)

type ShellCmd struct{}

func (c *ShellCmd) Run(g *Globals) error {
	return withGame(g, func(mc *minecraft.Minecraft) error {
		return runShell(mc.Conn(), interactive())
	})
}

// interactive reports whether stdin is a terminal.
func interactive() bool {
	f, ok := stdin.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// runShell sends one command per input line and prints each reply. A
// rejected request is reported and the shell goes on; a transport failure
// ends it.
func runShell(conn *connection.Connection, prompt bool) error {
	scanner := bufio.NewScanner(stdin)
	for {
		if prompt {
			fmt.Fprint(ui.Output, ui.Cyan("mcpi> "))
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		command, args, err := parseShellLine(line)
		if err != nil {
			ui.PrintError(err.Error())
			continue
		}
		reply, err := conn.SendReceive(command, stringArgs(args)...)
		if err != nil {
			var re *connection.RequestError
			if errors.As(err, &re) {
				ui.PrintError(re.Error())
				continue
			}
			return err
		}
		ui.PrintReply(reply)
	}
}

// parseShellLine accepts either the wire form "cmd(a,b)" or a space
// separated "cmd a b".
func parseShellLine(line string) (command string, args []string, err error) {
	if open := strings.IndexByte(line, '('); open >= 0 {
		if !strings.HasSuffix(line, ")") {
			return "", nil, fmt.Errorf("missing ')' in %q", line)
		}
		command = strings.TrimSpace(line[:open])
		inner := line[open+1 : len(line)-1]
		if inner != "" {
			args = strings.Split(inner, ",")
		}
	} else {
		fields := strings.Fields(line)
		command, args = fields[0], fields[1:]
	}
	if command == "" {
		return "", nil, fmt.Errorf("missing command name in %q", line)
	}
	return command, args, nil
}
