// Package ui provides formatted output utilities for the CLI.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Color functions for consistent styling.
var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Blue   = color.New(color.FgBlue).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()
)

// Output is the destination for UI output.
// Defaults to os.Stdout but can be overridden for testing.
var Output io.Writer = os.Stdout

// FormatReply renders a raw reply line, marking the empty payload so it is
// visible in a terminal.
func FormatReply(raw string) string {
	if raw == "" {
		return Dim("(empty)")
	}
	return raw
}

// PrintReply prints a raw reply line.
func PrintReply(raw string) {
	fmt.Fprintln(Output, FormatReply(raw))
}

// PrintValue prints a labelled value.
func PrintValue(label string, value any) {
	fmt.Fprintf(Output, "%s %v\n", Bold(label+":"), value)
}

// PrintVec prints a labelled coordinate triple.
func PrintVec(label string, x, y, z any) {
	fmt.Fprintf(Output, "%s %s %s %s\n", Bold(label+":"),
		Cyan(fmt.Sprint(x)), Cyan(fmt.Sprint(y)), Cyan(fmt.Sprint(z)))
}

// PrintBool prints a boolean reply as a colored yes/no.
func PrintBool(label string, v bool) {
	if v {
		fmt.Fprintf(Output, "%s %s\n", Bold(label+":"), Green("yes"))
		return
	}
	fmt.Fprintf(Output, "%s %s\n", Bold(label+":"), Red("no"))
}

// PrintList prints a titled list, or empty when there are no items.
func PrintList(title, empty string, items []string) {
	if len(items) == 0 {
		fmt.Fprintln(Output, empty)
		return
	}
	fmt.Fprintln(Output, Bold(title+":"))
	for _, item := range items {
		fmt.Fprintf(Output, "  %s\n", item)
	}
}

// PlayerInfo represents a connected player for display.
type PlayerInfo struct {
	Name     string
	EntityID string
}

// PrintPlayerList prints connected players with their entity ids.
func PrintPlayerList(players []PlayerInfo) {
	if len(players) == 0 {
		fmt.Fprintln(Output, "No players connected.")
		return
	}
	fmt.Fprintln(Output, Bold("Players:"))
	for _, p := range players {
		fmt.Fprintf(Output, "  %s %s\n", Cyan(p.Name), Dim("#"+p.EntityID))
	}
}

// EventInfo is one polled event for display.
type EventInfo struct {
	Kind   string
	Detail string
}

// PrintEvents prints polled events grouped in arrival order.
func PrintEvents(events []EventInfo) {
	if len(events) == 0 {
		fmt.Fprintln(Output, "No new events.")
		return
	}
	for _, e := range events {
		fmt.Fprintf(Output, "%s %s\n", Yellow(fmt.Sprintf("[%s]", e.Kind)), e.Detail)
	}
}

// ConfigDetails contains the effective configuration for display.
type ConfigDetails struct {
	Path           string
	Address        string
	Player         string
	ConnectTimeout string
	ReadTimeout    string
	LogPath        string
	Debug          bool
}

// PrintConfig prints the effective configuration.
func PrintConfig(c ConfigDetails) {
	fmt.Fprintf(Output, "%s %s\n", Bold("Config:"), c.Path)
	fmt.Fprintf(Output, "%s %s\n", Bold("Address:"), Blue(c.Address))
	if c.Player != "" {
		fmt.Fprintf(Output, "%s %s\n", Bold("Player:"), Cyan(c.Player))
	}
	fmt.Fprintf(Output, "%s %s\n", Bold("Connect Timeout:"), c.ConnectTimeout)
	fmt.Fprintf(Output, "%s %s\n", Bold("Read Timeout:"), c.ReadTimeout)
	fmt.Fprintf(Output, "%s %s\n", Bold("Logs:"), c.LogPath)
	if c.Debug {
		fmt.Fprintf(Output, "%s %s\n", Bold("Debug:"), Yellow("on"))
	}
}

// StatSample is one metric line for display.
type StatSample struct {
	Name  string
	Count int
	Sum   float64
}

// PrintStats prints collected transport metrics.
func PrintStats(samples []StatSample) {
	if len(samples) == 0 {
		return
	}
	fmt.Fprintln(Output, Dim(strings.Repeat("─", 40)))
	for _, s := range samples {
		fmt.Fprintf(Output, "%s %s\n", Dim(s.Name), fmt.Sprintf("count=%d sum=%g", s.Count, s.Sum))
	}
}

// PrintSuccess prints a success message with green checkmark.
func PrintSuccess(message string) {
	fmt.Fprintf(Output, "%s %s\n", Green("✓"), message)
}

// PrintError prints an error message with red X.
func PrintError(message string) {
	fmt.Fprintf(Output, "%s %s\n", Red("✗"), message)
}

// PrintWarning prints a warning message with yellow exclamation.
func PrintWarning(message string) {
	fmt.Fprintf(Output, "%s %s\n", Yellow("⚠"), message)
}

// PrintInfo prints an info message with blue dot.
func PrintInfo(message string) {
	fmt.Fprintf(Output, "%s %s\n", Blue("•"), message)
}
