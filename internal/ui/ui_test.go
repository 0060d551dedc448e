package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// capture redirects Output and disables color for the duration of a test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevColor := Output, color.NoColor
	Output = &buf
	color.NoColor = true
	t.Cleanup(func() {
		Output = prevOut
		color.NoColor = prevColor
	})
	return &buf
}

func TestFormatReply(t *testing.T) {
	capture(t)

	if got := FormatReply(""); got != "(empty)" {
		t.Errorf("FormatReply(\"\") = %q, want %q", got, "(empty)")
	}
	if got := FormatReply("STONE"); got != "STONE" {
		t.Errorf("FormatReply(\"STONE\") = %q", got)
	}
}

func TestPrintVec(t *testing.T) {
	buf := capture(t)

	PrintVec("Position", 1.5, 64, -2)

	if got := buf.String(); got != "Position: 1.5 64 -2\n" {
		t.Errorf("PrintVec() = %q", got)
	}
}

func TestPrintBool(t *testing.T) {
	tests := []struct {
		v    bool
		want string
	}{
		{true, "Passable: yes\n"},
		{false, "Passable: no\n"},
	}

	for _, tt := range tests {
		buf := capture(t)
		PrintBool("Passable", tt.v)
		if buf.String() != tt.want {
			t.Errorf("PrintBool(%v) = %q, want %q", tt.v, buf.String(), tt.want)
		}
	}
}

func TestPrintList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		buf := capture(t)
		PrintList("Blocks", "No blocks.", nil)
		if buf.String() != "No blocks.\n" {
			t.Errorf("got %q", buf.String())
		}
	})

	t.Run("items", func(t *testing.T) {
		buf := capture(t)
		PrintList("Blocks", "No blocks.", []string{"STONE", "AIR"})
		want := "Blocks:\n  STONE\n  AIR\n"
		if buf.String() != want {
			t.Errorf("got %q, want %q", buf.String(), want)
		}
	})
}

func TestPrintPlayerList(t *testing.T) {
	buf := capture(t)

	PrintPlayerList([]PlayerInfo{{Name: "steve", EntityID: "1"}})

	output := buf.String()
	if !strings.Contains(output, "Players:") || !strings.Contains(output, "steve #1") {
		t.Errorf("unexpected output %q", output)
	}
}

func TestPrintEvents(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		buf := capture(t)
		PrintEvents(nil)
		if buf.String() != "No new events.\n" {
			t.Errorf("got %q", buf.String())
		}
	})

	t.Run("some", func(t *testing.T) {
		buf := capture(t)
		PrintEvents([]EventInfo{{Kind: "chat", Detail: "steve: hi"}})
		if buf.String() != "[chat] steve: hi\n" {
			t.Errorf("got %q", buf.String())
		}
	})
}

func TestPrintConfig(t *testing.T) {
	buf := capture(t)

	PrintConfig(ConfigDetails{
		Path:           "/home/steve/.mcpi/config.yaml",
		Address:        "localhost:4711",
		ConnectTimeout: "10s",
		ReadTimeout:    "1m0s",
		LogPath:        "/home/steve/.mcpi/logs/mcpi.log",
	})

	output := buf.String()
	for _, want := range []string{"Address: localhost:4711", "Read Timeout: 1m0s", "Logs: /home/steve/.mcpi/logs/mcpi.log"} {
		if !strings.Contains(output, want) {
			t.Errorf("output %q missing %q", output, want)
		}
	}
	if strings.Contains(output, "Player:") {
		t.Errorf("empty player should be omitted: %q", output)
	}
}

func TestPrintMessages(t *testing.T) {
	tests := []struct {
		name  string
		print func(string)
		want  string
	}{
		{"success", PrintSuccess, "✓ done\n"},
		{"error", PrintError, "✗ done\n"},
		{"warning", PrintWarning, "⚠ done\n"},
		{"info", PrintInfo, "• done\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t)
			tt.print("done")
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}
