package main

import (
	"bufio"
	"bytes"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/hashicorp/go-metrics"

	"github.com/d2verb/mcpi/internal/ui"
)

// fakeGame answers requests by full line first, then by command name, and
// records every request line.
type fakeGame struct {
	mu       sync.Mutex
	replies  map[string]string
	requests []string
	port     int
}

func (g *fakeGame) reply(req string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.requests = append(g.requests, req)
	if r, ok := g.replies[req]; ok {
		return r
	}
	name, _, _ := strings.Cut(req, "(")
	return g.replies[name]
}

func (g *fakeGame) seen() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.requests...)
}

// startGame serves replies on a loopback port until the test ends.
func startGame(t *testing.T, replies map[string]string) *fakeGame {
	t.Helper()

	game := &fakeGame{replies: replies}
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { listener.Close() })
	game.port = listener.Addr().(*net.TCPAddr).Port

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go func() {
				defer conn.Close()
				scanner := bufio.NewScanner(conn)
				for scanner.Scan() {
					if _, err := conn.Write([]byte(game.reply(scanner.Text()) + "\n")); err != nil {
						return
					}
				}
			}()
		}
	}()
	return game
}

// setupCLI isolates HOME and the environment and captures UI output.
func setupCLI(t *testing.T) *bytes.Buffer {
	t.Helper()

	t.Setenv("HOME", t.TempDir())

	origLookup := lookupEnv
	lookupEnv = func(string) (string, bool) { return "", false }
	t.Cleanup(func() { lookupEnv = origLookup })

	origNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = origNoColor })

	var buf bytes.Buffer
	origOutput := ui.Output
	ui.Output = &buf
	t.Cleanup(func() { ui.Output = origOutput })

	return &buf
}

func setStdin(t *testing.T, input string) {
	t.Helper()
	orig := stdin
	stdin = strings.NewReader(input)
	t.Cleanup(func() { stdin = orig })
}

func globalsFor(game *fakeGame) *Globals {
	return &Globals{Host: "127.0.0.1", Port: game.port}
}

func TestLoadConfigLayering(t *testing.T) {
	setupCLI(t)
	lookupEnv = func(key string) (string, bool) {
		switch key {
		case "JRP_API_HOST":
			return "envhost", true
		case "JRP_API_PORT":
			return "5000", true
		}
		return "", false
	}

	cfg, _, err := loadConfig(&Globals{})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Host != "envhost" || cfg.Port != 5000 {
		t.Errorf("env not applied: %s:%d", cfg.Host, cfg.Port)
	}

	cfg, _, err = loadConfig(&Globals{Host: "flaghost", Port: 6000, Player: "steve"})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Host != "flaghost" || cfg.Port != 6000 || cfg.Player != "steve" {
		t.Errorf("flags not applied: %+v", cfg)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	setupCLI(t)

	_, _, err := loadConfig(&Globals{Port: 70000})
	if err == nil {
		t.Fatal("expected error for out of range port")
	}
	exitErr, ok := err.(*ExitError)
	if !ok {
		t.Fatalf("error type = %T, want *ExitError", err)
	}
	if exitErr.Code != exitInvalidConfig {
		t.Errorf("Code = %d, want %d", exitErr.Code, exitInvalidConfig)
	}
}

func TestPromptConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"yes\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			buf := setupCLI(t)
			setStdin(t, tt.input)

			if got := promptConfirm("Sure?"); got != tt.want {
				t.Errorf("promptConfirm() with %q = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(buf.String(), "Sure? (y/N)") {
				t.Errorf("prompt not printed: %q", buf.String())
			}
		})
	}
}

func TestCollectStats(t *testing.T) {
	sink := metrics.NewInmemSink(time.Minute, time.Minute)
	sink.IncrCounter([]string{"mcpi", "requests"}, 1)
	sink.IncrCounter([]string{"mcpi", "requests"}, 2)
	sink.AddSample([]string{"mcpi", "latency"}, 1.5)

	stats := collectStats(sink)

	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, want 2: %+v", len(stats), stats)
	}
	if stats[0].Name != "mcpi.latency" || stats[0].Count != 1 {
		t.Errorf("stats[0] = %+v", stats[0])
	}
	if stats[1].Name != "mcpi.requests" || stats[1].Count != 2 || stats[1].Sum != 3 {
		t.Errorf("stats[1] = %+v", stats[1])
	}
}
