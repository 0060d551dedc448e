package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/go-metrics"

	"github.com/d2verb/mcpi/internal/config"
	"github.com/d2verb/mcpi/internal/logging"
	"github.com/d2verb/mcpi/internal/minecraft"
	"github.com/d2verb/mcpi/internal/ui"
)

// lookupEnv reads environment overrides. Can be replaced for testing.
var lookupEnv = os.LookupEnv

func getPaths() (*config.Paths, error) {
	paths, err := config.GetPaths()
	if err != nil {
		return nil, fmt.Errorf("get paths: %w", err)
	}
	return paths, nil
}

// configPath returns the config file named by --config or the default one.
func configPath(g *Globals, paths *config.Paths) string {
	if g.Config != "" {
		return g.Config
	}
	return paths.Config
}

// loadConfig layers defaults, the config file, environment overrides and
// flags, then validates the result.
func loadConfig(g *Globals) (config.Config, *config.Paths, error) {
	paths, err := getPaths()
	if err != nil {
		return config.Config{}, nil, err
	}
	path := configPath(g, paths)

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, paths, errInvalidConfig(path, err)
	}
	cfg.ApplyEnv(lookupEnv)

	if g.Host != "" {
		cfg.Host = g.Host
	}
	if g.Port != 0 {
		cfg.Port = g.Port
	}
	if g.Player != "" {
		cfg.Player = g.Player
	}
	if g.Debug {
		cfg.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return cfg, paths, errInvalidConfig(path, err)
	}
	return cfg, paths, nil
}

// session is one connected CLI invocation.
type session struct {
	mc     *minecraft.Minecraft
	logger *slog.Logger

	sink    *metrics.InmemSink
	logFile io.Closer
}

// connect loads the configuration, opens the log and dials the game.
func connect(ctx context.Context, g *Globals) (*session, error) {
	cfg, paths, err := loadConfig(g)
	if err != nil {
		return nil, err
	}

	level, _ := cfg.LogLevel()
	lc, err := cfg.LogFile(paths)
	if err != nil {
		return nil, err
	}
	logger, logFile, err := logging.Open(lc, level, g.Debug)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	s := &session{logger: logger, logFile: logFile}
	cc := cfg.Connection()
	cc.Logger = logger
	if g.Stats {
		s.sink = metrics.NewInmemSink(time.Minute, time.Minute)
		cc.MetricSink = s.sink
	}

	mc, err := minecraft.Dial(ctx, cc, cfg.Player)
	if err != nil {
		logFile.Close()
		return nil, err
	}
	s.mc = mc
	return s, nil
}

// Close closes the connection, prints collected stats and flushes the log.
func (s *session) Close() {
	if s.mc != nil {
		s.mc.Close()
	}
	if s.sink != nil {
		ui.PrintStats(collectStats(s.sink))
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// withGame runs fn against a freshly connected game.
func withGame(g *Globals, fn func(mc *minecraft.Minecraft) error) error {
	s, err := connect(context.Background(), g)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := fn(s.mc); err != nil {
		s.logger.Error("command failed", "error", err)
		return err
	}
	return nil
}

// collectStats flattens counters and samples from every interval, summed by
// metric name.
func collectStats(sink *metrics.InmemSink) []ui.StatSample {
	byName := make(map[string]*ui.StatSample)
	add := func(values map[string]metrics.SampledValue) {
		for _, sv := range values {
			s, ok := byName[sv.Name]
			if !ok {
				s = &ui.StatSample{Name: sv.Name}
				byName[sv.Name] = s
			}
			s.Count += sv.Count
			s.Sum += sv.Sum
		}
	}
	for _, interval := range sink.Data() {
		add(interval.Counters)
		add(interval.Samples)
	}

	samples := make([]ui.StatSample, 0, len(byName))
	for _, s := range byName {
		samples = append(samples, *s)
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].Name < samples[j].Name })
	return samples
}

// stdin is the input source for prompts and the shell. Can be replaced for
// testing.
var stdin io.Reader = os.Stdin

// promptConfirm prompts the user for a yes/no confirmation.
// Returns true only if user enters "y" or "Y".
func promptConfirm(message string) bool {
	fmt.Fprintf(ui.Output, "%s (y/N): ", message)
	input, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && input == "" {
		return false
	}
	input = strings.TrimSpace(input)
	return input == "y" || input == "Y"
}
