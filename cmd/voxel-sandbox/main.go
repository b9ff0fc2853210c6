package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/voxel-fighter/config"
	"github.com/lixenwraith/voxel-fighter/engine"
	"github.com/lixenwraith/voxel-fighter/input"
	"github.com/lixenwraith/voxel-fighter/logging"
	"github.com/lixenwraith/voxel-fighter/mapio"
)

type options struct {
	configPath string
	mapPath    string
	savePath   string
	keymapPath string
	seed       int64
	frames     int
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("voxel-sandbox", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "YAML config file overlaid on defaults")
	fs.StringVar(&o.mapPath, "map", "", "Load the voxel map from this file instead of generating one")
	fs.StringVar(&o.savePath, "save", "", "Save the voxel map here on exit and on ctrl+s")
	fs.StringVar(&o.keymapPath, "keymap", "", "YAML keymap overriding default bindings")
	fs.Int64Var(&o.seed, "seed", 0, "Maze seed, 0 keeps the configured seed")
	fs.IntVar(&o.frames, "frames", 0, "Run this many frames headless and print status instead of opening the terminal")
	return o, fs.Parse(args)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "voxel-sandbox: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.mapPath != "" {
		cfg.World.MapFile = opts.mapPath
	}
	if opts.seed != 0 {
		cfg.World.Maze.Seed = opts.seed
	}

	runID := uuid.NewString()
	log, err := logging.New(cfg.Log, runID)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	log.Info("sandbox starting", zap.Int("tick_rate", cfg.TickRate), zap.String("generator", cfg.World.Generator))

	m, spawn, err := buildMap(cfg, log)
	if err != nil {
		return err
	}
	sb := buildSandbox(cfg, m, spawn, log)
	loop := engine.NewLoop(sb.world, cfg.Tick())

	if opts.frames > 0 {
		err = runHeadless(loop, sb, opts.frames, out)
	} else {
		keys := input.DefaultKeyTable()
		if opts.keymapPath != "" {
			data, err := os.ReadFile(opts.keymapPath)
			if err != nil {
				return fmt.Errorf("keymap %s: %w", opts.keymapPath, err)
			}
			override, err := input.LoadKeyConfig(data)
			if err != nil {
				return fmt.Errorf("keymap %s: %w", opts.keymapPath, err)
			}
			keys = input.MergeKeyTable(keys, override)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = runTerminal(ctx, loop, sb, keys, opts.savePath)
	}

	if opts.savePath != "" {
		if serr := mapio.SaveFile(opts.savePath, sb.voxelMap()); serr != nil {
			log.Error("map save failed", zap.String("path", opts.savePath), zap.Error(serr))
			err = errors.Join(err, serr)
		} else {
			log.Info("map saved", zap.String("path", opts.savePath))
		}
	}
	log.Info("sandbox stopped", zap.Int64("frames", sb.world.Resources.Time.FrameNumber), zap.Error(err))
	return err
}

// runHeadless steps a fixed number of frames and prints the status snapshot
func runHeadless(loop *engine.Loop, sb *sandbox, frames int, out io.Writer) error {
	for range frames {
		loop.Step(sb.tick)
	}
	for _, e := range sb.world.Resources.Status.Snapshot() {
		if _, err := fmt.Fprintf(out, "%s=%s\n", e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}
