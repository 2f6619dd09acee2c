package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"golife/internal/app"
	"golife/internal/config"
	"golife/internal/render"
	"golife/pkg/life"
)

// Output modes, matching the classic CLI contract.
const (
	modeNone   = 0 // no animation
	modeASCII  = 1 // terminal animation
	modeVisual = 2 // graphical animation (ebiten build)
)

// Options holds the command-line parameters for the simulator.
type Options struct {
	Delay time.Duration
	Scale int
	RPS   int

	Random  bool
	Rows    int
	Cols    int
	Rounds  int
	Density float64
	Seed    int64
}

// NewOptions returns an Options populated with sensible defaults.
func NewOptions() *Options {
	return &Options{
		Delay:   100 * time.Millisecond,
		Scale:   4,
		RPS:     10,
		Rows:    64,
		Cols:    64,
		Rounds:  100,
		Density: 0.15,
		Seed:    42,
	}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.DurationVar(&o.Delay, "delay", o.Delay, "delay between ASCII frames")
	fs.IntVar(&o.Scale, "scale", o.Scale, "pixel scale multiplier for graphical mode")
	fs.IntVar(&o.RPS, "rps", o.RPS, "rounds per second in graphical mode")
	fs.BoolVar(&o.Random, "random", o.Random, "start from a random soup instead of a board file")
	fs.IntVar(&o.Rows, "rows", o.Rows, "board rows for -random")
	fs.IntVar(&o.Cols, "cols", o.Cols, "board columns for -random")
	fs.IntVar(&o.Rounds, "rounds", o.Rounds, "rounds to simulate for -random")
	fs.Float64Var(&o.Density, "density", o.Density, "live-cell probability for -random")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "seed for -random")
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] <board-file> <mode>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s -random [flags] <mode>\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "mode: 0 = headless, 1 = ASCII animation, 2 = graphical animation")
	flag.PrintDefaults()
}

func main() {
	opts := NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Usage = usage
	flag.Parse()

	if err := run(opts, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(opts *Options, args []string) error {
	cfg, mode, err := resolveConfig(opts, args)
	if err != nil {
		return err
	}

	world, err := cfg.World()
	if err != nil {
		return err
	}
	engine, err := life.NewEngine(world, cfg.Rounds)
	if err != nil {
		return err
	}

	start := time.Now()
	switch mode {
	case modeNone:
		engine.Run(nil)
	case modeASCII:
		a := render.NewASCII(opts.Delay)
		a.Board(engine.World(), engine.Live(), engine.Round())
		engine.Run(a)
	case modeVisual:
		if err := app.Run(engine, opts.Scale, opts.RPS); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("Total time: %0.3f seconds\n", elapsed.Seconds())
	fmt.Printf("Number of live cells after %d rounds: %d\n", engine.Round(), engine.Live())
	if mode == modeNone && elapsed > 0 && engine.Round() > 0 {
		fmt.Printf("Throughput: %.1f rounds/sec\n", float64(engine.Round())/elapsed.Seconds())
	}
	return nil
}

// resolveConfig turns the positional arguments and flags into a board
// config and an output mode.
func resolveConfig(opts *Options, args []string) (config.Config, int, error) {
	if opts.Random {
		if len(args) != 1 {
			return config.Config{}, 0, errors.Wrap(life.ErrConfig, "with -random, exactly one argument is expected: <mode>")
		}
		if opts.Density < 0 || opts.Density > 1 {
			return config.Config{}, 0, errors.Wrapf(life.ErrConfig, "density must be in [0,1], got %g", opts.Density)
		}
		mode, err := parseMode(args[0])
		if err != nil {
			return config.Config{}, 0, err
		}
		return config.Random(opts.Rows, opts.Cols, opts.Rounds, opts.Density, opts.Seed), mode, nil
	}

	if len(args) != 2 {
		return config.Config{}, 0, errors.Wrap(life.ErrConfig, "expected exactly two arguments: <board-file> <mode>")
	}
	mode, err := parseMode(args[1])
	if err != nil {
		return config.Config{}, 0, err
	}
	cfg, err := config.Load(args[0])
	if err != nil {
		return config.Config{}, 0, err
	}
	return cfg, mode, nil
}

func parseMode(s string) (int, error) {
	mode, err := strconv.Atoi(s)
	if err != nil || mode < modeNone || mode > modeVisual {
		return 0, errors.Wrapf(life.ErrConfig, "mode must be 0, 1, or 2, got %q", s)
	}
	return mode, nil
}
