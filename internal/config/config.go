package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"golife/internal/core"
	"golife/pkg/life"
)

// Config is a parsed board description: dimensions, the number of
// rounds to simulate, and the initially-live coordinates.
type Config struct {
	Rows   int
	Cols   int
	Rounds int
	Live   [][2]int
}

// Load reads a board file. The format is whitespace-separated integers:
// rows, cols, rounds, and a live-cell count, followed by that many
// "row col" pairs (0-indexed).
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(life.ErrConfig, "open board file %s: %v", path, err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "board file %s", path)
	}
	return cfg, nil
}

// Parse reads a board description from r. Any missing or malformed
// field fails with life.ErrConfig before a World is built.
func Parse(r io.Reader) (Config, error) {
	var cfg Config
	var numLive int
	if _, err := fmt.Fscan(r, &cfg.Rows, &cfg.Cols, &cfg.Rounds, &numLive); err != nil {
		return Config{}, errors.Wrapf(life.ErrConfig, "reading header: %v", err)
	}
	if numLive < 0 {
		return Config{}, errors.Wrapf(life.ErrConfig, "live-cell count must be non-negative, got %d", numLive)
	}
	cfg.Live = make([][2]int, numLive)
	for k := range cfg.Live {
		if _, err := fmt.Fscan(r, &cfg.Live[k][0], &cfg.Live[k][1]); err != nil {
			return Config{}, errors.Wrapf(life.ErrConfig, "reading live cell %d of %d: %v", k+1, numLive, err)
		}
	}
	return cfg, nil
}

// Random returns a config whose board is a reproducible random soup:
// each cell starts alive with the given probability.
func Random(rows, cols, rounds int, density float64, seed int64) Config {
	rng := core.NewRNG(seed)
	cfg := Config{Rows: rows, Cols: cols, Rounds: rounds}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() < density {
				cfg.Live = append(cfg.Live, [2]int{i, j})
			}
		}
	}
	return cfg
}

// World builds the initial board described by the config. Dimension and
// coordinate validation happens in life.NewWorld.
func (c Config) World() (*life.World, error) {
	return life.NewWorld(c.Rows, c.Cols, c.Live)
}
