package life

import (
	"github.com/pkg/errors"
)

// Observer receives the board after each completed round. The engine
// never inspects what the observer does with it; animation delays and
// any rendering threads belong entirely to the observer.
type Observer interface {
	RoundDone(w *World, live, round int)
}

// Engine advances a single World through rounds of Conway's rule. It
// owns the scratch buffer for the next generation and the live-cell
// count, which is recomputed from scratch on every round.
type Engine struct {
	world       *World
	next        []uint8
	round       int
	live        int
	totalRounds int
}

// NewEngine wraps a World for a fixed-length run. The initial live
// count comes from a full scan so a zero-round run still reports the
// configured board accurately.
func NewEngine(w *World, totalRounds int) (*Engine, error) {
	if totalRounds < 0 {
		return nil, errors.Wrapf(ErrConfig, "round count must be non-negative, got %d", totalRounds)
	}
	return &Engine{
		world:       w,
		next:        make([]uint8, len(w.cells)),
		live:        w.LiveCells(),
		totalRounds: totalRounds,
	}, nil
}

// World returns the engine's board.
func (e *Engine) World() *World { return e.world }

// Round returns the number of completed rounds.
func (e *Engine) Round() int { return e.round }

// Live returns the live-cell count after the last completed round.
func (e *Engine) Live() int { return e.live }

// TotalRounds returns the configured simulation length.
func (e *Engine) TotalRounds() int { return e.totalRounds }

// Done reports whether the configured number of rounds has completed.
func (e *Engine) Done() bool { return e.round >= e.totalRounds }

// AdvanceRound computes the next generation into the scratch buffer,
// reading only the pre-round grid, then swaps the buffers. The live
// count is tallied from the cells written this round, never carried
// over incrementally. No partially updated grid is ever observable.
func (e *Engine) AdvanceRound() {
	w := e.world
	live := 0
	for i := 0; i < w.rows; i++ {
		for j := 0; j < w.cols; j++ {
			n := w.NeighborCount(i, j)
			idx := i*w.cols + j
			alive := w.cells[idx] == 1
			e.next[idx] = 0
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				e.next[idx] = 1
				live++
			}
		}
	}
	w.cells, e.next = e.next, w.cells
	e.live = live
	e.round++
}

// Run advances the board until the configured round count is reached,
// with no early exit for stable or oscillating states. After each
// round the observer, when present, sees the fresh board. A nil
// observer runs the simulation headless.
func (e *Engine) Run(obs Observer) {
	for !e.Done() {
		e.AdvanceRound()
		if obs != nil {
			obs.RoundDone(e.world, e.live, e.round)
		}
	}
}
