package life

import (
	"github.com/pkg/errors"
)

// ErrConfig is the root of every configuration failure: bad dimensions,
// out-of-range coordinates, malformed board files. Callers test for it
// with errors.Is.
var ErrConfig = errors.New("invalid configuration")

// World is a fixed-size toroidal Game of Life board. Cells are stored
// row-major and hold strictly 0 (dead) or 1 (alive).
type World struct {
	rows, cols int
	cells      []uint8
}

// NewWorld allocates a rows*cols board with every listed coordinate set
// alive. Listing a coordinate twice is harmless. It fails when either
// dimension is non-positive or a coordinate falls outside the board.
func NewWorld(rows, cols int, live [][2]int) (*World, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrConfig, "board dimensions must be positive, got %dx%d", rows, cols)
	}
	w := &World{rows: rows, cols: cols, cells: make([]uint8, rows*cols)}
	for _, rc := range live {
		i, j := rc[0], rc[1]
		if i < 0 || i >= rows || j < 0 || j >= cols {
			return nil, errors.Wrapf(ErrConfig, "live cell (%d,%d) outside %dx%d board", i, j, rows, cols)
		}
		w.cells[i*cols+j] = 1
	}
	return w, nil
}

// Rows returns the row dimension.
func (w *World) Rows() int { return w.rows }

// Cols returns the column dimension.
func (w *World) Cols() int { return w.cols }

// Cells exposes the current grid values so renderers can read them directly.
func (w *World) Cells() []uint8 { return w.cells }

// Index returns the linear slice index for row i, column j.
func (w *World) Index(i, j int) int { return i*w.cols + j }

// Wrap applies toroidal wrapping to the provided coordinates. The
// double-modulo keeps the result non-negative for any integer input.
func (w *World) Wrap(i, j int) (int, int) {
	i = (i%w.rows + w.rows) % w.rows
	j = (j%w.cols + w.cols) % w.cols
	return i, j
}

// Get returns the cell value at (i, j), wrapping out-of-range coordinates.
func (w *World) Get(i, j int) uint8 {
	i, j = w.Wrap(i, j)
	return w.cells[i*w.cols+j]
}

// Set stores v at (i, j), wrapping out-of-range coordinates.
func (w *World) Set(i, j int, v uint8) {
	i, j = w.Wrap(i, j)
	w.cells[i*w.cols+j] = v
}

// NeighborCount returns how many of the 8 cells adjacent to (i, j) are
// alive. Edges wrap: on a length-1 axis the modulo maps a cell's
// neighbor back onto itself, which is the documented torus behavior.
func (w *World) NeighborCount(i, j int) int {
	n := 0
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if di == 0 && dj == 0 {
				continue
			}
			ni := ((i+di)%w.rows + w.rows) % w.rows
			nj := ((j+dj)%w.cols + w.cols) % w.cols
			n += int(w.cells[ni*w.cols+nj])
		}
	}
	return n
}

// LiveCells counts the alive cells with a full scan of the grid.
func (w *World) LiveCells() int {
	n := 0
	for _, c := range w.cells {
		n += int(c)
	}
	return n
}
