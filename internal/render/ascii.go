package render

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"golife/pkg/life"
)

// ASCII renders each completed round as a text board in the terminal.
// It implements life.Observer; the per-round delay lives here so the
// engine stays free of animation timing.
type ASCII struct {
	Out         io.Writer
	Delay       time.Duration
	ClearScreen bool
}

// NewASCII returns a renderer writing to stdout with the given
// per-round delay.
func NewASCII(delay time.Duration) *ASCII {
	return &ASCII{Out: os.Stdout, Delay: delay, ClearScreen: true}
}

// RoundDone implements life.Observer.
func (a *ASCII) RoundDone(w *life.World, live, round int) {
	if a.ClearScreen {
		a.clear()
	}
	a.Board(w, live, round)
	if a.Delay > 0 {
		time.Sleep(a.Delay)
	}
}

// Board writes the round header, the grid as ' @' / ' .' cells, and
// the live-cell count.
func (a *ASCII) Board(w *life.World, live, round int) {
	fmt.Fprintf(a.Out, "Round: %d\n", round)
	for i := 0; i < w.Rows(); i++ {
		for j := 0; j < w.Cols(); j++ {
			if w.Get(i, j) == 1 {
				fmt.Fprint(a.Out, " @")
			} else {
				fmt.Fprint(a.Out, " .")
			}
		}
		fmt.Fprintln(a.Out)
	}
	fmt.Fprintf(a.Out, "Live cells: %d\n\n", live)
}

func (a *ASCII) clear() {
	cmd := exec.Command("clear")
	cmd.Stdout = a.Out
	if err := cmd.Run(); err != nil {
		// Fall back to an ANSI clear when the clear binary is missing.
		fmt.Fprint(a.Out, "\x1b[2J\x1b[H")
	}
}
