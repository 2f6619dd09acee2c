//go:build !ebiten

package app

import (
	"github.com/pkg/errors"

	"golife/pkg/life"
)

// Run reports that graphical mode needs the GUI build. Headless and
// ASCII modes work without it.
func Run(*life.Engine, int, int) error {
	return errors.New("graphical mode requires building with the 'ebiten' tag: go build -tags ebiten ./cmd/gol")
}
