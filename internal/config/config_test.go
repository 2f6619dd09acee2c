package config

import (
	"strings"
	"testing"

	"github.com/pkg/errors"

	"golife/pkg/life"
)

func TestParse(t *testing.T) {
	in := "3 4 10 2\n0 0\n2 3\n"
	cfg, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Rows != 3 || cfg.Cols != 4 || cfg.Rounds != 10 {
		t.Fatalf("header = %dx%d rounds %d, expected 3x4 rounds 10", cfg.Rows, cfg.Cols, cfg.Rounds)
	}
	if len(cfg.Live) != 2 || cfg.Live[0] != [2]int{0, 0} || cfg.Live[1] != [2]int{2, 3} {
		t.Fatalf("live cells = %v, expected [(0,0) (2,3)]", cfg.Live)
	}
}

func TestParseAcceptsArbitraryWhitespace(t *testing.T) {
	in := "3\t4   10\n1\n\n 1 2 "
	cfg, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cfg.Live) != 1 || cfg.Live[0] != [2]int{1, 2} {
		t.Fatalf("live cells = %v, expected [(1,2)]", cfg.Live)
	}
}

func TestParseTruncatedHeader(t *testing.T) {
	if _, err := Parse(strings.NewReader("3 4\n")); !errors.Is(err, life.ErrConfig) {
		t.Fatalf("error = %v, expected ErrConfig", err)
	}
}

func TestParseMissingLiveCell(t *testing.T) {
	if _, err := Parse(strings.NewReader("3 4 10 2\n0 0\n")); !errors.Is(err, life.ErrConfig) {
		t.Fatalf("error = %v, expected ErrConfig", err)
	}
}

func TestParseMalformedInteger(t *testing.T) {
	if _, err := Parse(strings.NewReader("3 four 10 0\n")); !errors.Is(err, life.ErrConfig) {
		t.Fatalf("error = %v, expected ErrConfig", err)
	}
}

func TestParseNegativeLiveCount(t *testing.T) {
	if _, err := Parse(strings.NewReader("3 4 10 -1\n")); !errors.Is(err, life.ErrConfig) {
		t.Fatalf("error = %v, expected ErrConfig", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.txt"); !errors.Is(err, life.ErrConfig) {
		t.Fatalf("error = %v, expected ErrConfig", err)
	}
}

func TestWorldRejectsOutOfRangeCell(t *testing.T) {
	cfg, err := Parse(strings.NewReader("3 3 5 1\n3 0\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := cfg.World(); !errors.Is(err, life.ErrConfig) {
		t.Fatalf("World error = %v, expected ErrConfig", err)
	}
}

func TestRandomDeterministic(t *testing.T) {
	a := Random(16, 16, 5, 0.3, 42)
	b := Random(16, 16, 5, 0.3, 42)
	if len(a.Live) != len(b.Live) {
		t.Fatalf("same seed produced %d and %d live cells", len(a.Live), len(b.Live))
	}
	for k := range a.Live {
		if a.Live[k] != b.Live[k] {
			t.Fatalf("same seed diverged at cell %d: %v vs %v", k, a.Live[k], b.Live[k])
		}
	}
}

func TestRandomDensityExtremes(t *testing.T) {
	if cfg := Random(8, 8, 1, 0, 1); len(cfg.Live) != 0 {
		t.Fatalf("density 0 produced %d live cells", len(cfg.Live))
	}
	if cfg := Random(8, 8, 1, 1, 1); len(cfg.Live) != 64 {
		t.Fatalf("density 1 produced %d live cells, expected 64", len(cfg.Live))
	}
}
