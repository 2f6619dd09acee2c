package core

import "time"

// FixedStep paces simulation rounds at a steady rounds-per-second rate,
// independent of how often the render loop calls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a pacer targeting the given rounds per second.
func NewFixedStep(rps int) *FixedStep {
	if rps <= 0 {
		rps = 10
	}
	step := time.Second / time.Duration(rps)
	return &FixedStep{step: step, accumulator: step}
}

// ShouldStep reports whether enough wall time has accumulated to
// advance the simulation by one round.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
