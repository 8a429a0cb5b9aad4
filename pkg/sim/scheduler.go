// Package sim runs the fixed-timestep simulation that drives the viewpoint.
package sim

import "math"

// Timestep is the fixed simulation step in seconds.
const Timestep = 1.0 / 60.0

// minElapsed is the smallest frame time worth scheduling; anything below is treated as zero.
const minElapsed = 1e-9

// StepFunc advances the simulation by dt seconds and an sf share of the frame's mouse delta.
type StepFunc func(dt, sf float32)

// Scheduler splits variable frame times into fixed steps plus one fractional remainder step.
type Scheduler struct {
	step       float64
	maxElapsed float64
}

// NewScheduler creates a scheduler with the given step. maxElapsed caps the time handled in
// one pass; zero disables the cap.
func NewScheduler(step, maxElapsed float64) *Scheduler {
	if step <= 0 {
		step = Timestep
	}
	return &Scheduler{step: step, maxElapsed: maxElapsed}
}

// Advance runs fn for every whole step contained in elapsed, then once more for the remainder.
// Each whole step receives sf = step/elapsed; the remainder receives what is left of 1, so the sf
// values of one pass sum to 1. It returns the number of calls made, or 0 when elapsed is zero,
// negative or NaN and the pass was skipped.
func (s *Scheduler) Advance(elapsed float64, fn StepFunc) int {
	if math.IsNaN(elapsed) || elapsed < minElapsed {
		return 0
	}
	if s.maxElapsed > 0 && elapsed > s.maxElapsed {
		elapsed = s.maxElapsed
	}

	interpolate := 1.0
	sf := clamp01(s.step / elapsed)

	calls := 0
	for elapsed >= s.step {
		fn(float32(s.step), float32(sf))
		calls++

		elapsed -= s.step
		interpolate -= sf
	}
	fn(float32(elapsed), float32(clamp01(interpolate)))
	calls++

	return calls
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
