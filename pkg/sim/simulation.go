package sim

import (
	"time"

	"github.com/leterax/go-viewer/pkg/camera"
	"github.com/leterax/go-viewer/pkg/input"
)

// Simulation owns the per-frame update of a viewpoint from input.
type Simulation struct {
	input     *input.Input
	viewpoint camera.Viewpoint
	scheduler *Scheduler
}

// New creates a simulation advancing viewpoint from in.
func New(in *input.Input, viewpoint camera.Viewpoint, scheduler *Scheduler) *Simulation {
	return &Simulation{
		input:     in,
		viewpoint: viewpoint,
		scheduler: scheduler,
	}
}

// Frame advances the simulation by elapsed and returns the number of integration sub-steps.
// The mouse delta is consumed exactly once, after the last sub-step; a skipped pass leaves it
// pending for the next frame.
func (s *Simulation) Frame(elapsed time.Duration) int {
	steps := s.scheduler.Advance(elapsed.Seconds(), func(dt, sf float32) {
		s.viewpoint.Integrate(s.input, dt, sf)
	})
	if steps > 0 {
		s.input.ConsumeMouseMotion()
	}
	return steps
}

// Input returns the input state fed to the viewpoint.
func (s *Simulation) Input() *input.Input {
	return s.input
}

// Viewpoint returns the simulated viewpoint.
func (s *Simulation) Viewpoint() camera.Viewpoint {
	return s.viewpoint
}
