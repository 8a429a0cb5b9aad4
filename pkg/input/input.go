// Package input accumulates keyboard and mouse state between simulation passes.
package input

// Axis identifies one of the six digital movement amounts.
type Axis int

const (
	Forward Axis = iota
	Backward
	Left
	Right
	Up
	Down

	axisCount
)

// Key is a platform key code. The render layer converts its window library's key codes into Key.
type Key int

// MotionPolicy selects how raw mouse-motion events combine between two consumptions.
type MotionPolicy int

const (
	// Accumulate sums every motion event until the consumer zeroes the total.
	// Use it when the consumer runs once per rendered frame.
	Accumulate MotionPolicy = iota
	// Overwrite keeps only the latest motion event.
	// Use it when the consumer runs once per motion event.
	Overwrite
)

// String returns the config name of the policy.
func (p MotionPolicy) String() string {
	switch p {
	case Accumulate:
		return "accumulate"
	case Overwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}

// ParseMotionPolicy converts a config name into a MotionPolicy.
func ParseMotionPolicy(name string) (MotionPolicy, bool) {
	switch name {
	case "accumulate", "":
		return Accumulate, true
	case "overwrite":
		return Overwrite, true
	default:
		return Accumulate, false
	}
}

// Config holds the construction-time tunables for an Input.
type Config struct {
	Speed              float32 // world units per second
	DotsPer360         float32 // mouse units for one full turn
	SensitivityPercent float32 // 0 means 100
	Policy             MotionPolicy
	Bindings           map[Key]Axis
}

// Input holds digital axis amounts, the pending mouse delta and the sensitivity calibration.
// Speed, sensitivity and policy are fixed once the Input is built.
type Input struct {
	amounts [axisCount]float32
	held    [axisCount]uint64 // one bit per bound key currently down

	mouseX float32
	mouseY float32

	policy        MotionPolicy
	speed         float32
	dotsPerDegree float32
	bindings      map[Key]binding
}

// binding places a key on an axis and gives it a bit in that axis' held mask.
type binding struct {
	axis Axis
	bit  uint64
}

// New builds an Input. It panics if DotsPer360 is not positive, since every rotation divides by it.
func New(cfg Config) *Input {
	if cfg.DotsPer360 <= 0 {
		panic("input: DotsPer360 must be positive")
	}
	percent := cfg.SensitivityPercent
	if percent <= 0 {
		percent = 100
	}

	bindings := make(map[Key]binding, len(cfg.Bindings))
	var perAxis [axisCount]uint
	for k, a := range cfg.Bindings {
		if a < 0 || a >= axisCount {
			continue
		}
		if perAxis[a] == 64 {
			panic("input: more than 64 keys bound to one axis")
		}
		bindings[k] = binding{axis: a, bit: 1 << perAxis[a]}
		perAxis[a]++
	}

	return &Input{
		policy:        cfg.Policy,
		speed:         cfg.Speed,
		dotsPerDegree: cfg.DotsPer360 / 360 * (100 / percent),
		bindings:      bindings,
	}
}

// SetKey applies a press or release for key. Unbound keys are ignored and reported as false.
// An axis bound to several keys stays at 1 until every one of them is released.
func (in *Input) SetKey(key Key, pressed bool) bool {
	b, ok := in.bindings[key]
	if !ok {
		return false
	}

	axis := b.axis
	if pressed {
		in.held[axis] |= b.bit
	} else {
		in.held[axis] &^= b.bit
	}
	in.amounts[axis] = 0
	if in.held[axis] != 0 {
		in.amounts[axis] = 1
	}
	return true
}

// SetAxis sets the amount of axis to 1 when pressed and 0 otherwise, regardless of which keys
// are held.
func (in *Input) SetAxis(axis Axis, pressed bool) {
	if axis < 0 || axis >= axisCount {
		return
	}
	in.held[axis] = 0
	if pressed {
		in.amounts[axis] = 1
	} else {
		in.amounts[axis] = 0
	}
}

// Amount returns the current amount for axis, always 0 or 1.
func (in *Input) Amount(axis Axis) float32 {
	if axis < 0 || axis >= axisCount {
		return 0
	}
	return in.amounts[axis]
}

// ReleaseAll zeroes every axis, e.g. when the window loses focus and release events will never arrive.
func (in *Input) ReleaseAll() {
	in.amounts = [axisCount]float32{}
	in.held = [axisCount]uint64{}
}

// RecordMouseMotion stores one raw relative motion event according to the policy.
func (in *Input) RecordMouseMotion(dx, dy float64) {
	switch in.policy {
	case Overwrite:
		in.mouseX = float32(dx)
		in.mouseY = float32(dy)
	default:
		in.mouseX += float32(dx)
		in.mouseY += float32(dy)
	}
}

// MouseMotion returns the pending delta without consuming it.
func (in *Input) MouseMotion() (dx, dy float32) {
	return in.mouseX, in.mouseY
}

// ConsumeMouseMotion returns the pending delta and resets it to zero.
func (in *Input) ConsumeMouseMotion() (dx, dy float32) {
	dx, dy = in.mouseX, in.mouseY
	in.mouseX, in.mouseY = 0, 0
	return dx, dy
}

// Policy returns the motion policy chosen at construction.
func (in *Input) Policy() MotionPolicy {
	return in.policy
}

// Speed returns the linear speed in world units per second.
func (in *Input) Speed() float32 {
	return in.speed
}

// DotsPerDegree returns how many mouse units make up one degree of rotation.
func (in *Input) DotsPerDegree() float32 {
	return in.dotsPerDegree
}
