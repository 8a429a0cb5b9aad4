package input

import (
	"math"
	"testing"
)

const (
	keyW Key = iota + 1
	keyS
	keySpace
	keyUp
	keyUnbound
)

func newTestInput(policy MotionPolicy) *Input {
	return New(Config{
		Speed:      2,
		DotsPer360: 7200,
		Policy:     policy,
		Bindings: map[Key]Axis{
			keyW:     Forward,
			keyUp:    Forward,
			keyS:     Backward,
			keySpace: Up,
		},
	})
}

func TestSetKey(t *testing.T) {
	in := newTestInput(Accumulate)

	tests := []struct {
		name    string
		key     Key
		pressed bool
		axis    Axis
		bound   bool
		want    float32
	}{
		{"press forward", keyW, true, Forward, true, 1},
		{"repeat press", keyW, true, Forward, true, 1},
		{"release forward", keyW, false, Forward, true, 0},
		{"repeat release", keyW, false, Forward, true, 0},
		{"press up", keySpace, true, Up, true, 1},
		{"unbound key", keyUnbound, true, Down, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := in.SetKey(tt.key, tt.pressed); got != tt.bound {
				t.Errorf("SetKey(%d) = %v, want %v", tt.key, got, tt.bound)
			}
			if got := in.Amount(tt.axis); got != tt.want {
				t.Errorf("Amount(%d) = %v, want %v", tt.axis, got, tt.want)
			}
		})
	}
}

func TestAxisHeldUntilEveryKeyReleased(t *testing.T) {
	in := newTestInput(Accumulate)

	steps := []struct {
		key     Key
		pressed bool
		want    float32
	}{
		{keyW, true, 1},
		{keyUp, true, 1},
		{keyUp, false, 1},
		{keyUp, false, 1},
		{keyW, false, 0},
		{keyUp, true, 1},
	}
	for i, s := range steps {
		in.SetKey(s.key, s.pressed)
		if got := in.Amount(Forward); got != s.want {
			t.Fatalf("step %d: SetKey(%d, %v) left Forward = %v, want %v", i, s.key, s.pressed, got, s.want)
		}
	}

	in.ReleaseAll()
	if got := in.Amount(Forward); got != 0 {
		t.Fatalf("Forward = %v after ReleaseAll", got)
	}
	in.SetKey(keyW, true)
	in.SetKey(keyW, false)
	if got := in.Amount(Forward); got != 0 {
		t.Errorf("key released before ReleaseAll still counted as held: Forward = %v", got)
	}
}

func TestAmountsAreBinary(t *testing.T) {
	in := newTestInput(Accumulate)
	for i := 0; i < 5; i++ {
		in.SetAxis(Left, true)
		in.SetAxis(Right, i%2 == 0)
	}
	for a := Forward; a < axisCount; a++ {
		if v := in.Amount(a); v != 0 && v != 1 {
			t.Errorf("Amount(%d) = %v, want 0 or 1", a, v)
		}
	}

	in.ReleaseAll()
	for a := Forward; a < axisCount; a++ {
		if v := in.Amount(a); v != 0 {
			t.Errorf("after ReleaseAll Amount(%d) = %v", a, v)
		}
	}
}

func TestOutOfRangeAxisIgnored(t *testing.T) {
	in := newTestInput(Accumulate)
	in.SetAxis(Axis(-1), true)
	in.SetAxis(axisCount, true)
	if v := in.Amount(axisCount); v != 0 {
		t.Errorf("Amount(out of range) = %v", v)
	}
}

func TestMouseMotionPolicies(t *testing.T) {
	events := [][2]float64{{3, -1}, {4, 2}, {-2, 5}}

	tests := []struct {
		name   string
		policy MotionPolicy
		wantX  float32
		wantY  float32
	}{
		{"accumulate sums every event", Accumulate, 5, 6},
		{"overwrite keeps the last event", Overwrite, -2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newTestInput(tt.policy)
			for _, e := range events {
				in.RecordMouseMotion(e[0], e[1])
			}

			dx, dy := in.MouseMotion()
			if dx != tt.wantX || dy != tt.wantY {
				t.Fatalf("MouseMotion() = (%v, %v), want (%v, %v)", dx, dy, tt.wantX, tt.wantY)
			}

			dx, dy = in.ConsumeMouseMotion()
			if dx != tt.wantX || dy != tt.wantY {
				t.Fatalf("ConsumeMouseMotion() = (%v, %v), want (%v, %v)", dx, dy, tt.wantX, tt.wantY)
			}

			dx, dy = in.ConsumeMouseMotion()
			if dx != 0 || dy != 0 {
				t.Errorf("second ConsumeMouseMotion() = (%v, %v), want zero", dx, dy)
			}
		})
	}
}

func TestDotsPerDegree(t *testing.T) {
	tests := []struct {
		name    string
		dots    float32
		percent float32
		want    float32
	}{
		{"default percent", 7200, 0, 20},
		{"explicit 100 percent", 7200, 100, 20},
		{"double sensitivity halves the dots", 7200, 200, 10},
		{"default calibration", 7368, 100, 7368.0 / 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := New(Config{DotsPer360: tt.dots, SensitivityPercent: tt.percent})
			if got := in.DotsPerDegree(); math.Abs(float64(got-tt.want)) > 1e-4 {
				t.Errorf("DotsPerDegree() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewPanicsOnZeroCalibration(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New with DotsPer360 = 0 did not panic")
		}
	}()
	New(Config{Speed: 1})
}

func TestBindingsAreCopied(t *testing.T) {
	bindings := map[Key]Axis{keyW: Forward}
	in := New(Config{DotsPer360: 360, Bindings: bindings})
	bindings[keyS] = Backward

	if in.SetKey(keyS, true) {
		t.Error("mutating the caller's map changed the Input's bindings")
	}
}

func TestParseMotionPolicy(t *testing.T) {
	tests := []struct {
		in     string
		want   MotionPolicy
		wantOK bool
	}{
		{"accumulate", Accumulate, true},
		{"", Accumulate, true},
		{"overwrite", Overwrite, true},
		{"sometimes", Accumulate, false},
	}
	for _, tt := range tests {
		got, ok := ParseMotionPolicy(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseMotionPolicy(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
		if ok && tt.in != "" && got.String() != tt.in {
			t.Errorf("%v.String() = %q", got, got.String())
		}
	}
}
