package render

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-viewer/pkg/input"
	"github.com/leterax/go-viewer/pkg/model"
)

func TestCursorTrackerPrimesAfterReset(t *testing.T) {
	c := newCursorTracker()

	if _, _, ok := c.delta(100, 100); ok {
		t.Fatal("first position produced a delta")
	}
	dx, dy, ok := c.delta(110, 95)
	if !ok || dx != 10 || dy != -5 {
		t.Errorf("delta = (%v, %v, %v), want (10, -5, true)", dx, dy, ok)
	}

	c.reset()
	if _, _, ok := c.delta(500, 500); ok {
		t.Error("position after reset produced a delta")
	}
	if dx, dy, _ := c.delta(501, 502); dx != 1 || dy != 2 {
		t.Errorf("delta after reset = (%v, %v), want (1, 2)", dx, dy)
	}
}

func TestBindingsCoverEveryAxis(t *testing.T) {
	want := map[input.Axis][]glfw.Key{
		input.Forward:  {glfw.KeyW, glfw.KeyI, glfw.KeyUp},
		input.Left:     {glfw.KeyA, glfw.KeyJ, glfw.KeyLeft},
		input.Backward: {glfw.KeyS, glfw.KeyK, glfw.KeyDown},
		input.Right:    {glfw.KeyD, glfw.KeyL, glfw.KeyRight},
		input.Up:       {glfw.KeySpace},
		input.Down:     {glfw.KeyLeftShift, glfw.KeySemicolon},
	}
	for axis, keys := range want {
		for _, key := range keys {
			if got, ok := Bindings[input.Key(key)]; !ok || got != axis {
				t.Errorf("key %v bound to %v (%v), want %v", key, got, ok, axis)
			}
		}
	}

	for _, key := range []glfw.Key{KeyRelease, KeyFullscreen, KeyCapture} {
		if _, ok := Bindings[input.Key(key)]; ok {
			t.Errorf("control key %v is also a movement binding", key)
		}
	}
}

func TestPlanDraws(t *testing.T) {
	m := &model.Model{
		Meshes: []model.Mesh{
			{Name: "bare", Material: model.NoMaterial, IndexBegin: 0, IndexCount: 6},
			{Name: "empty", Material: 0, IndexBegin: 6, IndexCount: 0},
			{Name: "textured", Material: 0, IndexBegin: 6, IndexCount: 3},
			{Name: "black", Material: 1, IndexBegin: 9, IndexCount: 3},
		},
		Materials: []model.Material{
			{Name: "brick", Diffuse: [3]float32{0.5, 0.25, 1}, DiffuseTexture: "brick.png"},
			{Name: "unlit"},
		},
	}
	tint := mgl32.Vec3{0.1, 0.2, 0.3}

	got := planDraws(m, tint)
	want := []drawCall{
		{begin: 0, count: 6, tint: tint},
		{begin: 6, count: 3, texture: "brick.png", tint: mgl32.Vec3{0.5, 0.25, 1}},
		{begin: 9, count: 3, tint: whiteTint},
	}
	if len(got) != len(want) {
		t.Fatalf("planDraws returned %d calls, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPlanDrawsBuiltinShapes(t *testing.T) {
	for _, m := range []*model.Model{model.Plane(groundSize), model.Cube()} {
		draws := planDraws(m, groundTint)
		if len(draws) != 1 || draws[0].count != len(m.Indices) || draws[0].texture != "" {
			t.Errorf("%s: draws = %+v", m.Name, draws)
		}
	}
}
