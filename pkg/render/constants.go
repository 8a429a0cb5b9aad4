package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-viewer/pkg/input"
)

// Bindings maps keyboard keys to movement axes. Several keys may drive the same axis.
var Bindings = map[input.Key]input.Axis{
	input.Key(glfw.KeyW):         input.Forward,
	input.Key(glfw.KeyI):         input.Forward,
	input.Key(glfw.KeyUp):        input.Forward,
	input.Key(glfw.KeyA):         input.Left,
	input.Key(glfw.KeyJ):         input.Left,
	input.Key(glfw.KeyLeft):      input.Left,
	input.Key(glfw.KeyS):         input.Backward,
	input.Key(glfw.KeyK):         input.Backward,
	input.Key(glfw.KeyDown):      input.Backward,
	input.Key(glfw.KeyD):         input.Right,
	input.Key(glfw.KeyL):         input.Right,
	input.Key(glfw.KeyRight):     input.Right,
	input.Key(glfw.KeySpace):     input.Up,
	input.Key(glfw.KeyLeftShift): input.Down,
	input.Key(glfw.KeySemicolon): input.Down,
}

// Control keys handled by the renderer itself
const (
	KeyRelease    = glfw.KeyEscape
	KeyFullscreen = glfw.KeyF11
	KeyCapture    = glfw.KeyC
)

const (
	// cameraBinding is the uniform buffer binding point of the Camera block.
	cameraBinding = 0
	textureUnit   = 0

	groundSize = 20
)

var (
	clearColor  = mgl32.Vec4{0.05, 0.05, 0.1, 1.0}
	groundTint  = mgl32.Vec3{0.45, 0.5, 0.45}
	cubeTint    = mgl32.Vec3{0.9, 0.55, 0.2}
	playerTint  = mgl32.Vec3{0.3, 0.6, 0.95}
	whiteTint   = mgl32.Vec3{1, 1, 1}
	cubeOrigin  = mgl32.Vec3{0, 0.5, -3}
	playerScale = mgl32.Vec3{0.5, 1.6, 0.5}
)
