package render

import (
	"fmt"
	"log/slog"
	"openglhelper"
	"time"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-viewer/pkg/camera"
	"github.com/leterax/go-viewer/pkg/input"
	"github.com/leterax/go-viewer/pkg/model"
	"github.com/leterax/go-viewer/pkg/sim"
	"github.com/leterax/go-viewer/pkg/view"
)

// Options configures NewRenderer.
type Options struct {
	Window openglhelper.WindowOptions
	// FullscreenOnCapture switches to fullscreen the first time the cursor is captured.
	FullscreenOnCapture bool
	// ShaderDir overrides the built-in shaders with vert.glsl and frag.glsl from a directory.
	ShaderDir string
	// Model replaces the default ground plane and cube when non-nil.
	Model *model.Model

	FOV, Near, Far float32
	Zoom           *view.Zoom
	FPSInterval    time.Duration
}

// Renderer owns the window and drives the frame loop: input events, simulation, drawing.
type Renderer struct {
	window *openglhelper.Window
	shader *openglhelper.Shader
	ubo    *openglhelper.BufferObject
	scene  *Scene

	sim        *sim.Simulation
	projection view.Projection
	zoom       *view.Zoom
	fps        *sim.FrameCounter

	cursor              cursorTracker
	fullscreenOnCapture bool

	// Timing
	lastFrameTime float64
}

// NewRenderer creates the window and uploads the scene. simulation supplies the viewpoint drawn
// each frame.
func NewRenderer(opts Options, simulation *sim.Simulation) (*Renderer, error) {
	window, err := openglhelper.NewWindow(opts.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	shader, err := loadShader(opts.ShaderDir)
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}

	width, height := window.Size()
	zoom := opts.Zoom
	if zoom == nil {
		zoom = view.NewZoom(opts.FOV, opts.FOV, opts.FOV, 0)
	}

	r := &Renderer{
		window:              window,
		shader:              shader,
		ubo:                 openglhelper.NewUniformBuffer(view.MatrixSize, cameraBinding),
		scene:               newScene(opts.Model),
		sim:                 simulation,
		projection:          view.NewProjection(width, height, zoom.FOV(), opts.Near, opts.Far),
		zoom:                zoom,
		fps:                 sim.NewFrameCounter(opts.FPSInterval),
		cursor:              newCursorTracker(),
		fullscreenOnCapture: opts.FullscreenOnCapture,
	}

	// Set up callbacks
	glfwWindow := window.GLFWWindow()
	glfwWindow.SetKeyCallback(r.keyCallback)
	glfwWindow.SetCursorPosCallback(r.cursorPosCallback)
	glfwWindow.SetCursorEnterCallback(r.cursorEnterCallback)
	glfwWindow.SetMouseButtonCallback(r.mouseButtonCallback)
	glfwWindow.SetScrollCallback(r.scrollCallback)
	glfwWindow.SetFramebufferSizeCallback(r.framebufferSizeCallback)

	slog.Info("renderer ready", "width", width, "height", height, "fov", zoom.FOV())
	return r, nil
}

// Run starts the main rendering loop and returns when the window is closed.
func (r *Renderer) Run() {
	r.lastFrameTime = glfw.GetTime()

	for !r.window.ShouldClose() {
		currentTime := glfw.GetTime()
		elapsed := time.Duration((currentTime - r.lastFrameTime) * float64(time.Second))
		r.lastFrameTime = currentTime

		r.sim.Frame(elapsed)
		r.projection.SetFOV(r.zoom.Update(float32(elapsed.Seconds())))

		r.render()

		r.window.SwapBuffers()
		r.window.PollEvents()

		r.countFrame(elapsed)
	}
}

func (r *Renderer) render() {
	r.window.Clear(clearColor)

	position, direction := r.sim.Viewpoint().Eye()
	viewProj := view.ViewProjection(position, direction, camera.WorldUp, r.projection)
	r.ubo.UpdateData(unsafe.Pointer(&viewProj[0]))

	r.shader.Use()
	var player *mgl32.Mat4
	if orbit, ok := r.sim.Viewpoint().(*camera.OrbitCamera); ok {
		m := orbit.Player.Model()
		player = &m
	}
	r.scene.Draw(r.shader, player)
}

func (r *Renderer) countFrame(elapsed time.Duration) {
	frames, over, ok := r.fps.Tick(elapsed)
	if !ok {
		return
	}
	rate := sim.Rate(frames, over)
	slog.Info("fps", "frames", frames, "seconds", over.Seconds(), "rate", rate)
	r.window.SetStatus(fmt.Sprintf("%.0f fps", rate))
}

// Fullscreen reports whether the window is currently fullscreen.
func (r *Renderer) Fullscreen() bool {
	return r.window.IsFullscreen()
}

// Cleanup frees all resources
func (r *Renderer) Cleanup() {
	r.scene.Delete()
	r.ubo.Delete()
	r.shader.Delete()
	r.window.Close()
}

func (r *Renderer) setCaptured(captured bool) {
	if captured == r.window.IsMouseCaptured() {
		return
	}
	r.window.SetMouseCaptured(captured)
	r.cursor.reset()
	if !captured {
		// keys held while releasing would otherwise stay pressed
		r.sim.Input().ReleaseAll()
	}
	slog.Debug("cursor capture changed", "captured", captured)
}

func (r *Renderer) setFullscreen(fullscreen bool) {
	r.window.SetFullscreen(fullscreen)
	slog.Debug("fullscreen changed", "fullscreen", r.window.IsFullscreen())
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}
	pressed := action == glfw.Press

	switch {
	case key == KeyRelease && pressed:
		if r.window.IsMouseCaptured() {
			r.setCaptured(false)
		} else {
			r.window.SetShouldClose(true)
		}
	case key == KeyFullscreen && pressed:
		r.setFullscreen(!r.window.IsFullscreen())
	case key == KeyCapture && pressed:
		r.setCaptured(!r.window.IsMouseCaptured())
	case r.window.IsMouseCaptured():
		r.sim.Input().SetKey(input.Key(key), pressed)
	}
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if !r.window.IsMouseCaptured() {
		return
	}
	if dx, dy, ok := r.cursor.delta(xpos, ypos); ok {
		r.sim.Input().RecordMouseMotion(dx, dy)
	}
}

func (r *Renderer) cursorEnterCallback(_ *glfw.Window, entered bool) {
	if !entered {
		r.setCaptured(false)
	}
}

func (r *Renderer) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft || action != glfw.Press || r.window.IsMouseCaptured() {
		return
	}
	r.setCaptured(true)
	if r.fullscreenOnCapture {
		r.setFullscreen(true)
	}
}

func (r *Renderer) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	r.zoom.Scroll(float32(yoffset))
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	// minimised windows report a 0x0 framebuffer
	if width <= 0 || height <= 0 {
		return
	}
	r.window.OnResize(width, height)
	r.projection.Resize(width, height)
	slog.Debug("framebuffer resized", "width", width, "height", height)
}
