// Package config loads the viewer configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/leterax/go-viewer/pkg/camera"
	"github.com/leterax/go-viewer/pkg/view"
	"gopkg.in/yaml.v3"
)

// Camera modes.
const (
	ModeFree  = "free"
	ModeOrbit = "orbit"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the full viewer configuration, one section per concern.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Input      InputConfig      `yaml:"input"`
	Camera     CameraConfig     `yaml:"camera"`
	Projection ProjectionConfig `yaml:"projection"`
	Sim        SimConfig        `yaml:"sim"`
	Scene      SceneConfig      `yaml:"scene"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig sizes the window. Fullscreen switches to fullscreen when the cursor is first
// captured.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	VSync      bool   `yaml:"vsync"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// InputConfig holds movement speed and mouse calibration.
type InputConfig struct {
	Speed              float32 `yaml:"speed"`
	DotsPer360         float32 `yaml:"dots_per_360"`
	SensitivityPercent float32 `yaml:"sensitivity_percent"`
	MouseMotion        string  `yaml:"mouse_motion"` // "accumulate" or "overwrite"
}

// CameraConfig selects the viewpoint and its starting pose.
type CameraConfig struct {
	Mode      string      `yaml:"mode"` // "free" or "orbit"
	Position  [3]float32  `yaml:"position"`
	Yaw       float32     `yaml:"yaw"`
	Pitch     float32     `yaml:"pitch"`
	LookAt    *[3]float32 `yaml:"look_at"` // free mode only; overrides yaw and pitch
	EyeOffset [3]float32  `yaml:"eye_offset"`
	Distance  float32     `yaml:"distance"`
}

// ProjectionConfig holds the perspective and the scroll-zoom range.
type ProjectionConfig struct {
	FOV         float32 `yaml:"fov"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	MinFOV      float32 `yaml:"min_fov"`
	MaxFOV      float32 `yaml:"max_fov"`
	ZoomSeconds float32 `yaml:"zoom_seconds"`
}

// SimConfig tunes the frame loop.
type SimConfig struct {
	MaxFrameTime float64 `yaml:"max_frame_time"` // seconds
	FPSInterval  float64 `yaml:"fps_interval"`   // seconds
}

// SceneConfig names what is drawn. An empty model draws a ground plane and a cube.
type SceneConfig struct {
	Model     string `yaml:"model"`
	ShaderDir string `yaml:"shader_dir"`
}

// LoggingConfig is passed to the logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "go-viewer",
		},
		Input: InputConfig{
			Speed:              1.0,
			DotsPer360:         7368.0,
			SensitivityPercent: 100,
			MouseMotion:        "accumulate",
		},
		Camera: CameraConfig{
			Mode:      ModeFree,
			Position:  [3]float32{0.25, 1.0, 0.0},
			Yaw:       camera.DefaultYaw,
			Pitch:     camera.DefaultPitch,
			EyeOffset: [3]float32{0, 1.6, 0},
			Distance:  1,
		},
		Projection: ProjectionConfig{
			FOV:         view.DefaultFOV,
			Near:        view.DefaultNear,
			Far:         view.DefaultFar,
			MinFOV:      10,
			MaxFOV:      90,
			ZoomSeconds: 0.15,
		},
		Sim: SimConfig{
			MaxFrameTime: 0.25,
			FPSInterval:  1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first field that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return invalid("window size %dx%d", c.Window.Width, c.Window.Height)
	case c.Input.Speed <= 0:
		return invalid("input.speed %v", c.Input.Speed)
	case c.Input.DotsPer360 <= 0:
		return invalid("input.dots_per_360 %v", c.Input.DotsPer360)
	case c.Input.SensitivityPercent <= 0:
		return invalid("input.sensitivity_percent %v", c.Input.SensitivityPercent)
	case c.Input.MouseMotion != "accumulate" && c.Input.MouseMotion != "overwrite":
		return invalid("input.mouse_motion %q", c.Input.MouseMotion)
	case c.Camera.Mode != ModeFree && c.Camera.Mode != ModeOrbit:
		return invalid("camera.mode %q", c.Camera.Mode)
	case c.Camera.Mode == ModeOrbit && c.Camera.Distance <= 0:
		return invalid("camera.distance %v", c.Camera.Distance)
	case c.Projection.FOV <= 0 || c.Projection.FOV >= 180:
		return invalid("projection.fov %v", c.Projection.FOV)
	case c.Projection.Near <= 0 || c.Projection.Far <= c.Projection.Near:
		return invalid("projection planes near=%v far=%v", c.Projection.Near, c.Projection.Far)
	case c.Projection.MinFOV <= 0 || c.Projection.MaxFOV >= 180 || c.Projection.MinFOV > c.Projection.MaxFOV:
		return invalid("projection zoom range [%v, %v]", c.Projection.MinFOV, c.Projection.MaxFOV)
	case c.Sim.MaxFrameTime < 0 || c.Sim.FPSInterval < 0:
		return invalid("sim timings max_frame_time=%v fps_interval=%v", c.Sim.MaxFrameTime, c.Sim.FPSInterval)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("logging.level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "text", "json":
	default:
		return invalid("logging.format %q", c.Logging.Format)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
