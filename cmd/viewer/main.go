package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-viewer/internal/config"
	"github.com/leterax/go-viewer/internal/logger"
	"github.com/leterax/go-viewer/pkg/camera"
	"github.com/leterax/go-viewer/pkg/input"
	"github.com/leterax/go-viewer/pkg/model"
	"github.com/leterax/go-viewer/pkg/render"
	"github.com/leterax/go-viewer/pkg/sim"
	"github.com/leterax/go-viewer/pkg/view"
	"openglhelper"
)

const (
	appName           = "go-viewer"
	defaultConfigPath = "configs/config.yaml"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", defaultConfigPath, "Path to the YAML config file")
	modelPath := flag.String("model", "", "OBJ model to view (overrides scene.model)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error (overrides logging.level)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *modelPath != "" {
		cfg.Scene.Model = *modelPath
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	store, err := config.OpenSettings(appName)
	if err != nil {
		slog.Warn("settings unavailable", "error", err)
	} else if saved, err := store.Load(); err != nil {
		slog.Warn("ignoring saved settings", "error", err)
	} else if saved != nil {
		saved.Apply(cfg)
		slog.Debug("saved settings applied", "fullscreen", saved.Fullscreen, "sensitivity", saved.SensitivityPercent)
	}

	if err := cfg.Validate(); err != nil {
		fatal("invalid configuration", err)
	}

	var scene *model.Model
	if cfg.Scene.Model != "" {
		scene, err = model.LoadOBJ(cfg.Scene.Model)
		if err != nil {
			fatal("failed to load model", err)
		}
		slog.Info("model loaded", "path", cfg.Scene.Model, "meshes", len(scene.Meshes), "materials", len(scene.Materials))
	}

	policy, _ := input.ParseMotionPolicy(cfg.Input.MouseMotion)
	in := input.New(input.Config{
		Speed:              cfg.Input.Speed,
		DotsPer360:         cfg.Input.DotsPer360,
		SensitivityPercent: cfg.Input.SensitivityPercent,
		Policy:             policy,
		Bindings:           render.Bindings,
	})

	simulation := sim.New(in, newViewpoint(cfg.Camera), sim.NewScheduler(sim.Timestep, cfg.Sim.MaxFrameTime))

	p := cfg.Projection
	renderer, err := render.NewRenderer(render.Options{
		Window: openglhelper.WindowOptions{
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			Title:  cfg.Window.Title,
			VSync:  cfg.Window.VSync,
		},
		FullscreenOnCapture: cfg.Window.Fullscreen,
		ShaderDir:           cfg.Scene.ShaderDir,
		Model:               scene,
		FOV:                 p.FOV,
		Near:                p.Near,
		Far:                 p.Far,
		Zoom:                view.NewZoom(p.FOV, p.MinFOV, p.MaxFOV, p.ZoomSeconds),
		FPSInterval:         seconds(cfg.Sim.FPSInterval),
	}, simulation)
	if err != nil {
		fatal("failed to initialize renderer", err)
	}

	slog.Info("viewer started",
		"mode", cfg.Camera.Mode,
		"mouse_motion", in.Policy(),
		"dots_per_degree", in.DotsPerDegree())

	renderer.Run()

	if store != nil {
		settings := config.Settings{
			Fullscreen:         renderer.Fullscreen(),
			SensitivityPercent: cfg.Input.SensitivityPercent,
		}
		if err := store.Save(settings); err != nil {
			slog.Warn("settings not saved", "error", err)
		}
	}
	renderer.Cleanup()
}

// loadConfig reads path. A missing file at the default location falls back to the built-in
// defaults; an explicitly named file must exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) && path == defaultConfigPath {
		return config.Default(), nil
	}
	return cfg, err
}

func newViewpoint(c config.CameraConfig) camera.Viewpoint {
	position := mgl32.Vec3(c.Position)
	if c.Mode == config.ModeOrbit {
		return camera.NewOrbitCamera(position, c.Yaw, c.Pitch, mgl32.Vec3(c.EyeOffset), c.Distance)
	}

	free := camera.NewFreeCamera(position, c.Yaw, c.Pitch)
	if c.LookAt != nil {
		free.LookAt(mgl32.Vec3(*c.LookAt))
	}
	return free
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
