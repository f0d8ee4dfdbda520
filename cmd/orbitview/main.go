package main

import (
	"flag"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/rendiation"
	"github.com/gekko3d/rendiation/platform"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/xlab/closer"
)

// viewer is the application state handed to every listener. Both controllers
// exist; cfg.Controller decides which one has listeners installed.
type viewer struct {
	mode   string
	window *rendiation.WindowState
	camera *rendiation.PerspectiveCamera
	orbit  *rendiation.OrbitController
	fps    *rendiation.FpsController
}

func (v *viewer) WindowState() *rendiation.WindowState         { return v.window }
func (v *viewer) Camera() rendiation.Camera                    { return v.camera }
func (v *viewer) OrbitController() *rendiation.OrbitController { return v.orbit }
func (v *viewer) FpsController() *rendiation.FpsController     { return v.fps }

// newViewer builds the state for a window whose logical size is width x height.
func newViewer(cfg rendiation.ViewConfig, width, height, hidpi float32) (*viewer, error) {
	ws, err := rendiation.NewWindowState(width, height, hidpi)
	if err != nil {
		return nil, err
	}
	cfg.Width, cfg.Height = width, height
	cam, err := cfg.NewPerspectiveCamera()
	if err != nil {
		return nil, err
	}
	oc, err := rendiation.NewOrbitController(mgl32.Vec3{}, cfg.OrbitRadius, 0, 0.3)
	if err != nil {
		return nil, err
	}
	fc, err := rendiation.NewFpsController(oc.Position(), 0, -0.3, rendiation.WithFpsSpeed(cfg.MoveSpeed))
	if err != nil {
		return nil, err
	}

	v := &viewer{mode: cfg.Controller, window: ws, camera: cam, orbit: oc, fps: fc}
	v.updateCamera()
	return v, nil
}

func (v *viewer) updateCamera() {
	if v.mode == rendiation.ControllerFps {
		v.fps.Update(v.camera.Transform())
		return
	}
	v.orbit.Update(v.camera.Transform())
}

func (v *viewer) eye() mgl32.Vec3 {
	return v.camera.Transform().Position
}

// newSession installs the resize module and the listeners of the selected
// navigation mode.
func newSession(v *viewer, logger rendiation.Logger, onEscape func()) *rendiation.EventSession[*viewer] {
	session := rendiation.NewEventSession[*viewer](rendiation.WithLogger(logger)).
		UseModule(rendiation.CameraResizeModule[*viewer]{})
	if v.mode == rendiation.ControllerFps {
		session.UseModule(rendiation.FpsControlModule[*viewer]{LookButton: rendiation.MouseButtonRight})
	} else {
		session.UseModule(rendiation.OrbitControlModule[*viewer]{})
	}
	session.AddKeyDownListener(rendiation.ListenerFunc[*viewer](
		func(ev rendiation.Event, _ *viewer, _ rendiation.Surface) error {
			if key, ok := ev.(rendiation.KeyEvent); ok && key.Key == rendiation.KeyEscape {
				onEscape()
			}
			return nil
		}))
	return session
}

// frame advances time-based movement and returns the matrix to upload, plus
// the cursor motion accumulated since the previous frame.
func (v *viewer) frame(dt float32) (mgl32.Mat4, mgl32.Vec2) {
	if v.mode == rendiation.ControllerFps {
		v.fps.Advance(v.window, dt)
		v.fps.Update(v.camera.Transform())
	}
	return rendiation.ViewProjection(v.camera), v.window.TakeMotion()
}

func main() {
	configPath := flag.String("config", "orbitview.toml", "Path to the TOML view config")
	debug := flag.Bool("debug", false, "Log every dispatched event")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		panic(err)
	}
	if *debug {
		cfg.Debug = true
	}
	logger := rendiation.NewDefaultLogger("orbitview", cfg.Debug)

	window, hidpi, err := platform.CreateWindow(cfg)
	if err != nil {
		panic(err)
	}
	fbw, fbh := window.GetFramebufferSize()
	surface, err := platform.NewWGPUSurface(window, uint32(fbw), uint32(fbh))
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		panic(err)
	}
	cleanup := func() {
		surface.Release()
		window.Destroy()
		glfw.Terminate()
	}

	width, height := platform.LogicalFramebufferSize(window, hidpi)
	state, err := newViewer(cfg.WithDefaults(), width, height, hidpi)
	if err != nil {
		cleanup()
		panic(err)
	}

	var once sync.Once
	closer.Bind(func() { once.Do(cleanup) })
	defer closer.Close()

	session := newSession(state, logger.Scoped("session"), func() { window.SetShouldClose(true) })
	source := platform.NewGLFWSource(window, hidpi, func(ev rendiation.Event) {
		if err := session.Dispatch(ev, state, surface); err != nil {
			// minimized windows report a zero size
			logger.Debugf("event dropped: %v", err)
		}
	})

	logger.Infof("orbitview started: %vx%v hidpi %v, %s controller", width, height, hidpi, state.mode)
	last := glfw.GetTime()
	for !source.ShouldClose() {
		source.PollEvents()

		now := glfw.GetTime()
		viewProj, motion := state.frame(float32(now - last))
		last = now

		if logger.DebugEnabled() && motion != (mgl32.Vec2{}) {
			eye := state.eye()
			logger.Debugf("moved %v this frame, eye (%.3f, %.3f, %.3f)", motion, eye.X(), eye.Y(), eye.Z())
		}
		if err := surface.WriteViewProjection(viewProj); err != nil {
			logger.Warnf("frame: %v", err)
			continue
		}
		// The clear pass stands in for scene drawing; a pipeline would bind
		// surface.CameraBuffer() at group 0.
		if err := surface.Clear(wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}); err != nil {
			logger.Warnf("frame: %v", err)
		}
	}
}
