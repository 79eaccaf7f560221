// Package app implements the frame loop: poll input, update the scene state,
// render, present.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/lathe/internal/config"
	"github.com/Faultbox/lathe/internal/curve"
	"github.com/Faultbox/lathe/internal/engine/input"
	"github.com/Faultbox/lathe/internal/engine/renderer"
	"github.com/Faultbox/lathe/internal/engine/scene"
	"github.com/Faultbox/lathe/internal/engine/surface"
	"github.com/Faultbox/lathe/internal/engine/window"
	"github.com/Faultbox/lathe/internal/logger"
)

// gpu is what the loop needs from the renderer.
type gpu interface {
	scene.Device
	Begin()
	Resize(width, height int)
	Close()
}

type meshUploader interface {
	AddMesh(name string, m *surface.Mesh) error
}

// App is the running application.
type App struct {
	window window.Window
	gpu    gpu
	ctrl   *scene.Controller
	events []input.Event
	now    func() time.Time
}

// New opens the window, initialises OpenGL, uploads every mesh in
// scene.Meshes and links the shading programs. Anything created before a
// failure is released.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing lathe",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("backend", cfg.Window.Backend),
	)

	// Create window (this also creates OpenGL context)
	win, err := window.New(window.Config{
		Title:   cfg.Window.Title,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		VSync:   cfg.Window.VSync,
		Backend: cfg.Window.Backend,
		GLMajor: cfg.Window.GLMajor,
		GLMinor: cfg.Window.GLMinor,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	fw, fh := win.FramebufferSize()
	r, err := renderer.New(fw, fh)
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := uploadMeshes(r, scene.Meshes); err != nil {
		r.Close()
		win.Close()
		return nil, fmt.Errorf("failed to upload meshes: %w", err)
	}

	w, h := win.Size()
	a := newApp(win, r, scene.NewController(w, h))

	logger.Info("lathe initialized successfully")
	return a, nil
}

func newApp(win window.Window, g gpu, ctrl *scene.Controller) *App {
	return &App{
		window: win,
		gpu:    g,
		ctrl:   ctrl,
		events: make([]input.Event, 0, 16),
		now:    time.Now,
	}
}

// uploadMeshes tessellates each entry and hands the result to up.
func uploadMeshes(up meshUploader, entries []scene.MeshSpec) error {
	for _, e := range entries {
		f, err := curve.Lookup(e.Curve)
		if err != nil {
			return fmt.Errorf("mesh %s: %w", e.Name, err)
		}

		start := time.Now()
		m, err := surface.Tessellate(f, e.Vertical, e.Rotational)
		if err != nil {
			return fmt.Errorf("mesh %s: %w", e.Name, err)
		}
		if err := up.AddMesh(e.Name, m); err != nil {
			return fmt.Errorf("mesh %s: %w", e.Name, err)
		}

		b := m.Bounds()
		logger.Debug("mesh ready",
			zap.String("name", e.Name),
			zap.Int("vertices", m.VertexCount()),
			zap.Int("triangles", m.TriangleCount()),
			zap.Float32s("min", []float32{b.Min.X, b.Min.Y, b.Min.Z}),
			zap.Float32s("max", []float32{b.Max.X, b.Max.Y, b.Max.Z}),
			zap.Duration("took", time.Since(start)),
		)
	}
	return nil
}

// Controller exposes the scene controller.
func (a *App) Controller() *scene.Controller {
	return a.ctrl
}

// Run runs the frame loop until shutdown is requested or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	start := a.now()
	frameCount := 0
	fpsTimer := start
	lastTime := start

	logger.Info("starting frame loop")

	for {
		select {
		case <-ctx.Done():
			logger.Info("frame loop cancelled", zap.Error(ctx.Err()))
			return nil
		default:
		}

		// 1. Process input
		a.events = a.window.PollEvents(a.events[:0])
		if a.apply(input.Collect(a.events)) {
			logger.Info("shutdown requested")
			return nil
		}

		// 2. Advance the clock
		now := a.now()
		dt := now.Sub(lastTime)
		lastTime = now
		a.ctrl.SetElapsed(now.Sub(start).Seconds())

		// 3. Render
		a.gpu.Begin()
		a.ctrl.Render(a.gpu)

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		// FPS counter
		frameCount++
		if now.Sub(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
				zap.Int("scene", a.ctrl.Scene()),
			)
			frameCount = 0
			fpsTimer = now
		}
	}
}

// apply feeds one frame of input into the controller and the renderer. It
// returns true when the application should stop.
func (a *App) apply(f input.Frame) bool {
	if f.Resized {
		a.resize(f.Width, f.Height)
	}
	if f.Moved {
		a.ctrl.SetCursor(f.MouseX, f.MouseY)
	}

	quit := f.Quit
	for _, k := range f.Presses {
		if a.ctrl.HandleKey(k) {
			quit = true
		}
	}
	return quit
}

func (a *App) resize(width, height int) {
	a.ctrl.Resize(width, height)
	fw, fh := a.window.FramebufferSize()
	a.gpu.Resize(fw, fh)
}

// Close releases the renderer and the window.
func (a *App) Close() {
	logger.Info("closing lathe")

	if a.gpu != nil {
		a.gpu.Close()
		a.gpu = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}
