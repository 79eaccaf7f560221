package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/lathe/internal/engine/input"
	"github.com/Faultbox/lathe/internal/logger"
)

// glfwWindow wraps a GLFW window. Callbacks queue events until the next
// PollEvents.
type glfwWindow struct {
	config  Config
	glw     *glfw.Window
	pending []input.Event
}

func newGLFW(cfg Config) (*glfwWindow, error) {
	w := &glfwWindow{
		config:  cfg,
		pending: make([]input.Event, 0, 16),
	}

	logger.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfwInit failed: %w", err)
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	glw, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfwCreateWindow failed: %w", err)
	}
	w.glw = glw
	glw.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	glw.SetKeyCallback(w.keyEvent)
	glw.SetCursorPosCallback(w.cursorPosEvent)
	glw.SetSizeCallback(w.sizeEvent)
	glw.SetCloseCallback(w.closeEvent)

	logger.Info("window created",
		zap.String("backend", BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

func (w *glfwWindow) keyEvent(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKey(key)
	switch action {
	case glfw.Press:
		w.pending = append(w.pending, input.KeyDown(k, false))
	case glfw.Repeat:
		w.pending = append(w.pending, input.KeyDown(k, true))
	case glfw.Release:
		w.pending = append(w.pending, input.KeyUp(k))
	}
}

func (w *glfwWindow) cursorPosEvent(_ *glfw.Window, x, y float64) {
	w.pending = append(w.pending, input.MouseMove(x, y))
}

func (w *glfwWindow) sizeEvent(_ *glfw.Window, width, height int) {
	w.pending = append(w.pending, input.Resize(width, height))
}

func (w *glfwWindow) closeEvent(_ *glfw.Window) {
	w.pending = append(w.pending, input.Quit())
}

func glfwKey(k glfw.Key) input.Key {
	switch k {
	case glfw.KeyEscape:
		return input.KeyEscape
	case glfw.KeyQ:
		return input.KeyQ
	case glfw.KeyW:
		return input.KeyW
	case glfw.KeyE:
		return input.KeyE
	case glfw.KeyR:
		return input.KeyR
	case glfw.KeyT:
		return input.KeyT
	case glfw.KeyY:
		return input.KeyY
	}
	return input.KeyUnknown
}

// PollEvents runs the GLFW callbacks and hands over what they queued.
func (w *glfwWindow) PollEvents(dst []input.Event) []input.Event {
	glfw.PollEvents()
	dst = append(dst, w.pending...)
	w.pending = w.pending[:0]
	return dst
}

func (w *glfwWindow) SwapBuffers() {
	w.glw.SwapBuffers()
}

func (w *glfwWindow) Size() (int, int) {
	return w.glw.GetSize()
}

func (w *glfwWindow) FramebufferSize() (int, int) {
	return w.glw.GetFramebufferSize()
}

// Close destroys the window and terminates GLFW.
func (w *glfwWindow) Close() {
	logger.Info("closing window")
	if w.glw != nil {
		w.glw.Destroy()
		w.glw = nil
	}
	glfw.Terminate()
}
