// Package window creates the application window and its OpenGL context and
// translates native input into input.Events.
package window

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/Faultbox/lathe/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names accepted in Config.Backend.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// ErrUnknownBackend is returned by New for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown window backend")

// Config holds window configuration.
type Config struct {
	Title   string
	Width   int
	Height  int
	VSync   bool
	Backend string
	// Requested core-profile context version.
	GLMajor int
	GLMinor int
}

// Window is an open window with a current OpenGL context.
type Window interface {
	// PollEvents appends pending events to dst and returns it.
	PollEvents(dst []input.Event) []input.Event
	SwapBuffers()
	// Size is the window size in screen coordinates, the space cursor
	// positions are reported in.
	Size() (int, int)
	// FramebufferSize is the drawable size in pixels.
	FramebufferSize() (int, int)
	Close()
}

// New opens a window using the configured backend.
func New(cfg Config) (Window, error) {
	switch cfg.Backend {
	case BackendSDL, "":
		w, err := newSDL(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	case BackendGLFW:
		w, err := newGLFW(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}
