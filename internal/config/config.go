// Package config handles application configuration loading.
package config

import (
	"errors"
	"fmt"
)

// Config holds all application settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds window and OpenGL context settings.
type WindowConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Backend string `yaml:"backend"` // sdl or glfw
	VSync   bool   `yaml:"vsync"`
	GLMajor int    `yaml:"gl_major"`
	GLMinor int    `yaml:"gl_minor"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Supported window backends.
var Backends = []string{"sdl", "glfw"}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:   "lathe",
			Width:   600,
			Height:  600,
			Backend: "sdl",
			VSync:   true,
			GLMajor: 4,
			GLMinor: 1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks that the settings can open a window.
func (c *Config) Validate() error {
	w := c.Window
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, w.Width, w.Height)
	}

	known := false
	for _, b := range Backends {
		if w.Backend == b {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: window backend %q", ErrInvalid, w.Backend)
	}

	// The shaders are GLSL 330 core.
	if w.GLMajor < 3 || (w.GLMajor == 3 && w.GLMinor < 3) {
		return fmt.Errorf("%w: OpenGL %d.%d, need 3.3 or newer", ErrInvalid, w.GLMajor, w.GLMinor)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}
