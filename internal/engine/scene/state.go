package scene

import "github.com/Faultbox/lathe/pkg/math"

// State is everything the scenes read or mutate between frames.
type State struct {
	// Scene is the active scene index, 0..Count-1.
	Scene int
	// Cursor position in window pixels, origin top-left.
	CursorX, CursorY float64
	// Window size in pixels.
	Width, Height int
	// Elapsed is the time since start in seconds; drives the rotations.
	Elapsed float64
	// Chaser trails the cursor in the chase scene. It keeps its position
	// while other scenes are shown.
	Chaser math.Vec3
}

// Mouse returns the cursor in normalised device coordinates.
func (s State) Mouse() math.Vec2 {
	return NormalizeMouse(s.CursorX, s.CursorY, s.Width, s.Height)
}

// NormalizeMouse maps a cursor in window pixels to [-1,1]² with y pointing up.
// A zero dimension maps to 0 on that axis.
func NormalizeMouse(x, y float64, width, height int) math.Vec2 {
	var n math.Vec2
	if width > 0 {
		n.X = float32(2*(x/float64(width)) - 1)
	}
	if height > 0 {
		n.Y = float32(2*(1-y/float64(height)) - 1)
	}
	return n
}
