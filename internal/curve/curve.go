// Package curve defines the planar profile curves that are swept around the
// Y axis to build the gallery meshes.
package curve

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Curve maps a parameter t in [0, 1] to a point in the XY plane.
type Curve func(t float64) mgl64.Vec2

// Curve names.
const (
	NameHalfCircle  = "half_circle"
	NameCircle      = "circle"
	NameSpikes      = "spikes"
	NameSpikyCircle = "spiky_circle"
)

// ErrUnknown is returned by Lookup for names that are not registered.
var ErrUnknown = errors.New("unknown curve")

// HalfCircle is the unit semicircle from the south pole (0,-1) to the
// north pole (0,1). Revolved, it gives the unit sphere.
func HalfCircle(t float64) mgl64.Vec2 {
	u := (t - 0.5) * math.Pi
	return mgl64.Vec2{math.Cos(u), math.Sin(u)}
}

// Circle is a circle of radius 0.25 centred at (0.7, 0). Revolved, it gives
// a torus.
func Circle(t float64) mgl64.Vec2 {
	u := 2 * math.Pi * t
	return mgl64.Vec2{math.Cos(u), math.Sin(u)}.Mul(0.25).Add(mgl64.Vec2{0.7, 0})
}

// Spikes is a half-size circle modulated by an 18-fold wave, centred at (0.7, 0).
func Spikes(t float64) mgl64.Vec2 {
	const a = 18.0
	u := (t - 0.5) * 2 * math.Pi
	p := mgl64.Vec2{
		math.Cos(u) + math.Sin(a*u)/a,
		math.Sin(u) + math.Cos(a*u)/a,
	}
	return p.Mul(0.5).Mul(0.25).Add(mgl64.Vec2{0.7, 0})
}

// SpikyCircle is a circle modulated by a 13-fold wave, scaled by 0.35 and
// centred at (0.6, 0).
func SpikyCircle(t float64) mgl64.Vec2 {
	const a = 13.0
	u := 2 * math.Pi * t
	p := mgl64.Vec2{
		math.Cos(u) + math.Sin(a*u)/a,
		math.Sin(u) + math.Cos(a*u)/a,
	}
	return p.Mul(0.35).Add(mgl64.Vec2{0.6, 0})
}

var registry = map[string]Curve{
	NameHalfCircle:  HalfCircle,
	NameCircle:      Circle,
	NameSpikes:      Spikes,
	NameSpikyCircle: SpikyCircle,
}

// Lookup returns the curve registered under name.
func Lookup(name string) (Curve, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return c, nil
}

// Names returns the registered curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
