// Package shading describes the fixed catalogue of shading programs: their
// names, GLSL sources and the uniforms each one reads.
package shading

import (
	"errors"
	"fmt"

	"github.com/Faultbox/lathe/internal/engine/shading/shaders"
)

// ID names a shading program.
type ID string

// Program identifiers.
const (
	Flat                 ID = "flat"
	NormalColor          ID = "normal_color"
	Directional          ID = "directional"
	DirectionalPiecewise ID = "directional_piecewise"
	TwoLightMouse        ID = "two_light_mouse"
	RichMouse            ID = "rich_mouse"
)

// Uniform is a uniform slot a program may declare.
type Uniform int

// Uniform slots.
const (
	Transform     Uniform = iota // mat4
	MousePosition                // vec2, normalised device coordinates
	Color                        // vec3 tint
)

var uniformNames = [...]string{
	Transform:     "u_transform",
	MousePosition: "u_mouse_position",
	Color:         "u_color",
}

// GLSLName returns the uniform's variable name in the shader sources.
func (u Uniform) GLSLName() string {
	if int(u) < 0 || int(u) >= len(uniformNames) {
		return ""
	}
	return uniformNames[u]
}

func (u Uniform) String() string {
	switch u {
	case Transform:
		return "transform"
	case MousePosition:
		return "mouse_position"
	case Color:
		return "color"
	}
	return fmt.Sprintf("Uniform(%d)", int(u))
}

// ErrUnknown is returned by Lookup for IDs outside the catalogue.
var ErrUnknown = errors.New("unknown shading program")

// Descriptor is the static description of one program.
type Descriptor struct {
	ID       ID
	Vertex   string
	Fragment string
	Uniforms []Uniform
}

// Declares reports whether the program reads u.
func (d Descriptor) Declares(u Uniform) bool {
	for _, du := range d.Uniforms {
		if du == u {
			return true
		}
	}
	return false
}

var catalogue = []Descriptor{
	{
		ID:       Flat,
		Vertex:   shaders.CommonVertexShader,
		Fragment: shaders.FlatFragmentShader,
		Uniforms: []Uniform{Transform},
	},
	{
		ID:       NormalColor,
		Vertex:   shaders.CommonVertexShader,
		Fragment: shaders.NormalColorFragmentShader,
		Uniforms: []Uniform{Transform},
	},
	{
		ID:       Directional,
		Vertex:   shaders.CommonVertexShader,
		Fragment: shaders.DirectionalFragmentShader,
		Uniforms: []Uniform{Transform},
	},
	{
		ID:       DirectionalPiecewise,
		Vertex:   shaders.CommonVertexShader,
		Fragment: shaders.DirectionalPiecewiseFragmentShader,
		Uniforms: []Uniform{Transform, MousePosition, Color},
	},
	{
		ID:       TwoLightMouse,
		Vertex:   shaders.CommonVertexShader,
		Fragment: shaders.TwoLightMouseFragmentShader,
		Uniforms: []Uniform{Transform, Color},
	},
	{
		ID:       RichMouse,
		Vertex:   shaders.CommonVertexShader,
		Fragment: shaders.RichMouseFragmentShader,
		Uniforms: []Uniform{Transform, MousePosition},
	},
}

// Catalogue returns every program descriptor in a stable order.
func Catalogue() []Descriptor {
	out := make([]Descriptor, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup returns the descriptor for id.
func Lookup(id ID) (Descriptor, error) {
	for _, d := range catalogue {
		if d.ID == id {
			return d, nil
		}
	}
	return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknown, id)
}
