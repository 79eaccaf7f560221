package scene

import (
	"github.com/Faultbox/lathe/internal/engine/shading"
	"github.com/Faultbox/lathe/pkg/math"
)

// PolygonMode selects how triangles are rasterised.
type PolygonMode int

const (
	Fill PolygonMode = iota
	Wireframe
)

func (m PolygonMode) String() string {
	if m == Wireframe {
		return "wireframe"
	}
	return "fill"
}

// Device is the subset of the GPU the scenes draw through. Uniform setters
// apply to the current program and are ignored when it does not declare the
// uniform.
type Device interface {
	UseProgram(id shading.ID)
	SetPolygonMode(mode PolygonMode)
	SetTransform(m math.Mat4)
	SetMousePosition(p math.Vec2)
	SetColor(c math.Vec3)
	DrawMesh(name string)
}
