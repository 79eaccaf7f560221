// Package math provides the float32 vector and matrix types that are uploaded
// to the GPU as uniforms.
package math

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Vec3 lifts v into 3D with the given z.
func (v Vec2) Vec3(z float32) Vec3 {
	return Vec3{v.X, v.Y, z}
}

// Ptr returns a pointer to the first component (for OpenGL uniform calls).
func (v *Vec2) Ptr() *float32 {
	return &v.X
}
