package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Program is a linked program together with the locations of the uniforms it
// was built with. Locations are resolved once after linking.
type Program struct {
	Name   string
	handle uint32
	locs   map[string]int32
}

// NewProgram compiles and links a program and resolves the given uniforms.
// Uniforms the driver optimised away get location -1 and are ignored by the
// setters.
func NewProgram(name, vertexSrc, fragmentSrc string, uniforms ...string) (*Program, error) {
	handle, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	p := &Program{
		Name:   name,
		handle: handle,
		locs:   make(map[string]int32, len(uniforms)),
	}
	for _, u := range uniforms {
		p.locs[u] = GetUniform(handle, u)
	}
	return p, nil
}

// Use makes p the current program.
func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

// Location returns the location of uniform name, or -1 if p does not read it.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	return -1
}

// SetMat4 uploads a column-major 4x4 matrix. p must be current.
func (p *Program) SetMat4(name string, m *float32) {
	if loc := p.Location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, m)
	}
}

// SetVec2 uploads a vec2. p must be current.
func (p *Program) SetVec2(name string, v *float32) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform2fv(loc, 1, v)
	}
}

// SetVec3 uploads a vec3. p must be current.
func (p *Program) SetVec3(name string, v *float32) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform3fv(loc, 1, v)
	}
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}
