// Package mesh uploads tessellated surfaces to the GPU and draws them.
package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/lathe/internal/engine/surface"
	"github.com/Faultbox/lathe/internal/logger"
)

// Attribute slots shared with the vertex shader.
const (
	PositionSlot = 0
	NormalSlot   = 1
)

// ErrEmpty is returned when a surface has no triangles to upload.
var ErrEmpty = errors.New("mesh has no triangles")

// Mesh is a surface resident in GPU memory: one VAO with positions at slot 0,
// normals at slot 1 and a uint32 element buffer.
type Mesh struct {
	Name string

	vao uint32
	vbo [2]uint32 // positions, normals
	ebo uint32

	indexCount int32
}

// New uploads s. It must be called with a current GL context.
func New(name string, s *surface.Mesh) (*Mesh, error) {
	if s == nil || len(s.Indices) == 0 || len(s.Positions) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmpty)
	}

	m := &Mesh{
		Name:       name,
		indexCount: int32(len(s.Indices)),
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(2, &m.vbo[0])
	uploadAttribute(m.vbo[0], PositionSlot, s.Positions)
	uploadAttribute(m.vbo[1], NormalSlot, s.Normals)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(s.Indices)*4, gl.Ptr(s.Indices), gl.STATIC_DRAW)

	// The element buffer binding is VAO state; only unbind the VAO.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	logger.Debug("mesh uploaded",
		zap.String("name", name),
		zap.Int("vertices", s.VertexCount()),
		zap.Int("triangles", s.TriangleCount()),
		zap.Uint32("vao", m.vao),
	)
	return m, nil
}

// uploadAttribute fills buffer with tightly packed vec3 data bound to slot.
func uploadAttribute(buffer, slot uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.VertexAttribPointer(slot, 3, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(slot)
}

// Draw binds the vertex layout and issues one indexed triangle draw.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers.
func (m *Mesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo[0] != 0 {
		gl.DeleteBuffers(2, &m.vbo[0])
		m.vbo = [2]uint32{}
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
}
