// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/lathe/internal/engine/mesh"
	"github.com/Faultbox/lathe/internal/engine/scene"
	"github.com/Faultbox/lathe/internal/engine/shader"
	"github.com/Faultbox/lathe/internal/engine/shading"
	"github.com/Faultbox/lathe/internal/engine/surface"
	"github.com/Faultbox/lathe/internal/logger"
	"github.com/Faultbox/lathe/pkg/math"
)

// ClearColor is the framebuffer clear color.
var ClearColor = [4]float32{0, 0, 0, 0.1}

// Renderer owns the GL state, the linked programs and the uploaded meshes.
// It implements scene.Device.
type Renderer struct {
	programs *shader.Set
	current  *shader.Program
	declared shading.Descriptor

	meshes map[string]*mesh.Mesh
	order  []string
}

var _ scene.Device = (*Renderer)(nil)

// New initialises GL, sets the depth and viewport state for a width x height
// framebuffer, and compiles and links every program in the shading catalogue.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		meshes: make(map[string]*mesh.Mesh),
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	glsl := gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
		zap.String("glsl", glsl),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	gl.Viewport(0, 0, int32(width), int32(height))

	programs, err := shader.NewSet(shading.Catalogue())
	if err != nil {
		return nil, fmt.Errorf("failed to link shading programs: %w", err)
	}
	r.programs = programs

	return r, nil
}

// AddMesh uploads s under name, replacing any mesh with the same name.
func (r *Renderer) AddMesh(name string, s *surface.Mesh) error {
	m, err := mesh.New(name, s)
	if err != nil {
		return err
	}
	if old, ok := r.meshes[name]; ok {
		old.Delete()
	} else {
		r.order = append(r.order, name)
	}
	r.meshes[name] = m
	return nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for i := len(r.order) - 1; i >= 0; i-- {
		r.meshes[r.order[i]].Delete()
	}
	r.meshes = map[string]*mesh.Mesh{}
	r.order = nil

	if r.programs != nil {
		r.programs.Delete()
		r.programs = nil
	}
	r.current = nil
	r.declared = shading.Descriptor{}
}

// Resize handles framebuffer resize.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// UseProgram makes the program id current. Unknown ids unbind the program.
func (r *Renderer) UseProgram(id shading.ID) {
	d, err := shading.Lookup(id)
	p, ok := r.programs.Get(id)
	if err != nil || !ok {
		logger.Warn("unknown shading program", zap.String("program", string(id)))
		r.current = nil
		r.declared = shading.Descriptor{}
		gl.UseProgram(0)
		return
	}
	r.current = p
	r.declared = d
	p.Use()
}

// accepts reports whether the current program reads u.
func (r *Renderer) accepts(u shading.Uniform) bool {
	return r.current != nil && r.declared.Declares(u)
}

// SetPolygonMode switches between filled and wireframe rasterisation.
func (r *Renderer) SetPolygonMode(mode scene.PolygonMode) {
	if mode == scene.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		return
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

// SetTransform uploads the object transform to the current program.
func (r *Renderer) SetTransform(m math.Mat4) {
	if r.accepts(shading.Transform) {
		r.current.SetMat4(shading.Transform.GLSLName(), m.Ptr())
	}
}

// SetMousePosition uploads the normalised cursor to the current program.
func (r *Renderer) SetMousePosition(p math.Vec2) {
	if r.accepts(shading.MousePosition) {
		r.current.SetVec2(shading.MousePosition.GLSLName(), p.Ptr())
	}
}

// SetColor uploads the surface color to the current program.
func (r *Renderer) SetColor(c math.Vec3) {
	if r.accepts(shading.Color) {
		r.current.SetVec3(shading.Color.GLSLName(), c.Ptr())
	}
}

// DrawMesh issues one indexed draw of the named mesh.
func (r *Renderer) DrawMesh(name string) {
	m, ok := r.meshes[name]
	if !ok {
		logger.Warn("unknown mesh", zap.String("mesh", name))
		return
	}
	m.Draw()
}
