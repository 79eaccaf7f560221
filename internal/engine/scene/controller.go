// Package scene holds the gallery of scenes, the state they share and the
// key bindings that switch between them.
package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/lathe/internal/engine/input"
	"github.com/Faultbox/lathe/internal/engine/shading"
	"github.com/Faultbox/lathe/internal/logger"
	"github.com/Faultbox/lathe/pkg/math"
)

// Count is the number of scenes.
const Count = 7

// DegreesPerSecond is the spin rate of the rotating objects.
const DegreesPerSecond = 10

const (
	quadScale  = 0.4
	chaseScale = 0.3
	richScale  = 0.6
)

// Fraction of the remaining distance the chaser covers each frame.
const chaseRate = 0.01

// Separation above which the leader is drawn green.
const chaseSeparation = 0.6

var (
	rotationAxis = math.Vec3{X: 1, Y: 1, Z: 0}

	red   = math.Vec3{X: 1}
	green = math.Vec3{Y: 1}
	blue  = math.Vec3{Z: 1}
	grey  = math.Splat3(0.5)
)

// quadSlot places one mesh in the four-way layout shared by scenes 0-4.
type quadSlot struct {
	mesh   string
	centre math.Vec3
	color  math.Vec3
}

var quadLayout = [4]quadSlot{
	{mesh: MeshCircle, centre: math.Vec3{X: 0.48, Y: 0.48}, color: red},
	{mesh: MeshHalfCircle, centre: math.Vec3{X: -0.48, Y: 0.48}, color: grey},
	{mesh: MeshSpikes, centre: math.Vec3{X: 0.48, Y: -0.48}, color: blue},
	{mesh: MeshSpikyCircle, centre: math.Vec3{X: -0.48, Y: -0.48}, color: green},
}

var sceneKeys = map[input.Key]int{
	input.KeyQ: 1,
	input.KeyW: 2,
	input.KeyE: 3,
	input.KeyR: 4,
	input.KeyT: 5,
	input.KeyY: 6,
}

// SceneForKey returns the scene a key selects.
func SceneForKey(k input.Key) (int, bool) {
	s, ok := sceneKeys[k]
	return s, ok
}

type sceneFunc func(c *Controller, d Device)

var scenes = [Count]sceneFunc{
	0: wireframeScene,
	1: wireframeScene,
	2: normalColorScene,
	3: directionalScene,
	4: piecewiseScene,
	5: chaseScene,
	6: richScene,
}

// Controller owns the scene State and renders the active scene.
type Controller struct {
	state State
}

// NewController returns a controller showing scene 0 in a window of the
// given size.
func NewController(width, height int) *Controller {
	return &Controller{state: State{Width: width, Height: height}}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Scene returns the active scene index.
func (c *Controller) Scene() int {
	return c.state.Scene
}

// SetCursor records the cursor position in window pixels.
func (c *Controller) SetCursor(x, y float64) {
	c.state.CursorX, c.state.CursorY = x, y
}

// Resize records a new window size.
func (c *Controller) Resize(width, height int) {
	c.state.Width, c.state.Height = width, height
}

// SetElapsed sets the animation clock in seconds.
func (c *Controller) SetElapsed(seconds float64) {
	c.state.Elapsed = seconds
}

// HandleKey applies a key press. It returns true when the key asks the
// application to shut down.
func (c *Controller) HandleKey(k input.Key) bool {
	if k == input.KeyEscape {
		return true
	}
	if s, ok := sceneKeys[k]; ok {
		c.SetScene(s)
	}
	return false
}

// SetScene switches to scene s. Out of range values are ignored.
func (c *Controller) SetScene(s int) {
	if s < 0 || s >= Count || s == c.state.Scene {
		return
	}
	logger.Debug("scene changed", zap.Int("from", c.state.Scene), zap.Int("to", s))
	c.state.Scene = s
}

// Render draws the active scene. The caller clears and presents.
func (c *Controller) Render(d Device) {
	scenes[c.state.Scene](c, d)
}

func (c *Controller) spin() math.Mat4 {
	angle := math.DegToRad(float32(c.state.Elapsed * DegreesPerSecond))
	return math.RotateAxis(rotationAxis, angle)
}

// quadTransform returns T(centre)·S(0.4)·R(axis, 10°·t).
func (c *Controller) quadTransform(centre math.Vec3) math.Mat4 {
	return math.TranslateVec3(centre).
		Mul(math.UniformScale(quadScale)).
		Mul(c.spin())
}

func (c *Controller) drawQuad(d Device, tinted bool) {
	for _, slot := range quadLayout {
		d.SetTransform(c.quadTransform(slot.centre))
		if tinted {
			d.SetColor(slot.color)
		}
		d.DrawMesh(slot.mesh)
	}
}

func wireframeScene(c *Controller, d Device) {
	d.UseProgram(shading.Flat)
	d.SetPolygonMode(Wireframe)
	c.drawQuad(d, false)
}

func normalColorScene(c *Controller, d Device) {
	d.UseProgram(shading.NormalColor)
	d.SetPolygonMode(Fill)
	c.drawQuad(d, false)
}

func directionalScene(c *Controller, d Device) {
	d.UseProgram(shading.Directional)
	d.SetPolygonMode(Fill)
	c.drawQuad(d, false)
}

func piecewiseScene(c *Controller, d Device) {
	d.UseProgram(shading.DirectionalPiecewise)
	d.SetPolygonMode(Fill)
	d.SetMousePosition(c.state.Mouse())
	c.drawQuad(d, true)
}

// chaseScene draws a grey half circle easing towards the cursor and a
// leader under the cursor, green while the two are far apart.
func chaseScene(c *Controller, d Device) {
	d.UseProgram(shading.TwoLightMouse)
	d.SetPolygonMode(Fill)

	cursor := c.state.Mouse().Vec3(0)
	c.state.Chaser = cursor.Mix(c.state.Chaser, 1-chaseRate)
	scale := math.UniformScale(chaseScale)

	d.SetTransform(math.TranslateVec3(c.state.Chaser).Mul(scale))
	d.SetColor(grey)
	d.DrawMesh(MeshHalfCircle)

	d.SetTransform(math.TranslateVec3(cursor).Mul(scale))
	if c.state.Chaser.Distance(cursor) > chaseSeparation {
		d.SetColor(green)
	} else {
		d.SetColor(red)
	}
	d.DrawMesh(MeshHalfCircle)
}

func richScene(c *Controller, d Device) {
	d.UseProgram(shading.RichMouse)
	d.SetMousePosition(c.state.Mouse())
	d.SetTransform(math.UniformScale(richScale).Mul(c.spin()))
	d.SetPolygonMode(Fill)
	d.DrawMesh(MeshSpikyCircleHires)
}
