package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/lathe/internal/curve"
	"github.com/Faultbox/lathe/internal/engine/input"
	"github.com/Faultbox/lathe/internal/engine/scene"
	"github.com/Faultbox/lathe/internal/engine/shading"
	"github.com/Faultbox/lathe/internal/engine/surface"
	"github.com/Faultbox/lathe/internal/logger"
	"github.com/Faultbox/lathe/pkg/math"
)

// fakeWindow replays one batch of events per poll and quits once the script
// runs out.
type fakeWindow struct {
	batches [][]input.Event
	polls   int
	swaps   int
	width   int
	height  int
	scale   int
	closed  bool
}

func (w *fakeWindow) PollEvents(dst []input.Event) []input.Event {
	defer func() { w.polls++ }()
	if w.polls >= len(w.batches) {
		return append(dst, input.Quit())
	}
	return append(dst, w.batches[w.polls]...)
}

func (w *fakeWindow) SwapBuffers()                { w.swaps++ }
func (w *fakeWindow) Size() (int, int)            { return w.width, w.height }
func (w *fakeWindow) FramebufferSize() (int, int) { return w.width * w.scale, w.height * w.scale }
func (w *fakeWindow) Close()                      { w.closed = true }

type fakeGPU struct {
	begins   int
	programs []shading.ID
	draws    []string
	resizes  [][2]int
	closed   bool
}

func (g *fakeGPU) UseProgram(id shading.ID)         { g.programs = append(g.programs, id) }
func (g *fakeGPU) SetPolygonMode(scene.PolygonMode) {}
func (g *fakeGPU) SetTransform(math.Mat4)           {}
func (g *fakeGPU) SetMousePosition(math.Vec2)       {}
func (g *fakeGPU) SetColor(math.Vec3)               {}
func (g *fakeGPU) DrawMesh(name string)             { g.draws = append(g.draws, name) }
func (g *fakeGPU) Begin()                           { g.begins++ }
func (g *fakeGPU) Resize(width, height int)         { g.resizes = append(g.resizes, [2]int{width, height}) }
func (g *fakeGPU) Close()                           { g.closed = true }

func newTestApp(batches ...[]input.Event) (*App, *fakeWindow, *fakeGPU) {
	win := &fakeWindow{batches: batches, width: 600, height: 600, scale: 1}
	g := &fakeGPU{}
	a := newApp(win, g, scene.NewController(win.width, win.height))

	// Deterministic clock: 1/60 s per call.
	t0 := time.Unix(0, 0)
	calls := 0
	a.now = func() time.Time {
		calls++
		return t0.Add(time.Duration(calls) * time.Second / 60)
	}
	return a, win, g
}

func TestRunStopsOnEscape(t *testing.T) {
	a, win, g := newTestApp(
		nil,
		nil,
		[]input.Event{input.KeyDown(input.KeyEscape, false)},
	)

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, 2, win.swaps)
	assert.Equal(t, 2, g.begins)
	assert.Equal(t, 3, win.polls)
}

func TestRunStopsOnQuit(t *testing.T) {
	a, win, g := newTestApp([]input.Event{input.MouseMove(1, 1), input.Quit()})

	require.NoError(t, a.Run(context.Background()))

	assert.Zero(t, win.swaps)
	assert.Zero(t, g.begins)
}

func TestRunStopsOnCancel(t *testing.T) {
	a, win, _ := newTestApp()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, a.Run(ctx))
	assert.Zero(t, win.polls)
}

func TestRunSwitchesScenes(t *testing.T) {
	a, _, g := newTestApp(
		nil,
		[]input.Event{input.KeyDown(input.KeyW, false)},
		[]input.Event{input.KeyDown(input.KeyY, false)},
	)

	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, []shading.ID{shading.Flat, shading.NormalColor, shading.RichMouse}, g.programs)
	assert.Equal(t, 6, a.Controller().Scene())
}

func TestRunIgnoresKeyRepeat(t *testing.T) {
	a, _, _ := newTestApp(
		[]input.Event{input.KeyDown(input.KeyE, false)},
		[]input.Event{input.KeyDown(input.KeyEscape, true)},
	)

	// The repeated Escape is not a press, so the loop runs until the script
	// ends.
	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, 3, a.Controller().Scene())
}

func TestRunAdvancesClock(t *testing.T) {
	a, _, _ := newTestApp(nil, nil, nil)

	require.NoError(t, a.Run(context.Background()))
	assert.InDelta(t, 3.0/60, a.Controller().State().Elapsed, 1e-9)
}

func TestApplyResizeUsesFramebufferSize(t *testing.T) {
	a, win, g := newTestApp()
	win.width, win.height, win.scale = 400, 300, 2

	a.apply(input.Collect([]input.Event{input.Resize(400, 300)}))

	assert.Equal(t, [][2]int{{800, 600}}, g.resizes)
	assert.Equal(t, 400, a.Controller().State().Width)
}

func TestApplyCursorCoalesced(t *testing.T) {
	a, _, _ := newTestApp()

	a.apply(input.Collect([]input.Event{
		input.MouseMove(10, 10),
		input.MouseMove(450, 150),
	}))

	assert.Equal(t, math.Vec2{X: 0.5, Y: 0.5}, a.Controller().State().Mouse())
}

func TestApplyKeysInOrder(t *testing.T) {
	a, _, _ := newTestApp()

	quit := a.apply(input.Collect([]input.Event{
		input.KeyDown(input.KeyR, false),
		input.KeyUp(input.KeyR),
		input.KeyDown(input.KeyT, false),
	}))

	assert.False(t, quit)
	assert.Equal(t, 5, a.Controller().Scene())
}

func TestClose(t *testing.T) {
	a, win, g := newTestApp()
	a.Close()
	a.Close()

	assert.True(t, win.closed)
	assert.True(t, g.closed)
}

type recordingUploader struct {
	meshes map[string]*surface.Mesh
	fail   error
}

func (u *recordingUploader) AddMesh(name string, m *surface.Mesh) error {
	if u.fail != nil {
		return u.fail
	}
	u.meshes[name] = m
	return nil
}

func TestUploadMeshes(t *testing.T) {
	up := &recordingUploader{meshes: map[string]*surface.Mesh{}}
	entries := []scene.MeshSpec{
		{Name: "ring", Curve: curve.NameCircle, Vertical: 4, Rotational: 4},
		{Name: "ball", Curve: curve.NameHalfCircle, Vertical: 8, Rotational: 6},
	}

	require.NoError(t, uploadMeshes(up, entries))

	require.Len(t, up.meshes, 2)
	assert.Equal(t, 16, up.meshes["ring"].VertexCount())
	assert.Equal(t, 2*6*7, up.meshes["ball"].TriangleCount())
}

func TestUploadMeshesLogsBounds(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })

	up := &recordingUploader{meshes: map[string]*surface.Mesh{}}
	entries := []scene.MeshSpec{{Name: "ring", Curve: curve.NameCircle, Vertical: 8, Rotational: 8}}
	require.NoError(t, uploadMeshes(up, entries))

	ready := logs.FilterMessage("mesh ready").All()
	require.Len(t, ready, 1)
	fields := ready[0].ContextMap()
	assert.Equal(t, "ring", fields["name"])

	b := up.meshes["ring"].Bounds()
	assert.Equal(t, []interface{}{b.Min.X, b.Min.Y, b.Min.Z}, fields["min"])
	assert.Equal(t, []interface{}{b.Max.X, b.Max.Y, b.Max.Z}, fields["max"])
	// The ring's outer edge sits at x = 0.7 + 0.25.
	assert.InDelta(t, 0.95, b.Max.X, 1e-5)
}

func TestUploadMeshesErrors(t *testing.T) {
	t.Run("unknown curve", func(t *testing.T) {
		up := &recordingUploader{meshes: map[string]*surface.Mesh{}}
		err := uploadMeshes(up, []scene.MeshSpec{{Name: "x", Curve: "spiral", Vertical: 4, Rotational: 4}})
		assert.ErrorIs(t, err, curve.ErrUnknown)
	})

	t.Run("bad resolution", func(t *testing.T) {
		up := &recordingUploader{meshes: map[string]*surface.Mesh{}}
		err := uploadMeshes(up, []scene.MeshSpec{{Name: "x", Curve: curve.NameCircle, Vertical: 1, Rotational: 4}})
		assert.ErrorIs(t, err, surface.ErrInvalidResolution)
	})

	t.Run("upload failure", func(t *testing.T) {
		boom := errors.New("out of memory")
		up := &recordingUploader{meshes: map[string]*surface.Mesh{}, fail: boom}
		err := uploadMeshes(up, []scene.MeshSpec{{Name: "x", Curve: curve.NameCircle, Vertical: 4, Rotational: 4}})
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "mesh x")
	})
}
