package scene

import "github.com/Faultbox/lathe/internal/curve"

// Mesh names drawn by the scenes.
const (
	MeshCircle           = curve.NameCircle
	MeshHalfCircle       = curve.NameHalfCircle
	MeshSpikes           = curve.NameSpikes
	MeshSpikyCircle      = curve.NameSpikyCircle
	MeshSpikyCircleHires = "spiky_circle_hires"
)

// MeshSpec describes how one named mesh is tessellated.
type MeshSpec struct {
	Name       string
	Curve      string
	Vertical   int
	Rotational int
}

// Meshes lists every mesh the scenes draw, in upload order.
var Meshes = []MeshSpec{
	{Name: MeshCircle, Curve: curve.NameCircle, Vertical: 16, Rotational: 16},
	{Name: MeshHalfCircle, Curve: curve.NameHalfCircle, Vertical: 16, Rotational: 16},
	{Name: MeshSpikyCircle, Curve: curve.NameSpikyCircle, Vertical: 60, Rotational: 20},
	{Name: MeshSpikes, Curve: curve.NameSpikes, Vertical: 12, Rotational: 6},
	{Name: MeshSpikyCircleHires, Curve: curve.NameSpikyCircle, Vertical: 1024, Rotational: 1024},
}
