package surface

import "github.com/Faultbox/lathe/pkg/math"

// Mesh holds the CPU-side buffers of a tessellated surface. Positions and
// Normals are tightly packed xyz triples; every three Indices form one
// consistently wound triangle.
type Mesh struct {
	Vertical   int
	Rotational int

	Positions []float32
	Normals   []float32
	Indices   []uint32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Index maps grid coordinates to a vertex index. r wraps around, so
// r == Rotational addresses column 0.
func (m *Mesh) Index(v, r int) uint32 {
	return uint32((r%m.Rotational)*m.Vertical + v)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Position returns vertex i's position.
func (m *Mesh) Position(i int) math.Vec3 {
	return math.Vec3{X: m.Positions[i*3], Y: m.Positions[i*3+1], Z: m.Positions[i*3+2]}
}

// Normal returns vertex i's normal.
func (m *Mesh) Normal(i int) math.Vec3 {
	return math.Vec3{X: m.Normals[i*3], Y: m.Normals[i*3+1], Z: m.Normals[i*3+2]}
}

// Bounds returns the bounding box of all positions.
func (m *Mesh) Bounds() Bounds {
	b := Bounds{
		Min: math.Splat3(1e10),
		Max: math.Splat3(-1e10),
	}
	for i := 0; i < m.VertexCount(); i++ {
		p := m.Position(i)
		b.Min = math.Vec3{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
		b.Max = math.Vec3{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
	}
	return b
}
