// Package surface tessellates surfaces of revolution: a planar curve swept
// around the Y axis into an indexed triangle mesh with per-vertex normals.
package surface

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/lathe/internal/curve"
)

// Minimum resolutions accepted by Tessellate.
const (
	MinVertical   = 2
	MinRotational = 3
)

// ErrInvalidResolution is returned when the vertical or rotational
// resolution is below its minimum.
var ErrInvalidResolution = errors.New("invalid surface resolution")

// degenerateNormal is the cross product length below which a vertex is
// treated as lying on the axis.
const degenerateNormal = 1e-12

// Tessellate sweeps f around the Y axis. vertical is the number of samples
// along the curve, rotational the number of angular columns. Vertex (v, r)
// is stored at index r*vertical+v.
func Tessellate(f curve.Curve, vertical, rotational int) (*Mesh, error) {
	if vertical < MinVertical || rotational < MinRotational {
		return nil, fmt.Errorf("%w: vertical=%d (min %d), rotational=%d (min %d)",
			ErrInvalidResolution, vertical, MinVertical, rotational, MinRotational)
	}

	s := sweep{f: f}
	n := vertical * rotational

	m := &Mesh{
		Vertical:   vertical,
		Rotational: rotational,
		Positions:  make([]float32, 0, n*3),
		Normals:    make([]float32, 0, n*3),
		Indices:    make([]uint32, 0, rotational*(vertical-1)*6),
	}

	// Columns use r/R so that column R would land on column 0; the seam is
	// closed by the modulo in Index, never by duplicate vertices.
	dv := 1 / float64(vertical-1)
	dr := 1 / float64(rotational)

	for r := 0; r < rotational; r++ {
		for v := 0; v < vertical; v++ {
			p := s.at(float64(v)*dv, float64(r)*dr)
			m.Positions = append(m.Positions, float32(p[0]), float32(p[1]), float32(p[2]))
		}
	}

	for r := 0; r < rotational; r++ {
		for v := 0; v < vertical; v++ {
			nv := float64(v) * dv
			nr := float64(r) * dr

			tangentV := s.at(nv+dv, nr).Sub(s.at(nv-dv, nr)).Mul(0.5)
			tangentR := s.at(nv, nr+dr).Sub(s.at(nv, nr-dr)).Mul(0.5)

			normal := tangentR.Cross(tangentV)
			if normal.Len() < degenerateNormal {
				normal = axisNormal(s.at(nv, nr))
			} else {
				normal = normal.Normalize()
			}
			m.Normals = append(m.Normals, float32(normal[0]), float32(normal[1]), float32(normal[2]))
		}
	}

	for r := 0; r < rotational; r++ {
		for v := 0; v < vertical-1; v++ {
			m.Indices = append(m.Indices,
				m.Index(v+1, r), m.Index(v, r+1), m.Index(v, r),
				m.Index(v+1, r), m.Index(v+1, r+1), m.Index(v, r+1),
			)
		}
	}

	return m, nil
}

// MustTessellate is like Tessellate but panics on invalid resolutions.
func MustTessellate(f curve.Curve, vertical, rotational int) *Mesh {
	m, err := Tessellate(f, vertical, rotational)
	if err != nil {
		panic(err)
	}
	return m
}

// sweep is the surface map S(v, r) = rotY((f(v).x, f(v).y, 0), 2*pi*r).
type sweep struct {
	f curve.Curve
}

func (s sweep) at(v, r float64) mgl64.Vec3 {
	p := s.f(v)
	return mgl64.Rotate3DY(r * 2 * math.Pi).Mul3x1(mgl64.Vec3{p.X(), p.Y(), 0})
}

// axisNormal picks a unit normal for a vertex whose tangents collapse, which
// happens where the curve touches the Y axis. It points along the axis, away
// from the XZ plane.
func axisNormal(p mgl64.Vec3) mgl64.Vec3 {
	if p.Y() < 0 {
		return mgl64.Vec3{0, -1, 0}
	}
	return mgl64.Vec3{0, 1, 0}
}
