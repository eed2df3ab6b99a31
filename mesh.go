package contact

import (
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bimkit/contact/internal/d3"
)

// Mesh is a triangulated surface in world space (post-transform).
// Buffers are flat: vertices and normals hold 3 float32 per entry,
// indices hold 3 uint32 per triangle. Normals are optional. An empty
// index buffer means the vertex buffer is a triangle soup, 3 consecutive
// vertices per triangle.
type Mesh struct {
	Vertices []float32
	Normals  []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	if len(m.Indices) > 0 {
		return len(m.Indices) / 3
	}
	return m.VertexCount() / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Valid reports whether the buffers are well formed: vertex data a
// multiple of 3 floats, index data a multiple of 3 and every index in
// range. Invalid meshes are skipped by the pipeline, they never abort an
// analysis pass.
func (m *Mesh) Valid() bool {
	if len(m.Vertices)%3 != 0 || len(m.Indices)%3 != 0 {
		return false
	}
	n := uint32(m.VertexCount())
	for _, ix := range m.Indices {
		if ix >= n {
			return false
		}
	}
	return true
}

// Vertex returns vertex i widened to float64 world coordinates.
func (m *Mesh) Vertex(i int) r3.Vec {
	return r3.Vec{
		X: float64(m.Vertices[3*i]),
		Y: float64(m.Vertices[3*i+1]),
		Z: float64(m.Vertices[3*i+2]),
	}
}

// Triangle returns the corner vertices of triangle i.
func (m *Mesh) Triangle(i int) [3]r3.Vec {
	if len(m.Indices) > 0 {
		return [3]r3.Vec{
			m.Vertex(int(m.Indices[3*i])),
			m.Vertex(int(m.Indices[3*i+1])),
			m.Vertex(int(m.Indices[3*i+2])),
		}
	}
	return [3]r3.Vec{m.Vertex(3 * i), m.Vertex(3*i + 1), m.Vertex(3*i + 2)}
}

// Bounds scans the raw float32 buffer for the world bounding box.
// Non-finite vertices are ignored so one bad coordinate does not poison
// the proximity filter for the whole element.
func (m *Mesh) Bounds() d3.Box {
	bmin := [3]float32{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32}
	bmax := [3]float32{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32}
	any := false
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		x, y, z := m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2]
		if math32.IsNaN(x) || math32.IsInf(x, 0) ||
			math32.IsNaN(y) || math32.IsInf(y, 0) ||
			math32.IsNaN(z) || math32.IsInf(z, 0) {
			continue
		}
		any = true
		bmin[0] = math32.Min(bmin[0], x)
		bmin[1] = math32.Min(bmin[1], y)
		bmin[2] = math32.Min(bmin[2], z)
		bmax[0] = math32.Max(bmax[0], x)
		bmax[1] = math32.Max(bmax[1], y)
		bmax[2] = math32.Max(bmax[2], z)
	}
	if !any {
		return d3.Empty()
	}
	return d3.Box{
		Min: r3.Vec{X: float64(bmin[0]), Y: float64(bmin[1]), Z: float64(bmin[2])},
		Max: r3.Vec{X: float64(bmax[0]), Y: float64(bmax[1]), Z: float64(bmax[2])},
	}
}
