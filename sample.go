package contact

import (
	"io"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bimkit/contact/internal/d3"
)

// defaultSampleBudget bounds the number of surface samples taken per
// mesh. The stride still distributes samples across the whole vertex
// buffer, so a contact on a very dense mesh can in principle be missed,
// which is the accepted trade-off for bounded cost.
const defaultSampleBudget = 64

// pointSampler streams world-space sample points drawn from a mesh
// vertex buffer at a fixed stride of max(1, vertexCount/budget).
// It is restartable via Reset. Non-finite vertices are skipped.
type pointSampler struct {
	mesh   *Mesh
	stride int
	next   int
}

func newPointSampler(m *Mesh, budget int) *pointSampler {
	if budget < 1 {
		budget = defaultSampleBudget
	}
	stride := m.VertexCount() / budget
	if stride < 1 {
		stride = 1
	}
	return &pointSampler{mesh: m, stride: stride}
}

// ReadPoints fills dst with the next sample points. It returns io.EOF
// once the sequence is exhausted; a mesh with zero vertices yields EOF
// immediately.
func (s *pointSampler) ReadPoints(dst []r3.Vec) (n int, err error) {
	count := s.mesh.VertexCount()
	for n < len(dst) {
		if s.next >= count {
			if n == 0 {
				return 0, io.EOF
			}
			return n, nil
		}
		v := s.mesh.Vertex(s.next)
		s.next += s.stride
		if !d3.Finite(v) {
			continue
		}
		dst[n] = v
		n++
	}
	return n, nil
}

// Reset rewinds the sampler to the start of the vertex buffer.
func (s *pointSampler) Reset() { s.next = 0 }
