// Package render turns analysis results into renderable and exportable
// geometry: triangle soups for connection visualization, binary STL
// files and PNG snapshots.
package render

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a 3d triangle.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the normal vector to the plane defined by the 3d
// triangle. Degenerate triangles return the zero vector.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	n := r3.Cross(e1, e2)
	l := r3.Norm(n)
	if l == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/l, n)
}

// Degenerate reports whether the triangle has effectively zero area.
func (t Triangle3) Degenerate(tol float64) bool {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Norm(r3.Cross(e1, e2)) <= 2*tol
}
