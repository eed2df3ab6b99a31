package render

import (
	"errors"

	"github.com/fogleman/fauxgl"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bimkit/contact"
	"github.com/bimkit/contact/internal/d3"
)

// Snapshot renders the scene's elements with the pass's connection
// geometry highlighted and saves the result as a PNG. It is the CLI
// stand-in for the interactive viewport: elements are drawn muted,
// connections in a warning color, from an isometric eye fitted to the
// scene bounds.
func Snapshot(path string, elems []*contact.Element, set *contact.ConnectionSet, width, height int) error {
	var solids, marks []Triangle3
	bb := d3.Empty()
	for _, e := range elems {
		for mi := range e.Meshes {
			m := &e.Meshes[mi]
			if !m.Valid() {
				continue
			}
			nt := m.TriangleCount()
			for ti := 0; ti < nt; ti++ {
				tri := m.Triangle(ti)
				solids = append(solids, Triangle3{V: tri})
				bb = bb.Include(tri[0]).Include(tri[1]).Include(tri[2])
			}
		}
	}
	if len(solids) == 0 {
		return errors.New("render: no geometry to snapshot")
	}
	if set != nil {
		for _, c := range set.All() {
			marks = append(marks, Geometry(c)...)
		}
	}

	// Fit the scene into a bi-unit cube about the origin. fauxgl's
	// BiUnitCube does this for a single mesh; doing it by hand keeps
	// the solid and marker meshes in the same frame.
	center := bb.Center()
	size := bb.Size()
	maxDim := size.X
	if size.Y > maxDim {
		maxDim = size.Y
	}
	if size.Z > maxDim {
		maxDim = size.Z
	}
	if maxDim == 0 {
		maxDim = 1
	}
	scale := 2 / maxDim

	const fovy = 30 // vertical field of view in degrees
	var (
		near   = 1.0
		far    = 10.0
		eye    = fauxgl.V(2.4, 2.4, 2.4) // iso view
		lookat = fauxgl.V(0, 0, 0)
		up     = fauxgl.V(0, 0, 1)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
	)
	context := fauxgl.NewContext(width, height)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, lookat, up).Perspective(fovy, aspect, near, far)

	solidShader := fauxgl.NewPhongShader(matrix, light, eye)
	solidShader.ObjectColor = fauxgl.HexColor("#9DA5AB")
	context.Shader = solidShader
	context.DrawMesh(fauxglMesh(solids, center, scale))

	if len(marks) > 0 {
		markShader := fauxgl.NewPhongShader(matrix, light, eye)
		markShader.ObjectColor = fauxgl.HexColor("#E4572E")
		context.Shader = markShader
		context.DrawMesh(fauxglMesh(marks, center, scale))
	}
	return fauxgl.SavePNG(path, context.Image())
}

// fauxglMesh converts triangles into a fauxgl mesh, recentred and
// scaled into the bi-unit cube.
func fauxglMesh(tris []Triangle3, center r3.Vec, scale float64) *fauxgl.Mesh {
	out := make([]*fauxgl.Triangle, 0, len(tris))
	for _, t := range tris {
		out = append(out, fauxgl.NewTriangleForPoints(
			fitPoint(t.V[0], center, scale),
			fitPoint(t.V[1], center, scale),
			fitPoint(t.V[2], center, scale),
		))
	}
	return fauxgl.NewTriangleMesh(out)
}

func fitPoint(p, center r3.Vec, scale float64) fauxgl.Vector {
	q := r3.Scale(scale, r3.Sub(p, center))
	return fauxgl.V(q.X, q.Y, q.Z)
}
