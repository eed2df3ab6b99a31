package render

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bimkit/contact"
)

const (
	// markerRadius is the half-extent of point contact markers.
	markerRadius = 0.02
	// ribbonWidth is the width of line contact ribbons.
	ribbonWidth = 0.005
)

// Geometry builds the renderable primitives for one connection: an
// octahedron marker per point for point contacts, a thin ribbon along
// the path for line contacts and a fan hull over the patch for surface
// contacts. Connection points are already in canonical measuring order,
// which doubles as the hull order.
func Geometry(c *contact.Connection) []Triangle3 {
	switch c.Type {
	case contact.TypeSurface:
		return FanHull(c.Points)
	case contact.TypeLine:
		return Ribbon(c.Points, ribbonWidth)
	default:
		var out []Triangle3
		for _, p := range c.Points {
			out = append(out, Marker(p, markerRadius)...)
		}
		return out
	}
}

// Marker returns a small octahedron centred on p with half-extent r.
func Marker(p r3.Vec, r float64) []Triangle3 {
	px := r3.Add(p, r3.Vec{X: r})
	nx := r3.Add(p, r3.Vec{X: -r})
	py := r3.Add(p, r3.Vec{Y: r})
	ny := r3.Add(p, r3.Vec{Y: -r})
	pz := r3.Add(p, r3.Vec{Z: r})
	nz := r3.Add(p, r3.Vec{Z: -r})
	return []Triangle3{
		{V: [3]r3.Vec{px, py, pz}},
		{V: [3]r3.Vec{py, nx, pz}},
		{V: [3]r3.Vec{nx, ny, pz}},
		{V: [3]r3.Vec{ny, px, pz}},
		{V: [3]r3.Vec{py, px, nz}},
		{V: [3]r3.Vec{nx, py, nz}},
		{V: [3]r3.Vec{ny, nx, nz}},
		{V: [3]r3.Vec{px, ny, nz}},
	}
}

// Ribbon returns thin quads along the polyline so line contacts survive
// export to triangle-only formats. Each segment becomes two triangles
// offset by half the width in a direction perpendicular to the segment.
func Ribbon(pts []r3.Vec, width float64) []Triangle3 {
	var out []Triangle3
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		seg := r3.Sub(b, a)
		if r3.Norm(seg) == 0 {
			continue
		}
		off := r3.Scale(width/2, perpendicular(seg))
		a0 := r3.Sub(a, off)
		a1 := r3.Add(a, off)
		b0 := r3.Sub(b, off)
		b1 := r3.Add(b, off)
		out = append(out,
			Triangle3{V: [3]r3.Vec{a0, b0, b1}},
			Triangle3{V: [3]r3.Vec{a0, b1, a1}},
		)
	}
	return out
}

// perpendicular returns a unit vector perpendicular to v, built by
// crossing with the axis least aligned with it.
func perpendicular(v r3.Vec) r3.Vec {
	axis := r3.Vec{X: 1}
	ax, ay, az := abs(v.X), abs(v.Y), abs(v.Z)
	if ay <= ax && ay <= az {
		axis = r3.Vec{Y: 1}
	} else if az <= ax && az <= ay {
		axis = r3.Vec{Z: 1}
	}
	return r3.Unit(r3.Cross(v, axis))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// FanHull triangulates a surface patch as a fan about the centroid of
// its points. Points must be in hull order; degenerate slivers are
// dropped.
func FanHull(pts []r3.Vec) []Triangle3 {
	if len(pts) < 3 {
		return nil
	}
	var c r3.Vec
	for _, p := range pts {
		c = r3.Add(c, p)
	}
	c = r3.Scale(1/float64(len(pts)), c)
	out := make([]Triangle3, 0, len(pts))
	for i := range pts {
		t := Triangle3{V: [3]r3.Vec{c, pts[i], pts[(i+1)%len(pts)]}}
		if t.Degenerate(1e-12) {
			continue
		}
		out = append(out, t)
	}
	return out
}
