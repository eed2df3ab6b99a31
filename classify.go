package contact

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ConnType classifies the geometry of a contact.
type ConnType uint8

const (
	// TypePoint is a contact at a single location, a corner touch.
	TypePoint ConnType = iota
	// TypeLine is a contact along a path, a shared edge.
	TypeLine
	// TypeSurface is a contact over a planar patch, a shared face.
	TypeSurface
)

func (t ConnType) String() string {
	switch t {
	case TypePoint:
		return "point"
	case TypeLine:
		return "line"
	case TypeSurface:
		return "surface"
	}
	return "unknown"
}

// classify decides the dimensionality of a canonical point set. The
// checks run cheapest and most decisive first: cardinality, then
// coplanarity, then area. Up to 2 points is a point contact; 3 or 4
// points are too few to establish a 2D extent and count as a line; 5 or
// more points are a surface only if they are coplanar within planarTol
// and span at least minArea, otherwise the set describes a curved or
// sliver contact better modeled as a path.
func classify(pts []r3.Vec, planarTol, minArea float64) ConnType {
	switch {
	case len(pts) <= 2:
		return TypePoint
	case len(pts) <= 4:
		return TypeLine
	}
	n, ok := planeNormal(pts)
	if !ok {
		// Collinear or otherwise degenerate: no plane to test against.
		return TypeLine
	}
	origin := pts[0]
	for _, p := range pts {
		if math.Abs(r3.Dot(r3.Sub(p, origin), n)) > planarTol {
			return TypeLine
		}
	}
	if Area(planarOrder(pts)) < minArea {
		return TypeLine
	}
	return TypeSurface
}

// planeNormal fits a plane through the point set: the first edge vector
// from pts[0] is crossed with the first subsequent point that is not
// collinear with it. Returns false when every point is collinear, the
// caller must fall back instead of dividing by a zero-length normal.
func planeNormal(pts []r3.Vec) (r3.Vec, bool) {
	const eps = 1e-12
	var e1 r3.Vec
	i := 1
	for ; i < len(pts); i++ {
		e1 = r3.Sub(pts[i], pts[0])
		if r3.Norm(e1) > eps {
			break
		}
	}
	for j := i + 1; j < len(pts); j++ {
		n := r3.Cross(e1, r3.Sub(pts[j], pts[0]))
		norm := r3.Norm(n)
		if norm > eps && !math.IsNaN(norm) {
			return r3.Scale(1/norm, n), true
		}
	}
	return r3.Vec{}, false
}
