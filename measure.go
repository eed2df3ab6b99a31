package contact

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// Length returns the open polyline length of pts in order: the sum of
// distances between consecutive points. Sets with fewer than two points
// have length 0. Reversing the order leaves the result unchanged only
// for sets of two or fewer points; for longer paths the order is part of
// the measurement.
func Length(pts []r3.Vec) float64 {
	var sum float64
	for i := 1; i < len(pts); i++ {
		sum += r3.Norm(r3.Sub(pts[i], pts[i-1]))
	}
	return sum
}

// Area returns the fan-triangulated area of pts in order: the sum over
// the fan (centroid, p[i], p[i+1 mod n]) of half the cross product
// magnitude. Exact for convex planar polygons in perimeter order, an
// approximation otherwise. Sets with fewer than three points have
// area 0.
func Area(pts []r3.Vec) float64 {
	if len(pts) < 3 {
		return 0
	}
	c := centroid(pts)
	var sum float64
	for i := range pts {
		p := r3.Sub(pts[i], c)
		q := r3.Sub(pts[(i+1)%len(pts)], c)
		sum += 0.5 * r3.Norm(r3.Cross(p, q))
	}
	return sum
}

func centroid(pts []r3.Vec) r3.Vec {
	var c r3.Vec
	for _, p := range pts {
		c = r3.Add(c, p)
	}
	return r3.Scale(1/float64(len(pts)), c)
}

// spanOrder returns pts sorted by projection onto the direction between
// the two farthest points: the canonical measuring order for a line
// contact, so the polyline runs end to end instead of jumping between
// sampling artifacts.
func spanOrder(pts []r3.Vec) []r3.Vec {
	out := append([]r3.Vec(nil), pts...)
	if len(out) < 3 {
		return out
	}
	var (
		far  float64
		a, b int
	)
	for i := range out {
		for j := i + 1; j < len(out); j++ {
			if d := r3.Norm2(r3.Sub(out[j], out[i])); d > far {
				far, a, b = d, i, j
			}
		}
	}
	dir := r3.Sub(out[b], out[a])
	if r3.Norm(dir) == 0 {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		return r3.Dot(out[i], dir) < r3.Dot(out[j], dir)
	})
	return out
}

// planarOrder returns pts sorted by angle about their centroid in the
// fitted plane: the canonical order for measuring and triangulating a
// surface contact. The hull the visualization builds uses the same
// order, so the drawn patch matches the reported area. Degenerate sets
// are returned unchanged.
func planarOrder(pts []r3.Vec) []r3.Vec {
	out := append([]r3.Vec(nil), pts...)
	if len(out) < 3 {
		return out
	}
	n, ok := planeNormal(out)
	if !ok {
		return out
	}
	c := centroid(out)
	u, v := planeBasis(n)
	sort.SliceStable(out, func(i, j int) bool {
		return planeAngle(out[i], c, u, v) < planeAngle(out[j], c, u, v)
	})
	return out
}

func planeAngle(p, c, u, v r3.Vec) float64 {
	d := r3.Sub(p, c)
	return math.Atan2(r3.Dot(d, v), r3.Dot(d, u))
}

// planeBasis returns two unit vectors spanning the plane with normal n.
func planeBasis(n r3.Vec) (u, v r3.Vec) {
	e := r3.Vec{X: 1}
	if math.Abs(n.X) > 0.9 {
		e = r3.Vec{Y: 1}
	}
	u = r3.Unit(r3.Cross(n, e))
	v = r3.Cross(n, u)
	return u, v
}
