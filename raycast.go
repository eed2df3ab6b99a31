package contact

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bimkit/contact/internal/d3"
)

// axisDirs are the six cast directions used by the contact finder.
var axisDirs = [6]r3.Vec{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

// rayTriangle intersects a ray with a triangle (Möller–Trumbore) and
// returns the hit distance along dir. Unlike the usual occlusion test,
// zero-distance hits are kept and the barycentric bounds carry a small
// slack: contact points sit exactly on the other element's surface,
// often on a triangle edge or corner, and must still register.
func rayTriangle(origin, dir, v0, v1, v2 r3.Vec) (float64, bool) {
	const (
		eps   = 1e-12 // parallel ray determinant cutoff
		slack = 1e-9  // barycentric boundary slack
	)
	e1 := r3.Sub(v1, v0)
	e2 := r3.Sub(v2, v0)
	pvec := r3.Cross(dir, e2)
	det := r3.Dot(e1, pvec)
	if det > -eps && det < eps {
		return 0, false
	}
	inv := 1 / det
	tvec := r3.Sub(origin, v0)
	u := r3.Dot(tvec, pvec) * inv
	if u < -slack || u > 1+slack {
		return 0, false
	}
	qvec := r3.Cross(tvec, e1)
	v := r3.Dot(dir, qvec) * inv
	if v < -slack || u+v > 1+slack {
		return 0, false
	}
	t := r3.Dot(e2, qvec) * inv
	if t < -slack || math.IsNaN(t) {
		return 0, false
	}
	if t < 0 {
		t = 0
	}
	return t, true
}

// findContacts discovers the locations where the surfaces of two
// elements touch. Samples of each element are cast along the six axis
// directions against the triangles of the other; the nearest hit below
// touchTol qualifies and ends the search for that sample. Casting runs
// in both directions so a contact region missed by one element's sparse
// vertices can still be found from the other side. The result is raw:
// near-duplicates are expected and resolved by the deduplicator.
func findContacts(a, b *Element, touchTol float64, budget int) []r3.Vec {
	var pts []r3.Vec
	pts = castMeshes(a, b, touchTol, budget, pts)
	pts = castMeshes(b, a, touchTol, budget, pts)
	return pts
}

// castMeshes casts samples of every valid mesh of from against onto,
// appending qualifying hits to pts. Meshes are visited in declaration
// order so the raw point sequence is deterministic.
func castMeshes(from, onto *Element, tol float64, budget int, pts []r3.Vec) []r3.Vec {
	var buf [32]r3.Vec
	for mi := range from.Meshes {
		m := &from.Meshes[mi]
		if !m.Valid() || m.IsEmpty() {
			continue
		}
		s := newPointSampler(m, budget)
		for {
			n, err := s.ReadPoints(buf[:])
			for _, origin := range buf[:n] {
				if hit, ok := castOnto(origin, onto, tol); ok {
					pts = append(pts, hit)
				}
			}
			if err != nil {
				break
			}
		}
	}
	return pts
}

// castOnto casts the six axis rays from origin against every triangle of
// onto and returns the first hit closer than tol. The first qualifying
// direction wins; this is a touch heuristic, not an exact closest-point
// search.
func castOnto(origin r3.Vec, onto *Element, tol float64) (r3.Vec, bool) {
	for _, dir := range axisDirs {
		best := math.MaxFloat64
		for mi := range onto.Meshes {
			m := &onto.Meshes[mi]
			if !m.Valid() || m.IsEmpty() {
				continue
			}
			nt := m.TriangleCount()
			for ti := 0; ti < nt; ti++ {
				tri := m.Triangle(ti)
				if t, ok := rayTriangle(origin, dir, tri[0], tri[1], tri[2]); ok && t < best {
					best = t
				}
			}
		}
		if best < tol {
			hit := r3.Add(origin, r3.Scale(best, dir))
			if d3.Finite(hit) {
				return hit, true
			}
		}
	}
	return r3.Vec{}, false
}
