package contact

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

var testTri = [3]r3.Vec{
	{}, {X: 1}, {Y: 1},
}

func TestRayTriangleHit(t *testing.T) {
	origin := r3.Vec{X: 0.25, Y: 0.25, Z: 2}
	dir := r3.Vec{Z: -1}
	d, ok := rayTriangle(origin, dir, testTri[0], testTri[1], testTri[2])
	if !ok {
		t.Fatal("interior hit missed")
	}
	if math.Abs(d-2) > 1e-12 {
		t.Errorf("distance got %g. want 2", d)
	}
}

func TestRayTriangleZeroDistance(t *testing.T) {
	// Contact points sit exactly on the other surface; a ray starting
	// on the triangle must report a hit at distance 0.
	origin := r3.Vec{X: 0.25, Y: 0.25}
	d, ok := rayTriangle(origin, r3.Vec{Z: 1}, testTri[0], testTri[1], testTri[2])
	if !ok {
		t.Fatal("on-surface hit missed")
	}
	if d != 0 {
		t.Errorf("distance got %g. want 0", d)
	}
}

func TestRayTriangleCornerHit(t *testing.T) {
	// Exactly on a corner: the barycentric boundary must still count.
	for _, v := range testTri {
		if _, ok := rayTriangle(v, r3.Vec{Z: 1}, testTri[0], testTri[1], testTri[2]); !ok {
			t.Errorf("corner %+v missed", v)
		}
	}
}

func TestRayTriangleMiss(t *testing.T) {
	origin := r3.Vec{X: 2, Y: 2, Z: 1}
	if _, ok := rayTriangle(origin, r3.Vec{Z: -1}, testTri[0], testTri[1], testTri[2]); ok {
		t.Error("hit outside the triangle")
	}
}

func TestRayTriangleBehind(t *testing.T) {
	origin := r3.Vec{X: 0.25, Y: 0.25, Z: -1}
	if _, ok := rayTriangle(origin, r3.Vec{Z: -1}, testTri[0], testTri[1], testTri[2]); ok {
		t.Error("hit a triangle behind the ray")
	}
}

func TestRayTriangleParallel(t *testing.T) {
	origin := r3.Vec{X: 0.25, Y: 0.25, Z: 1}
	if _, ok := rayTriangle(origin, r3.Vec{X: 1}, testTri[0], testTri[1], testTri[2]); ok {
		t.Error("hit with a ray parallel to the plane")
	}
}
