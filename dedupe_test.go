package contact

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestDedupe(t *testing.T) {
	const tol = 1e-3
	pts := []r3.Vec{
		{},
		{X: 1e-4},          // merges with first
		{X: 0.5},           // kept
		{X: 0.5, Y: 5e-4},  // merges
		{X: 0.5, Y: 2e-3},  // kept, outside tol of both
	}
	got := dedupe(pts, tol)
	if len(got) != 3 {
		t.Fatalf("got %d points. want 3: %+v", len(got), got)
	}
	// Scan order keeps the first representative of each cluster.
	if got[0] != pts[0] || got[1] != pts[2] || got[2] != pts[4] {
		t.Errorf("unexpected representatives: %+v", got)
	}
}

func TestDedupeIdempotent(t *testing.T) {
	const tol = 1e-3
	pts := []r3.Vec{{}, {X: 1}, {Y: 1}, {X: 1, Y: 1}}
	once := dedupe(pts, tol)
	twice := dedupe(once, tol)
	if len(once) != len(pts) || len(twice) != len(once) {
		t.Errorf("well separated points changed: %d -> %d -> %d", len(pts), len(once), len(twice))
	}
}

func TestDedupeEmpty(t *testing.T) {
	if got := dedupe(nil, 1e-3); len(got) != 0 {
		t.Errorf("got %d points from empty input", len(got))
	}
}
