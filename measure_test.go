package contact

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestLength(t *testing.T) {
	for _, tc := range []struct {
		name string
		pts  []r3.Vec
		want float64
	}{
		{"empty", nil, 0},
		{"single", []r3.Vec{{X: 1}}, 0},
		{"segment", []r3.Vec{{}, {X: 3, Y: 4}}, 5},
		{"polyline", []r3.Vec{{}, {X: 1}, {X: 1, Y: 1}}, 2},
	} {
		if got := Length(tc.pts); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("%s: got %g. want %g", tc.name, got, tc.want)
		}
	}
}

func TestAreaUnitSquare(t *testing.T) {
	square := []r3.Vec{
		{}, {X: 1}, {X: 1, Y: 1}, {Y: 1},
	}
	if got := Area(square); math.Abs(got-1) > 1e-12 {
		t.Errorf("unit square area got %g. want 1", got)
	}
}

func TestAreaWithEdgeMidpoints(t *testing.T) {
	// Corner and midpoint samples of a unit square in perimeter order
	// must measure the same square.
	pts := []r3.Vec{
		{}, {X: 0.5}, {X: 1}, {X: 1, Y: 0.5},
		{X: 1, Y: 1}, {X: 0.5, Y: 1}, {Y: 1}, {Y: 0.5},
	}
	if got := Area(pts); math.Abs(got-1) > 1e-12 {
		t.Errorf("sampled square area got %g. want 1", got)
	}
}

func TestAreaDegenerate(t *testing.T) {
	if got := Area([]r3.Vec{{}, {X: 1}}); got != 0 {
		t.Errorf("two point area got %g. want 0", got)
	}
	collinear := []r3.Vec{{}, {X: 1}, {X: 2}}
	if got := Area(collinear); got != 0 {
		t.Errorf("collinear area got %g. want 0", got)
	}
}

func TestSpanOrder(t *testing.T) {
	// Shuffled samples along the x axis must come back end to end.
	pts := []r3.Vec{{X: 0.5}, {X: 1}, {}, {X: 0.25}}
	got := spanOrder(pts)
	ascending, descending := true, true
	for i := 1; i < len(got); i++ {
		if got[i].X < got[i-1].X {
			ascending = false
		}
		if got[i].X > got[i-1].X {
			descending = false
		}
	}
	if !ascending && !descending {
		t.Fatalf("span order not monotonic: %+v", got)
	}
	if want := 1.0; math.Abs(Length(got)-want) > 1e-12 {
		t.Errorf("span ordered length got %g. want %g", Length(got), want)
	}
}

func TestPlanarOrderMeasuresPerimeter(t *testing.T) {
	// Out-of-order square perimeter points; the angular sort must
	// recover an order whose fan area is the square's.
	pts := []r3.Vec{
		{X: 1, Y: 1}, {}, {X: 1}, {Y: 1},
		{X: 0.5}, {X: 1, Y: 0.5}, {X: 0.5, Y: 1}, {Y: 0.5},
	}
	got := planarOrder(pts)
	if len(got) != len(pts) {
		t.Fatalf("planarOrder changed cardinality: got %d. want %d", len(got), len(pts))
	}
	if area := Area(got); math.Abs(area-1) > 1e-12 {
		t.Errorf("planar ordered area got %g. want 1", area)
	}
}
