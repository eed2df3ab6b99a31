package contact

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestMakePairKeySymmetric(t *testing.T) {
	a := ElementID{Model: 1, Express: 42}
	b := ElementID{Model: 1, Express: 7}
	k1 := MakePairKey(a, b)
	k2 := MakePairKey(b, a)
	if k1 != k2 {
		t.Errorf("keys differ: %v vs %v", k1, k2)
	}
	if !k1.A.Less(k1.B) {
		t.Errorf("lower id not first: %v", k1)
	}
}

func TestPairKeyAcrossModels(t *testing.T) {
	a := ElementID{Model: 2, Express: 1}
	b := ElementID{Model: 1, Express: 99}
	k := MakePairKey(a, b)
	if k.A != b {
		t.Errorf("model ordering wrong: %v", k)
	}
	if got, want := k.String(), "1:99|2:1"; got != want {
		t.Errorf("got %q. want %q", got, want)
	}
}

func TestElementBoundsSkipsInvalid(t *testing.T) {
	good := Mesh{Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}}
	bad := Mesh{Vertices: []float32{5, 5}} // truncated buffer
	e := &Element{ID: ElementID{1, 1}, Meshes: []Mesh{bad, good}}
	bb := e.Bounds()
	if bb.IsEmpty() {
		t.Fatal("bounds empty despite valid mesh")
	}
	want := r3.Vec{X: 1, Y: 1}
	if bb.Max != want {
		t.Errorf("max got %+v. want %+v", bb.Max, want)
	}
}
