package contact

import (
	"io"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func gridMesh(n int) *Mesh {
	m := &Mesh{Vertices: make([]float32, 0, 3*n)}
	for i := 0; i < n; i++ {
		m.Vertices = append(m.Vertices, float32(i), 0, 0)
	}
	return m
}

func readAll(t *testing.T, s *pointSampler) []r3.Vec {
	t.Helper()
	var out []r3.Vec
	var buf [4]r3.Vec
	for {
		n, err := s.ReadPoints(buf[:])
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatal(err)
		}
		if n == 0 {
			t.Fatal("no progress without EOF")
		}
	}
}

func TestSamplerStride(t *testing.T) {
	m := gridMesh(10)
	s := newPointSampler(m, 3) // stride 10/3 = 3
	got := readAll(t, s)
	want := []float64{0, 3, 6, 9}
	if len(got) != len(want) {
		t.Fatalf("got %d samples. want %d", len(got), len(want))
	}
	for i, x := range want {
		if got[i].X != x {
			t.Errorf("sample %d got %g. want %g", i, got[i].X, x)
		}
	}
}

func TestSamplerSmallMesh(t *testing.T) {
	// Fewer vertices than the budget: every vertex is sampled.
	m := gridMesh(5)
	s := newPointSampler(m, 64)
	if got := readAll(t, s); len(got) != 5 {
		t.Errorf("got %d samples. want 5", len(got))
	}
}

func TestSamplerEmptyMesh(t *testing.T) {
	s := newPointSampler(&Mesh{}, 64)
	var buf [4]r3.Vec
	n, err := s.ReadPoints(buf[:])
	if n != 0 || err != io.EOF {
		t.Errorf("got n=%d err=%v. want 0, io.EOF", n, err)
	}
}

func TestSamplerSkipsNonFinite(t *testing.T) {
	m := gridMesh(4)
	m.Vertices[3] = float32(math.NaN()) // poison vertex 1
	s := newPointSampler(m, 64)
	got := readAll(t, s)
	if len(got) != 3 {
		t.Fatalf("got %d samples. want 3", len(got))
	}
	for _, p := range got {
		if math.IsNaN(p.X) {
			t.Errorf("non-finite sample leaked: %+v", p)
		}
	}
}

func TestSamplerReset(t *testing.T) {
	m := gridMesh(6)
	s := newPointSampler(m, 64)
	first := readAll(t, s)
	s.Reset()
	second := readAll(t, s)
	if len(first) != len(second) {
		t.Fatalf("reset changed sample count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("sample %d differs after reset", i)
		}
	}
}
