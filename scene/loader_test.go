package scene

import (
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/bimkit/contact"
	"github.com/bimkit/contact/render"
)

func writeTestSTL(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	model := []render.Triangle3{
		{V: [3]r3.Vec{{}, {X: 1}, {Y: 1}}},
		{V: [3]r3.Vec{{X: 1}, {X: 1, Y: 1}, {Y: 1}}},
	}
	if err := render.WriteSTLFile(path, model); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSTL(t *testing.T) {
	path := writeTestSTL(t, t.TempDir(), "wall.stl")
	id := contact.ElementID{Model: 1, Express: 1}
	node, err := LoadSTL(path, id)
	if err != nil {
		t.Fatal(err)
	}
	if node.Owner() != id {
		t.Errorf("owner got %v. want %v", node.Owner(), id)
	}
	mesh := node.Geometry()
	if got := mesh.TriangleCount(); got != 2 {
		t.Errorf("triangles got %d. want 2", got)
	}
	if !mesh.Valid() {
		t.Error("loaded mesh invalid")
	}
}

func TestLoadModels(t *testing.T) {
	dir := t.TempDir()
	wall := writeTestSTL(t, dir, "wall.stl")
	slab := writeTestSTL(t, dir, "slab.stl")
	missing := filepath.Join(dir, "missing.stl")

	g, names, errs := LoadModels([]string{wall, missing, slab}, 1)
	if len(errs) != 1 {
		t.Fatalf("got %d errors. want 1", len(errs))
	}
	elems := Elements(g)
	if len(elems) != 2 {
		t.Fatalf("got %d elements. want 2", len(elems))
	}
	// Express ids follow argument order even across load failures.
	if elems[0].ID.Express != 1 || elems[1].ID.Express != 3 {
		t.Errorf("express ids got %d, %d. want 1, 3", elems[0].ID.Express, elems[1].ID.Express)
	}
	if got := names[elems[0].ID]; got != "wall" {
		t.Errorf("name got %q. want wall", got)
	}
	if got := names[elems[1].ID]; got != "slab" {
		t.Errorf("name got %q. want slab", got)
	}
}
