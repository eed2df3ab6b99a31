package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bimkit/contact"
	"github.com/bimkit/contact/render"
)

// LoadSTL reads a binary STL file into a mesh node owned by id. The
// triangle soup is stored unindexed, three vertices per triangle, the
// way it arrives from the file.
func LoadSTL(path string, id contact.ElementID) (*MeshNode, error) {
	model, err := render.ReadSTLFile(path)
	if err != nil {
		return nil, err
	}
	mesh := contact.Mesh{Vertices: make([]float32, 0, 9*len(model))}
	for _, t := range model {
		for _, v := range t.V {
			mesh.Vertices = append(mesh.Vertices,
				float32(v.X), float32(v.Y), float32(v.Z))
		}
	}
	return &MeshNode{Element: id, Mesh: mesh}, nil
}

// LoadModels loads each file as one element of a shared model group,
// express ids assigned in argument order starting at 1. Files that fail
// to load are skipped and reported in errs; the loader only gives up
// when nothing loads at all, matching the skip-and-continue policy of
// the analysis itself.
func LoadModels(paths []string, modelID int) (g *Group, names StaticNames, errs []error) {
	g = &Group{Name: fmt.Sprintf("model %d", modelID)}
	names = make(StaticNames, len(paths))
	for i, path := range paths {
		id := contact.ElementID{Model: modelID, Express: i + 1}
		node, err := LoadSTL(path, id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		g.Add(node)
		names[id] = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return g, names, errs
}
