// Package scene is the boundary to the loading and UI layer: a typed
// scene graph of model groups and meshes from which the contact engine
// obtains its elements. Geometry is discovered through a typed
// capability instead of runtime property probing.
package scene

import (
	"github.com/bimkit/contact"
)

// Node is a member of the scene graph.
type Node interface {
	Children() []Node
}

// Geometer is the capability of carrying renderable geometry owned by
// an element. Traversals collect geometry through this interface only.
type Geometer interface {
	Node
	Owner() contact.ElementID
	Geometry() *contact.Mesh
}

// Group is an interior node: a loaded model, a storey or any other
// element grouping.
type Group struct {
	Name  string
	Nodes []Node
}

func (g *Group) Children() []Node { return g.Nodes }

// Add appends a child node.
func (g *Group) Add(n Node) { g.Nodes = append(g.Nodes, n) }

// MeshNode is a leaf carrying one mesh of an element.
type MeshNode struct {
	Element contact.ElementID
	Mesh    contact.Mesh
}

func (n *MeshNode) Children() []Node { return nil }

func (n *MeshNode) Owner() contact.ElementID { return n.Element }

func (n *MeshNode) Geometry() *contact.Mesh { return &n.Mesh }

// Elements gathers the solid elements reachable from root. Every
// geometry leaf is folded into its owner element; elements appear in
// first-seen traversal order and meshes in declaration order, which
// keeps downstream analysis deterministic.
func Elements(root Node) []*contact.Element {
	var out []*contact.Element
	index := make(map[contact.ElementID]*contact.Element)
	var walk func(Node)
	walk = func(n Node) {
		if n == nil {
			return
		}
		if gn, ok := n.(Geometer); ok {
			mesh := gn.Geometry()
			if mesh != nil && !mesh.IsEmpty() {
				id := gn.Owner()
				e := index[id]
				if e == nil {
					e = &contact.Element{ID: id}
					index[id] = e
					out = append(out, e)
				}
				e.Meshes = append(e.Meshes, *mesh)
			}
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(root)
	return out
}
