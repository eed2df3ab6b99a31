// Package contact detects and classifies physical contacts between
// building elements represented as triangle meshes in a shared
// world-space coordinate system. Given the elements of a loaded scene it
// finds every pair whose surfaces touch, classifies the touch geometry as
// a point, line or surface contact and computes its measurements.
package contact

import (
	"strconv"

	"github.com/bimkit/contact/internal/d3"
)

// ElementID identifies an element by its model and express identifiers.
// Identity is stable for the lifetime of a loaded model.
type ElementID struct {
	Model   int
	Express int
}

func (id ElementID) String() string {
	return strconv.Itoa(id.Model) + ":" + strconv.Itoa(id.Express)
}

// Less orders element IDs by model, then express identifier.
func (id ElementID) Less(other ElementID) bool {
	if id.Model != other.Model {
		return id.Model < other.Model
	}
	return id.Express < other.Express
}

// PairKey is the canonical identity of an unordered element pair. The
// lower ID is always stored in A, so the key built from (a,b) equals the
// key built from (b,a) and a pair can never appear under two keys.
type PairKey struct {
	A, B ElementID
}

// MakePairKey returns the canonical key for the unordered pair {a, b}.
func MakePairKey(a, b ElementID) PairKey {
	if b.Less(a) {
		a, b = b, a
	}
	return PairKey{A: a, B: b}
}

func (k PairKey) String() string {
	return k.A.String() + "|" + k.B.String()
}

// Less orders pair keys lexicographically, used for deterministic output.
func (k PairKey) Less(other PairKey) bool {
	if k.A != other.A {
		return k.A.Less(other.A)
	}
	return k.B.Less(other.B)
}

// Element is a rigid solid body owning one or more meshes. The analysis
// treats elements as opaque, read-only mesh containers; ownership and
// lifecycle belong to the scene layer that produced them.
type Element struct {
	ID     ElementID
	Name   string
	Meshes []Mesh
}

// Bounds returns the world-space bounding box over all meshes of the
// element. Malformed meshes contribute nothing.
func (e *Element) Bounds() d3.Box {
	bb := d3.Empty()
	for i := range e.Meshes {
		m := &e.Meshes[i]
		if !m.Valid() {
			continue
		}
		bb = bb.Extend(m.Bounds())
	}
	return bb
}
