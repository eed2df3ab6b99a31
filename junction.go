package contact

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// rawPoint is a contact point tagged with the element pair whose
// analysis produced it. Raw points live for one analysis pass to
// support the multi-element junction refinement.
type rawPoint struct {
	p    r3.Vec
	pair PairKey
}

// junctionIndex buckets raw contact points by rounded coordinate and
// marks the buckets to which three or more distinct elements
// contributed a point. Such a bucket is a genuine multi-element
// junction; a two-element point touch outside every junction is treated
// as a floating-point graze and discarded by the refinement pass.
type junctionIndex struct {
	tol     float64
	buckets map[[3]int64]map[ElementID]struct{}
}

func buildJunctionIndex(raw []rawPoint, tol float64) *junctionIndex {
	ix := &junctionIndex{
		tol:     tol,
		buckets: make(map[[3]int64]map[ElementID]struct{}),
	}
	for _, rp := range raw {
		k := bucketKey(rp.p, tol)
		set := ix.buckets[k]
		if set == nil {
			set = make(map[ElementID]struct{}, 2)
			ix.buckets[k] = set
		}
		set[rp.pair.A] = struct{}{}
		set[rp.pair.B] = struct{}{}
	}
	return ix
}

func bucketKey(p r3.Vec, tol float64) [3]int64 {
	return [3]int64{
		int64(math.Round(p.X / tol)),
		int64(math.Round(p.Y / tol)),
		int64(math.Round(p.Z / tol)),
	}
}

// junctionAt reports whether the bucket containing p joins at least
// three distinct elements.
func (ix *junctionIndex) junctionAt(p r3.Vec) bool {
	return len(ix.buckets[bucketKey(p, ix.tol)]) >= 3
}

// count returns the number of junction buckets.
func (ix *junctionIndex) count() int {
	n := 0
	for _, set := range ix.buckets {
		if len(set) >= 3 {
			n++
		}
	}
	return n
}

// contactIndex is a kd-tree over every raw contact point of a pass. It
// answers nearest-contact queries for viewer picking.
type contactIndex struct {
	tree *kdtree.Tree
}

func newContactIndex(raw []rawPoint) *contactIndex {
	if len(raw) == 0 {
		return nil
	}
	pts := make(contactPoints, len(raw))
	for i, rp := range raw {
		pts[i] = contactPoint(rp)
	}
	return &contactIndex{tree: kdtree.New(pts, false)}
}

func (ix *contactIndex) nearest(p r3.Vec) (rawPoint, bool) {
	got, _ := ix.tree.Nearest(contactPoint{p: p})
	if got == nil {
		return rawPoint{}, false
	}
	return rawPoint(got.(contactPoint)), true
}

var (
	_ kdtree.Interface  = contactPoints{}
	_ kdtree.Comparable = contactPoint{}
)

type contactPoint rawPoint

type contactPoints []contactPoint

func (c contactPoints) Index(i int) kdtree.Comparable { return c[i] }

func (c contactPoints) Len() int { return len(c) }

// Pivot partitions the list about the median along the dimension given.
func (c contactPoints) Pivot(d kdtree.Dim) int {
	p := contactPlane{dim: int(d), points: c}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half open indexing
// equivalent to built-in slice indexing.
func (c contactPoints) Slice(start, end int) kdtree.Interface {
	return c[start:end]
}

// Compare returns the signed distance of a from the plane passing
// through b and perpendicular to the dimension d.
func (a contactPoint) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	return coord(a.p, int(d)) - coord(b.(contactPoint).p, int(d))
}

// Dims returns the number of dimensions described in the Comparable.
func (a contactPoint) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between the receiver
// and the parameter.
func (a contactPoint) Distance(b kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(a.p, b.(contactPoint).p))
}

func coord(v r3.Vec, dim int) float64 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

type contactPlane struct {
	dim    int
	points contactPoints
}

func (p contactPlane) Less(i, j int) bool {
	return coord(p.points[i].p, p.dim) < coord(p.points[j].p, p.dim)
}

func (p contactPlane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}

func (p contactPlane) Len() int { return len(p.points) }

func (p contactPlane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}
