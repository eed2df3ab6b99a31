package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Box is a 3d axis-aligned bounding box.
type Box r3.Box

// Empty returns a box that contains nothing. Including any point or
// extending by any real box yields that point or box.
func Empty() Box {
	return Box{Min: Elem(math.MaxFloat64), Max: Elem(-math.MaxFloat64)}
}

// IsEmpty reports whether the box contains no points.
func (a Box) IsEmpty() bool {
	return a.Min.X > a.Max.X || a.Min.Y > a.Max.Y || a.Min.Z > a.Max.Z
}

// Equals test the equality of 3d boxes.
func (a Box) Equals(b Box, tol float64) bool {
	return EqualWithin(a.Min, b.Min, tol) && EqualWithin(a.Max, b.Max, tol)
}

// Extend returns a box enclosing two 3d boxes.
func (a Box) Extend(b Box) Box {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	return Box{
		Min: MinElem(a.Min, b.Min),
		Max: MaxElem(a.Max, b.Max),
	}
}

// Include enlarges a 3d box to include a point.
func (a Box) Include(v r3.Vec) Box {
	return Box{
		Min: MinElem(a.Min, v),
		Max: MaxElem(a.Max, v),
	}
}

// Size returns the size of a 3d box.
func (a Box) Size() r3.Vec {
	return r3.Sub(a.Max, a.Min)
}

// Center returns the center of a 3d box.
func (a Box) Center() r3.Vec {
	return r3.Add(a.Min, r3.Scale(0.5, a.Size()))
}

// Contains checks if the 3d box contains the given vector (considering bounds as inside).
func (a Box) Contains(v r3.Vec) bool {
	return a.Min.X <= v.X && a.Min.Y <= v.Y && a.Min.Z <= v.Z &&
		v.X <= a.Max.X && v.Y <= a.Max.Y && v.Z <= a.Max.Z
}

// Dist returns the minimum Euclidean distance between two 3d boxes.
// Overlapping or touching boxes have distance 0. Empty boxes are
// infinitely far from everything.
func (a Box) Dist(b Box) float64 {
	if a.IsEmpty() || b.IsEmpty() {
		return math.Inf(1)
	}
	gx := axisGap(a.Min.X, a.Max.X, b.Min.X, b.Max.X)
	gy := axisGap(a.Min.Y, a.Max.Y, b.Min.Y, b.Max.Y)
	gz := axisGap(a.Min.Z, a.Max.Z, b.Min.Z, b.Max.Z)
	return math.Sqrt(gx*gx + gy*gy + gz*gz)
}

// axisGap is the separation of two intervals along one axis, zero when
// they overlap.
func axisGap(amin, amax, bmin, bmax float64) float64 {
	if bmin > amax {
		return bmin - amax
	}
	if amin > bmax {
		return amin - bmax
	}
	return 0
}
