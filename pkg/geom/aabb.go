// Package geom provides bounding volumes and the culling predicates built on them:
// axis-aligned boxes, planes, view frustums and rays.
//
// Everything here is a value type and every function is pure.
package geom

import (
	"fmt"

	"github.com/Faultbox/midgard-math/pkg/math"
)

// AABB is an axis-aligned bounding box. A well-formed box has Min <= Max on
// every axis; constructors keep whatever they are given and Union restores
// the ordering.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// NewAABB creates a box from its corners without reordering them.
func NewAABB(min, max math.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// FromPoints returns the smallest box containing all points.
func FromPoints(points ...math.Vec3) (AABB, error) {
	if len(points) == 0 {
		return AABB{}, ErrNoPoints
	}
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.Extend(p)
	}
	return box, nil
}

// Union returns the smallest box containing a and b.
func Union(a, b AABB) AABB {
	return AABB{
		Min: a.Min.Min(b.Min),
		Max: a.Max.Max(b.Max),
	}
}

// UnionPoint returns the smallest box containing a and p.
func UnionPoint(a AABB, p math.Vec3) AABB {
	return AABB{
		Min: a.Min.Min(p),
		Max: a.Max.Max(p),
	}
}

// Intersects reports whether a and b overlap on every axis. Touching faces count.
func Intersects(a, b AABB) bool {
	return a.Max.X >= b.Min.X && a.Min.X <= b.Max.X &&
		a.Max.Y >= b.Min.Y && a.Min.Y <= b.Max.Y &&
		a.Max.Z >= b.Min.Z && a.Min.Z <= b.Max.Z
}

// Union is the method form of Union.
func (b AABB) Union(other AABB) AABB {
	return Union(b, other)
}

// Extend is the method form of UnionPoint.
func (b AABB) Extend(p math.Vec3) AABB {
	return UnionPoint(b, p)
}

// Intersects is the method form of Intersects.
func (b AABB) Intersects(other AABB) bool {
	return Intersects(b, other)
}

// Contains reports whether p lies inside the box or on its boundary.
func (b AABB) Contains(p math.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Center returns the midpoint of the box.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the edge lengths.
func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Extents returns the half edge lengths.
func (b AABB) Extents() math.Vec3 {
	return b.Size().Scale(0.5)
}

// Volume returns the enclosed volume.
func (b AABB) Volume() float64 {
	s := b.Size()
	return s.X * s.Y * s.Z
}

// Corners returns the eight corners. Bit 0 of the index selects Max.X,
// bit 1 Max.Y and bit 2 Max.Z.
func (b AABB) Corners() [8]math.Vec3 {
	var c [8]math.Vec3
	for i := range c {
		p := b.Min
		if i&1 != 0 {
			p.X = b.Max.X
		}
		if i&2 != 0 {
			p.Y = b.Max.Y
		}
		if i&4 != 0 {
			p.Z = b.Max.Z
		}
		c[i] = p
	}
	return c
}

// ClosestPoint returns the point of the box nearest to p.
func (b AABB) ClosestPoint(p math.Vec3) math.Vec3 {
	return p.Max(b.Min).Min(b.Max)
}

// Transform returns the box enclosing the eight transformed corners.
//
// Under a perspective matrix the result is only an approximation: corners
// are divided individually and a box straddling the eye plane is not handled.
func (b AABB) Transform(m math.Mat4) AABB {
	return b.TransformFunc(m.TransformPoint)
}

// TransformFunc is like Transform but maps corners through fn, which may be
// any point mapping.
func (b AABB) TransformFunc(fn func(math.Vec3) math.Vec3) AABB {
	corners := b.Corners()
	first := fn(corners[0])
	out := AABB{Min: first, Max: first}
	for _, c := range corners[1:] {
		out = out.Extend(fn(c))
	}
	return out
}

// IntersectRay is the box-first form of Ray.IntersectAABB.
func (b AABB) IntersectRay(r Ray) (t float64, hit bool) {
	return r.IntersectAABB(b)
}

func (b AABB) String() string {
	return fmt.Sprintf("[(%g, %g, %g) - (%g, %g, %g)]", b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}
