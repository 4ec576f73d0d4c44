package geom

import (
	gomath "math"

	"github.com/Faultbox/midgard-math/pkg/math"
)

// Plane is the set of points p with Normal·p + D = 0. Points with a positive
// signed distance are on the inside.
type Plane struct {
	Normal math.Vec3
	D      float64
}

// NewPlane returns the plane through point with the given inward normal.
func NewPlane(normal, point math.Vec3) Plane {
	return Plane{Normal: normal, D: -normal.Dot(point)}
}

// PlaneFromVec4 reads a plane from the coefficients (a, b, c, d).
func PlaneFromVec4(v math.Vec4) Plane {
	return Plane{Normal: v.XYZ(), D: v.W}
}

// Normalize scales the plane so its normal has unit length. Signed distances
// of a normalized plane are true distances. A degenerate plane is returned as is.
func (p Plane) Normalize() Plane {
	l := p.Normal.Length()
	if l == 0 {
		return p
	}
	return Plane{Normal: p.Normal.Scale(1 / l), D: p.D / l}
}

// SignedDistance returns Normal·point + D.
func (p Plane) SignedDistance(point math.Vec3) float64 {
	return p.Normal.Dot(point) + p.D
}

// boxDistance returns the signed distance of the box center and the radius
// of the box projected onto the normal.
func (p Plane) boxDistance(box AABB) (s, r float64) {
	h := box.Extents()
	s = p.SignedDistance(box.Center())
	r = h.X*gomath.Abs(p.Normal.X) + h.Y*gomath.Abs(p.Normal.Y) + h.Z*gomath.Abs(p.Normal.Z)
	return s, r
}

// InsideOrIntersecting reports whether any part of box is on the positive side
// of the plane or on the plane itself. It returns false only when the whole
// box is strictly outside.
func (p Plane) InsideOrIntersecting(box AABB) bool {
	s, r := p.boxDistance(box)
	return s >= -r
}

// Intersects reports whether the plane passes through the box.
func (p Plane) Intersects(box AABB) bool {
	s, r := p.boxDistance(box)
	return gomath.Abs(s) <= r
}
