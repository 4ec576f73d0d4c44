package geom

import (
	gomath "math"

	"github.com/Faultbox/midgard-math/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// NewRay returns a ray with its direction normalized.
func NewRay(origin, direction math.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float64, invViewProj math.Mat4) Ray {
	// Screen to NDC, Y flipped.
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH

	nearWorld := invViewProj.TransformPoint(math.Vec3{X: ndcX, Y: ndcY, Z: -1})
	farWorld := invViewProj.TransformPoint(math.Vec3{X: ndcX, Y: ndcY, Z: 1})

	return NewRay(nearWorld, farWorld.Sub(nearWorld))
}

// IntersectPlaneY intersects a ray with a horizontal plane at the given Y level.
// Returns the intersection point (X, Z) and whether the intersection is valid.
func (r Ray) IntersectPlaneY(planeY float64) (x, z float64, ok bool) {
	p, _, ok := r.IntersectPlane(Plane{Normal: math.UnitY, D: -planeY})
	return p.X, p.Z, ok
}

// IntersectPlane returns the point where the ray crosses p, the distance to
// it, and whether it lies in front of the origin. Rays parallel to the plane
// never hit.
func (r Ray) IntersectPlane(p Plane) (point math.Vec3, t float64, ok bool) {
	denom := p.Normal.Dot(r.Direction)
	if gomath.Abs(denom) < math.EpsilonFloat {
		return math.Vec3{}, 0, false
	}

	t = -p.SignedDistance(r.Origin) / denom
	if t < 0 {
		return math.Vec3{}, 0, false
	}
	return r.At(t), t, true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float64, hit bool) {
	tmin := gomath.Inf(-1)
	tmax := gomath.Inf(1)

	for axis := 0; axis < 3; axis++ {
		o := r.Origin.Get(axis)
		d := r.Direction.Get(axis)
		lo, hi := box.Min.Get(axis), box.Max.Get(axis)

		if d == 0 {
			// Parallel to this slab: the origin must already be between its faces.
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}

		inv := 1 / d
		t1 := (lo - o) * inv
		t2 := (hi - o) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	// Entry point, or exit point if starting inside.
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
