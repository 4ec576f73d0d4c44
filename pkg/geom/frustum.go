package geom

import "github.com/Faultbox/midgard-math/pkg/math"

// Frustum plane indices.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

var planeNames = [6]string{"left", "right", "bottom", "top", "near", "far"}

// PlaneName returns a short name for a frustum plane index.
func PlaneName(i int) string {
	if i < 0 || i >= len(planeNames) {
		return "none"
	}
	return planeNames[i]
}

// BoxClassifier is anything that can reject a box. Plane implements it; custom
// culling regions (portals, occluder shadows) can too.
type BoxClassifier interface {
	InsideOrIntersecting(box AABB) bool
}

// InsideOrIntersecting reports whether box is not rejected by any of planes.
// It stops at the first rejecting plane. An empty set accepts everything.
func InsideOrIntersecting[P BoxClassifier](planes []P, box AABB) bool {
	return FirstRejecting(planes, box) < 0
}

// FirstRejecting returns the index of the first plane that rejects box, or -1.
func FirstRejecting[P BoxClassifier](planes []P, box AABB) int {
	for i, p := range planes {
		if !p.InsideOrIntersecting(box) {
			return i
		}
	}
	return -1
}

// Frustum is a view volume bounded by six inward facing planes.
type Frustum struct {
	Planes [6]Plane
}

// FrustumFromMatrix extracts the planes of a view-projection matrix with OpenGL
// clip depth. With a projection alone the planes are in view space; with
// projection * view they are in world space.
func FrustumFromMatrix(m math.Mat4) Frustum {
	r0, r1, r2, r3 := m.Row0, m.Row1, m.Row2, m.Row3

	var f Frustum
	f.Planes[PlaneLeft] = PlaneFromVec4(r3.Add(r0)).Normalize()
	f.Planes[PlaneRight] = PlaneFromVec4(r3.Sub(r0)).Normalize()
	f.Planes[PlaneBottom] = PlaneFromVec4(r3.Add(r1)).Normalize()
	f.Planes[PlaneTop] = PlaneFromVec4(r3.Sub(r1)).Normalize()
	f.Planes[PlaneNear] = PlaneFromVec4(r3.Add(r2)).Normalize()
	f.Planes[PlaneFar] = PlaneFromVec4(r3.Sub(r2)).Normalize()
	return f
}

// InsideOrIntersecting reports whether any part of box may be visible.
func (f Frustum) InsideOrIntersecting(box AABB) bool {
	return InsideOrIntersecting(f.Planes[:], box)
}

// FirstRejecting returns the index of the plane that culls box, or -1.
func (f Frustum) FirstRejecting(box AABB) int {
	return FirstRejecting(f.Planes[:], box)
}

// ContainsPoint reports whether p is inside or on every plane.
func (f Frustum) ContainsPoint(p math.Vec3) bool {
	for _, pl := range f.Planes {
		if pl.SignedDistance(p) < 0 {
			return false
		}
	}
	return true
}
