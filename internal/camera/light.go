package camera

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/midgard-math/pkg/geom"
	"github.com/Faultbox/midgard-math/pkg/math"
)

// DirectionalLightMatrix computes the view-projection of a directional light
// that covers sceneBounds. dir is the direction the light travels (from the
// sun toward the scene).
func DirectionalLightMatrix(dir math.Vec3, sceneBounds geom.AABB) (math.Mat4, error) {
	dir = dir.Normalize()
	if dir == (math.Vec3{}) {
		return math.Mat4{}, fmt.Errorf("light matrix: %w", ErrDegenerateTarget)
	}

	center := sceneBounds.Center()
	radius := sceneBounds.Extents().Length()
	if radius == 0 {
		radius = 1
	}

	// Far enough back to encompass the entire scene.
	lightDistance := radius * 2
	lightPos := center.Sub(dir.Scale(lightDistance))

	up := math.UnitY
	if gomath.Abs(dir.Y) > 0.99 {
		up = math.UnitZ
	}
	view := math.LookAt(lightPos, center, up)

	// Padding avoids clipping boxes that touch the scene bounds.
	padding := radius * 0.1
	halfSize := radius + padding
	far := lightDistance + radius + padding

	proj, err := math.OrthoOffCenter(-halfSize, halfSize, -halfSize, halfSize, 0.1, far)
	if err != nil {
		return math.Mat4{}, fmt.Errorf("light matrix: %w", err)
	}
	return proj.Mul(view), nil
}

// ShadowFrustum returns the culling volume of a directional light.
func ShadowFrustum(dir math.Vec3, sceneBounds geom.AABB) (geom.Frustum, error) {
	m, err := DirectionalLightMatrix(dir, sceneBounds)
	if err != nil {
		return geom.Frustum{}, err
	}
	return geom.FrustumFromMatrix(m), nil
}

// SunDirection converts sun angles in degrees to the direction its light
// travels. Longitude turns about Y starting from +Z, latitude is the elevation
// above the horizon.
func SunDirection(longitude, latitude float64) math.Vec3 {
	lon := longitude * gomath.Pi / 180
	lat := latitude * gomath.Pi / 180

	toSun := math.Vec3{
		X: gomath.Cos(lat) * gomath.Sin(lon),
		Y: gomath.Sin(lat),
		Z: gomath.Cos(lat) * gomath.Cos(lon),
	}
	return toSun.Neg()
}
