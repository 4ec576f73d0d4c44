package camera

import (
	gomath "math"

	"github.com/Faultbox/midgard-math/pkg/geom"
	"github.com/Faultbox/midgard-math/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance  float64 // Distance from center
	RotationX float64 // Pitch (vertical angle, radians)
	RotationY float64 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float64
	MaxDistance float64
	MinPitch    float64
	MaxPitch    float64

	// Sensitivity
	DragSensitivity float64
	ZoomSensitivity float64
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        20.0,
		RotationX:       0.5,
		RotationY:       0.0,
		MinDistance:     1.0,
		MaxDistance:     500.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sinX, cosX := gomath.Sincos(c.RotationX)
	sinY, cosY := gomath.Sincos(c.RotationY)
	return c.Center.Add(math.Vec3{
		X: c.Distance * cosX * sinY,
		Y: c.Distance * sinX,
		Z: c.Distance * cosX * cosY,
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.UnitY)
}

// Camera returns a perspective camera at the orbit position facing the center.
// fovY, near and far are copied from base.
func (c *OrbitCamera) Camera(base Camera) (*Camera, error) {
	cam := base
	cam.Position = c.Position()
	if err := cam.LookAt(c.Center); err != nil {
		return nil, err
	}
	return &cam, nil
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float64) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity
	c.RotationX = clamp(c.RotationX, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float64) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the orbit on box and backs off far enough to see all of it.
func (c *OrbitCamera) FitToBounds(box geom.AABB) {
	c.Center = box.Center()

	c.Distance = box.Extents().Length() * 2.5
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}

	c.RotationX = 0.6 // Look down at ~35 degrees
	c.RotationY = 0.0
}

func clamp(v, lo, hi float64) float64 {
	return gomath.Max(lo, gomath.Min(hi, v))
}
