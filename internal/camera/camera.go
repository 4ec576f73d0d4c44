// Package camera provides the cameras and light volumes used to cull and pick scenes.
package camera

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/midgard-math/pkg/geom"
	"github.com/Faultbox/midgard-math/pkg/math"
)

// ErrDegenerateTarget is returned when a camera is asked to look at its own position.
var ErrDegenerateTarget = errors.New("look target coincides with camera position")

// Camera is a perspective camera placed by a position and Euler rotation.
// It looks down its local -Z axis with +Y up.
type Camera struct {
	Position math.Vec3
	Rotation math.Vec3 // Radians per axis
	Order    math.EulerOrder

	FovY float64 // Vertical field of view, radians
	Near float64
	Far  float64

	// GeneralInverse selects Gauss-Jordan for the view matrix. The world
	// matrix of a camera is a rigid transform, so the cofactor path is
	// normally enough.
	GeneralInverse bool
}

// New returns a camera at the origin looking down -Z.
func New() *Camera {
	return &Camera{
		Order: math.DefaultEulerOrder,
		FovY:  gomath.Pi / 3,
		Near:  0.1,
		Far:   1000,
	}
}

// World returns the camera-to-world transform.
func (c *Camera) World() math.Mat4 {
	return math.TranslateVec(c.Position).Mul(math.RotateEuler(c.Rotation, c.Order))
}

// View returns the world-to-camera transform.
func (c *Camera) View() (math.Mat4, error) {
	world := c.World()
	if !c.GeneralInverse {
		return world.InvertFast(), nil
	}
	view, err := world.InvertGeneral()
	if err != nil {
		return math.Mat4{}, fmt.Errorf("camera view: %w", err)
	}
	return view, nil
}

// Projection returns the perspective projection for the given aspect ratio.
func (c *Camera) Projection(aspect float64) (math.Mat4, error) {
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection(aspect float64) (math.Mat4, error) {
	view, err := c.View()
	if err != nil {
		return math.Mat4{}, err
	}
	proj, err := c.Projection(aspect)
	if err != nil {
		return math.Mat4{}, err
	}
	return proj.Mul(view), nil
}

// Frustum returns the world-space view frustum.
func (c *Camera) Frustum(aspect float64) (geom.Frustum, error) {
	vp, err := c.ViewProjection(aspect)
	if err != nil {
		return geom.Frustum{}, err
	}
	return geom.FrustumFromMatrix(vp), nil
}

// Forward returns the world-space viewing direction.
func (c *Camera) Forward() math.Vec3 {
	return math.RotateEuler(c.Rotation, c.Order).TransformDirection(math.Vec3{Z: -1})
}

// LookAt turns the camera toward target.
func (c *Camera) LookAt(target math.Vec3) error {
	dir := target.Sub(c.Position)
	if dir.Length() <= math.EpsilonFloat {
		return ErrDegenerateTarget
	}

	up := math.UnitY
	// Nearly vertical: use Z as up to keep the basis well defined.
	if gomath.Abs(dir.Normalize().Y) > 0.99 {
		up = math.UnitZ
	}

	view := math.LookAt(c.Position, target, up)
	rotation := view.InvertFast().RotationComponent()
	c.Rotation = rotation.EulerAngles(c.Order)
	return nil
}

// Ray returns the world-space ray through pixel (px, py) of a w x h viewport.
// The view-projection is not affine, so it is inverted with the pivoting solver.
func (c *Camera) Ray(px, py float64, w, h int) (geom.Ray, error) {
	vp, err := c.ViewProjection(float64(w) / float64(h))
	if err != nil {
		return geom.Ray{}, err
	}
	inv, err := vp.InvertGeneral()
	if err != nil {
		return geom.Ray{}, fmt.Errorf("camera ray: %w", err)
	}
	return geom.ScreenToRay(px, py, float64(w), float64(h), inv), nil
}

// Unproject maps a point in normalized device coordinates back to world space.
func (c *Camera) Unproject(ndc math.Vec3, aspect float64) (math.Vec3, error) {
	vp, err := c.ViewProjection(aspect)
	if err != nil {
		return math.Vec3{}, err
	}
	inv, err := vp.InvertGeneral()
	if err != nil {
		return math.Vec3{}, fmt.Errorf("camera unproject: %w", err)
	}
	return inv.TransformPoint(ndc), nil
}

// FrustumCorners returns the eight world-space corners of the view volume,
// indexed like geom.AABB.Corners over the NDC cube.
func (c *Camera) FrustumCorners(aspect float64) ([8]math.Vec3, error) {
	var out [8]math.Vec3
	ndc := geom.NewAABB(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1}).Corners()
	vp, err := c.ViewProjection(aspect)
	if err != nil {
		return out, err
	}
	inv, err := vp.InvertGeneral()
	if err != nil {
		return out, fmt.Errorf("camera frustum corners: %w", err)
	}
	for i, p := range ndc {
		out[i] = inv.TransformPoint(p)
	}
	return out, nil
}
