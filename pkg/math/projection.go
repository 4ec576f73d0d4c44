package math

import (
	"fmt"
	"math"
)

// Perspective returns a right-handed perspective projection matrix with
// OpenGL clip depth (-1 at near, +1 at far).
// fovY is in radians, aspect is width/height.
//
// Arguments are rejected with ErrInvalidProjection when fovY is not in (0, pi],
// aspect is not positive, near or far is not positive, or near >= far. NaN
// fails every check.
func Perspective(fovY, aspect, near, far float64) (Mat4, error) {
	if !(fovY > 0 && fovY <= math.Pi) {
		return Mat4{}, fmt.Errorf("%w: fovY %v not in (0, pi]", ErrInvalidProjection, fovY)
	}
	if !(aspect > 0) {
		return Mat4{}, fmt.Errorf("%w: aspect %v must be positive", ErrInvalidProjection, aspect)
	}

	yMax := near * math.Tan(fovY/2)
	xMax := yMax * aspect
	return PerspectiveOffCenter(-xMax, xMax, -yMax, yMax, near, far)
}

// PerspectiveOffCenter returns a right-handed perspective projection for an
// asymmetric frustum given its extents on the near plane.
func PerspectiveOffCenter(left, right, bottom, top, near, far float64) (Mat4, error) {
	if err := checkDepthRange(near, far); err != nil {
		return Mat4{}, err
	}
	if !(near > 0) {
		return Mat4{}, fmt.Errorf("%w: near %v must be positive", ErrInvalidProjection, near)
	}
	if err := checkExtents(left, right, bottom, top); err != nil {
		return Mat4{}, err
	}

	x := 2 * near / (right - left)
	y := 2 * near / (top - bottom)
	a := (right + left) / (right - left)
	b := (top + bottom) / (top - bottom)
	c := -(far + near) / (far - near)
	d := -(2 * far * near) / (far - near)

	return NewMat4(
		x, 0, a, 0,
		0, y, b, 0,
		0, 0, c, d,
		0, 0, -1, 0,
	), nil
}

// Ortho returns a right-handed orthographic projection of the given width and
// height centered on the view axis.
func Ortho(width, height, near, far float64) (Mat4, error) {
	return OrthoOffCenter(-width/2, width/2, -height/2, height/2, near, far)
}

// OrthoOffCenter returns a right-handed orthographic projection matrix.
// left, right, bottom, top define the view volume boundaries.
// near and far define the depth range.
func OrthoOffCenter(left, right, bottom, top, near, far float64) (Mat4, error) {
	if err := checkExtents(left, right, bottom, top); err != nil {
		return Mat4{}, err
	}
	if !nonZero(far - near) {
		return Mat4{}, fmt.Errorf("%w: depth range %v..%v", ErrInvalidProjection, near, far)
	}

	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	fn := 1 / (far - near)

	return NewMat4(
		2*rl, 0, 0, -(right+left)*rl,
		0, 2*tb, 0, -(top+bottom)*tb,
		0, 0, -2*fn, -(far+near)*fn,
		0, 0, 0, 1,
	), nil
}

func checkDepthRange(near, far float64) error {
	if !(far > 0) {
		return fmt.Errorf("%w: far %v must be positive", ErrInvalidProjection, far)
	}
	if !(near < far) {
		return fmt.Errorf("%w: near %v must be less than far %v", ErrInvalidProjection, near, far)
	}
	return nil
}

func checkExtents(left, right, bottom, top float64) error {
	if !nonZero(right - left) {
		return fmt.Errorf("%w: width %v..%v", ErrInvalidProjection, left, right)
	}
	if !nonZero(top - bottom) {
		return fmt.Errorf("%w: height %v..%v", ErrInvalidProjection, bottom, top)
	}
	return nil
}

// nonZero is false for zero and NaN.
func nonZero(v float64) bool {
	return v > 0 || v < 0
}
