package math

import "math"

// Translate returns a translation matrix.
func Translate(x, y, z float64) Mat4 {
	return NewMat4(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// TranslateVec returns a translation matrix for v.
func TranslateVec(v Vec3) Mat4 {
	return Translate(v.X, v.Y, v.Z)
}

// Scale returns a scale matrix.
func Scale(x, y, z float64) Mat4 {
	return NewMat4(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// ScaleVec returns a scale matrix for v.
func ScaleVec(v Vec3) Mat4 {
	return Scale(v.X, v.Y, v.Z)
}

// ScaleUniform returns a matrix scaling all three axes by s.
func ScaleUniform(s float64) Mat4 {
	return Scale(s, s, s)
}

// RotateX returns a counter-clockwise rotation around the X axis.
// angle is in radians.
func RotateX(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	return NewMat4(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotateY returns a counter-clockwise rotation around the Y axis.
// angle is in radians.
func RotateY(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	return NewMat4(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotateZ returns a counter-clockwise rotation around the Z axis.
// angle is in radians.
func RotateZ(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	return NewMat4(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// RotateAxis creates a rotation matrix around an arbitrary axis.
// axis should be normalized, angle is in radians.
func RotateAxis(axis Vec3, angle float64) Mat4 {
	s, c := math.Sincos(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	return NewMat4(
		t*x*x+c, t*x*y-s*z, t*x*z+s*y, 0,
		t*x*y+s*z, t*y*y+c, t*y*z-s*x, 0,
		t*x*z-s*y, t*y*z+s*x, t*z*z+c, 0,
		0, 0, 0, 1,
	)
}

// rotateAround returns the rotation about basis axis 0, 1 or 2.
func rotateAround(axis int, angle float64) Mat4 {
	switch axis {
	case 0:
		return RotateX(angle)
	case 1:
		return RotateY(angle)
	default:
		return RotateZ(angle)
	}
}

// LookAt returns a right-handed view matrix looking from eye to center with up direction.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return NewMat4(
		s.X, s.Y, s.Z, -s.Dot(eye),
		u.X, u.Y, u.Z, -u.Dot(eye),
		-f.X, -f.Y, -f.Z, f.Dot(eye),
		0, 0, 0, 1,
	)
}
