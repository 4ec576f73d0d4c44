package math

// The functions in this file assume a transform built as T * R * S with no
// shear: the columns of the upper 3x3 block must be mutually orthogonal.
// Sheared or projective input is not detected and gives meaningless results.

// Translation returns the translation part of an affine transform.
func (m Mat4) Translation() Vec3 {
	return Vec3{m.Row0.W, m.Row1.W, m.Row2.W}
}

// TranslationComponent returns the translation part as a matrix.
func (m Mat4) TranslationComponent() Mat4 {
	return TranslateVec(m.Translation())
}

// Scale returns the per-axis scale, measured as the lengths of the first three
// columns of the 3x3 block. Reflections are reported as positive scale.
func (m Mat4) Scale() Vec3 {
	return Vec3{
		m.Column(0).XYZ().Length(),
		m.Column(1).XYZ().Length(),
		m.Column(2).XYZ().Length(),
	}
}

// ScaleComponent returns the scale part as a matrix.
func (m Mat4) ScaleComponent() Mat4 {
	return ScaleVec(m.Scale())
}

// RotationComponent returns the pure rotation left after dividing each basis
// column by its scale. An axis whose scale is at or below EpsilonDouble is
// replaced by the unit basis vector for that axis.
func (m Mat4) RotationComponent() Mat4 {
	scale := m.Scale()
	r := Identity()
	for col := 0; col < 3; col++ {
		s := scale.Get(col)
		if s <= EpsilonDouble {
			continue
		}
		c := m.Column(col)
		r = r.With(0, col, c.X/s).
			With(1, col, c.Y/s).
			With(2, col, c.Z/s)
	}
	return r
}

// Decompose splits m into translation, rotation and scale so that
// TranslateVec(t).Mul(r).Mul(s) reproduces m.
func (m Mat4) Decompose() (t Vec3, r Mat4, s Mat4) {
	return m.Translation(), m.RotationComponent(), m.ScaleComponent()
}
