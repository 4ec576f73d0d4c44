package math

import (
	"fmt"
	"math"
)

// Tolerances used by the inverters, the decomposition guards and Euler extraction.
const (
	// EpsilonFloat is a fairly small value for single precision comparisons.
	EpsilonFloat = 4.76837158203125e-7
	// EpsilonDouble is a fairly small value for double precision comparisons.
	EpsilonDouble = 8.8817841970012523e-16
)

// Mat4 is a 4x4 matrix stored as four row vectors.
//
// Vectors are columns and are transformed as M * v, so the translation lives in
// the fourth column (Row0.W, Row1.W, Row2.W) and the bottom row of an affine
// matrix is [0 0 0 1]. At(row, col) and the M11..M44 accessors read the same
// storage.
type Mat4 struct {
	Row0, Row1, Row2, Row3 Vec4
}

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		Row0: Vec4{1, 0, 0, 0},
		Row1: Vec4{0, 1, 0, 0},
		Row2: Vec4{0, 0, 1, 0},
		Row3: Vec4{0, 0, 0, 1},
	}
}

// Zero returns the all-zero matrix.
func Zero() Mat4 {
	return Mat4{}
}

// NewMat4 builds a matrix from sixteen components in row-major order.
func NewMat4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float64,
) Mat4 {
	return Mat4{
		Row0: Vec4{m00, m01, m02, m03},
		Row1: Vec4{m10, m11, m12, m13},
		Row2: Vec4{m20, m21, m22, m23},
		Row3: Vec4{m30, m31, m32, m33},
	}
}

// FromRows builds a matrix from four row vectors.
func FromRows(r0, r1, r2, r3 Vec4) Mat4 {
	return Mat4{Row0: r0, Row1: r1, Row2: r2, Row3: r3}
}

// FromArray builds a matrix from a row-major array.
func FromArray(a [16]float64) Mat4 {
	return NewMat4(
		a[0], a[1], a[2], a[3],
		a[4], a[5], a[6], a[7],
		a[8], a[9], a[10], a[11],
		a[12], a[13], a[14], a[15],
	)
}

// Array returns the components in row-major order.
func (m Mat4) Array() [16]float64 {
	return [16]float64{
		m.Row0.X, m.Row0.Y, m.Row0.Z, m.Row0.W,
		m.Row1.X, m.Row1.Y, m.Row1.Z, m.Row1.W,
		m.Row2.X, m.Row2.Y, m.Row2.Z, m.Row2.W,
		m.Row3.X, m.Row3.Y, m.Row3.Z, m.Row3.W,
	}
}

// Float32 returns the matrix in column-major float32 layout, ready for
// glUniformMatrix4fv with transpose=false.
func (m Mat4) Float32() [16]float32 {
	var out [16]float32
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[col*4+row] = float32(m.At(row, col))
		}
	}
	return out
}

// Row returns row i.
func (m Mat4) Row(i int) Vec4 {
	switch i {
	case 0:
		return m.Row0
	case 1:
		return m.Row1
	case 2:
		return m.Row2
	case 3:
		return m.Row3
	}
	panic(fmt.Sprintf("math: Mat4 row %d out of range", i))
}

// Column returns column i.
func (m Mat4) Column(i int) Vec4 {
	return Vec4{m.Row0.Get(i), m.Row1.Get(i), m.Row2.Get(i), m.Row3.Get(i)}
}

// At returns the element at (row, col).
func (m Mat4) At(row, col int) float64 {
	return m.Row(row).Get(col)
}

// With returns a copy of m with the element at (row, col) replaced.
func (m Mat4) With(row, col int, v float64) Mat4 {
	switch row {
	case 0:
		m.Row0 = m.Row0.with(col, v)
	case 1:
		m.Row1 = m.Row1.with(col, v)
	case 2:
		m.Row2 = m.Row2.with(col, v)
	case 3:
		m.Row3 = m.Row3.with(col, v)
	default:
		panic(fmt.Sprintf("math: Mat4 row %d out of range", row))
	}
	return m
}

// M11 through M44 return the element at 1-based (row, col), matching At(row-1, col-1).
func (m Mat4) M11() float64 { return m.Row0.X }
func (m Mat4) M12() float64 { return m.Row0.Y }
func (m Mat4) M13() float64 { return m.Row0.Z }
func (m Mat4) M14() float64 { return m.Row0.W }
func (m Mat4) M21() float64 { return m.Row1.X }
func (m Mat4) M22() float64 { return m.Row1.Y }
func (m Mat4) M23() float64 { return m.Row1.Z }
func (m Mat4) M24() float64 { return m.Row1.W }
func (m Mat4) M31() float64 { return m.Row2.X }
func (m Mat4) M32() float64 { return m.Row2.Y }
func (m Mat4) M33() float64 { return m.Row2.Z }
func (m Mat4) M34() float64 { return m.Row2.W }
func (m Mat4) M41() float64 { return m.Row3.X }
func (m Mat4) M42() float64 { return m.Row3.Y }
func (m Mat4) M43() float64 { return m.Row3.Z }
func (m Mat4) M44() float64 { return m.Row3.W }

// IsIdentity reports whether m is exactly the identity.
func (m Mat4) IsIdentity() bool {
	return m == Identity()
}

// IsZero reports whether every element is zero.
func (m Mat4) IsZero() bool {
	return m == Mat4{}
}

// IsAffine reports whether the bottom row is [0 0 0 1].
func (m Mat4) IsAffine() bool {
	return m.Row3 == Vec4{0, 0, 0, 1}
}

// ApproxEqual reports whether every element differs from other by at most eps.
func (m Mat4) ApproxEqual(other Mat4, eps float64) bool {
	a, b := m.Array(), other.Array()
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// Add returns the element-wise sum.
func (m Mat4) Add(other Mat4) Mat4 {
	return Mat4{m.Row0.Add(other.Row0), m.Row1.Add(other.Row1), m.Row2.Add(other.Row2), m.Row3.Add(other.Row3)}
}

// Sub returns the element-wise difference.
func (m Mat4) Sub(other Mat4) Mat4 {
	return Mat4{m.Row0.Sub(other.Row0), m.Row1.Sub(other.Row1), m.Row2.Sub(other.Row2), m.Row3.Sub(other.Row3)}
}

// Mul multiplies this matrix by another (m * other), so other is applied first.
//
// Identity and zero operands return without arithmetic. Two affine operands use
// a reduced 3x4 product that skips the bottom row; see mulAffine.
func (m Mat4) Mul(other Mat4) Mat4 {
	switch {
	case m.IsIdentity():
		return other
	case other.IsIdentity():
		return m
	case m.IsZero() || other.IsZero():
		return Mat4{}
	case m.IsAffine() && other.IsAffine():
		return mulAffine(m, other)
	}
	return mulFull(m, other)
}

func mulFull(a, b Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		row := a.Row(i)
		r = r.withRow(i, Vec4{
			row.X*b.Row0.X + row.Y*b.Row1.X + row.Z*b.Row2.X + row.W*b.Row3.X,
			row.X*b.Row0.Y + row.Y*b.Row1.Y + row.Z*b.Row2.Y + row.W*b.Row3.Y,
			row.X*b.Row0.Z + row.Y*b.Row1.Z + row.Z*b.Row2.Z + row.W*b.Row3.Z,
			row.X*b.Row0.W + row.Y*b.Row1.W + row.Z*b.Row2.W + row.W*b.Row3.W,
		})
	}
	return r
}

// mulAffine assumes both bottom rows are [0 0 0 1] and skips computing the
// bottom row. The upper rows keep the zero terms of b's bottom row, so their
// results match mulFull bit for bit, including the sign of zero sums. The
// bottom row is the literal [0 0 0 1], which is what mulFull produces when
// the bottom rows hold positive zeros.
func mulAffine(a, b Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 3; i++ {
		row := a.Row(i)
		r = r.withRow(i, Vec4{
			row.X*b.Row0.X + row.Y*b.Row1.X + row.Z*b.Row2.X + row.W*b.Row3.X,
			row.X*b.Row0.Y + row.Y*b.Row1.Y + row.Z*b.Row2.Y + row.W*b.Row3.Y,
			row.X*b.Row0.Z + row.Y*b.Row1.Z + row.Z*b.Row2.Z + row.W*b.Row3.Z,
			row.X*b.Row0.W + row.Y*b.Row1.W + row.Z*b.Row2.W + row.W,
		})
	}
	r.Row3 = Vec4{0, 0, 0, 1}
	return r
}

func (m Mat4) withRow(i int, v Vec4) Mat4 {
	switch i {
	case 0:
		m.Row0 = v
	case 1:
		m.Row1 = v
	case 2:
		m.Row2 = v
	case 3:
		m.Row3 = v
	}
	return m
}

// Transpose swaps rows and columns.
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		Row0: m.Column(0),
		Row1: m.Column(1),
		Row2: m.Column(2),
		Row3: m.Column(3),
	}
}

// Trace returns the sum of the diagonal.
func (m Mat4) Trace() float64 {
	return m.Row0.X + m.Row1.Y + m.Row2.Z + m.Row3.W
}

// Determinant returns the determinant using the full 24-term expansion.
func (m Mat4) Determinant() float64 {
	a, b, c, d := m.Row0, m.Row1, m.Row2, m.Row3
	return a.X*b.Y*c.Z*d.W - a.X*b.Y*c.W*d.Z + a.X*b.Z*c.W*d.Y - a.X*b.Z*c.Y*d.W +
		a.X*b.W*c.Y*d.Z - a.X*b.W*c.Z*d.Y - a.Y*b.Z*c.W*d.X + a.Y*b.Z*c.X*d.W -
		a.Y*b.W*c.X*d.Z + a.Y*b.W*c.Z*d.X - a.Y*b.X*c.Z*d.W + a.Y*b.X*c.W*d.Z +
		a.Z*b.W*c.X*d.Y - a.Z*b.W*c.Y*d.X + a.Z*b.X*c.Y*d.W - a.Z*b.X*c.W*d.Y +
		a.Z*b.Y*c.W*d.X - a.Z*b.Y*c.X*d.W - a.W*b.X*c.Y*d.Z + a.W*b.X*c.Z*d.Y -
		a.W*b.Y*c.Z*d.X + a.W*b.Y*c.X*d.Z - a.W*b.Z*c.X*d.Y + a.W*b.Z*c.Y*d.X
}

// MulVec4 transforms v as M * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{m.Row0.Dot(v), m.Row1.Dot(v), m.Row2.Dot(v), m.Row3.Dot(v)}
}

// PremulVec4 transforms v as v * M (row vector on the left).
func (m Mat4) PremulVec4(v Vec4) Vec4 {
	return Vec4{m.Column(0).Dot(v), m.Column(1).Dot(v), m.Column(2).Dot(v), m.Column(3).Dot(v)}
}

// TransformPoint transforms a 3D point by this matrix (assumes w=1) and
// divides by the resulting w when it is neither 0 nor 1.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	r := m.MulVec4(p.Vec4(1))
	if r.W != 0 && r.W != 1 {
		return Vec3{r.X / r.W, r.Y / r.W, r.Z / r.W}
	}
	return r.XYZ()
}

// TransformPerspective transforms p and applies the perspective division.
// Points that land on or behind the projection plane (w <= EpsilonDouble)
// collapse to the zero vector.
func (m Mat4) TransformPerspective(p Vec3) Vec3 {
	r := m.MulVec4(p.Vec4(1))
	if r.W <= EpsilonDouble {
		return Vec3{}
	}
	return Vec3{r.X / r.W, r.Y / r.W, r.Z / r.W}
}

// TransformDirection transforms a direction vector (ignores translation).
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return m.MulVec4(d.Vec4(0)).XYZ()
}

// String formats the matrix row by row.
func (m Mat4) String() string {
	return fmt.Sprintf("[%g %g %g %g; %g %g %g %g; %g %g %g %g; %g %g %g %g]",
		m.Row0.X, m.Row0.Y, m.Row0.Z, m.Row0.W,
		m.Row1.X, m.Row1.Y, m.Row1.Z, m.Row1.W,
		m.Row2.X, m.Row2.Y, m.Row2.Z, m.Row2.W,
		m.Row3.X, m.Row3.Y, m.Row3.Z, m.Row3.W)
}
