package math

import (
	"fmt"
	"math"
)

// IsInvertible reports whether |det| is above EpsilonDouble, the threshold
// InvertFast uses before falling back to the transpose, and returns det.
func (m Mat4) IsInvertible() (bool, float64) {
	det := m.Determinant()
	return math.Abs(det) > EpsilonDouble, det
}

// InvertFast returns the inverse using cofactor expansion over 2x2 minors.
//
// It is meant for rendering transforms that are known to be well conditioned
// (model, view and projection matrices). It never fails: when |det| is not
// above EpsilonDouble the transpose is returned instead of an inverse. Use
// InvertGeneral for matrices of unknown origin, or InvertFastOK to learn
// whether the fallback was taken.
func (m Mat4) InvertFast() Mat4 {
	inv, _ := m.InvertFastOK()
	return inv
}

// InvertFastOK is InvertFast with a status: ok is false when |det| is at or
// below EpsilonDouble and the transpose was returned.
func (m Mat4) InvertFastOK() (inv Mat4, ok bool) {
	if m.IsIdentity() {
		return m, true
	}
	if m.IsZero() {
		return m, false
	}

	// Named by column so that the cofactors read like the textbook adjugate.
	a, b, c, d := m.Row0.X, m.Row1.X, m.Row2.X, m.Row3.X
	e, f, g, h := m.Row0.Y, m.Row1.Y, m.Row2.Y, m.Row3.Y
	i, j, k, l := m.Row0.Z, m.Row1.Z, m.Row2.Z, m.Row3.Z
	mm, n, o, p := m.Row0.W, m.Row1.W, m.Row2.W, m.Row3.W

	kpLo := k*p - l*o
	jpLn := j*p - l*n
	joKn := j*o - k*n
	ipLm := i*p - l*mm
	ioKm := i*o - k*mm
	inJm := i*n - j*mm

	a11 := +(f*kpLo - g*jpLn + h*joKn)
	a12 := -(e*kpLo - g*ipLm + h*ioKm)
	a13 := +(e*jpLn - f*ipLm + h*inJm)
	a14 := -(e*joKn - f*ioKm + g*inJm)

	det := a*a11 + b*a12 + c*a13 + d*a14
	if math.Abs(det) <= EpsilonDouble {
		return m.Transpose(), false
	}
	invDet := 1 / det

	gpHo := g*p - h*o
	fpHn := f*p - h*n
	foGn := f*o - g*n
	epHm := e*p - h*mm
	eoGm := e*o - g*mm
	enFm := e*n - f*mm

	glHk := g*l - h*k
	flHj := f*l - h*j
	fkGj := f*k - g*j
	elHi := e*l - h*i
	ekGi := e*k - g*i
	ejFi := e*j - f*i

	return Mat4{
		Row0: Vec4{a11, a12, a13, a14}.Scale(invDet),
		Row1: Vec4{
			-(b*kpLo - c*jpLn + d*joKn),
			+(a*kpLo - c*ipLm + d*ioKm),
			-(a*jpLn - b*ipLm + d*inJm),
			+(a*joKn - b*ioKm + c*inJm),
		}.Scale(invDet),
		Row2: Vec4{
			+(b*gpHo - c*fpHn + d*foGn),
			-(a*gpHo - c*epHm + d*eoGm),
			+(a*fpHn - b*epHm + d*enFm),
			-(a*foGn - b*eoGm + c*enFm),
		}.Scale(invDet),
		Row3: Vec4{
			-(b*glHk - c*flHj + d*fkGj),
			+(a*glHk - c*elHi + d*ekGi),
			-(a*flHj - b*elHi + d*ejFi),
			+(a*fkGj - b*ekGi + c*ejFi),
		}.Scale(invDet),
	}, true
}

// InvertGeneral returns the inverse using Gauss-Jordan elimination with full
// pivoting. The largest remaining element is used as each pivot, so it copes
// with matrices that are far from affine or badly scaled.
//
// A zero pivot means the matrix is singular; the returned error wraps
// ErrSingularMatrix and no partial result is returned.
func (m Mat4) InvertGeneral() (Mat4, error) {
	var (
		a                  [4][4]float64
		indxr, indxc, ipiv [4]int
	)
	for r := 0; r < 4; r++ {
		row := m.Row(r)
		a[r] = [4]float64{row.X, row.Y, row.Z, row.W}
	}

	for step := 0; step < 4; step++ {
		big := 0.0
		irow, icol := -1, -1
		for r := 0; r < 4; r++ {
			if ipiv[r] == 1 {
				continue
			}
			for c := 0; c < 4; c++ {
				if ipiv[c] != 0 {
					continue
				}
				if v := math.Abs(a[r][c]); v >= big {
					big = v
					irow, icol = r, c
				}
			}
		}
		if irow < 0 || a[irow][icol] == 0 {
			return Mat4{}, fmt.Errorf("invert general: zero pivot at step %d of %v: %w", step, m, ErrSingularMatrix)
		}
		ipiv[icol]++

		// Move the pivot onto the diagonal.
		if irow != icol {
			a[irow], a[icol] = a[icol], a[irow]
		}
		indxr[step], indxc[step] = irow, icol

		pivinv := 1 / a[icol][icol]
		a[icol][icol] = 1
		for c := 0; c < 4; c++ {
			a[icol][c] *= pivinv
		}

		for r := 0; r < 4; r++ {
			if r == icol {
				continue
			}
			dum := a[r][icol]
			a[r][icol] = 0
			for c := 0; c < 4; c++ {
				a[r][c] -= a[icol][c] * dum
			}
		}
	}

	// Undo the column interchanges in reverse order.
	for step := 3; step >= 0; step-- {
		if indxr[step] == indxc[step] {
			continue
		}
		for r := 0; r < 4; r++ {
			a[r][indxr[step]], a[r][indxc[step]] = a[r][indxc[step]], a[r][indxr[step]]
		}
	}

	return NewMat4(
		a[0][0], a[0][1], a[0][2], a[0][3],
		a[1][0], a[1][1], a[1][2], a[1][3],
		a[2][0], a[2][1], a[2][2], a[2][3],
		a[3][0], a[3][1], a[3][2], a[3][3],
	), nil
}
