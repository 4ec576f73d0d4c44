package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m.M11() != 1 || m.M22() != 1 || m.M33() != 1 || m.M44() != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m.M12() != 0 || m.M21() != 0 || m.M34() != 0 || m.M43() != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
	if !m.IsIdentity() || !m.IsAffine() || m.IsZero() {
		t.Error("Identity predicates wrong")
	}
}

func TestAtMatchesAccessors(t *testing.T) {
	m := NewMat4(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	if m.At(0, 3) != m.M14() || m.M14() != 4 {
		t.Errorf("At(0,3): got %v, M14 %v, want 4", m.At(0, 3), m.M14())
	}
	if m.At(3, 0) != m.M41() || m.M41() != 13 {
		t.Errorf("At(3,0): got %v, M41 %v, want 13", m.At(3, 0), m.M41())
	}
	if m.At(2, 1) != 10 {
		t.Errorf("At(2,1): got %v, want 10", m.At(2, 1))
	}
	if got := FromArray(m.Array()); got != m {
		t.Errorf("FromArray(Array()): got %v, want %v", got, m)
	}
	if got := m.With(1, 2, -1).M23(); got != -1 {
		t.Errorf("With(1,2): got %v, want -1", got)
	}
}

func TestFloat32ColumnMajor(t *testing.T) {
	f := Translate(5, 10, 15).Float32()

	// Translation should be in column 4 (indices 12, 13, 14)
	if f[12] != 5 || f[13] != 10 || f[14] != 15 || f[15] != 1 {
		t.Errorf("Float32 translation: got (%v, %v, %v, %v), want (5, 10, 15, 1)", f[12], f[13], f[14], f[15])
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3).Mul(RotateX(0.5))
	id := Identity()

	if got := m.Mul(id); got != m {
		t.Errorf("M * I: got %v, want %v", got, m)
	}
	if got := id.Mul(m); got != m {
		t.Errorf("I * M: got %v, want %v", got, m)
	}
}

func TestMulZero(t *testing.T) {
	m := Translate(1, 2, 3)
	if got := m.Mul(Zero()); !got.IsZero() {
		t.Errorf("M * 0: got %v, want zero", got)
	}
	if got := Zero().Mul(m); !got.IsZero() {
		t.Errorf("0 * M: got %v, want zero", got)
	}
}

func TestMulAffineMatchesFull(t *testing.T) {
	a := Translate(1, -2, 3).Mul(RotateAxis(Vec3{1, 2, 3}.Normalize(), 0.7)).Mul(Scale(2, 0.5, 3))
	b := Translate(-4, 5, 0.25).Mul(RotateEuler(Vec3{0.1, 0.2, 0.3}, EulerXYZ))

	if !a.IsAffine() || !b.IsAffine() {
		t.Fatal("inputs should be affine")
	}

	fast := mulAffine(a, b)
	full := mulFull(a, b)
	if fast != full {
		t.Errorf("affine product differs from full product:\n got %v\nwant %v", fast, full)
	}
	if got := a.Mul(b); got != full {
		t.Errorf("Mul: got %v, want %v", got, full)
	}
}

func TestMulAffineKeepsZeroSign(t *testing.T) {
	negZero := math.Copysign(0, -1)
	// Row 0 of a times column 1 of b sums three negative zeros before the
	// translation term adds a positive one.
	a := NewMat4(
		-1, 1, 1, 1,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
	b := NewMat4(
		1, 0, 0, 0,
		0, negZero, 0, 0,
		0, negZero, 1, 0,
		0, 0, 0, 1,
	)

	fast, full := mulAffine(a, b).Array(), mulFull(a, b).Array()
	for i := range fast {
		if math.Signbit(fast[i]) != math.Signbit(full[i]) || fast[i] != full[i] {
			t.Errorf("element %d: affine %v, full %v", i, fast[i], full[i])
		}
	}
	if got := a.Mul(b).M12(); got != 0 || math.Signbit(got) {
		t.Errorf("Mul M12: got %v, want +0", got)
	}
}

func TestMulNonAffine(t *testing.T) {
	a := NewMat4(
		1, 2, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 1, 0,
	)
	b := Translate(1, 2, 3)
	got := a.Mul(b)
	want := NewMat4(
		1, 2, 0, 5,
		0, 1, 0, 2,
		0, 0, 1, 3,
		0, 0, 1, 3,
	)
	if got != want {
		t.Errorf("Mul: got %v, want %v", got, want)
	}
}

func TestTransposeInvolution(t *testing.T) {
	m := NewMat4(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	tr := m.Transpose()
	if tr.At(0, 3) != 13 || tr.At(3, 0) != 4 {
		t.Errorf("Transpose: got %v", tr)
	}
	if got := tr.Transpose(); got != m {
		t.Errorf("Transpose twice: got %v, want %v", got, m)
	}
}

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		want float64
	}{
		{"identity", Identity(), 1},
		{"scale", Scale(2, 3, 4), 24},
		{"translate", Translate(7, 8, 9), 1},
		{"rotation", RotateAxis(Vec3{0, 0.6, 0.8}, 1.2), 1},
		{"singular", NewMat4(1, 2, 3, 4, 2, 4, 6, 8, 0, 0, 1, 0, 0, 0, 0, 1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Determinant(); abs(got-tt.want) > 1e-12 {
				t.Errorf("Determinant: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrace(t *testing.T) {
	if got := Scale(2, 3, 4).Trace(); got != 10 {
		t.Errorf("Trace: got %v, want 10", got)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	if m.M14() != 5 || m.M24() != 10 || m.M34() != 15 {
		t.Errorf("Translate: got (%v, %v, %v), want (5, 10, 15)", m.M14(), m.M24(), m.M34())
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformPoint(Vec3{1, 2, 3})

	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestTransformPointScale(t *testing.T) {
	m := Scale(2, 2, 2)
	got := m.TransformPoint(Vec3{1, 2, 3})

	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("TransformPoint with scale: got %v, want %v", got, want)
	}
}

func TestTransformPointDividesByW(t *testing.T) {
	m := Identity().With(3, 3, 2)
	got := m.TransformPoint(Vec3{2, 4, 6})
	want := Vec3{1, 2, 3}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestTransformPerspectiveBehindEye(t *testing.T) {
	proj, err := Perspective(math.Pi/2, 1, 1, 10)
	if err != nil {
		t.Fatalf("Perspective: %v", err)
	}
	// Points behind the camera have w <= 0.
	if got := proj.TransformPerspective(Vec3{0, 0, 5}); got != (Vec3{}) {
		t.Errorf("TransformPerspective behind eye: got %v, want zero", got)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(10, 20, 30)
	if got := m.TransformDirection(Vec3{1, 0, 0}); got != (Vec3{1, 0, 0}) {
		t.Errorf("TransformDirection: got %v, want (1, 0, 0)", got)
	}
}

func TestPremulVec4(t *testing.T) {
	m := Translate(1, 2, 3)
	v := Vec4{1, 1, 1, 1}
	if got, want := m.PremulVec4(v), m.Transpose().MulVec4(v); got != want {
		t.Errorf("PremulVec4: got %v, want %v", got, want)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(math.Pi / 2) // 90 degrees
	result := m.TransformPoint(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if !vecNear(result, Vec3{0, 0, -1}, 1e-12) {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateZ90(t *testing.T) {
	result := RotateZ(math.Pi / 2).TransformPoint(Vec3{1, 0, 0})
	if !vecNear(result, Vec3{0, 1, 0}, 1e-12) {
		t.Errorf("RotateZ 90: got %v, want (0, 1, 0)", result)
	}
}

func TestRotateAxisMatchesBasis(t *testing.T) {
	angle := 0.83
	tests := []struct {
		name string
		axis Vec3
		want Mat4
	}{
		{"x", UnitX, RotateX(angle)},
		{"y", UnitY, RotateY(angle)},
		{"z", UnitZ, RotateZ(angle)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RotateAxis(tt.axis, angle); !got.ApproxEqual(tt.want, 1e-15) {
				t.Errorf("RotateAxis: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, UnitY)

	if !m.IsAffine() {
		t.Errorf("LookAt should be affine, got %v", m)
	}
	if got := m.TransformPoint(eye); !vecNear(got, Vec3{}, 1e-12) {
		t.Errorf("LookAt eye: got %v, want origin", got)
	}
	// The target sits straight ahead on -Z.
	if got := m.TransformPoint(Vec3{}); !vecNear(got, Vec3{0, 0, -5}, 1e-12) {
		t.Errorf("LookAt target: got %v, want (0, 0, -5)", got)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func vecNear(a, b Vec3, eps float64) bool {
	return abs(a.X-b.X) <= eps && abs(a.Y-b.Y) <= eps && abs(a.Z-b.Z) <= eps
}
