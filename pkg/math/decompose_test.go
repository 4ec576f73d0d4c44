package math

import "testing"

func TestTranslationExtraction(t *testing.T) {
	m := Translate(3, -4, 5).Mul(RotateY(0.6)).Mul(Scale(2, 2, 2))
	if got := m.Translation(); !vecNear(got, Vec3{3, -4, 5}, 1e-12) {
		t.Errorf("Translation: got %v, want (3, -4, 5)", got)
	}
	if got := m.TranslationComponent(); !got.ApproxEqual(Translate(3, -4, 5), 1e-12) {
		t.Errorf("TranslationComponent: got %v", got)
	}
}

func TestScaleExtraction(t *testing.T) {
	want := Vec3{2, 3, 4}
	rotations := map[string]Mat4{
		"identity": Identity(),
		"x":        RotateX(0.9),
		"y":        RotateY(-1.3),
		"z":        RotateZ(2.2),
		"euler":    RotateEuler(Vec3{0.3, -0.7, 1.1}, EulerZXY),
	}
	for name, r := range rotations {
		t.Run(name, func(t *testing.T) {
			m := Translate(1, 2, 3).Mul(r).Mul(ScaleVec(want))
			if got := m.Scale(); !vecNear(got, want, 1e-12) {
				t.Errorf("Scale: got %v, want %v", got, want)
			}
			if got := m.RotationComponent(); !got.ApproxEqual(r, 1e-12) {
				t.Errorf("RotationComponent: got %v, want %v", got, r)
			}
		})
	}
}

func TestDecomposeRoundTrip(t *testing.T) {
	m := Translate(-7, 0.5, 12).
		Mul(RotateAxis(Vec3{1, 1, 0}.Normalize(), 0.8)).
		Mul(Scale(0.25, 5, 1.5))

	tr, r, s := m.Decompose()
	got := TranslateVec(tr).Mul(r).Mul(s)
	if !got.ApproxEqual(m, 1e-12) {
		t.Errorf("T*R*S: got %v, want %v", got, m)
	}
}

func TestRotationComponentZeroScale(t *testing.T) {
	m := RotateZ(0.5).Mul(Scale(0, 2, 2))
	r := m.RotationComponent()

	if got := r.Column(0).XYZ(); got != UnitX {
		t.Errorf("collapsed axis: got %v, want unit X", got)
	}
	want := RotateZ(0.5).Column(1).XYZ()
	if got := r.Column(1).XYZ(); !vecNear(got, want, 1e-12) {
		t.Errorf("column 1: got %v, want %v", got, want)
	}
}

func TestScaleComponent(t *testing.T) {
	got := Scale(2, 3, 4).ScaleComponent()
	if got != Scale(2, 3, 4) {
		t.Errorf("ScaleComponent: got %v", got)
	}
}
