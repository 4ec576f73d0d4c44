package scene

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Faultbox/midgard-math/pkg/geom"
	"github.com/Faultbox/midgard-math/pkg/math"
)

func vecNear(a, b math.Vec3) bool {
	return a.Distance(b) <= 1e-9
}

func TestLoadYard(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "yard.yaml"), math.DefaultEulerOrder)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(s.Objects) != 6 {
		t.Fatalf("expected 6 objects, got %d", len(s.Objects))
	}
	if s.Camera.Near != 0.5 || s.Camera.Far != 100 {
		t.Errorf("camera clip: got %v..%v", s.Camera.Near, s.Camera.Far)
	}
	want := math.Vec3{Y: -5, Z: -20}.Normalize()
	if got := s.Camera.Forward(); !vecNear(got, want) {
		t.Errorf("camera forward: got %v, want %v", got, want)
	}
	if s.Light != (math.Vec3{X: -0.5, Y: -1, Z: -0.3}) {
		t.Errorf("light: got %v", s.Light)
	}
	if got := s.Children("house"); len(got) != 1 || got[0] != "chimney" {
		t.Errorf("children of house: got %v", got)
	}
}

func TestWorldMatrixFollowsParent(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "yard.yaml"), math.DefaultEulerOrder)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	house, err := s.WorldMatrix("house")
	if err != nil {
		t.Fatalf("WorldMatrix(house): %v", err)
	}
	chimney, err := s.WorldMatrix("chimney")
	if err != nil {
		t.Fatalf("WorldMatrix(chimney): %v", err)
	}

	// The chimney origin sits at (1, 3, 0) in house space.
	want := house.TransformPoint(math.Vec3{X: 1, Y: 3, Z: 0})
	if got := chimney.Translation(); !vecNear(got, want) {
		t.Errorf("chimney translation: got %v, want %v", got, want)
	}

	// A 30 degree yaw comes back out of the world matrix.
	angles := house.RotationComponent().Euler()
	if !vecNear(angles, math.Vec3{Y: 30 * 3.141592653589793 / 180}) {
		t.Errorf("house rotation: got %v", angles)
	}
}

func TestQuaternionAndScale(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "yard.yaml"), math.DefaultEulerOrder)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cart, err := s.WorldMatrix("cart")
	if err != nil {
		t.Fatalf("WorldMatrix(cart): %v", err)
	}

	tr, rot, scale := cart.Decompose()
	if !vecNear(tr, math.Vec3{X: -6, Y: 0, Z: 2}) {
		t.Errorf("translation: got %v", tr)
	}
	if !vecNear(scale.Scale(), math.Vec3{X: 1.5, Y: 1.5, Z: 1.5}) {
		t.Errorf("scale: got %v", scale.Scale())
	}
	// The quaternion is a 45 degree turn about Y.
	if !rot.ApproxEqual(math.RotateY(3.141592653589793/4), 1e-9) {
		t.Errorf("rotation: got %v", rot)
	}
}

func TestBounds(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "yard.yaml"), math.DefaultEulerOrder)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tower, err := s.WorldBounds("tower")
	if err != nil {
		t.Fatalf("WorldBounds(tower): %v", err)
	}
	want := geom.NewAABB(math.Vec3{X: -1, Y: 0, Z: -61}, math.Vec3{X: 1, Y: 10, Z: -59})
	if tower != want {
		t.Errorf("tower bounds: got %v, want %v", tower, want)
	}

	all, err := s.Bounds()
	if err != nil {
		t.Fatalf("Bounds: %v", err)
	}
	for _, obj := range s.Objects {
		b, _ := s.WorldBounds(obj.Name)
		if geom.Union(all, b) != all {
			t.Errorf("scene bounds %v do not contain %s %v", all, obj.Name, b)
		}
	}

	if _, err := (&Scene{}).Bounds(); !errors.Is(err, ErrEmptyScene) {
		t.Errorf("empty scene: got %v, want ErrEmptyScene", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "duplicate",
			yaml: `
objects:
  - {name: a, bounds: {min: [0, 0, 0], max: [1, 1, 1]}}
  - {name: a, bounds: {min: [0, 0, 0], max: [1, 1, 1]}}
`,
			want: ErrDuplicateName,
		},
		{
			name: "unknown parent",
			yaml: `
objects:
  - {name: a, parent: ghost, bounds: {min: [0, 0, 0], max: [1, 1, 1]}}
`,
			want: ErrUnknownParent,
		},
		{
			name: "cycle",
			yaml: `
objects:
  - {name: a, parent: b, bounds: {min: [0, 0, 0], max: [1, 1, 1]}}
  - {name: b, parent: c, bounds: {min: [0, 0, 0], max: [1, 1, 1]}}
  - {name: c, parent: a, bounds: {min: [0, 0, 0], max: [1, 1, 1]}}
`,
			want: ErrCycle,
		},
		{
			name: "singular matrix",
			yaml: `
objects:
  - name: flat
    bounds: {min: [0, 0, 0], max: [1, 1, 1]}
    matrix: [1, 0, 0, 0,  0, 0, 0, 0,  0, 0, 1, 0,  0, 0, 0, 1]
`,
			want: math.ErrSingularMatrix,
		},
		{
			name: "short matrix",
			yaml: `
objects:
  - {name: m, bounds: {min: [0, 0, 0], max: [1, 1, 1]}, matrix: [1, 0, 0]}
`,
			want: ErrBadTransform,
		},
		{
			name: "bad order",
			yaml: `
objects:
  - {name: r, bounds: {min: [0, 0, 0], max: [1, 1, 1]}, rotation: [10, 0, 0], order: xzz}
`,
			want: math.ErrUnknownEulerOrder,
		},
		{
			name: "bad camera",
			yaml: `
camera: {near: 10, far: 1}
`,
			want: math.ErrInvalidProjection,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), math.DefaultEulerOrder)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse: got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseVectorForms(t *testing.T) {
	_, err := Parse([]byte(`
objects:
  - {name: a, bounds: {min: [0, 0], max: [1, 1, 1]}}
`), math.DefaultEulerOrder)
	if err == nil {
		t.Error("expected error for two-component vector")
	}

	_, err = Parse([]byte(`
objects:
  - {name: a, bounds: {max: [1, 1, 1]}}
`), math.DefaultEulerOrder)
	if err == nil {
		t.Error("expected error for missing bounds.min")
	}
}

func TestUnknownObject(t *testing.T) {
	s, err := Parse([]byte("objects: []\n"), math.DefaultEulerOrder)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := s.WorldMatrix("nope"); !errors.Is(err, ErrUnknownObject) {
		t.Errorf("WorldMatrix: got %v, want ErrUnknownObject", err)
	}
}

func TestSunLight(t *testing.T) {
	s, err := Parse([]byte(`
sun: {longitude: 0, latitude: 90}
objects: []
`), math.DefaultEulerOrder)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !vecNear(s.Light, math.Vec3{Y: -1}) {
		t.Errorf("light: got %v, want straight down", s.Light)
	}

	_, err = Parse([]byte(`
light: [0, -1, 0]
sun: {longitude: 0, latitude: 90}
objects: []
`), math.DefaultEulerOrder)
	if err == nil {
		t.Error("expected error when both light and sun are set")
	}
}
