package geom

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/midgard-math/pkg/math"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float64) AABB {
	return NewAABB(math.Vec3{X: minX, Y: minY, Z: minZ}, math.Vec3{X: maxX, Y: maxY, Z: maxZ})
}

func TestNewAABBKeepsOrder(t *testing.T) {
	b := box(1, 1, 1, 0, 0, 0)
	if b.Min.X != 1 || b.Max.X != 0 {
		t.Errorf("NewAABB reordered corners: got %v", b)
	}
	if got := Union(box(0, 0, 0, 1, 1, 1), box(2, 2, 2, 3, 3, 3)); got != box(0, 0, 0, 3, 3, 3) {
		t.Errorf("Union: got %v", got)
	}
}

func TestUnionCommutativeAssociative(t *testing.T) {
	a := box(0, 0, 0, 1, 1, 1)
	b := box(-2, 0.5, 3, -1, 4, 5)
	c := box(7, -3, -3, 8, -2, 0)

	if Union(a, b) != Union(b, a) {
		t.Errorf("Union not commutative: %v vs %v", Union(a, b), Union(b, a))
	}
	if Union(Union(a, b), c) != Union(a, Union(b, c)) {
		t.Errorf("Union not associative: %v vs %v", Union(Union(a, b), c), Union(a, Union(b, c)))
	}
}

func TestUnionPointInside(t *testing.T) {
	b := box(-1, -1, -1, 1, 1, 1)
	if got := b.Extend(math.Vec3{X: 0.5, Y: -0.5, Z: 1}); got != b {
		t.Errorf("Extend with inside point: got %v, want %v", got, b)
	}
	got := UnionPoint(b, math.Vec3{X: 3, Y: 0, Z: -4})
	if want := box(-1, -1, -4, 3, 1, 1); got != want {
		t.Errorf("UnionPoint: got %v, want %v", got, want)
	}
}

func TestFromPoints(t *testing.T) {
	got, err := FromPoints(
		math.Vec3{X: 1, Y: 2, Z: 3},
		math.Vec3{X: -1, Y: 5, Z: 0},
		math.Vec3{X: 0, Y: 0, Z: 9},
	)
	if err != nil {
		t.Fatalf("FromPoints: %v", err)
	}
	if want := box(-1, 0, 0, 1, 5, 9); got != want {
		t.Errorf("FromPoints: got %v, want %v", got, want)
	}

	if _, err := FromPoints(); !errors.Is(err, ErrNoPoints) {
		t.Errorf("FromPoints(): got %v, want ErrNoPoints", err)
	}
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b AABB
		want bool
	}{
		{"overlap", box(0, 0, 0, 2, 2, 2), box(1, 1, 1, 3, 3, 3), true},
		{"touching face", box(0, 0, 0, 1, 1, 1), box(1, 0, 0, 2, 1, 1), true},
		{"contained", box(0, 0, 0, 10, 10, 10), box(2, 2, 2, 3, 3, 3), true},
		{"apart on z", box(0, 0, 0, 1, 1, 1), box(0, 0, 1.5, 1, 1, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersects(tt.a, tt.b); got != tt.want {
				t.Errorf("Intersects(a, b): got %v, want %v", got, tt.want)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects(b, a): got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	b := box(0, 0, 0, 1, 1, 1)
	if !b.Contains(math.Vec3{X: 1, Y: 0, Z: 0.5}) {
		t.Error("Contains should include the boundary")
	}
	if b.Contains(math.Vec3{X: 1.01, Y: 0, Z: 0}) {
		t.Error("Contains accepted an outside point")
	}
}

func TestMeasures(t *testing.T) {
	b := box(-1, 0, 2, 3, 2, 8)
	if got := b.Center(); got != (math.Vec3{X: 1, Y: 1, Z: 5}) {
		t.Errorf("Center: got %v", got)
	}
	if got := b.Size(); got != (math.Vec3{X: 4, Y: 2, Z: 6}) {
		t.Errorf("Size: got %v", got)
	}
	if got := b.Volume(); got != 48 {
		t.Errorf("Volume: got %v, want 48", got)
	}
	if got := b.ClosestPoint(math.Vec3{X: 10, Y: 1, Z: -5}); got != (math.Vec3{X: 3, Y: 1, Z: 2}) {
		t.Errorf("ClosestPoint: got %v", got)
	}

	corners := b.Corners()
	if corners[0] != b.Min || corners[7] != b.Max {
		t.Errorf("Corners: got first %v last %v", corners[0], corners[7])
	}
}

func TestTransformRotateZ90(t *testing.T) {
	b := box(0, 0, 0, 1, 1, 1)
	got := b.Transform(math.RotateZ(gomath.Pi / 2))

	want := box(-1, 0, 0, 0, 1, 1)
	if !near(got.Min, want.Min) || !near(got.Max, want.Max) {
		t.Errorf("Transform: got %v, want %v", got, want)
	}
	if v := got.Volume(); gomath.Abs(v-1) > 1e-12 {
		t.Errorf("Transform volume: got %v, want 1", v)
	}
}

func TestTransformTranslateScale(t *testing.T) {
	b := box(-1, -1, -1, 1, 1, 1)
	got := b.Transform(math.Translate(10, 0, 0).Mul(math.Scale(2, 3, -1)))
	if want := box(8, -3, -1, 12, 3, 1); got != want {
		t.Errorf("Transform: got %v, want %v", got, want)
	}
}

func TestTransformFunc(t *testing.T) {
	b := box(1, 1, 1, 2, 2, 2)
	square := func(p math.Vec3) math.Vec3 { return p.Mul(p) }
	if got, want := b.TransformFunc(square), box(1, 1, 1, 4, 4, 4); got != want {
		t.Errorf("TransformFunc: got %v, want %v", got, want)
	}
}

func near(a, b math.Vec3) bool {
	const eps = 1e-12
	return gomath.Abs(a.X-b.X) <= eps && gomath.Abs(a.Y-b.Y) <= eps && gomath.Abs(a.Z-b.Z) <= eps
}
