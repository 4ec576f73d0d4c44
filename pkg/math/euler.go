package math

import (
	"fmt"
	"math"
	"strings"
)

// EulerOrder names the sequence in which three axis rotations are applied.
// The letters read in application order: EulerXYZ rotates about X first, then
// Y, then Z, which is the matrix Rz * Ry * Rx.
type EulerOrder int

const (
	EulerXYZ EulerOrder = iota
	EulerXZY
	EulerYXZ
	EulerYZX
	EulerZXY
	EulerZYX
)

// DefaultEulerOrder is yaw about Y, pitch about X, roll about Z (Ry * Rx * Rz).
const DefaultEulerOrder = EulerZXY

// gimbalThreshold bounds cos(middle angle) below which the first and third
// axes are treated as aligned.
const gimbalThreshold = 16 * EpsilonDouble

var eulerOrderNames = [...]string{"xyz", "xzy", "yxz", "yzx", "zxy", "zyx"}

// eulerAxis holds the first, second and third axis index of an order, and
// whether the permutation is odd.
type eulerAxis struct {
	i, j, k int
	odd     bool
}

var eulerAxes = [...]eulerAxis{
	EulerXYZ: {0, 1, 2, false},
	EulerXZY: {0, 2, 1, true},
	EulerYXZ: {1, 0, 2, true},
	EulerYZX: {1, 2, 0, false},
	EulerZXY: {2, 0, 1, false},
	EulerZYX: {2, 1, 0, true},
}

func (o EulerOrder) String() string {
	if o < 0 || int(o) >= len(eulerOrderNames) {
		return fmt.Sprintf("EulerOrder(%d)", int(o))
	}
	return eulerOrderNames[o]
}

// Valid reports whether o is one of the six defined orders.
func (o EulerOrder) Valid() bool {
	return o >= EulerXYZ && o <= EulerZYX
}

// ParseEulerOrder parses an order name such as "zxy" (case-insensitive).
func ParseEulerOrder(s string) (EulerOrder, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range eulerOrderNames {
		if n == name {
			return EulerOrder(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEulerOrder, s)
}

// RotateEuler builds a rotation from per-axis angles in radians. angles.X is
// always the angle about X, whatever its position in order. An invalid order
// is treated as DefaultEulerOrder.
func RotateEuler(angles Vec3, order EulerOrder) Mat4 {
	ax := axesFor(order)
	first := rotateAround(ax.i, angles.Get(ax.i))
	second := rotateAround(ax.j, angles.Get(ax.j))
	third := rotateAround(ax.k, angles.Get(ax.k))
	return third.Mul(second).Mul(first)
}

// EulerAngles extracts per-axis angles in radians from the rotation part of m,
// so that RotateEuler(m.EulerAngles(order), order) reproduces the rotation.
//
// Away from gimbal lock there are two valid answers; the one with the smaller
// sum of absolute angles is returned. When the first and third axes line up
// the third angle is fixed at zero and the first absorbs the whole rotation.
// m must be a pure rotation; call RotationComponent first for scaled matrices.
// An invalid order is treated as DefaultEulerOrder.
func (m Mat4) EulerAngles(order EulerOrder) Vec3 {
	ax := axesFor(order)
	i, j, k := ax.i, ax.j, ax.k

	cy := math.Hypot(m.At(i, i), m.At(j, i))

	var a1, a2 [3]float64
	if cy > gimbalThreshold {
		a1 = [3]float64{
			math.Atan2(m.At(k, j), m.At(k, k)),
			math.Atan2(-m.At(k, i), cy),
			math.Atan2(m.At(j, i), m.At(i, i)),
		}
		a2 = [3]float64{
			math.Atan2(-m.At(k, j), -m.At(k, k)),
			math.Atan2(-m.At(k, i), -cy),
			math.Atan2(-m.At(j, i), -m.At(i, i)),
		}
	} else {
		a1 = [3]float64{
			math.Atan2(-m.At(j, k), m.At(j, j)),
			math.Atan2(-m.At(k, i), cy),
			0,
		}
		a2 = a1
	}

	if ax.odd {
		for n := range a1 {
			a1[n] = -a1[n]
			a2[n] = -a2[n]
		}
	}

	best := a1
	if absSum(a1) > absSum(a2) {
		best = a2
	}

	var out Vec3
	out = out.with(i, best[0])
	out = out.with(j, best[1])
	out = out.with(k, best[2])
	return out
}

// Euler returns the rotation as angles in DefaultEulerOrder.
func (m Mat4) Euler() Vec3 {
	return m.EulerAngles(DefaultEulerOrder)
}

func axesFor(order EulerOrder) eulerAxis {
	if !order.Valid() {
		order = DefaultEulerOrder
	}
	return eulerAxes[order]
}

func absSum(a [3]float64) float64 {
	return math.Abs(a[0]) + math.Abs(a[1]) + math.Abs(a[2])
}
