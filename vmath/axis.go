package vmath

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DominantAxis keeps only the component with the largest magnitude and zeroes the other two
// X wins only when strictly greater than both Y and Z, then Y under the same rule; Z otherwise,
// so any tie falls through to Z
func DominantAxis(v mgl32.Vec3) mgl32.Vec3 {
	ax, ay, az := Abs32(v[0]), Abs32(v[1]), Abs32(v[2])
	switch {
	case ax > ay && ax > az:
		return mgl32.Vec3{v[0], 0, 0}
	case ay > ax && ay > az:
		return mgl32.Vec3{0, v[1], 0}
	default:
		return mgl32.Vec3{0, 0, v[2]}
	}
}

// InHalfOpen reports whether p lies in [0, dims) on all three axes
func InHalfOpen(p, dims mgl32.Vec3) bool {
	return p[0] >= 0 && p[1] >= 0 && p[2] >= 0 &&
		p[0] < dims[0] && p[1] < dims[1] && p[2] < dims[2]
}

// IsZero3 reports an exactly zero vector
func IsZero3(v mgl32.Vec3) bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}

// Splat3 returns a vector with all components set to s
func Splat3(s float32) mgl32.Vec3 {
	return mgl32.Vec3{s, s, s}
}

// Abs32 is math.Abs for float32 without the float64 round trip
func Abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

// Floor32 truncates toward negative infinity
func Floor32(f float32) int {
	i := int(f)
	if f < 0 && float32(i) != f {
		i--
	}
	return i
}

// UnitAxis normalizes a vector with at most one non-zero component
// Each component maps to its sign, so the result is exact where Normalize would round
func UnitAxis(v mgl32.Vec3) mgl32.Vec3 {
	var out mgl32.Vec3
	for i := 0; i < 3; i++ {
		switch {
		case v[i] > 0:
			out[i] = 1
		case v[i] < 0:
			out[i] = -1
		}
	}
	return out
}
