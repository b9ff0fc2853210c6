package vmath

import "github.com/go-gl/mathgl/mgl32"

// Box is an axis-aligned box with inclusive bounds
type Box struct {
	Min, Max mgl32.Vec3
}

// Overlaps reports whether two boxes intersect; touching faces count as overlap
func (b Box) Overlaps(o Box) bool {
	for i := 0; i < 3; i++ {
		if b.Max[i] < o.Min[i] || o.Max[i] < b.Min[i] {
			return false
		}
	}
	return true
}

// Contains reports whether p lies inside the box
func (b Box) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Center returns the box midpoint
func (b Box) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// CellRange returns the integer cell span covered by the box widened by margin cells,
// clamped to [0, dims). ok is false when the span misses the grid entirely
func (b Box) CellRange(margin int, dims [3]int) (lo, hi [3]int, ok bool) {
	for i := 0; i < 3; i++ {
		lo[i] = Floor32(b.Min[i]) - margin
		hi[i] = Floor32(b.Max[i]) + margin
		if lo[i] < 0 {
			lo[i] = 0
		}
		if hi[i] > dims[i]-1 {
			hi[i] = dims[i] - 1
		}
		if lo[i] > hi[i] {
			return lo, hi, false
		}
	}
	return lo, hi, true
}
