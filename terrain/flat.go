package terrain

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/voxel-fighter/component"
)

// Default palette
var (
	GroundColor = mgl32.Vec4{0.35, 0.55, 0.25, 1}
	WallColor   = mgl32.Vec4{0.55, 0.5, 0.45, 1}
)

// Flat returns a map with a solid slab of depth cells at the bottom; +Z points down,
// so the slab occupies the highest z layers
func Flat(x, y, z, depth int, color mgl32.Vec4) component.VoxelMapComponent {
	m := component.NewVoxelMap(x, y, z)
	fillGround(m, depth, color)
	return m
}

// GroundLevel returns the first solid z layer of a slab of the given depth
func GroundLevel(z, depth int) int {
	if depth > z {
		depth = z
	}
	if depth < 0 {
		depth = 0
	}
	return z - depth
}

func fillGround(m component.VoxelMapComponent, depth int, color mgl32.Vec4) {
	for z := GroundLevel(m.Z, depth); z < m.Z; z++ {
		for y := 0; y < m.Y; y++ {
			for x := 0; x < m.X; x++ {
				m.Set(x, y, z, color)
			}
		}
	}
}
