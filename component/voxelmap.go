package component

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/voxel-fighter/parameter"
)

// VoxelMapComponent is a dense 3D lattice of RGBA cells attached to the world entity
// Cell (x,y,z) lives at linear index x + X*(y + Y*z); alpha encodes occupancy
// Map space mirrors world space through the origin: cell v is centered at world -v, and +Z is down in map space
// Cells is shared between copies, so a value fetched from a store still writes through
type VoxelMapComponent struct {
	X, Y, Z int
	Cells   []mgl32.Vec4
}

// NewVoxelMap allocates an all-air map
func NewVoxelMap(x, y, z int) VoxelMapComponent {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if z < 0 {
		z = 0
	}
	return VoxelMapComponent{
		X:     x,
		Y:     y,
		Z:     z,
		Cells: make([]mgl32.Vec4, x*y*z),
	}
}

// MapPoint converts a world position to map coordinates
func MapPoint(world mgl32.Vec3) mgl32.Vec3 {
	return world.Mul(-1)
}

// WorldPoint converts map coordinates to a world position
func WorldPoint(p mgl32.Vec3) mgl32.Vec3 {
	return p.Mul(-1)
}

// Len returns the number of cells
func (m VoxelMapComponent) Len() int {
	return len(m.Cells)
}

// Dimensions returns world extents as a vector
func (m VoxelMapComponent) Dimensions() mgl32.Vec3 {
	return mgl32.Vec3{float32(m.X), float32(m.Y), float32(m.Z)}
}

// Position returns grid coordinates of a linear voxel index
func (m VoxelMapComponent) Position(index int) mgl32.Vec3 {
	if m.X == 0 || m.Y == 0 {
		return mgl32.Vec3{}
	}
	x := index % m.X
	y := (index / m.X) % m.Y
	z := index / (m.X * m.Y)
	return mgl32.Vec3{float32(x), float32(y), float32(z)}
}

// Index converts grid coordinates to a linear index, false when out of range
func (m VoxelMapComponent) Index(x, y, z int) (int, bool) {
	if x < 0 || y < 0 || z < 0 || x >= m.X || y >= m.Y || z >= m.Z {
		return 0, false
	}
	return x + m.X*(y+m.Y*z), true
}

// Color returns the cell color at truncated coordinates
// Out of range coordinates read as air (zero color) instead of faulting
func (m VoxelMapComponent) Color(x, y, z float32) mgl32.Vec4 {
	if x < 0 || y < 0 || z < 0 {
		return mgl32.Vec4{}
	}
	idx, ok := m.Index(int(x), int(y), int(z))
	if !ok {
		return mgl32.Vec4{}
	}
	return m.Cells[idx]
}

// Set writes a cell color, ignoring out of range coordinates
func (m VoxelMapComponent) Set(x, y, z int, c mgl32.Vec4) {
	if idx, ok := m.Index(x, y, z); ok {
		m.Cells[idx] = c
	}
}

// Solid reports whether the cell at (x,y,z) blocks movement
func (m VoxelMapComponent) Solid(x, y, z int) bool {
	idx, ok := m.Index(x, y, z)
	if !ok {
		return false
	}
	return m.Cells[idx][3] >= parameter.OccupancyThreshold
}

// SolidAt reports occupancy of a linear index
func (m VoxelMapComponent) SolidAt(index int) bool {
	if index < 0 || index >= len(m.Cells) {
		return false
	}
	return m.Cells[index][3] >= parameter.OccupancyThreshold
}

// Carve clears every solid cell whose center lies within radius of center, given in map coordinates
// Returns the number of cells turned to air
func (m VoxelMapComponent) Carve(center mgl32.Vec3, radius float32) int {
	if radius <= 0 {
		return 0
	}
	r := int(math.Ceil(float64(radius)))
	cx, cy, cz := int(center[0]), int(center[1]), int(center[2])
	rSq := radius * radius

	carved := 0
	for z := cz - r; z <= cz+r; z++ {
		for y := cy - r; y <= cy+r; y++ {
			for x := cx - r; x <= cx+r; x++ {
				idx, ok := m.Index(x, y, z)
				if !ok || m.Cells[idx][3] < parameter.OccupancyThreshold {
					continue
				}
				d := mgl32.Vec3{float32(x), float32(y), float32(z)}.Sub(center)
				if d.Dot(d) > rSq {
					continue
				}
				m.Cells[idx] = mgl32.Vec4{}
				carved++
			}
		}
	}
	return carved
}

// Digest hashes dimensions and cell contents, stable across runs for equal maps
func (m VoxelMapComponent) Digest() uint64 {
	h := xxhash.New()
	var buf [16]byte
	binary.LittleEndian.PutUint32(buf[0:], uint32(m.X))
	binary.LittleEndian.PutUint32(buf[4:], uint32(m.Y))
	binary.LittleEndian.PutUint32(buf[8:], uint32(m.Z))
	_, _ = h.Write(buf[:12])
	for _, c := range m.Cells {
		for i := 0; i < 4; i++ {
			binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(c[i]))
		}
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
