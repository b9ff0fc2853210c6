package component

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/voxel-fighter/parameter"
)

// ColliderComponent is an axis-aligned box around the entity position
// R holds the axial half-extents; position - 0.5 + R is the box reference corner
type ColliderComponent struct {
	Offset mgl32.Vec3
	R      mgl32.Vec3
	Radius float32
}

// NewBoxCollider creates a cube collider with equal half-extents
func NewBoxCollider(half float32) ColliderComponent {
	return ColliderComponent{
		R:      mgl32.Vec3{half, half, half},
		Radius: half,
	}
}

// Corner returns the reference corner for an entity at pos
func (c ColliderComponent) Corner(pos mgl32.Vec3) mgl32.Vec3 {
	return pos.Sub(mgl32.Vec3{parameter.VoxelCenterOffset, parameter.VoxelCenterOffset, parameter.VoxelCenterOffset}).Add(c.R)
}

// Min returns the low corner of the box in voxel-center coordinates
func (c ColliderComponent) Min(pos mgl32.Vec3) mgl32.Vec3 {
	return c.Corner(pos).Sub(c.R.Mul(2))
}

// Max returns the high corner of the box in voxel-center coordinates
func (c ColliderComponent) Max(pos mgl32.Vec3) mgl32.Vec3 {
	return c.Corner(pos)
}
