package parameter

// Voxel lattice
const (
	// VoxelCenterOffset aligns entity positions to voxel-center coordinates
	VoxelCenterOffset = 0.5

	// OccupancyThreshold is the alpha at and above which a voxel is solid
	OccupancyThreshold = 0.2
)

// Collision resolution
const (
	// VelocityDamping divides every colliding entity's velocity once per frame
	VelocityDamping = 1.1

	// BroadPhaseMargin widens the voxel sweep around a collider box, in cells
	BroadPhaseMargin = 1
)

// Integrator
var (
	// DefaultGravity is added to forces of gravity-affected bodies every frame; world +Z is up
	DefaultGravity = [3]float32{0, 0, -0.02}
)

// Projectiles
const (
	GrenadeFuseMs         = 5000
	GrenadeBlastRadius    = 5
	RocketBlastRadius     = 5
	ProjectileLaunchForce = 10.0
	ProjectileLaunchLift  = 5.0
	ProjectileHalfExtent  = 0.5
	PlayerHalfExtent      = 0.5
	PlayerAcceleration    = 0.1
)
