package parameter

// Map generation defaults
const (
	MapWidth  = 64
	MapDepth  = 64
	MapHeight = 16

	// GroundDepth is the number of solid layers under every column
	GroundDepth = 4

	// Maze cell footprint in voxels and wall extrusion height
	MazeCellSize   = 4
	MazeWallHeight = 4

	// MazeBraiding leaves some loops without opening plazas
	MazeBraiding = 0.4
)
