package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/voxel-fighter/core"
	"github.com/lixenwraith/voxel-fighter/engine"
	"github.com/lixenwraith/voxel-fighter/vmath"
)

// StatusRows is the number of screen rows reserved below the viewport
const StatusRows = 2

// RenderContext provides frame state for renderers, passed by value
// The view is a top-down slice of the voxel map at layer Slice; screen x maps to map x, screen y to map y
type RenderContext struct {
	World     *engine.World
	MapEntity core.Entity

	// Slice is the z layer being viewed; +Z is down so the layer below is Slice+1
	Slice int

	// Camera position (top-left of viewport in map coordinates)
	CameraX int
	CameraY int

	// Viewport dimensions (screen rows minus the status bar)
	ViewportWidth  int
	ViewportHeight int

	ScreenWidth  int
	ScreenHeight int
}

// NewRenderContext centers the camera on focus, given in map coordinates, and clamps it to the map
func NewRenderContext(world *engine.World, mapEntity core.Entity, slice int, focus mgl32.Vec3, screenW, screenH int) RenderContext {
	ctx := RenderContext{
		World:          world,
		MapEntity:      mapEntity,
		Slice:          slice,
		ViewportWidth:  screenW,
		ViewportHeight: max(screenH-StatusRows, 0),
		ScreenWidth:    screenW,
		ScreenHeight:   screenH,
	}

	m, ok := world.Components.VoxelMap.Get(mapEntity)
	if !ok {
		return ctx
	}
	ctx.CameraX = clampCamera(CellOf(focus[0])-ctx.ViewportWidth/2, m.X, ctx.ViewportWidth)
	ctx.CameraY = clampCamera(CellOf(focus[1])-ctx.ViewportHeight/2, m.Y, ctx.ViewportHeight)
	return ctx
}

// clampCamera keeps the viewport inside the map; a map narrower than the viewport pins to 0
func clampCamera(cam, mapDim, viewDim int) int {
	if mapDim <= viewDim || cam < 0 {
		return 0
	}
	if cam > mapDim-viewDim {
		return mapDim - viewDim
	}
	return cam
}

// MapToScreen converts map coordinates to screen coordinates
// Returns (sx, sy, visible) where visible=false if outside viewport
func (rc *RenderContext) MapToScreen(mapX, mapY int) (int, int, bool) {
	sx := mapX - rc.CameraX
	sy := mapY - rc.CameraY
	visible := sx >= 0 && sx < rc.ViewportWidth && sy >= 0 && sy < rc.ViewportHeight
	return sx, sy, visible
}

// CellOf returns the voxel cell containing a voxel-center coordinate
func CellOf(v float32) int {
	return vmath.Floor32(v + 0.5)
}
